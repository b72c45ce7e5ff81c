// Command conninfo-parse parses a PostgreSQL conninfo string or connection
// URI and prints the resolved parameters in one of several output formats.
//
// See the documentation of github.com/okdana/conninfo-parse for the accepted
// syntaxes and the resolution rules.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	conninfo "github.com/okdana/conninfo-parse"
	"github.com/okdana/conninfo-parse/render"
)

const (
	progName    = "conninfo-parse"
	progDesc    = "Parse a PostgreSQL conninfo string and output the result"
	progVersion = "0.3.0"
)

// Exit statuses, adapted from sysexits.h.
const (
	exitOK          = 0
	exitErr         = 1
	exitUsage       = 64
	exitUnavailable = 69
)

const shortUsage = "[-h|-V] [-q] [--verbose] [-d <dc>|-j|-s|-y] <conninfo>"

const optionsUsage = `  -h, --help            Display this help information and exit
  -V, --version         Display version information and exit
  -q, --quiet           Suppress normal output (validate only)
      --verbose         Enable debug logging on standard error
  -d, --delimited <dc>  Output in delimited format, where <dc> delimits columns
                        and \n delimits rows
  -j, --json            Output in JSON format
  -s, --shell           Output in shell variable format
  -y, --yaml            Output in YAML format
  <conninfo>            conninfo string to parse
`

// options collects the flag state for a single invocation.
type options struct {
	help    bool
	version bool
	quiet   bool
	verbose bool
	mode    string
	delim   string
}

// modeValue selects a fixed output mode when its flag appears. When several
// mode flags are given, the last one on the command line wins, as with
// getopt.
type modeValue struct {
	opts *options
	mode string
}

func (v modeValue) String() string   { return "" }
func (v modeValue) Type() string     { return "bool" }
func (v modeValue) Set(string) error { v.opts.mode = v.mode; return nil }

// delimValue selects delimited output and records the column delimiter. An
// empty delimiter is accepted here and rejected after flag parsing, so that
// the error message matches the other usage checks.
type delimValue struct {
	opts *options
}

func (v delimValue) String() string { return "\t" }
func (v delimValue) Type() string   { return "string" }

func (v delimValue) Set(s string) error {
	v.opts.mode = "delimited"
	v.opts.delim = s
	return nil
}

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:], os.LookupEnv))
}

// run is main with the process-global dependencies made explicit, returning
// the process exit status.
func run(stdout, stderr io.Writer, args []string, env conninfo.Environ) int {
	opts := options{mode: "delimited", delim: "\t"}

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.BoolVarP(&opts.help, "help", "h", false, "display help and exit")
	fs.BoolVarP(&opts.version, "version", "V", false, "display version and exit")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress normal output")
	fs.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	fs.VarP(delimValue{&opts}, "delimited", "d", "output in delimited format")
	fs.Var(delimValue{&opts}, "delimiter", "output in delimited format") // legacy spelling
	jf := fs.VarPF(modeValue{&opts, "json"}, "json", "j", "output in JSON format")
	jf.NoOptDefVal = "true"
	sf := fs.VarPF(modeValue{&opts, "shell"}, "shell", "s", "output in shell variable format")
	sf.NoOptDefVal = "true"
	yf := fs.VarPF(modeValue{&opts, "yaml"}, "yaml", "y", "output in YAML format")
	yf.NoOptDefVal = "true"

	if err := fs.Parse(args); err != nil {
		efprintf(stderr, "%v\n", err)
		printUsage(stderr, true)
		return exitUsage
	}

	if opts.help {
		printUsage(stdout, false)
		return exitOK
	}
	if opts.version {
		fmt.Fprintf(stdout, "%s version %s\n", progName, progVersion)
		return exitOK
	}

	rest := fs.Args()
	switch {
	case opts.delim == "":
		efprintf(stderr, "invalid delimiter spec\n")
		printUsage(stderr, true)
		return exitUsage
	case len(rest) == 0:
		efprintf(stderr, "expected conninfo string\n")
		printUsage(stderr, true)
		return exitUsage
	case len(rest) > 1:
		efprintf(stderr, "unexpected argument: %s\n", rest[1])
		printUsage(stderr, true)
		return exitUsage
	}

	// The output mode is settled before any parsing is attempted.
	r, err := render.Open(opts.mode, opts.delim)
	if err != nil {
		var unavail *render.UnavailableError
		if errors.As(err, &unavail) {
			efprintf(stderr, "%s support not available\n", unavail.Mode)
			return exitUnavailable
		}
		efprintf(stderr, "%v\n", err)
		return exitUsage
	}

	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetLevel(log.WarnLevel)
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	syntax := "keyword/value"
	if strings.HasPrefix(rest[0], "postgresql://") || strings.HasPrefix(rest[0], "postgres://") {
		syntax = "URI"
	}
	logger.WithFields(log.Fields{
		"mode":   opts.mode,
		"syntax": syntax,
	}).Debug("parsing conninfo string")

	params, err := conninfo.ParseEnv(rest[0], env)
	if err != nil {
		logger.WithError(err).Debug("parse failed")
		if !opts.quiet {
			efprintf(stderr, "parse error: %s\n", err)
		}
		return exitErr
	}
	logger.WithField("params", len(params)).Debug("resolved conninfo string")

	for _, p := range params {
		logger.WithFields(log.Fields{
			"keyword": p.Keyword,
			"value":   redactValue(p.Keyword, p.Value),
			"source":  p.Source,
		}).Debug("resolved parameter")
	}

	if opts.quiet {
		return exitOK
	}
	if err := r.Render(stdout, params); err != nil {
		efprintf(stderr, "%v\n", err)
		return exitErr
	}
	return exitOK
}

// efprintf prints a formatted error message prefixed with the program name.
func efprintf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s: %s", progName, fmt.Sprintf(format, args...))
}

// printUsage prints either the brief or the full usage help.
func printUsage(w io.Writer, brief bool) {
	if brief {
		fmt.Fprintf(w, "usage: %s %s\n", progName, shortUsage)
		return
	}
	fmt.Fprintf(w, "%s\n\nusage:\n  %s %s\n\noptions:\n%s", progDesc, progName, shortUsage, optionsUsage)
}

// redactValue masks values that must not end up in debug logs.
func redactValue(keyword, value string) string {
	switch keyword {
	case "password", "sslpassword":
		if value != "" {
			return "***"
		}
	}
	return value
}

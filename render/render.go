// Package render turns resolved connection parameters into output text.
//
// Renderers are registered by mode name, in the manner of database/sql
// driver registration, and looked up with [Open]. Four modes are built in:
// delimited, shell, json, and yaml. Renderers never parse or mutate the
// parameter list.
package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	conninfo "github.com/okdana/conninfo-parse"
)

// Renderer writes a resolved parameter list to w.
type Renderer interface {
	Render(w io.Writer, params conninfo.Params) error
}

// OpenFunc builds a renderer for one output mode. The meaning of arg is
// mode-specific: the delimited mode takes its column delimiter, the other
// built-in modes ignore it.
type OpenFunc func(arg string) (Renderer, error)

var (
	modesMu sync.RWMutex
	modes   = make(map[string]OpenFunc)
)

// Register makes a renderer available under the given mode name. It panics
// when open is nil or when a mode is registered twice.
func Register(mode string, open OpenFunc) {
	modesMu.Lock()
	defer modesMu.Unlock()
	if open == nil {
		panic("render: Register open is nil")
	}
	if _, dup := modes[mode]; dup {
		panic("render: Register called twice for mode " + mode)
	}
	modes[mode] = open
}

// Modes returns the names of the registered output modes, sorted.
func Modes() []string {
	modesMu.RLock()
	defer modesMu.RUnlock()
	list := make([]string, 0, len(modes))
	for mode := range modes {
		list = append(list, mode)
	}
	sort.Strings(list)
	return list
}

// Open builds the renderer registered under mode. Requesting an unregistered
// mode yields a *UnavailableError.
func Open(mode, arg string) (Renderer, error) {
	modesMu.RLock()
	open, ok := modes[mode]
	modesMu.RUnlock()
	if !ok {
		return nil, &UnavailableError{Mode: mode}
	}
	return open(arg)
}

// UnavailableError reports a request for an output mode not registered in
// this build.
type UnavailableError struct {
	Mode string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("render: %s support not available", e.Mode)
}

func init() {
	Register("delimited", func(arg string) (Renderer, error) {
		if arg == "" {
			return nil, errors.New("render: empty column delimiter")
		}
		return Delimited{Delim: arg}, nil
	})
}

// Delimited renders one parameter per line as keyword, column delimiter,
// value. Values are written verbatim: a value containing the delimiter or a
// newline is not escaped.
type Delimited struct {
	Delim string
}

func (d Delimited) Render(w io.Writer, params conninfo.Params) error {
	for _, p := range params {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", p.Keyword, d.Delim, p.Value); err != nil {
			return err
		}
	}
	return nil
}

package conninfo

import (
	"os"
	"strings"
)

// RawPair is one keyword/value pair as decoded from the input string, before
// registry validation and resolution.
type RawPair struct {
	Keyword string
	Value   string
}

// Parse decodes a conninfo string, in either the keyword/value or the URI
// form, and resolves it against the process environment.
func Parse(conninfo string) (Params, error) {
	return ParseEnv(conninfo, os.LookupEnv)
}

// ParseEnv is Parse with an injected environment lookup, for embedding
// callers and tests. A nil env resolves against an empty environment.
func ParseEnv(conninfo string, env Environ) (Params, error) {
	pairs, err := decode(conninfo)
	if err != nil {
		return nil, err
	}
	return resolve(pairs, env)
}

// decode selects the decoder on a prefix sniff, as libpq does: only the
// exact prefixes "postgresql://" and "postgres://" select the URI form, and
// everything else is treated as keyword/value syntax.
func decode(conninfo string) ([]RawPair, error) {
	if strings.HasPrefix(conninfo, "postgresql://") || strings.HasPrefix(conninfo, "postgres://") {
		return parseURI(conninfo)
	}
	return parseKeyValue(conninfo)
}

package conninfo

import "strings"

// Source records where a resolved parameter's value came from.
type Source int

const (
	SourceExplicit Source = iota
	SourceEnvironment
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceExplicit:
		return "explicit"
	case SourceEnvironment:
		return "environment"
	case SourceDefault:
		return "default"
	}
	return "unknown"
}

// Environ looks up one environment variable, in the manner of os.LookupEnv.
// A nil Environ behaves as an empty environment.
type Environ func(name string) (string, bool)

// Param is one resolved connection parameter.
type Param struct {
	Keyword string
	Value   string
	Source  Source
}

// Params is an ordered list of resolved parameters. It holds at most one
// entry per keyword, and every keyword is a registry member.
type Params []Param

// Get returns the value of keyword and whether it is present.
func (ps Params) Get(keyword string) (string, bool) {
	for _, p := range ps {
		if p.Keyword == keyword {
			return p.Value, true
		}
	}
	return "", false
}

// Map returns the parameters as a keyword-to-value map, dropping provenance
// and order.
func (ps Params) Map() map[string]string {
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[p.Keyword] = p.Value
	}
	return m
}

// String renders the parameters in keyword/value conninfo form with
// single-quoted values. The result parses back, against an empty
// environment, into an equal list modulo provenance.
func (ps Params) String() string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Keyword)
		b.WriteByte('=')
		b.WriteString(quoteValue(p.Value))
	}
	return b.String()
}

// quoteValue renders a value in the quoted keyword/value form: wrapped in
// single quotes, with a backslash before every embedded quote or backslash.
func quoteValue(v string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range v {
		if r == '\'' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

// resolve merges decoded pairs with environment fallbacks and registry
// defaults into the final ordered parameter list.
//
// Precedence per keyword: explicit pair (last occurrence wins), then a
// non-empty environment variable, then a non-empty registry default.
// Keywords with none of the three are omitted entirely. An explicit empty
// value is kept; an environment variable that is set but empty is ignored.
//
// Output order: explicit keywords in first-occurrence input order, then
// environment-sourced keywords in registry order, then default-sourced
// keywords in registry order.
func resolve(pairs []RawPair, env Environ) (Params, error) {
	seen := make(map[string]int, len(pairs))
	var out Params

	for _, p := range pairs {
		if _, ok := lookupOption(p.Keyword); !ok {
			return nil, &UnknownKeywordError{Keyword: p.Keyword}
		}
		if i, ok := seen[p.Keyword]; ok {
			// Last occurrence wins; the first occurrence keeps its slot.
			out[i].Value = p.Value
			continue
		}
		seen[p.Keyword] = len(out)
		out = append(out, Param{Keyword: p.Keyword, Value: p.Value, Source: SourceExplicit})
	}

	if env != nil {
		for _, o := range options {
			if o.EnvVar == "" {
				continue
			}
			if _, ok := seen[o.Keyword]; ok {
				continue
			}
			if v, ok := env(o.EnvVar); ok && v != "" {
				seen[o.Keyword] = len(out)
				out = append(out, Param{Keyword: o.Keyword, Value: v, Source: SourceEnvironment})
			}
		}
	}

	for _, o := range options {
		if o.Default == "" {
			continue
		}
		if _, ok := seen[o.Keyword]; ok {
			continue
		}
		seen[o.Keyword] = len(out)
		out = append(out, Param{Keyword: o.Keyword, Value: o.Default, Source: SourceDefault})
	}

	return out, nil
}

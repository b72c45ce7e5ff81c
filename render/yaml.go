package render

import (
	"io"

	"gopkg.in/yaml.v3"

	conninfo "github.com/okdana/conninfo-parse"
)

func init() {
	Register("yaml", func(string) (Renderer, error) { return YAML{}, nil })
}

// YAML renders the parameters as a YAML mapping of keywords to values. The
// encoder sorts mapping keys, so input order is not preserved.
type YAML struct{}

func (YAML) Render(w io.Writer, params conninfo.Params) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(params.Map()); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

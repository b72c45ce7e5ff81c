package render

import (
	"io"

	json "github.com/goccy/go-json"

	conninfo "github.com/okdana/conninfo-parse"
)

func init() {
	Register("json", func(string) (Renderer, error) { return JSON{}, nil })
}

// JSON renders the parameters as one JSON object mapping keywords to values,
// followed by a newline. The encoder sorts object keys, so input order is
// not preserved.
type JSON struct{}

func (JSON) Render(w io.Writer, params conninfo.Params) error {
	return json.NewEncoder(w).Encode(params.Map())
}

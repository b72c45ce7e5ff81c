package render

import (
	"fmt"
	"io"
	"strings"

	conninfo "github.com/okdana/conninfo-parse"
)

func init() {
	Register("shell", func(string) (Renderer, error) { return Shell{}, nil })
}

// Shell renders one parameter per line as keyword=value with the value
// quoted for a POSIX shell, so the output can be eval'd or sourced to set
// shell variables.
type Shell struct{}

func (Shell) Render(w io.Writer, params conninfo.Params) error {
	for _, p := range params {
		if _, err := fmt.Fprintf(w, "%s=%s\n", p.Keyword, Quote(p.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Quote escapes v for use as a single word in POSIX shells: the value is
// wrapped in single quotes and each embedded single quote becomes the
// four-character sequence '\''.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(v); i++ {
		if v[i] == '\'' {
			b.WriteString(`'\''`)
		} else {
			b.WriteByte(v[i])
		}
	}
	b.WriteByte('\'')
	return b.String()
}

package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	conninfo "github.com/okdana/conninfo-parse"
	"github.com/okdana/conninfo-parse/render"
)

func testParams() conninfo.Params {
	return conninfo.Params{
		{Keyword: "host", Value: "a", Source: conninfo.SourceExplicit},
		{Keyword: "port", Value: "5432", Source: conninfo.SourceDefault},
	}
}

func TestDelimited(t *testing.T) {
	tests := []struct {
		name  string
		delim string
		want  string
	}{
		{"tab", "\t", "host\ta\nport\t5432\n"},
		{"comma", ",", "host,a\nport,5432\n"},
		{"multi-character", " :: ", "host :: a\nport :: 5432\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, err := render.Open("delimited", tt.delim)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, testParams()))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDelimitedEmptyDelimiter(t *testing.T) {
	_, err := render.Open("delimited", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty column delimiter")
}

func TestShell(t *testing.T) {
	params := conninfo.Params{
		{Keyword: "host", Value: "a", Source: conninfo.SourceExplicit},
		{Keyword: "application_name", Value: "O'Brien", Source: conninfo.SourceExplicit},
		{Keyword: "password", Value: "", Source: conninfo.SourceExplicit},
	}

	r, err := render.Open("shell", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, params))
	assert.Equal(t, "host='a'\napplication_name='O'\\''Brien'\npassword=''\n", buf.String())
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "''"},
		{"a", "'a'"},
		{"a b", "'a b'"},
		{"O'Brien", `'O'\''Brien'`},
		{"'", `''\'''`},
		{`back\slash`, `'back\slash'`},
		{"new\nline", "'new\nline'"},
		{"café", "'café'"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, render.Quote(tt.in), "in: %q", tt.in)
	}
}

func TestJSON(t *testing.T) {
	r, err := render.Open("json", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, testParams()))
	assert.JSONEq(t, `{"host": "a", "port": "5432"}`, buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestJSONEmpty(t *testing.T) {
	r, err := render.Open("json", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, nil))
	assert.Equal(t, "{}\n", buf.String())
}

func TestYAML(t *testing.T) {
	r, err := render.Open("yaml", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, testParams()))
	assert.Equal(t, "host: a\nport: \"5432\"\n", buf.String())
}

func TestOpenUnavailable(t *testing.T) {
	_, err := render.Open("xml", "")

	var uErr *render.UnavailableError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, "xml", uErr.Mode)
	assert.Contains(t, err.Error(), "xml support not available")
}

func TestModes(t *testing.T) {
	assert.Equal(t, []string{"delimited", "json", "shell", "yaml"}, render.Modes())
}

func TestRegister(t *testing.T) {
	assert.Panics(t, func() {
		render.Register("delimited", func(string) (render.Renderer, error) { return render.Shell{}, nil })
	})
	assert.Panics(t, func() {
		render.Register("other", nil)
	})
}

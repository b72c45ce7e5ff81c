package conninfo

import (
	"errors"
	"reflect"
	"testing"

	"github.com/okdana/conninfo-parse/internal/cptest"
)

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		in      string
		want    []RawPair
		wantErr string
	}{
		{"", nil, ""},
		{"   \t\n  ", nil, ""},
		{"host=localhost", []RawPair{{"host", "localhost"}}, ""},
		{"host=localhost port=5432", []RawPair{{"host", "localhost"}, {"port", "5432"}}, ""},
		{"  host=localhost\tport=5432\n", []RawPair{{"host", "localhost"}, {"port", "5432"}}, ""},
		{"host = localhost", []RawPair{{"host", "localhost"}}, ""},

		// Quoting and escapes.
		{"host='local host'", []RawPair{{"host", "local host"}}, ""},
		{`host='lo\'cal'`, []RawPair{{"host", "lo'cal"}}, ""},
		{`host='lo\\cal'`, []RawPair{{"host", `lo\cal`}}, ""},
		{`host=lo\ cal`, []RawPair{{"host", "lo cal"}}, ""},
		{`host=lo\'cal`, []RawPair{{"host", "lo'cal"}}, ""},
		{"host='a'port=b", []RawPair{{"host", "a"}, {"port", "b"}}, ""},

		// Empty values: assigned but empty, not absent.
		{"password=", []RawPair{{"password", ""}}, ""},
		{"password= ", []RawPair{{"password", ""}}, ""},
		{"password='' host=x", []RawPair{{"password", ""}, {"host", "x"}}, ""},

		// Whitespace after = is skipped, so the next token becomes the
		// value, as in libpq.
		{"user= password=foo", []RawPair{{"user", "password=foo"}}, ""},

		// Duplicates are preserved here; the resolver folds them.
		{"host=a host=b", []RawPair{{"host", "a"}, {"host", "b"}}, ""},

		// Keywords pass through undecoded and unvalidated.
		{"bogus=1", []RawPair{{"bogus", "1"}}, ""},
		{"=foo", []RawPair{{"", "foo"}}, ""},

		{"badtoken", nil, `missing "=" after "badtoken" in connection info string`},
		{"host=x badtoken", nil, `missing "=" after "badtoken" in connection info string`},
		{"host='unterminated", nil, "unterminated quoted string literal in connection string"},
		{`host='trailing\`, nil, "unterminated quoted string literal in connection string"},
		{`host=x\`, nil, "missing character after backslash"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			have, err := parseKeyValue(tt.in)
			if !cptest.ErrorContains(err, tt.wantErr) {
				t.Fatalf("wrong error:\nhave: %s\nwant: %s", err, tt.wantErr)
			}
			if !reflect.DeepEqual(have, tt.want) {
				t.Errorf("\nhave: %v\nwant: %v", have, tt.want)
			}
		})
	}
}

func TestParseKeyValueOffset(t *testing.T) {
	tests := []struct {
		in         string
		wantOffset int
	}{
		{"badtoken", 0},
		{"host=x badtoken", 7},
		{"host='unterminated", 5},
		{`host=x\`, 6},
		{"hé='x", 3}, // rune offset, not byte offset
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			_, err := parseKeyValue(tt.in)
			var sErr *SyntaxError
			if !errors.As(err, &sErr) {
				t.Fatalf("error is not a *SyntaxError: %#v", err)
			}
			if sErr.Offset != tt.wantOffset {
				t.Errorf("wrong offset:\nhave: %d\nwant: %d", sErr.Offset, tt.wantOffset)
			}
		})
	}
}

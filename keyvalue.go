package conninfo

import "unicode"

// scanner implements a tokenizer for libpq-style option strings.
type scanner struct {
	s []rune
	i int
}

// newScanner returns a new scanner initialized with the option string s.
func newScanner(s string) *scanner {
	return &scanner{[]rune(s), 0}
}

// Next returns the next rune.
// It returns 0, false if the end of the text has been reached.
func (s *scanner) Next() (rune, bool) {
	if s.i >= len(s.s) {
		return 0, false
	}
	r := s.s[s.i]
	s.i++
	return r, true
}

// SkipSpaces returns the next non-whitespace rune.
// It returns 0, false if the end of the text has been reached.
func (s *scanner) SkipSpaces() (rune, bool) {
	r, ok := s.Next()
	for unicode.IsSpace(r) && ok {
		r, ok = s.Next()
	}
	return r, ok
}

// pos returns the rune offset of the rune most recently returned by Next.
func (s *scanner) pos() int {
	return s.i - 1
}

// parseKeyValue decodes a legacy keyword=value string into pairs, in order of
// occurrence. Duplicate keywords are preserved here and folded by the
// resolver (last occurrence wins).
//
// The grammar is that of conninfo_parse from libpq's fe-connect.c: tokens are
// keyword=value separated by whitespace, whitespace around the "=" is
// skipped, and a value is either a run of non-whitespace characters or a
// single-quoted string. In both value forms a backslash escapes the character
// after it. Note that skipping whitespace after "=" means "user= foo"
// assigns "foo" to user, and "user= password=x" assigns "password=x".
func parseKeyValue(input string) ([]RawPair, error) {
	s := newScanner(input)
	var pairs []RawPair

	for {
		var (
			keyRunes, valRunes []rune
			r                  rune
			ok                 bool
		)

		if r, ok = s.SkipSpaces(); !ok {
			break
		}
		keyStart := s.pos()

		// Scan the keyword
		for !unicode.IsSpace(r) && r != '=' {
			keyRunes = append(keyRunes, r)
			if r, ok = s.Next(); !ok {
				break
			}
		}

		// Skip any whitespace if we're not at the = yet
		if r != '=' {
			r, ok = s.SkipSpaces()
		}

		// The current character should be =
		if r != '=' || !ok {
			return nil, syntaxErrorf(keyStart, "missing \"=\" after %q in connection info string", string(keyRunes))
		}

		// Skip any whitespace after the =
		if r, ok = s.SkipSpaces(); !ok {
			// If we reach the end here, the last value is just an empty
			// string as per libpq.
			pairs = append(pairs, RawPair{Keyword: string(keyRunes)})
			break
		}

		if r != '\'' {
			for !unicode.IsSpace(r) {
				if r == '\\' {
					bs := s.pos()
					if r, ok = s.Next(); !ok {
						return nil, syntaxErrorf(bs, "missing character after backslash")
					}
				}
				valRunes = append(valRunes, r)

				if r, ok = s.Next(); !ok {
					break
				}
			}
		} else {
			quoteStart := s.pos()
		quote:
			for {
				if r, ok = s.Next(); !ok {
					return nil, syntaxErrorf(quoteStart, "unterminated quoted string literal in connection string")
				}
				switch r {
				case '\'':
					break quote
				case '\\':
					if r, ok = s.Next(); !ok {
						return nil, syntaxErrorf(quoteStart, "unterminated quoted string literal in connection string")
					}
					fallthrough
				default:
					valRunes = append(valRunes, r)
				}
			}
		}

		pairs = append(pairs, RawPair{Keyword: string(keyRunes), Value: string(valRunes)})
	}

	return pairs, nil
}

// Package cptest holds small helpers shared by the conninfo-parse test
// suites.
package cptest

import "strings"

// ErrorContains checks if the error message in have contains the text in
// want.
//
// This is safe when have is nil. Use an empty string for want if you want to
// test that err is nil.
//
// Copied from https://github.com/arp242/zstd/tree/main/ztest
func ErrorContains(have error, want string) bool {
	if have == nil {
		return want == ""
	}
	if want == "" {
		return false
	}
	return strings.Contains(have.Error(), want)
}

// MapEnv returns an environment lookup backed by m, in the manner of
// os.LookupEnv. A nil map behaves as an empty environment.
func MapEnv(m map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

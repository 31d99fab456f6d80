package helper

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FoldName trims and lowercases a catalog name. Every stored module and
// submodule name goes through here, so stored names compare with ==.
// The result never shares memory with s: request values may live in
// buffers fasthttp reuses once the handler returns.
func FoldName(s string) string {
	// a Caser keeps state, one per call
	return strings.Clone(cases.Lower(language.Und).String(strings.TrimSpace(s)))
}

// SameName reports whether two names are equal ignoring case.
func SameName(a, b string) bool {
	return FoldName(a) == FoldName(b)
}

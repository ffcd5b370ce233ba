package assembler

import (
	"regexp"
	"strings"
)

// blockComment matches /* ... */ lazily across lines. It does not know about
// string literals, so a "/*" inside quotes starts a match as well.
var blockComment = regexp.MustCompile(`/\*[\s\S]*?\*/`)

// StripComments removes every block comment from css.
func StripComments(css string) string {
	return blockComment.ReplaceAllString(css, "")
}

// Minify collapses every run of Unicode whitespace (unicode.IsSpace, so
// newlines, \v and NBSP included) to a single space and trims both ends.
// Statement boundaries are not respected.
func Minify(css string) string {
	return strings.Join(strings.Fields(css), " ")
}

package command

import "strings"

// Tokenize splits s into maximal runs of characters not in delims. Empty
// tokens are never produced, so leading, trailing and repeated delimiters
// are skipped. An empty or all-delimiter input yields an empty slice.
func Tokenize(s, delims string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}

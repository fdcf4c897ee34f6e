package chatc

import (
	"fmt"
	"strings"
	"unicode"
)

// Normalize trims surrounding whitespace from user input.
// It is the only transformation applied to input.
func Normalize(input string) string {
	return strings.TrimSpace(input)
}

// Printable returns text safe to write to a terminal.
// Control characters other than newline and tab are shown as escapes so
// message content can never inject terminal sequences.
func Printable(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case unicode.IsControl(r):
			fmt.Fprintf(&b, "\\x%02x", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

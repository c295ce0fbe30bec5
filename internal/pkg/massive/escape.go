package massive

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// escapeNonASCII replaces every non-ASCII character with a \uXXXX escape,
// characters above the Basic Multilingual Plane with a surrogate pair.
// Non-ASCII bytes occur only inside JSON strings, so the result is valid JSON
// made of ASCII bytes only.
func escapeNonASCII(in string) string {
	var out strings.Builder
	out.Grow(len(in))
	for _, r := range in {
		switch {
		case r < 0x80:
			out.WriteRune(r)
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&out, `\u%04x\u%04x`, r1, r2)
		default:
			fmt.Fprintf(&out, `\u%04x`, r)
		}
	}
	return out.String()
}

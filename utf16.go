package utf16any

import (
	"slices"
	"unicode/utf16"

	"github.com/segmentio/asm/ascii"
)

// EncodeString returns the UTF-16 encoding of s. Invalid UTF-8 bytes are
// encoded as U+FFFD.
func EncodeString(s string) []uint16 {
	return AppendString(make([]uint16, 0, len(s)), s)
}

// AppendString appends the UTF-16 encoding of s to dst.
func AppendString(dst []uint16, s string) []uint16 {
	if ascii.ValidString(s) {
		dst = slices.Grow(dst, len(s))
		for i := 0; i < len(s); i++ {
			dst = append(dst, uint16(s[i]))
		}
		return dst
	}
	for _, r := range s {
		dst = utf16.AppendRune(dst, r)
	}
	return dst
}

// DecodeString returns the Go string for a UTF-16 text. Unpaired surrogates
// decode to U+FFFD.
func DecodeString(text []uint16) string {
	return string(utf16.Decode(text))
}

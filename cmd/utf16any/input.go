package main

import (
	"fmt"

	"github.com/coregx/utf16any"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Input encodings accepted by --encoding.
var encodings = map[string]encoding.Encoding{
	"utf-8":    unicode.UTF8,
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

// decoder returns the transformer that turns raw input into UTF-8.
//
// The explicit UTF-16 encodings keep a leading BOM as U+FEFF, so reported
// positions are code unit offsets into the file. "auto" strips a BOM if one
// is present and otherwise assumes UTF-8.
func decoder(name string) (transform.Transformer, error) {
	if name == "auto" {
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	}
	enc, ok := encodings[name]
	if !ok {
		return nil, fmt.Errorf("unknown encoding %q (want utf-8, utf-16le, utf-16be or auto)", name)
	}
	return enc.NewDecoder(), nil
}

// decodeInput converts raw input to UTF-16 code units. Malformed sequences
// become U+FFFD.
func decodeInput(data []byte, t transform.Transformer) ([]uint16, error) {
	t.Reset()
	utf8, _, err := transform.Bytes(t, data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return utf16any.EncodeString(string(utf8)), nil
}

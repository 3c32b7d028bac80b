// Package utf16any locates occurrences of any of a small set of UTF-16 code
// units in a UTF-16 text.
//
// The search runs on the widest vector kernel the CPU supports, falling back
// to a scalar loop. All kernels return identical results.
//
// Basic usage:
//
//	text := utf16any.EncodeString("key=value;other=1")
//	chars := utf16any.EncodeString("=;")
//
//	// Every occurrence, with the query index that matched
//	results := make([]utf16any.Match, len(text))
//	found, n, err := utf16any.FindAll(text, chars, results)
//
//	// First occurrence only
//	pos, err := utf16any.FindFirstFrom(text, chars, 0)
//
// Reusing a query set:
//
//	sc := utf16any.MustCompile(chars)
//	for _, line := range lines {
//	    matches = sc.AppendAll(matches[:0], line)
//	}
//
// Characters are compared as raw 16-bit code units. Surrogate halves are
// matched independently, so a supplementary-plane character in the query set
// occupies two slots and yields two records per occurrence.
//
// Limitations:
//   - At most MaxChars query code units
//   - No case folding or normalization
package utf16any

// FindAll writes every occurrence in text of any code unit in chars to
// results. It reports whether any match was found and how many records were
// written.
//
// Records are ordered by position, then by index into chars. results must
// hold len(text) records, or len(text) times the largest repeat count when
// chars contains duplicates.
func FindAll(text, chars []uint16, results []Match) (bool, int, error) {
	sc, err := Compile(chars)
	if err != nil {
		return false, 0, err
	}
	return sc.FindAll(text, results)
}

// FindAllFrom is FindAll over text[start:].
func FindAllFrom(text, chars []uint16, results []Match, start int) (bool, int, error) {
	sc, err := Compile(chars)
	if err != nil {
		return false, 0, err
	}
	return sc.FindAllFrom(text, results, start)
}

// FindAllRange is FindAll over text[start:start+count]. Reported positions
// are relative to text.
func FindAllRange(text, chars []uint16, results []Match, start, count int) (bool, int, error) {
	sc, err := Compile(chars)
	if err != nil {
		return false, 0, err
	}
	return sc.FindAllRange(text, results, start, count)
}

// FindFirst returns the position of the first code unit in text that is in
// chars, or -1.
func FindFirst(text, chars []uint16) (int, error) {
	sc, err := Compile(chars)
	if err != nil {
		return -1, err
	}
	return sc.FindFirst(text), nil
}

// FindFirstFrom is FindFirst over text[start:].
func FindFirstFrom(text, chars []uint16, start int) (int, error) {
	sc, err := Compile(chars)
	if err != nil {
		return -1, err
	}
	return sc.FindFirstFrom(text, start)
}

// FindFirstRange is FindFirst over text[start:start+count].
func FindFirstRange(text, chars []uint16, start, count int) (int, error) {
	sc, err := Compile(chars)
	if err != nil {
		return -1, err
	}
	return sc.FindFirstRange(text, start, count)
}

// FindAllChar returns the positions of every occurrence of c in text.
func FindAllChar(text []uint16, c uint16) []int {
	matches := MustCompile([]uint16{c}).AppendAll(nil, text)
	if len(matches) == 0 {
		return nil
	}
	pos := make([]int, len(matches))
	for i, m := range matches {
		pos[i] = m.Pos
	}
	return pos
}

// FindFirstChar returns the position of the first c in text, or -1.
func FindFirstChar(text []uint16, c uint16) int {
	return MustCompile([]uint16{c}).FindFirst(text)
}

// FindAllString is FindAll for Go strings. Both arguments are encoded to
// UTF-16 first; positions and indices refer to the encoded forms.
func FindAllString(text, chars string) ([]Match, error) {
	sc, err := Compile(EncodeString(chars))
	if err != nil {
		return nil, err
	}
	return sc.AppendAll(nil, EncodeString(text)), nil
}

// FindFirstString is FindFirst for Go strings. The position refers to the
// UTF-16 encoding of text.
func FindFirstString(text, chars string) (int, error) {
	return FindFirst(EncodeString(text), EncodeString(chars))
}

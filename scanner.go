package utf16any

import (
	"slices"

	"github.com/coregx/utf16any/simd"
)

// MaxChars is the largest query set accepted.
const MaxChars = simd.MaxChars

// Match is one find-all record: text[Pos] == chars[Index].
type Match = simd.Match

// Scanner is a compiled query set.
//
// Compile once, then search any number of texts. A Scanner is immutable and
// safe to use concurrently from multiple goroutines.
//
// Example:
//
//	sc := utf16any.MustCompile(utf16any.EncodeString(",;"))
//	results := make([]utf16any.Match, len(text))
//	found, n, err := sc.FindAll(text, results)
type Scanner struct {
	set    *simd.CharSet
	config Config
}

// Compile compiles a query set with the default configuration.
//
// The query set may hold up to MaxChars code units; its order defines the
// Index reported in each Match. Duplicates are allowed and produce one
// record per duplicate. A nil slice is rejected with ErrNilChars; an empty
// slice compiles to a Scanner that never matches.
func Compile(chars []uint16) (*Scanner, error) {
	return CompileWithConfig(chars, DefaultConfig())
}

// MustCompile is like Compile but panics on error.
func MustCompile(chars []uint16) *Scanner {
	sc, err := Compile(chars)
	if err != nil {
		panic("utf16any: Compile: " + err.Error())
	}
	return sc
}

// CompileWithConfig compiles a query set with a custom configuration.
func CompileWithConfig(chars []uint16, config Config) (*Scanner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if chars == nil {
		return nil, argError("chars", 0, ErrNilChars)
	}
	if len(chars) > MaxChars {
		return nil, argError("len(chars)", len(chars), ErrTooManyChars)
	}
	return &Scanner{
		set:    simd.NewCharSet(chars),
		config: config,
	}, nil
}

// Chars returns a copy of the query set.
func (s *Scanner) Chars() []uint16 {
	return slices.Clone(s.set.Chars())
}

// String returns the query set as a Go string.
func (s *Scanner) String() string {
	return DecodeString(s.set.Chars())
}

// Strategy returns the kernel used for ranges of at least MinVectorLen
// code units.
func (s *Scanner) Strategy() Strategy {
	if s.config.Strategy != Auto {
		return s.config.Strategy
	}
	return simd.Select()
}

// ResultsLen returns the results buffer length FindAll needs for a range of
// count code units.
func (s *Scanner) ResultsLen(count int) int {
	return count * s.set.MaxRepeat()
}

func (s *Scanner) strategyFor(count int) Strategy {
	if s.config.Strategy != Auto {
		return s.config.Strategy
	}
	if count < s.config.MinVectorLen {
		return Scalar
	}
	return Auto
}

// checkRange validates start and count against a non-empty text.
func checkRange(textLen, start, count int) error {
	if start < 0 || start >= textLen {
		return argError("start", start, ErrStartOutOfRange)
	}
	if count < 0 || count > textLen-start {
		return argError("count", count, ErrCountOutOfRange)
	}
	return nil
}

// FindAll writes every match in text to results and reports whether any
// was found and how many records were written.
//
// Records are ordered by position, then by query index. results must hold
// ResultsLen(len(text)) records, which is len(text) when the query set has
// no duplicates. An empty text yields no match and no error.
func (s *Scanner) FindAll(text []uint16, results []Match) (bool, int, error) {
	if len(text) == 0 {
		return false, 0, nil
	}
	return s.findAll(text, 0, len(text), results)
}

// FindAllFrom is FindAll over text[start:].
func (s *Scanner) FindAllFrom(text []uint16, results []Match, start int) (bool, int, error) {
	return s.FindAllRange(text, results, start, len(text)-start)
}

// FindAllRange is FindAll over text[start:start+count]. Positions in the
// records are relative to text, not to start.
//
// start must lie in [0, len(text)) and count in [0, len(text)-start].
func (s *Scanner) FindAllRange(text []uint16, results []Match, start, count int) (bool, int, error) {
	if len(text) == 0 {
		return false, 0, nil
	}
	if err := checkRange(len(text), start, count); err != nil {
		return false, 0, err
	}
	return s.findAll(text, start, count, results)
}

func (s *Scanner) findAll(text []uint16, start, count int, results []Match) (bool, int, error) {
	if results == nil {
		return false, 0, argError("results", 0, ErrNilResults)
	}
	if len(results) < s.ResultsLen(count) {
		return false, 0, argError("len(results)", len(results), ErrResultsTooSmall)
	}
	n := simd.IndexAllWith(s.strategyFor(count), text, s.set, start, count, results)
	return n != 0, n, nil
}

// AppendAll appends every match in text to dst and returns the extended
// slice, growing it as needed.
func (s *Scanner) AppendAll(dst []Match, text []uint16) []Match {
	if len(text) == 0 {
		return dst
	}
	return s.appendAll(dst, text, 0, len(text))
}

// AppendAllRange is AppendAll over text[start:start+count].
func (s *Scanner) AppendAllRange(dst []Match, text []uint16, start, count int) ([]Match, error) {
	if len(text) == 0 {
		return dst, nil
	}
	if err := checkRange(len(text), start, count); err != nil {
		return dst, err
	}
	return s.appendAll(dst, text, start, count), nil
}

func (s *Scanner) appendAll(dst []Match, text []uint16, start, count int) []Match {
	need := s.ResultsLen(count)
	dst = slices.Grow(dst, need)
	base := len(dst)
	n := simd.IndexAllWith(s.strategyFor(count), text, s.set, start, count, dst[base:base+need])
	return dst[:base+n]
}

// FindFirst returns the first position in text holding any query
// character, or -1.
func (s *Scanner) FindFirst(text []uint16) int {
	if len(text) == 0 {
		return -1
	}
	return simd.IndexAnyWith(s.strategyFor(len(text)), text, s.set, 0, len(text))
}

// FindFirstFrom is FindFirst over text[start:]. The returned position is
// relative to text.
func (s *Scanner) FindFirstFrom(text []uint16, start int) (int, error) {
	return s.FindFirstRange(text, start, len(text)-start)
}

// FindFirstRange is FindFirst over text[start:start+count].
func (s *Scanner) FindFirstRange(text []uint16, start, count int) (int, error) {
	if len(text) == 0 {
		return -1, nil
	}
	if err := checkRange(len(text), start, count); err != nil {
		return -1, err
	}
	return simd.IndexAnyWith(s.strategyFor(count), text, s.set, start, count), nil
}

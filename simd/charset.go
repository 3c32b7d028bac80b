package simd

import (
	"fmt"

	"github.com/coregx/utf16any/internal/conv"
)

// MaxChars is the largest query set a CharSet accepts.
const MaxChars = 32

// Match is one find-all record: Text[Pos] == Chars[Index].
type Match struct {
	Pos   int
	Index int
}

// CharSet is a compiled query set.
//
// Compilation broadcasts every distinct character, and its slot number, into
// 128-bit and 256-bit lane vectors once, so repeated searches skip the setup.
// The vector kernels compare against distinct characters only; a slot that
// stands for several query indices (duplicate characters) is expanded back
// into one record per index, in ascending index order. The scalar kernel
// produces the same order, so all strategies agree record for record.
//
// Thread-safety: CharSet is immutable after NewCharSet and safe for
// concurrent use.
type CharSet struct {
	// chars is the query set in query order
	chars []uint16

	// uniq holds the distinct characters in first-occurrence order
	uniq []uint16

	// expand maps a uniq slot to its query indices; nil without duplicates,
	// in which case slot == query index
	expand [][]int

	// maxRepeat is the largest number of query indices sharing one character
	maxRepeat int

	needles128 []vec128
	slots128   []vec128
	needles256 []vec256
	slots256   []vec256
}

// NewCharSet compiles chars. The slice is copied.
// Panics if len(chars) > MaxChars; callers validate first.
func NewCharSet(chars []uint16) *CharSet {
	if len(chars) > MaxChars {
		panic(fmt.Sprintf("simd: %d query characters exceeds maximum of %d", len(chars), MaxChars))
	}

	cs := &CharSet{
		chars:     append([]uint16(nil), chars...),
		maxRepeat: 1,
	}

	slotOf := make(map[uint16]int, len(chars))
	groups := make([][]int, 0, len(chars))
	for i, c := range chars {
		slot, seen := slotOf[c]
		if !seen {
			slot = len(cs.uniq)
			slotOf[c] = slot
			cs.uniq = append(cs.uniq, c)
			groups = append(groups, nil)
		}
		groups[slot] = append(groups[slot], i)
		if n := len(groups[slot]); n > cs.maxRepeat {
			cs.maxRepeat = n
		}
	}
	if len(cs.uniq) != len(cs.chars) {
		cs.expand = groups
	}

	cs.needles128 = make([]vec128, len(cs.uniq))
	cs.slots128 = make([]vec128, len(cs.uniq))
	cs.needles256 = make([]vec256, len(cs.uniq))
	cs.slots256 = make([]vec256, len(cs.uniq))
	for slot, c := range cs.uniq {
		idx := conv.IntToUint16(slot)
		cs.needles128[slot] = set1x128(c)
		cs.slots128[slot] = set1x128(idx)
		cs.needles256[slot] = set1x256(c)
		cs.slots256[slot] = set1x256(idx)
	}
	return cs
}

// Chars returns the query set in query order. The caller must not modify it.
func (cs *CharSet) Chars() []uint16 {
	return cs.chars
}

// Len returns the number of query characters, duplicates included.
func (cs *CharSet) Len() int {
	return len(cs.chars)
}

// Distinct returns the number of distinct query characters.
func (cs *CharSet) Distinct() int {
	return len(cs.uniq)
}

// MaxRepeat returns the largest number of records a single text position can
// produce: 1 without duplicates, otherwise the size of the largest group of
// equal query characters. A result buffer holding count*MaxRepeat records is
// always large enough.
func (cs *CharSet) MaxRepeat() int {
	return cs.maxRepeat
}

// emit writes the records of one matching position.
func (cs *CharSet) emit(out []Match, n, pos, slot int) int {
	if cs.expand == nil {
		out[n] = Match{Pos: pos, Index: slot}
		return n + 1
	}
	for _, idx := range cs.expand[slot] {
		out[n] = Match{Pos: pos, Index: idx}
		n++
	}
	return n
}

// matchAt tests one code unit against every query character in query order.
func (cs *CharSet) matchAt(c uint16, pos int, out []Match, n int) int {
	for i, q := range cs.chars {
		if c == q {
			out[n] = Match{Pos: pos, Index: i}
			n++
		}
	}
	return n
}

// contains reports whether c is in the query set.
func (cs *CharSet) contains(c uint16) bool {
	for _, q := range cs.uniq {
		if c == q {
			return true
		}
	}
	return false
}

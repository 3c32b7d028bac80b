package simd

import (
	"math/bits"
	"unsafe"

	"github.com/coregx/utf16any/internal/conv"
)

// Vector geometry. A lane is one 16-bit code unit.
const (
	lanes128 = 8
	lanes256 = 16
	bytes128 = 16
	bytes256 = 32
)

// SWAR constants for four 16-bit lanes packed in a uint64.
const (
	laneOnes = 0x0001000100010001
	laneLow  = 0x7FFF7FFF7FFF7FFF

	byteLSB   = 0x0101010101010101
	gatherMul = 0x0102040810204080
)

// vec128 holds eight 16-bit lanes, lane i in bits 16*(i%4) of word i/4.
type vec128 [2]uint64

// vec256 holds sixteen 16-bit lanes in the same layout as vec128.
type vec256 [4]uint64

// set1x16 broadcasts c into every lane of a word.
func set1x16(c uint16) uint64 {
	return uint64(c) * laneOnes
}

// cmpeq16 returns 0xFFFF in every lane where a and b are equal and zero
// elsewhere. The zero-lane test is exact: no carry crosses a lane boundary.
//
// Example: a=0x0041_0058_0041_0000, b=0x0058_0058_0058_0058
//
//	x = a^b        = 0x0019_0000_0019_0058
//	zero lanes     = lane 2
//	result         = 0x0000_FFFF_0000_0000
func cmpeq16(a, b uint64) uint64 {
	x := a ^ b
	t := (x & laneLow) + laneLow // bit 15 set where the low 15 bits are non-zero
	t = ^(t | x | laneLow)       // bit 15 set only where the whole lane is zero
	return (t >> 15) * 0xFFFF
}

// movemask8 gathers the high bit of each byte of x into bit i of the
// result, the way PMOVMSKB does for one 8-byte half.
func movemask8(x uint64) uint32 {
	return uint32((((x >> 7) & byteLSB) * gatherMul) >> 56)
}

// pack4 composes four code units into one word, s[0] in the low lane.
func pack4(s []uint16) uint64 {
	_ = s[3]
	return uint64(s[0]) | uint64(s[1])<<16 | uint64(s[2])<<32 | uint64(s[3])<<48
}

func set1x128(c uint16) vec128 {
	w := set1x16(c)
	return vec128{w, w}
}

// load128 loads the first eight code units of s.
func load128(s []uint16) vec128 {
	_ = s[lanes128-1]
	return vec128{pack4(s[0:4]), pack4(s[4:8])}
}

// loadPartial128 loads the first n (<= 8) code units of s, zero filling
// the remaining lanes. Callers mask the zero lanes out of the result.
func loadPartial128(s []uint16, n int) vec128 {
	var buf [lanes128]uint16
	copy(buf[:], s[:n])
	return load128(buf[:])
}

func (v vec128) cmpeq(o vec128) vec128 {
	return vec128{cmpeq16(v[0], o[0]), cmpeq16(v[1], o[1])}
}

func (v vec128) and(o vec128) vec128 {
	return vec128{v[0] & o[0], v[1] & o[1]}
}

func (v vec128) or(o vec128) vec128 {
	return vec128{v[0] | o[0], v[1] | o[1]}
}

// movemask returns one bit per byte, two per lane.
func (v vec128) movemask() uint32 {
	return movemask8(v[0]) | movemask8(v[1])<<8
}

func (v vec128) lane(i int) uint16 {
	return uint16(v[i>>2] >> (uint(i&3) << 4))
}

func set1x256(c uint16) vec256 {
	w := set1x16(c)
	return vec256{w, w, w, w}
}

// load256 loads the first sixteen code units of s.
func load256(s []uint16) vec256 {
	_ = s[lanes256-1]
	return vec256{pack4(s[0:4]), pack4(s[4:8]), pack4(s[8:12]), pack4(s[12:16])}
}

// loadPartial256 loads the first n (<= 16) code units of s, zero filling
// the remaining lanes.
func loadPartial256(s []uint16, n int) vec256 {
	var buf [lanes256]uint16
	copy(buf[:], s[:n])
	return load256(buf[:])
}

func (v vec256) cmpeq(o vec256) vec256 {
	return vec256{
		cmpeq16(v[0], o[0]),
		cmpeq16(v[1], o[1]),
		cmpeq16(v[2], o[2]),
		cmpeq16(v[3], o[3]),
	}
}

func (v vec256) and(o vec256) vec256 {
	return vec256{v[0] & o[0], v[1] & o[1], v[2] & o[2], v[3] & o[3]}
}

func (v vec256) or(o vec256) vec256 {
	return vec256{v[0] | o[0], v[1] | o[1], v[2] | o[2], v[3] | o[3]}
}

func (v vec256) movemask() uint32 {
	return movemask8(v[0]) | movemask8(v[1])<<8 | movemask8(v[2])<<16 | movemask8(v[3])<<24
}

func (v vec256) lane(i int) uint16 {
	return uint16(v[i>>2] >> (uint(i&3) << 4))
}

// laneMask keeps the movemask bits of the first n lanes (n <= 16).
func laneMask(n int) uint32 {
	return ^(^uint32(0) << conv.LaneShift(n))
}

// firstLane decodes the lowest set movemask bit into a lane offset.
func firstLane(mask uint32) int {
	return bits.TrailingZeros32(mask) >> 1
}

// prefixLanes returns the number of code units in s that precede the first
// width-aligned address, or 0 if s already starts on one.
func prefixLanes(s []uint16, width uintptr) int {
	if len(s) == 0 {
		return 0
	}
	mis := uintptr(unsafe.Pointer(unsafe.SliceData(s))) & (width - 1)
	if mis == 0 {
		return 0
	}
	return int((width - mis) >> 1)
}

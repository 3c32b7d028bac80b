package simd

import "math/bits"

// indexAll256 finds every match in text[start:start+count] sixteen code
// units at a time.
//
// Same phases as indexAll128 at twice the width, with two differences: the
// scan returns straight after the head when the head covers the whole
// range, and the body keeps going only while more than sixteen code units
// remain, leaving a tail of 1-16 code units that is compared character by
// character.
func indexAll256(text []uint16, cs *CharSet, start, count int, out []Match) int {
	if count == 0 {
		return 0
	}
	n := 0
	s := start
	end := start + count

	if head := prefixLanes(text[start:end], bytes256); head > 0 {
		head = min(head, count)
		blk := loadPartial256(text[s:s+head], head)
		n = cs.extract256(blk, laneMask(head), s, out, n)
		s += head
		if s == end {
			return n
		}
	}

	for ; s+lanes256 < end; s += lanes256 {
		blk := load256(text[s : s+lanes256])
		n = cs.extract256(blk, laneMask(lanes256), s, out, n)
	}

	for ; s < end; s++ {
		n = cs.matchAt(text[s], s, out, n)
	}
	return n
}

// extract256 is extract128 for sixteen lanes.
func (cs *CharSet) extract256(blk vec256, valid uint32, base int, out []Match, n int) int {
	var mergeCmp, mergeIdx vec256
	for i := range cs.uniq {
		cmp := blk.cmpeq(cs.needles256[i])
		mergeCmp = mergeCmp.or(cmp)
		mergeIdx = mergeIdx.or(cmp.and(cs.slots256[i]))
	}

	mask := mergeCmp.movemask() & valid
	for mask != 0 {
		tz := bits.TrailingZeros32(mask)
		off := tz >> 1
		n = cs.emit(out, n, base+off, int(mergeIdx.lane(off)))
		mask &^= 3 << tz
	}
	return n
}

package simd

import "math/bits"

// indexAll128 finds every match in text[start:start+count] eight code units
// at a time.
//
// The range is walked in three phases:
//  1. Unaligned head: the code units before the first 16-byte aligned
//     address, compared as one partial vector with the lanes past the head
//     masked off.
//  2. Aligned body: full eight-lane blocks while more than one block remains.
//  3. Tail: the last 1-8 code units, loaded as a partial vector and masked to
//     the valid lanes.
func indexAll128(text []uint16, cs *CharSet, start, count int, out []Match) int {
	if count == 0 {
		return 0
	}
	n := 0
	s := start
	end := start + count

	if head := prefixLanes(text[start:end], bytes128); head > 0 {
		head = min(head, count)
		blk := loadPartial128(text[s:s+head], head)
		n = cs.extract128(blk, laneMask(head), s, out, n)
		s += head
	}

	for ; s < end-lanes128; s += lanes128 {
		blk := load128(text[s : s+lanes128])
		n = cs.extract128(blk, laneMask(lanes128), s, out, n)
	}

	if s < end {
		rem := end - s
		blk := loadPartial128(text[s:end], rem)
		n = cs.extract128(blk, laneMask(rem), s, out, n)
	}
	return n
}

// extract128 compares one block against every distinct query character and
// writes a record for every matching lane whose movemask bits survive valid.
//
// mergeCmp collects the lane matches of all characters, mergeIdx the slot of
// the character that matched each lane (ANDed out of the broadcast slot
// vector). Distinct characters never match the same lane, so a lane of
// mergeIdx holds exactly one slot.
func (cs *CharSet) extract128(blk vec128, valid uint32, base int, out []Match, n int) int {
	var mergeCmp, mergeIdx vec128
	for i := range cs.uniq {
		cmp := blk.cmpeq(cs.needles128[i])
		mergeCmp = mergeCmp.or(cmp)
		mergeIdx = mergeIdx.or(cmp.and(cs.slots128[i]))
	}

	mask := mergeCmp.movemask() & valid
	for mask != 0 {
		tz := bits.TrailingZeros32(mask)
		off := tz >> 1
		n = cs.emit(out, n, base+off, int(mergeIdx.lane(off)))
		mask &^= 3 << tz // both bytes of the lane
	}
	return n
}

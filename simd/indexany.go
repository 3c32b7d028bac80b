package simd

// indexAnyScalar returns the first position in [start, start+count) holding
// any query character, or -1.
func indexAnyScalar(text []uint16, cs *CharSet, start, count int) int {
	for pos, c := range text[start : start+count] {
		if cs.contains(c) {
			return start + pos
		}
	}
	return -1
}

// indexAny128 is the find-first form of indexAll128. Only the merged match
// mask is kept; the first non-empty block decides the answer.
func indexAny128(text []uint16, cs *CharSet, start, count int) int {
	if count == 0 {
		return -1
	}
	s := start
	end := start + count

	if head := prefixLanes(text[start:end], bytes128); head > 0 {
		head = min(head, count)
		if mask := cs.any128(loadPartial128(text[s:s+head], head)) & laneMask(head); mask != 0 {
			return s + firstLane(mask)
		}
		s += head
	}

	for ; s < end-lanes128; s += lanes128 {
		if mask := cs.any128(load128(text[s : s+lanes128])); mask != 0 {
			return s + firstLane(mask)
		}
	}

	if s < end {
		rem := end - s
		if mask := cs.any128(loadPartial128(text[s:end], rem)) & laneMask(rem); mask != 0 {
			return s + firstLane(mask)
		}
	}
	return -1
}

// indexAny256 is the find-first form of indexAll256.
func indexAny256(text []uint16, cs *CharSet, start, count int) int {
	if count == 0 {
		return -1
	}
	s := start
	end := start + count

	if head := prefixLanes(text[start:end], bytes256); head > 0 {
		head = min(head, count)
		if mask := cs.any256(loadPartial256(text[s:s+head], head)) & laneMask(head); mask != 0 {
			return s + firstLane(mask)
		}
		s += head
		if s == end {
			return -1
		}
	}

	for ; s+lanes256 < end; s += lanes256 {
		if mask := cs.any256(load256(text[s : s+lanes256])); mask != 0 {
			return s + firstLane(mask)
		}
	}

	for ; s < end; s++ {
		if cs.contains(text[s]) {
			return s
		}
	}
	return -1
}

// any128 returns the merged movemask of blk against every distinct character.
func (cs *CharSet) any128(blk vec128) uint32 {
	var mergeCmp vec128
	for i := range cs.uniq {
		mergeCmp = mergeCmp.or(blk.cmpeq(cs.needles128[i]))
	}
	return mergeCmp.movemask()
}

func (cs *CharSet) any256(blk vec256) uint32 {
	var mergeCmp vec256
	for i := range cs.uniq {
		mergeCmp = mergeCmp.or(blk.cmpeq(cs.needles256[i]))
	}
	return mergeCmp.movemask()
}

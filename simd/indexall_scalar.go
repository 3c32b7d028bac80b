package simd

// indexAllScalar is the nested linear scan: every position in
// [start, start+count), every query character in query order, one record per
// matching query index. It is the correctness baseline for the vector kernels
// and the fallback when no vector width is available.
func indexAllScalar(text []uint16, cs *CharSet, start, count int, out []Match) int {
	n := 0
	end := start + count
	for pos, c := range text[start:end] {
		n = cs.matchAt(c, start+pos, out, n)
	}
	return n
}

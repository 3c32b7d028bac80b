package simd

import (
	"math/bits"
	"testing"
)

func TestCmpeq16(t *testing.T) {
	values := []uint16{0, 1, 0x7F, 0x80, 0xFF, 0x100, 0x7FFF, 0x8000, 0x8001, 0xD800, 0xDFFF, 0xFFFE, 0xFFFF}
	for _, a0 := range values {
		for _, b := range values {
			// Place a0 in lane 1 and its neighbours in the other lanes to catch
			// borrows leaking across lane boundaries.
			lanes := [4]uint16{a0 ^ 1, a0, ^a0, a0 + 1}
			a := uint64(lanes[0]) | uint64(lanes[1])<<16 | uint64(lanes[2])<<32 | uint64(lanes[3])<<48
			got := cmpeq16(a, set1x16(b))
			for i, l := range lanes {
				lane := uint16(got >> (16 * i))
				want := uint16(0)
				if l == b {
					want = 0xFFFF
				}
				if lane != want {
					t.Fatalf("cmpeq16 lane %d: a=%#04x b=%#04x got %#04x, want %#04x", i, l, b, lane, want)
				}
			}
		}
	}
}

func TestMovemask8(t *testing.T) {
	tests := []struct {
		x    uint64
		want uint32
	}{
		{0, 0},
		{0x8080808080808080, 0xFF},
		{0x0000000000000080, 0x01},
		{0x8000000000000000, 0x80},
		{0x000000000000FFFF, 0x03},
		{0xFFFF000000000000, 0xC0},
		{0x7F7F7F7F7F7F7F7F, 0},
		{0x00FF00FF00FF00FF, 0x55},
	}
	for _, tt := range tests {
		if got := movemask8(tt.x); got != tt.want {
			t.Errorf("movemask8(%#016x) = %#02x, want %#02x", tt.x, got, tt.want)
		}
	}
}

func TestVec128_MovemaskLayout(t *testing.T) {
	text := []uint16{'a', 'X', 'b', 'c', 'X', 'd', 'e', 'X'}
	cmp := load128(text).cmpeq(set1x128('X'))
	mask := cmp.movemask()
	if want := uint32(0b11_00_00_11_00_00_11_00); mask != want {
		t.Fatalf("movemask = %016b, want %016b", mask, want)
	}
	if bits.OnesCount32(mask) != 6 {
		t.Fatalf("expected two bits per matching lane, got %d bits", bits.OnesCount32(mask))
	}
	for i := range text {
		want := uint16(0)
		if text[i] == 'X' {
			want = 0xFFFF
		}
		if got := cmp.lane(i); got != want {
			t.Errorf("lane(%d) = %#04x, want %#04x", i, got, want)
		}
	}
}

func TestVec256_LoadAndLane(t *testing.T) {
	text := make([]uint16, lanes256)
	for i := range text {
		text[i] = uint16(0x1000 + i)
	}
	v := load256(text)
	for i := range text {
		if got := v.lane(i); got != text[i] {
			t.Errorf("lane(%d) = %#04x, want %#04x", i, got, text[i])
		}
	}
	if mask := v.cmpeq(set1x256(0x100F)).movemask(); mask != 0xC0000000 {
		t.Errorf("movemask for last lane = %#08x, want 0xC0000000", mask)
	}
}

func TestLoadPartial(t *testing.T) {
	text := []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for n := 0; n <= lanes128; n++ {
		v := loadPartial128(text, n)
		for i := 0; i < lanes128; i++ {
			want := uint16(0)
			if i < n {
				want = text[i]
			}
			if got := v.lane(i); got != want {
				t.Errorf("loadPartial128(n=%d).lane(%d) = %d, want %d", n, i, got, want)
			}
		}
	}
	for n := 0; n <= lanes256; n++ {
		v := loadPartial256(text, n)
		for i := 0; i < lanes256; i++ {
			want := uint16(0)
			if i < n {
				want = text[i]
			}
			if got := v.lane(i); got != want {
				t.Errorf("loadPartial256(n=%d).lane(%d) = %d, want %d", n, i, got, want)
			}
		}
	}
}

func TestLaneMask(t *testing.T) {
	tests := []struct {
		n    int
		want uint32
	}{
		{0, 0},
		{1, 0x3},
		{3, 0x3F},
		{8, 0xFFFF},
		{15, 0x3FFFFFFF},
		{16, 0xFFFFFFFF},
	}
	for _, tt := range tests {
		if got := laneMask(tt.n); got != tt.want {
			t.Errorf("laneMask(%d) = %#x, want %#x", tt.n, got, tt.want)
		}
	}
}

func TestPrefixLanes(t *testing.T) {
	buf := make([]uint16, 64)
	seen128 := make(map[int]bool)
	seen256 := make(map[int]bool)
	for off := 0; off < 32; off++ {
		p128 := prefixLanes(buf[off:], bytes128)
		p256 := prefixLanes(buf[off:], bytes256)
		if p128 < 0 || p128 >= lanes128 {
			t.Fatalf("prefixLanes(off=%d, 16) = %d out of range", off, p128)
		}
		if p256 < 0 || p256 >= lanes256 {
			t.Fatalf("prefixLanes(off=%d, 32) = %d out of range", off, p256)
		}
		// After skipping the prefix the next element must be aligned.
		if got := prefixLanes(buf[off+p256:], bytes256); got != 0 {
			t.Errorf("off=%d: %d lanes remain unaligned after prefix %d", off, got, p256)
		}
		seen128[p128] = true
		seen256[p256] = true
	}
	if len(seen128) != lanes128 {
		t.Errorf("128-bit prefixes covered %d lengths, want %d", len(seen128), lanes128)
	}
	if len(seen256) != lanes256 {
		t.Errorf("256-bit prefixes covered %d lengths, want %d", len(seen256), lanes256)
	}
	if got := prefixLanes(nil, bytes128); got != 0 {
		t.Errorf("prefixLanes(nil) = %d, want 0", got)
	}
}

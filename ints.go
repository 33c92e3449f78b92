package rabinkarp

import "math/bits"

// The functions below implement arithmetic modulo m for 64-bit operands. All
// operands except the reduced input of reduce must be less than m.
//
// Products are computed with 128-bit intermediates, so every modulus up to
// 2^64-1 is supported without overflow.

// reduce returns x mod m.
func reduce(x, m uint64) uint64 {
	if x < m {
		return x
	}
	return x % m
}

// mulMod computes x*y mod m.
func mulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, m)
}

// addMod computes x+y mod m.
func addMod(x, y, m uint64) uint64 {
	s, carry := bits.Add64(x, y, 0)
	if carry != 0 || s >= m {
		s -= m
	}
	return s
}

// subMod computes x-y mod m. The result is never negative.
func subMod(x, y, m uint64) uint64 {
	if x >= y {
		return x - y
	}
	return x + (m - y)
}

package bn254

import "math/bits"

// Word-level primitives on 64-bit limbs, using 128-bit intermediate
// products. Everything above this file (limbs.go) is built out of
// these five functions alone.

// adb adds two words and returns (lo, carry). carry is 0 or 1.
func adb(a, b uint64) (uint64, uint64) {
	lo, carry := bits.Add64(a, b, 0)
	return lo, carry
}

// adc adds two words plus an incoming 0/1 carry and returns (lo, carry).
func adc(a, b, carry uint64) (uint64, uint64) {
	lo, c := bits.Add64(a, b, carry)
	return lo, c
}

// sba subtracts b from a and returns (lo, borrow). borrow is all-ones
// (0xFFFFFFFFFFFFFFFF) on underflow, zero otherwise — the sign-bit
// convention: consumers read borrow>>63 for the 0/1 borrow and use
// borrow itself as an AND-mask for conditional fix-ups.
func sba(a, b uint64) (uint64, uint64) {
	d, brw := bits.Sub64(a, b, 0)
	return d, 0 - brw
}

// sbb subtracts b and an incoming borrow (0 or all-ones) from a.
func sbb(a, b, borrow uint64) (uint64, uint64) {
	d, brw := bits.Sub64(a, b, borrow>>63)
	return d, 0 - brw
}

// mac computes a + b*c + carry widened to 128 bits and returns (lo, hi).
func mac(a, b, c, carry uint64) (uint64, uint64) {
	hi, lo := bits.Mul64(b, c)
	lo, c0 := bits.Add64(lo, a, 0)
	lo, c1 := bits.Add64(lo, carry, 0)
	hi += c0 + c1
	return lo, hi
}

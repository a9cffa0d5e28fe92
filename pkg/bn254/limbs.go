package bn254

import "io"

// 256-bit Montgomery modular arithmetic over four little-endian 64-bit
// limbs. Every field type in the tower (Fq, and indirectly Fq2/Fq6/Fq12's
// Fq components) is built from exactly these routines plus the modulus
// they are parameterized on.

// montgomery bundles a modulus together with its Montgomery parameters so
// limb routines never need to guess which field they're operating in.
type montgomery struct {
	p   [4]uint64 // modulus
	inv uint64    // -p^-1 mod 2^64
}

func limbsAreZero(a [4]uint64) bool {
	return a[0] == 0 && a[1] == 0 && a[2] == 0 && a[3] == 0
}

func limbsEqual(a, b [4]uint64) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2] && a[3] == b[3]
}

// limbsLess reports whether a < b, both read as 256-bit big-endian magnitudes
// stored little-endian limb-wise.
func limbsLess(a, b [4]uint64) bool {
	for i := 3; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// condSub subtracts p from a if a >= p, in constant structure (the
// subtraction always runs; only the result selection is conditional).
func condSub(a [4]uint64, p [4]uint64) [4]uint64 {
	var t [4]uint64
	b0, brw := sba(a[0], p[0])
	b1, brw := sbb(a[1], p[1], brw)
	t[0], t[1] = b0, b1
	b2, brw := sbb(a[2], p[2], brw)
	b3, brw := sbb(a[3], p[3], brw)
	t[2], t[3] = b2, b3
	if brw != 0 {
		return a
	}
	return t
}

// add computes (a+b) mod p.
func (m montgomery) add(a, b [4]uint64) [4]uint64 {
	var t [4]uint64
	c := uint64(0)
	t[0], c = adb(a[0], b[0])
	t[1], c = adc(a[1], b[1], c)
	t[2], c = adc(a[2], b[2], c)
	t[3], c = adc(a[3], b[3], c)
	return condSub(t, m.p)
}

// double computes 2a mod p.
func (m montgomery) double(a [4]uint64) [4]uint64 {
	return m.add(a, a)
}

// sub computes (a-b) mod p.
func (m montgomery) sub(a, b [4]uint64) [4]uint64 {
	var t [4]uint64
	brw := uint64(0)
	t[0], brw = sba(a[0], b[0])
	t[1], brw = sbb(a[1], b[1], brw)
	t[2], brw = sbb(a[2], b[2], brw)
	t[3], brw = sbb(a[3], b[3], brw)
	if brw != 0 {
		var c uint64
		t[0], c = adb(t[0], m.p[0])
		t[1], c = adc(t[1], m.p[1], c)
		t[2], c = adc(t[2], m.p[2], c)
		t[3], _ = adc(t[3], m.p[3], c)
	}
	return t
}

// neg computes -a mod p.
func (m montgomery) neg(a [4]uint64) [4]uint64 {
	if limbsAreZero(a) {
		return a
	}
	return m.sub([4]uint64{0, 0, 0, 0}, a)
}

// mont performs CIOS Montgomery reduction of the 9-limb value t (the extra
// high limb absorbs carry overflow from the reduction passes), returning a
// value in [0, p). t[8] must be 0 on entry.
func (m montgomery) mont(t [9]uint64) [4]uint64 {
	p := m.p
	for i := 0; i < 4; i++ {
		k := t[i] * m.inv
		var carry uint64
		t[i], carry = mac(t[i], k, p[0], 0)
		t[i+1], carry = mac(t[i+1], k, p[1], carry)
		t[i+2], carry = mac(t[i+2], k, p[2], carry)
		t[i+3], carry = mac(t[i+3], k, p[3], carry)
		for j := i + 4; carry != 0; j++ {
			t[j], carry = adb(t[j], carry)
		}
	}
	var out [4]uint64
	copy(out[:], t[4:8])
	return condSub(out, p)
}

// mul computes (a*b)/R mod p via schoolbook multiply followed by Montgomery
// reduction, i.e. the Montgomery product of a and b.
func (m montgomery) mul(a, b [4]uint64) [4]uint64 {
	var t [9]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			t[i+j], carry = mac(t[i+j], a[i], b[j], carry)
		}
		for k := i + 4; carry != 0; k++ {
			t[k], carry = adb(t[k], carry)
		}
	}
	return m.mont(t)
}

// square computes a^2 mod p (in Montgomery form) via the diagonal-doubling
// optimization: the six off-diagonal partial products a[i]*a[j] (i<j) are
// accumulated once, doubled by a one-bit left shift across the 8-limb
// result, and the four diagonal terms a[i]*a[i] are then added back in,
// before the usual Montgomery reduction.
func (m montgomery) square(a [4]uint64) [4]uint64 {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]

	var r0, r1, r2, r3, r4, r5, r6, r7, carry uint64

	r1, carry = mac(0, a0, a1, 0)
	r2, carry = mac(0, a0, a2, carry)
	r3, r4 = mac(0, a0, a3, carry)

	r3, carry = mac(r3, a1, a2, 0)
	r4, r5 = mac(r4, a1, a3, carry)

	r5, r6 = mac(r5, a2, a3, 0)

	r7 = r6 >> 63
	r6 = (r6 << 1) | (r5 >> 63)
	r5 = (r5 << 1) | (r4 >> 63)
	r4 = (r4 << 1) | (r3 >> 63)
	r3 = (r3 << 1) | (r2 >> 63)
	r2 = (r2 << 1) | (r1 >> 63)
	r1 = r1 << 1

	r0, carry = mac(0, a0, a0, 0)
	r1, carry = adb(r1, carry)
	r2, carry = mac(r2, a1, a1, carry)
	r3, carry = adb(r3, carry)
	r4, carry = mac(r4, a2, a2, carry)
	r5, carry = adb(r5, carry)
	r6, carry = mac(r6, a3, a3, carry)
	r7, _ = adb(r7, carry)

	return m.mont([9]uint64{r0, r1, r2, r3, r4, r5, r6, r7, 0})
}

// littleFermat returns p-2 as a 4-limb value, the exponent used for
// Fermat-inverse exponentiation.
func (m montgomery) littleFermat() [4]uint64 {
	two := [4]uint64{2, 0, 0, 0}
	var t [4]uint64
	brw := uint64(0)
	t[0], brw = sba(m.p[0], two[0])
	t[1], brw = sbb(m.p[1], two[1], brw)
	t[2], brw = sbb(m.p[2], two[2], brw)
	t[3], _ = sbb(m.p[3], two[3], brw)
	return t
}

// invert computes a^-1 mod p via Fermat's little theorem (a^(p-2)), in
// Montgomery form throughout. mr is the Montgomery representation of 1
// (i.e. R mod p), used as the initial accumulator. Returns (zero, false)
// when a is zero.
func (m montgomery) invert(a [4]uint64, mr [4]uint64) ([4]uint64, bool) {
	if limbsAreZero(a) {
		return [4]uint64{}, false
	}
	exp := m.littleFermat()
	acc := mr
	for i := 255; i >= 0; i-- {
		acc = m.square(acc)
		limb := exp[i/64]
		if (limb>>(uint(i)%64))&1 == 1 {
			acc = m.mul(acc, a)
		}
	}
	return acc, true
}

// randomLimbs draws 64 bytes from r and reduces them into a uniform
// Montgomery-form field element via the standard wide-reduction trick:
// split the 64 bytes into two 256-bit halves d0, d1 (each plain, not yet
// in Montgomery form) and combine as d0*R2 + d1*R3 mod p, both terms
// computed as Montgomery products so the result lands in Montgomery form
// directly.
func (m montgomery) randomLimbs(r io.Reader, r2, r3 [4]uint64) ([4]uint64, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return [4]uint64{}, err
	}
	d0 := bytesToLimbs(buf[0:32])
	d1 := bytesToLimbs(buf[32:64])
	t0 := m.mul(d0, r2)
	t1 := m.mul(d1, r3)
	return m.add(t0, t1), nil
}

// bytesToLimbs parses 32 little-endian bytes into 4 little-endian u64 limbs.
func bytesToLimbs(b []byte) [4]uint64 {
	var out [4]uint64
	for i := 0; i < 4; i++ {
		var w uint64
		for j := 0; j < 8; j++ {
			w |= uint64(b[i*8+j]) << (8 * uint(j))
		}
		out[i] = w
	}
	return out
}

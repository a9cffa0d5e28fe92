package bn254

import "io"

// frElem is a scalar-field element of Fr, always held in Montgomery form,
// exactly like fqElem but parameterized by r's own modulus/R/R2/R3/INV
// instead of q's -- a second instantiation of the same limbs/montgomery
// machinery fq.go uses, not a separate implementation.
type frElem [4]uint64

// Fr is a scalar field element mod r, the BN254 subgroup order. Unlike the
// rest of the tower, Fr's whole in-scope surface is "sample uniformly" and
// "multiply" (§1), but it is sampled and multiplied the same way every other
// field in this package is: via Montgomery-form limbs and the wide-reduction
// trick in randomLimbs.
type Fr struct {
	v frElem
}

// frMont is the Montgomery context for the scalar field Fr.
var frMont = montgomery{
	p:   [4]uint64{0x43e1f593f0000001, 0x2833e84879b97091, 0xb85045b68181585d, 0x30644e72e131a029},
	inv: 0xc2e1f593efffffff,
}

// rR = R_r = 2^256 mod r, simultaneously the Montgomery representation of
// Fr's multiplicative identity 1.
var rR = [4]uint64{0xac96341c4ffffffb, 0x36fc76959f60cd29, 0x666ea36f7879462e, 0x0e0a77c19a07df2f}

// r2R = R_r^2 mod r, used to lift a plain integer into Montgomery form.
var r2R = [4]uint64{0x1bb8e645ae216da7, 0x53fe3ab1e35c59e3, 0x8c49833d53bb8085, 0x0216d0b17f4e44a5}

// r3R = R_r^3 mod r, the second half of the wide-reduction sampling trick.
var r3R = [4]uint64{0x5e94d8e1b4bf0040, 0x2a489cbe1cfbb6b8, 0x893cc664a19fcfed, 0x0cf8594b7fcc657c}

// RandomFr draws a uniform Fr element from r using the same wide-reduction
// trick as Fq (§4.2): 64 bytes reduced as d0*R2_r + d1*R3_r.
func RandomFr(r io.Reader) (Fr, error) {
	limbs, err := frMont.randomLimbs(r, r2R, r3R)
	if err != nil {
		return Fr{}, err
	}
	return Fr{v: frElem(limbs)}, nil
}

// Mul computes (x*y) mod r.
func (x Fr) Mul(y Fr) Fr {
	return Fr{v: frElem(frMont.mul([4]uint64(x.v), [4]uint64(y.v)))}
}

func (x Fr) Equal(y Fr) bool { return limbsEqual([4]uint64(x.v), [4]uint64(y.v)) }

func (x Fr) IsZero() bool { return limbsAreZero([4]uint64(x.v)) }

// Bytes32 returns the big-endian byte encoding of x's plain (non-Montgomery)
// value.
func (x Fr) Bytes32() [32]byte {
	var t [9]uint64
	copy(t[:4], x.v[:])
	plain := frMont.mont(t)

	var out [32]byte
	for i := 0; i < 4; i++ {
		w := plain[i]
		for j := 0; j < 8; j++ {
			out[31-(i*8+j)] = byte(w >> (8 * uint(j)))
		}
	}
	return out
}

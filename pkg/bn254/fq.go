package bn254

import "io"

// fqElem is a base-field element of Fq, always held in Montgomery form:
// the stored limbs represent x*R mod q for the logical value x. Every
// method here delegates one-for-one to the limb routines in limbs.go,
// parameterized by fqMont.
type fqElem [4]uint64

// fqZero is the additive identity.
var fqZero = fqElem{}

// fqOne is the multiplicative identity, i.e. R_q itself in Montgomery form.
func fqOne() fqElem {
	return fqElem(rQ)
}

// newFqFromUint64 lifts a small plain integer into Montgomery form.
func newFqFromUint64(v uint64) fqElem {
	return fqMont.mul([4]uint64{v, 0, 0, 0}, r2Q)
}

// toMontForm lifts a plain 4-limb integer (reduced mod q) into Montgomery
// form by Montgomery-multiplying it by R_q^2.
func toMontForm(v [4]uint64) fqElem {
	return fqMont.mul(v, r2Q)
}

// fromMontForm extracts the plain integer value of a Montgomery-form
// element by Montgomery-reducing it against 1 (i.e. computing x*R^-1).
func fromMontForm(x fqElem) [4]uint64 {
	var t [9]uint64
	copy(t[:4], x[:])
	return fqMont.mont(t)
}

func (a fqElem) IsZero() bool { return limbsAreZero([4]uint64(a)) }

func (a fqElem) Equal(b fqElem) bool { return limbsEqual([4]uint64(a), [4]uint64(b)) }

func (a fqElem) Add(b fqElem) fqElem { return fqElem(fqMont.add([4]uint64(a), [4]uint64(b))) }

func (a fqElem) Sub(b fqElem) fqElem { return fqElem(fqMont.sub([4]uint64(a), [4]uint64(b))) }

func (a fqElem) Neg() fqElem { return fqElem(fqMont.neg([4]uint64(a))) }

func (a fqElem) Double() fqElem { return fqElem(fqMont.double([4]uint64(a))) }

func (a fqElem) Mul(b fqElem) fqElem { return fqElem(fqMont.mul([4]uint64(a), [4]uint64(b))) }

func (a fqElem) Square() fqElem { return fqElem(fqMont.square([4]uint64(a))) }

// Invert returns a^-1, or ErrZeroDivision if a is zero.
func (a fqElem) Invert() (fqElem, error) {
	inv, ok := fqMont.invert([4]uint64(a), rQ)
	if !ok {
		return fqElem{}, ErrZeroDivision
	}
	return fqElem(inv), nil
}

// randomFq draws a uniformly random Fq element from r using the wide
// reduction trick (§4.2): 64 bytes reduced as d0*R2 + d1*R3.
func randomFq(r io.Reader) (fqElem, error) {
	limbs, err := fqMont.randomLimbs(r, r2Q, r3Q)
	if err != nil {
		return fqElem{}, err
	}
	return fqElem(limbs), nil
}

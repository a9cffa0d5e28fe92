package bn254

import (
	"crypto/sha256"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
)

// randomFq2, randomFq6, randomFq12 build tower elements out of randomFq
// draws from a single reader, for use by the algebraic-property tests.
func randomFq2(r io.Reader) fq2Elem {
	a, err := randomFq(r)
	if err != nil {
		panic(err)
	}
	b, err := randomFq(r)
	if err != nil {
		panic(err)
	}
	return fq2Elem{a: a, b: b}
}

func randomFq6(r io.Reader) fq6Elem {
	return fq6Elem{c0: randomFq2(r), c1: randomFq2(r), c2: randomFq2(r)}
}

func randomFq12(r io.Reader) Fq12 {
	return Fq12{a: randomFq6(r), b: randomFq6(r)}
}

// newDeterministicReader returns a reproducible byte stream seeded from
// seed. Tests use it wherever they need a "random" Fq/Fr element, so a
// failure is reproducible by reading the test rather than by recording
// an external random seed.
func newDeterministicReader(seed string) io.Reader {
	return hkdf.New(sha256.New, []byte(seed), nil, []byte("bn254-test"))
}

// jacobianG1 is a G1 point in Jacobian coordinates, used only by the
// scalar-multiplication test helper below; production code stores G1
// affine-only (§1 places general scalar multiplication out of scope).
type jacobianG1 struct {
	x, y, z fqElem
}

func jacobianG1FromAffine(p G1Affine) jacobianG1 {
	if p.isInfinity {
		return jacobianG1{z: fqZero}
	}
	return jacobianG1{x: p.x, y: p.y, z: fqOne()}
}

func (p jacobianG1) isInfinity() bool { return p.z.IsZero() }

func (p jacobianG1) toAffine() G1Affine {
	if p.isInfinity() {
		return G1Identity()
	}
	zInv, err := p.z.Invert()
	if err != nil {
		panic(err)
	}
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return G1Affine{x: p.x.Mul(zInv2), y: p.y.Mul(zInv3)}
}

// jacobianG1Double is adapted from the lineage's own g1Double.
func jacobianG1Double(a jacobianG1) jacobianG1 {
	if a.isInfinity() {
		return a
	}
	aSq := a.x.Square()
	bSq := a.y.Square()
	cSq := bSq.Square()

	d := a.x.Add(bSq).Square().Sub(aSq).Sub(cSq)
	d = d.Double()

	e := aSq.Add(aSq).Add(aSq)

	x3 := e.Square().Sub(d.Double())
	eightC := cSq.Double().Double().Double()
	y3 := e.Mul(d.Sub(x3)).Sub(eightC)
	z3 := a.y.Add(a.y).Mul(a.z)

	return jacobianG1{x: x3, y: y3, z: z3}
}

// jacobianG1Add is adapted from the lineage's own g1Add.
func jacobianG1Add(a, b jacobianG1) jacobianG1 {
	if a.isInfinity() {
		return b
	}
	if b.isInfinity() {
		return a
	}

	z1sq := a.z.Square()
	z2sq := b.z.Square()
	u1 := a.x.Mul(z2sq)
	u2 := b.x.Mul(z1sq)
	s1 := a.y.Mul(b.z.Mul(z2sq))
	s2 := b.y.Mul(a.z.Mul(z1sq))

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return jacobianG1Double(a)
		}
		return jacobianG1{z: fqZero}
	}

	h := u2.Sub(u1)
	i := h.Add(h).Square()
	j := h.Mul(i)
	r := s2.Sub(s1).Double()
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v.Double())
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Double())
	z3 := a.z.Add(b.z).Square().Sub(z1sq).Sub(z2sq).Mul(h)

	return jacobianG1{x: x3, y: y3, z: z3}
}

// g1ScalarMul computes k*P using double-and-add; test-only, since
// arbitrary G1 scalar multiplication is out of scope for the package's
// production surface.
func g1ScalarMul(p G1Affine, k *big.Int) G1Affine {
	acc := jacobianG1{z: fqZero}
	base := jacobianG1FromAffine(p)
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = jacobianG1Double(acc)
		if k.Bit(i) == 1 {
			acc = jacobianG1Add(acc, base)
		}
	}
	return acc.toAffine()
}

// jacobianG2 mirrors jacobianG1 over the twisted curve.
type jacobianG2 struct {
	x, y, z fq2Elem
}

func jacobianG2FromAffine(p G2Affine) jacobianG2 {
	if p.isInfinity {
		return jacobianG2{z: fq2Zero}
	}
	return jacobianG2{x: p.x, y: p.y, z: fq2One()}
}

func (p jacobianG2) isInfinity() bool { return p.z.IsZero() }

func (p jacobianG2) toAffine() G2Affine {
	if p.isInfinity() {
		return G2Identity()
	}
	zInv, err := p.z.Invert()
	if err != nil {
		panic(err)
	}
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return G2Affine{x: p.x.Mul(zInv2), y: p.y.Mul(zInv3)}
}

func jacobianG2Double(a jacobianG2) jacobianG2 {
	if a.isInfinity() {
		return a
	}
	aSq := a.x.Square()
	bSq := a.y.Square()
	cSq := bSq.Square()

	d := a.x.Add(bSq).Square().Sub(aSq).Sub(cSq)
	d = d.Double()

	e := aSq.Add(aSq).Add(aSq)

	x3 := e.Square().Sub(d.Double())
	eightC := cSq.Double().Double().Double()
	y3 := e.Mul(d.Sub(x3)).Sub(eightC)
	z3 := a.y.Add(a.y).Mul(a.z)

	return jacobianG2{x: x3, y: y3, z: z3}
}

func jacobianG2Add(a, b jacobianG2) jacobianG2 {
	if a.isInfinity() {
		return b
	}
	if b.isInfinity() {
		return a
	}

	z1sq := a.z.Square()
	z2sq := b.z.Square()
	u1 := a.x.Mul(z2sq)
	u2 := b.x.Mul(z1sq)
	s1 := a.y.Mul(b.z.Mul(z2sq))
	s2 := b.y.Mul(a.z.Mul(z1sq))

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return jacobianG2Double(a)
		}
		return jacobianG2{z: fq2Zero}
	}

	h := u2.Sub(u1)
	i := h.Add(h).Square()
	j := h.Mul(i)
	r := s2.Sub(s1).Double()
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v.Double())
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Double())
	z3 := a.z.Add(b.z).Square().Sub(z1sq).Sub(z2sq).Mul(h)

	return jacobianG2{x: x3, y: y3, z: z3}
}

// g2ScalarMul computes k*Q using double-and-add; test-only, for the same
// reason as g1ScalarMul.
func g2ScalarMul(p G2Affine, k *big.Int) G2Affine {
	acc := jacobianG2{z: fq2Zero}
	base := jacobianG2FromAffine(p)
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = jacobianG2Double(acc)
		if k.Bit(i) == 1 {
			acc = jacobianG2Add(acc, base)
		}
	}
	return acc.toAffine()
}

// randomTestScalar draws a test scalar in [2, 2^20+2) from the
// deterministic reader seeded by seed, small enough to keep
// scalar-mul-heavy tests fast.
func randomTestScalar(seed string) *big.Int {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(newDeterministicReader(seed), buf); err != nil {
		panic(err)
	}
	v := new(big.Int).SetBytes(buf)
	v.Mod(v, big.NewInt(1<<20))
	v.Add(v, big.NewInt(2))
	return v
}

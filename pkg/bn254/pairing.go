package bn254

import "github.com/optimal-ate/bn254pairing/pkg/log"

// pairingLog is a module-scoped logger for the two hot entry points of a
// pairing evaluation. It only ever emits below Info, and nothing inside
// the Miller-loop iteration or any tower-field method calls it, so it
// stays off the arithmetic hot path while still giving an embedding
// application a correlation point in its own trace. It is derived from
// log.Default() on every call, so a logger installed with log.SetDefault
// after package initialisation is the one used.
func pairingLog() *log.Logger { return log.Default().Module("bn254") }

// MillerPair is one (G1, precomputed-G2) input to a multi-Miller-loop
// evaluation.
type MillerPair struct {
	G1 G1Affine
	G2 G2PairingAffine
}

// untwist scales the Fq2 triple (c0, c3, c4) by the affine G1 coordinates
// -- c0's components by p.y, c3's by p.x, c4 untouched -- turning the
// line function (defined over G2) into a value evaluated at p, then folds
// it into acc via the sparse mul_by_034.
func untwist(acc Fq12, coeff PairingCoeff, p G1Affine) Fq12 {
	c0 := fq2Elem{a: coeff.c0.a.Mul(p.y), b: coeff.c0.b.Mul(p.y)}
	c3 := fq2Elem{a: coeff.c3.a.Mul(p.x), b: coeff.c3.b.Mul(p.x)}
	return acc.MulBy034(c0, c3, coeff.c4)
}

// MultiMillerLoop runs the Miller loop over all supplied pairs
// simultaneously, accumulating one Fq12 value. Pairs whose G1 point or
// G2 precompute is the identity contribute nothing and are skipped.
// Identical in shape to AteParing in the lineage this was distilled
// from: square the accumulator every step but the first, untwist once
// per active pair for the doubling coefficient, untwist again for any
// addition coefficient the current NAF digit triggered, then two final
// untwists for the trailing Frobenius-twisted points every precompute
// carries.
func MultiMillerLoop(pairs []MillerPair) Fq12 {
	pairingLog().Debug("multi-Miller loop", "pairs", len(pairs))

	type cursor struct {
		g1  G1Affine
		cl  []PairingCoeff
		idx int
	}

	active := make([]*cursor, 0, len(pairs))
	for _, pr := range pairs {
		if pr.G1.IsIdentity() || pr.G2.isInfinity {
			continue
		}
		active = append(active, &cursor{g1: pr.G1, cl: pr.G2.coeffs})
	}

	acc := fq12One()
	n := len(sixUPlus2NAF)
	for i := n - 1; i > 0; i-- {
		if i != n-1 {
			acc = acc.Square()
		}
		for _, c := range active {
			acc = untwist(acc, c.cl[c.idx], c.g1)
			c.idx++
		}
		switch sixUPlus2NAF[i-1] {
		case 1, -1:
			for _, c := range active {
				acc = untwist(acc, c.cl[c.idx], c.g1)
				c.idx++
			}
		}
	}
	for _, c := range active {
		acc = untwist(acc, c.cl[c.idx], c.g1)
		c.idx++
	}
	for _, c := range active {
		acc = untwist(acc, c.cl[c.idx], c.g1)
		c.idx++
	}
	for _, c := range active {
		if c.idx != len(c.cl) {
			panic("bn254: G2 precompute coefficient count does not match the Miller loop")
		}
	}
	return acc
}

// cyclotomicExpByX computes x^BN_X by scanning the bits of BN_X from the
// most significant down, squaring every iteration via CyclotomicSquare
// and multiplying by x whenever the scanned bit is 1.
func cyclotomicExpByX(x Fq12) Fq12 {
	res := fq12One()
	for i := 63; i >= 0; i-- {
		res = res.CyclotomicSquare()
		if (bnX>>uint(i))&1 == 1 {
			res = res.Mul(x)
		}
	}
	return res
}

// FinalExp raises f to (q^12-1)/r, producing a canonical Gt element. The
// easy part clears the (q^6-1)(q^2+1) factor via one inversion, one
// conjugation, and two Frobenius maps. The hard part is the
// Fuentes-Castaneda decomposition driven by the BN parameter: three
// nested exponentiations by x (fu, fu^2, fu^3), their Frobenius images,
// seven combined y-terms, and a final t0^2*t1 product, all built out of
// cyclotomic squarings once inside the order-(q^4-q^2+1) subgroup.
//
// The easy-part inversion of f is non-zero for any non-degenerate Miller
// output; it failing means the Miller loop handed FinalExp a zero
// accumulator, which is a precompute/loop bug rather than a caller
// error, so this panics instead of threading an error back up.
func (f Fq12) FinalExp() Gt {
	pairingLog().Debug("final exponentiation")

	finv, err := f.Invert()
	if err != nil {
		panic("bn254: final exponentiation received a zero Miller-loop accumulator")
	}

	f1 := f.Conjugate()
	f1 = f1.Mul(finv)
	f2 := f1
	f1 = f1.FrobeniusMap(2)
	f1 = f1.Mul(f2)

	// f1 now holds the easy-part result.

	fp := f1.FrobeniusMap(1)
	fp2 := f1.FrobeniusMap(2)
	fp3 := fp2.FrobeniusMap(1)

	fu := cyclotomicExpByX(f1)
	fu2 := cyclotomicExpByX(fu)
	fu3 := cyclotomicExpByX(fu2)

	fu2p := fu2.FrobeniusMap(1)
	fu3p := fu3.FrobeniusMap(1)

	y3 := fu.FrobeniusMap(1)
	y2 := fu2.FrobeniusMap(2)

	y0 := fp.Mul(fp2).Mul(fp3)
	y1 := f1.Conjugate()
	y5 := fu2.Conjugate()
	y3 = y3.Conjugate()

	y4 := fu.Mul(fu2p).Conjugate()

	y6 := fu3.Mul(fu3p).Conjugate()
	y6 = y6.CyclotomicSquare()
	y6 = y6.Mul(y4)
	y6 = y6.Mul(y5)

	t1 := y3.Mul(y5).Mul(y6)

	y6 = y6.Mul(y2)

	t1 = t1.CyclotomicSquare()
	t1 = t1.Mul(y6)
	t1 = t1.CyclotomicSquare()

	t0 := t1.Mul(y1)
	t1 = t1.Mul(y0)

	t0 = t0.CyclotomicSquare()
	t0 = t0.Mul(t1)

	return Gt{v: t0}
}

// Pair computes the optimal ate pairing e(p, q) directly, a convenience
// wrapper around precomputing q and running a single-pair Miller loop.
func Pair(p G1Affine, q G2Affine) Gt {
	if p.IsIdentity() || q.IsIdentity() {
		return Gt{v: fq12One()}
	}
	pre := NewG2PairingAffine(q)
	f := MultiMillerLoop([]MillerPair{{G1: p, G2: pre}})
	return f.FinalExp()
}

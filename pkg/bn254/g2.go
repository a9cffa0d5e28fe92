package bn254

// G2Affine is a point on the sextic twist y^2 = x^3 + 3/(9+u) over Fq2.
type G2Affine struct {
	x, y       fq2Elem
	isInfinity bool
}

// G2Generator returns the canonical G2 generator.
func G2Generator() G2Affine {
	return G2Affine{
		x: fq2Elem{a: g2GenX0, b: g2GenX1},
		y: fq2Elem{a: g2GenY0, b: g2GenY1},
	}
}

func G2Identity() G2Affine { return G2Affine{isInfinity: true} }

func (p G2Affine) IsIdentity() bool { return p.isInfinity }

func (p G2Affine) Equal(q G2Affine) bool {
	if p.isInfinity || q.isInfinity {
		return p.isInfinity == q.isInfinity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg flips the sign of y.
func (p G2Affine) Neg() G2Affine {
	if p.isInfinity {
		return p
	}
	return G2Affine{x: p.x, y: p.y.Neg()}
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + twistB. Used only by
// test-side curve-membership helpers; the Miller loop never evaluates
// this equation directly.
func (p G2Affine) IsOnCurve() bool {
	if p.isInfinity {
		return true
	}
	lhs := p.y.Square()
	rhs := p.x.Square().Mul(p.x).Add(twistB)
	return lhs.Equal(rhs)
}

// G2Projective is the Jacobian-like (x,y,z) representation used only to
// evolve the Miller-loop variable during precompute; the identity is
// (0,1,0).
type G2Projective struct {
	x, y, z fq2Elem
}

// g2ProjectiveFromAffine lifts an affine point into projective form.
func g2ProjectiveFromAffine(p G2Affine) G2Projective {
	if p.isInfinity {
		return G2Projective{x: fq2Zero, y: fq2One(), z: fq2Zero}
	}
	return G2Projective{x: p.x, y: p.y, z: fq2One()}
}

// PairingCoeff packs a line function's three Fq2 coefficients for the
// sparse mul_by_034 multiplication; logically (c0, c3, c4).
type PairingCoeff struct {
	c0, c3, c4 fq2Elem
}

// DoubleEval evolves s by one doubling step (eprint 2010/354 Algorithm
// 26) and returns the line-function coefficients for that step. It
// mutates the receiver in place.
//
// Every temporary below that depends on the post-doubling x/y/z reads
// the locally staged newx/newy/newz, never the receiver's stale
// pre-update fields -- in particular the c0 coefficient is built from
// the already-updated z, not the z the function started with.
func (s *G2Projective) DoubleEval() PairingCoeff {
	tmp0 := s.x.Square()
	tmp1 := s.y.Square()
	tmp2 := tmp1.Square()
	tmp3 := tmp1.Add(s.x).Square().Sub(tmp0).Sub(tmp2)
	tmp3 = tmp3.Double()
	tmp4 := tmp0.Double().Add(tmp0)
	tmp6 := s.x.Add(tmp4)
	tmp5 := tmp4.Square()
	zsquared := s.z.Square()

	newx := tmp5.Sub(tmp3.Double())
	newz := s.z.Add(s.y).Square().Sub(tmp1).Sub(zsquared)
	newy := tmp3.Sub(newx).Mul(tmp4).Sub(tmp2.Double().Double().Double())

	c3 := tmp4.Mul(zsquared).Double().Neg()
	tmp6b := tmp6.Square().Sub(tmp0).Sub(tmp5)
	tmp1b := tmp1.Double().Double()
	c4 := tmp6b.Sub(tmp1b)
	c0 := newz.Mul(zsquared).Double()

	s.x, s.y, s.z = newx, newy, newz
	return PairingCoeff{c0: c0, c3: c3, c4: c4}
}

// AddEval evolves s by one mixed addition of the affine point rhs
// (eprint 2010/354 Algorithm 27) and returns the line-function
// coefficients for that step. It mutates the receiver in place.
func (s *G2Projective) AddEval(rhs G2Affine) PairingCoeff {
	zsquared := s.z.Square()
	ysquared := rhs.y.Square()
	t0 := zsquared.Mul(rhs.x)
	t1 := rhs.y.Add(s.z).Square().Sub(ysquared).Sub(zsquared).Mul(zsquared)
	t2 := t0.Sub(s.x)
	t3 := t2.Square()
	t4 := t3.Double().Double()
	t5 := t4.Mul(t2)
	t6 := t1.Sub(s.y.Double())
	t9 := t6.Mul(rhs.x)
	t7 := t4.Mul(s.x)

	newx := t6.Square().Sub(t5).Sub(t7.Double())
	newz := s.z.Add(t2).Square().Sub(zsquared).Sub(t3)
	t10 := rhs.y.Add(newz)
	t8 := t7.Sub(newx).Mul(t6)
	t0b := s.y.Mul(t5)
	newy := t8.Sub(t0b.Double())

	t10b := t10.Square().Sub(ysquared)
	ztsquared := newz.Square()
	t10c := t10b.Sub(ztsquared)
	c4 := t9.Double().Sub(t10c)
	c3 := t6.Double().Neg()
	c0 := newz.Double()

	s.x, s.y, s.z = newx, newy, newz
	return PairingCoeff{c0: c0, c3: c3, c4: c4}
}

// G2PairingAffine is a G2 point prepared for repeated use in the Miller
// loop: the full deterministic sequence of line-function coefficients,
// one entry per doubling/addition step driven by SIX_U_PLUS_2_NAF.
type G2PairingAffine struct {
	coeffs     []PairingCoeff
	isInfinity bool
}

// NewG2PairingAffine precomputes the coefficient sequence for g2.
// The sequence length is deterministic: 64 doublings plus one addition
// per nonzero SIX_U_PLUS_2_NAF digit (excluding the leading digit at
// index 64, which no addition step reads) plus two trailing
// Frobenius-twisted additions.
func NewG2PairingAffine(g2 G2Affine) G2PairingAffine {
	if g2.isInfinity {
		return G2PairingAffine{isInfinity: true}
	}

	// 64 doublings + 25 nonzero digits below index 64 + 2 Frobenius additions.
	coeffs := make([]PairingCoeff, 0, 91)
	proj := g2ProjectiveFromAffine(g2)
	negG2 := g2.Neg()

	for i := len(sixUPlus2NAF) - 1; i > 0; i-- {
		coeffs = append(coeffs, proj.DoubleEval())
		switch sixUPlus2NAF[i-1] {
		case 1:
			coeffs = append(coeffs, proj.AddEval(g2))
		case -1:
			coeffs = append(coeffs, proj.AddEval(negG2))
		}
	}

	q1x := g2.x.Conjugate().Mul(frobeniusCoeffFQ6C1[1])
	q1y := g2.y.Conjugate().Mul(xiToQMinus1Over2)
	q1 := G2Affine{x: q1x, y: q1y}
	coeffs = append(coeffs, proj.AddEval(q1))

	q2x := g2.x.Mul(frobeniusCoeffFQ6C1[2])
	q2 := G2Affine{x: q2x, y: g2.y}
	coeffs = append(coeffs, proj.AddEval(q2))

	return G2PairingAffine{coeffs: coeffs}
}

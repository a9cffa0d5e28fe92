package bn254

// fq6Elem represents c0 + c1*v + c2*v^2 in Fq2[v]/(v^3 - xi), where
// xi = 9+u is the quadratic non-residue from Fq2.
type fq6Elem struct {
	c0, c1, c2 fq2Elem
}

var fq6Zero = fq6Elem{}

func fq6One() fq6Elem { return fq6Elem{c0: fq2One()} }

func (x fq6Elem) IsZero() bool {
	return x.c0.IsZero() && x.c1.IsZero() && x.c2.IsZero()
}

func (x fq6Elem) Equal(y fq6Elem) bool {
	return x.c0.Equal(y.c0) && x.c1.Equal(y.c1) && x.c2.Equal(y.c2)
}

func (x fq6Elem) Add(y fq6Elem) fq6Elem {
	return fq6Elem{c0: x.c0.Add(y.c0), c1: x.c1.Add(y.c1), c2: x.c2.Add(y.c2)}
}

func (x fq6Elem) Sub(y fq6Elem) fq6Elem {
	return fq6Elem{c0: x.c0.Sub(y.c0), c1: x.c1.Sub(y.c1), c2: x.c2.Sub(y.c2)}
}

func (x fq6Elem) Neg() fq6Elem {
	return fq6Elem{c0: x.c0.Neg(), c1: x.c1.Neg(), c2: x.c2.Neg()}
}

func (x fq6Elem) Double() fq6Elem {
	return fq6Elem{c0: x.c0.Double(), c1: x.c1.Double(), c2: x.c2.Double()}
}

// MulByNonres multiplies by v: [c0,c1,c2]*v = [xi*c2, c0, c1].
func (x fq6Elem) MulByNonres() fq6Elem {
	return fq6Elem{c0: x.c2.MulByNonres(), c1: x.c0, c2: x.c1}
}

// Mul implements the six-Fq2 Karatsuba-style product of two degree-3
// (over Fq2) polynomials reduced modulo v^3 - xi.
func (x fq6Elem) Mul(y fq6Elem) fq6Elem {
	a0, a1, a2 := x.c0, x.c1, x.c2
	b0, b1, b2 := y.c0, y.c1, y.c2

	v0 := a0.Mul(b0)
	v1 := a1.Mul(b1)
	v2 := a2.Mul(b2)

	c0 := a1.Add(a2).Mul(b1.Add(b2)).Sub(v1).Sub(v2).MulByNonres().Add(v0)
	c1 := a0.Add(a1).Mul(b0.Add(b1)).Sub(v0).Sub(v1).Add(v2.MulByNonres())
	c2 := a0.Add(a2).Mul(b0.Add(b2)).Sub(v0).Sub(v2).Add(v1)

	return fq6Elem{c0: c0, c1: c1, c2: c2}
}

// Square uses the Chung-Hasan squaring formula (SQR3 variant): with
// s0 = a0^2, s1 = 2*a0*a1, s2 = (a0-a1+a2)^2, s3 = 2*a1*a2, s4 = a2^2,
// c0 = s0 + xi*s3, c1 = s1 + xi*s4, c2 = s1+s2+s3-s0-s4.
func (x fq6Elem) Square() fq6Elem {
	a0, a1, a2 := x.c0, x.c1, x.c2

	s0 := a0.Square()
	ab := a0.Mul(a1)
	s1 := ab.Double()
	s2 := a0.Sub(a1).Add(a2).Square()
	bc := a1.Mul(a2)
	s3 := bc.Double()
	s4 := a2.Square()

	c0 := s3.MulByNonres().Add(s0)
	c1 := s4.MulByNonres().Add(s1)
	c2 := s1.Add(s2).Add(s3).Sub(s0).Sub(s4)

	return fq6Elem{c0: c0, c1: c1, c2: c2}
}

// MulBy01 is the sparse multiplication by an element with c2=0, the form
// line-function evaluations take before being lifted into Fq12.
func (x fq6Elem) MulBy01(c0, c1 fq2Elem) fq6Elem {
	a0, a1, a2 := x.c0, x.c1, x.c2

	t0 := a0.Mul(c0)
	t1 := a1.Mul(c1)

	outC0 := a1.Add(a2).Mul(c1).Sub(t1).MulByNonres().Add(t0)
	outC1 := a0.Add(a1).Mul(c0.Add(c1)).Sub(t0).Sub(t1)
	outC2 := a0.Add(a2).Mul(c0).Sub(t0).Add(t1)

	return fq6Elem{c0: outC0, c1: outC1, c2: outC2}
}

// FrobeniusMap applies the k-th power Frobenius: each Fq2 limb gets its
// own Frobenius map, then c1 and c2 are scaled by the Fq6-specific
// coefficient tables.
func (x fq6Elem) FrobeniusMap(k int) fq6Elem {
	return fq6Elem{
		c0: x.c0.FrobeniusMap(k),
		c1: x.c1.FrobeniusMap(k).Mul(frobeniusCoeffFQ6C1[k%6]),
		c2: x.c2.FrobeniusMap(k).Mul(frobeniusCoeffFQ6C2[k%6]),
	}
}

// Invert uses the Itoh-Tsujii-style cofactor formula: write x = c0+c1v+c2v^2,
// compute the "norm" via intermediate products, invert that norm in Fq2,
// then scale the cofactor terms by the inverse norm.
func (x fq6Elem) Invert() (fq6Elem, error) {
	c0, c1, c2 := x.c0, x.c1, x.c2

	t0 := c0.Square().Sub(c1.Mul(c2).MulByNonres())
	t1 := c2.Square().MulByNonres().Sub(c0.Mul(c1))
	t2 := c1.Square().Sub(c0.Mul(c2))

	norm := c2.Mul(t1).Add(c1.Mul(t2)).MulByNonres().Add(c0.Mul(t0))
	normInv, err := norm.Invert()
	if err != nil {
		return fq6Elem{}, err
	}

	return fq6Elem{
		c0: t0.Mul(normInv),
		c1: t1.Mul(normInv),
		c2: t2.Mul(normInv),
	}, nil
}

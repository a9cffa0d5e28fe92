package bn254

// Fq12 represents a + b*w in Fq6[w]/(w^2 - v).
type Fq12 struct {
	a, b fq6Elem
}

func fq12One() Fq12 { return Fq12{a: fq6One()} }

func (x Fq12) IsZero() bool { return x.a.IsZero() && x.b.IsZero() }

func (x Fq12) Equal(y Fq12) bool { return x.a.Equal(y.a) && x.b.Equal(y.b) }

func (x Fq12) Add(y Fq12) Fq12 {
	return Fq12{a: x.a.Add(y.a), b: x.b.Add(y.b)}
}

func (x Fq12) Sub(y Fq12) Fq12 {
	return Fq12{a: x.a.Sub(y.a), b: x.b.Sub(y.b)}
}

func (x Fq12) Neg() Fq12 {
	return Fq12{a: x.a.Neg(), b: x.b.Neg()}
}

// Conjugate negates the w-component: the order-2 automorphism fixing Fq6.
func (x Fq12) Conjugate() Fq12 {
	return Fq12{a: x.a, b: x.b.Neg()}
}

// Mul computes (a+bw)(c+dw) = (ac + v*bd) + (ad+bc)w, with v supplied by
// Fq6.MulByNonres.
func (x Fq12) Mul(y Fq12) Fq12 {
	aa := x.a.Mul(y.a)
	bb := x.b.Mul(y.b)
	o := x.a.Add(x.b).Mul(y.a.Add(y.b)).Sub(aa).Sub(bb)
	return Fq12{
		a: bb.MulByNonres().Add(aa),
		b: o,
	}
}

// Square uses the complex-squaring identity with the non-residue folded
// into the cross term through Fq6.MulByNonres, exactly as Mul does --
// NOT the naive difference-of-squares shortcut (a^2-b^2, 2ab), which is
// only valid when the cross term needs no twist. Here it does, so that
// shortcut silently produces a wrong result; ab := a*b; the cross term
// must route through mul_by_nonres before being combined back in.
func (x Fq12) Square() Fq12 {
	ab := x.a.Mul(x.b)
	t := x.b.MulByNonres().Add(x.a).Mul(x.a.Add(x.b)).Sub(ab).Sub(ab.MulByNonres())
	return Fq12{
		a: t,
		b: ab.Double(),
	}
}

// FrobeniusMap maps a componentwise (Fq6), maps b componentwise, then
// multiplies each Fq2 limb of b by the Fq12-specific scalar coefficient.
func (x Fq12) FrobeniusMap(k int) Fq12 {
	a := x.a.FrobeniusMap(k)
	b := x.b.FrobeniusMap(k)
	coeff := frobeniusCoeffFQ12C1[k%12]
	b = fq6Elem{
		c0: b.c0.Mul(coeff),
		c1: b.c1.Mul(coeff),
		c2: b.c2.Mul(coeff),
	}
	return Fq12{a: a, b: b}
}

// Invert uses the Fq6 norm: (a+bw)^-1 = (a-bw)/(a^2 - v*b^2).
func (x Fq12) Invert() (Fq12, error) {
	norm := x.a.Square().Sub(x.b.Square().MulByNonres())
	normInv, err := norm.Invert()
	if err != nil {
		return Fq12{}, err
	}
	return Fq12{a: x.a.Mul(normInv), b: x.b.Neg().Mul(normInv)}, nil
}

// MulBy034 is the sparse multiply used by the Miller loop's line-function
// evaluations: the right-hand side is c0 + (c3 + c4*v)*w, exactly three
// Fq2 scalars rather than the full 12.
func (x Fq12) MulBy034(c0, c3, c4 fq2Elem) Fq12 {
	a, b := x.a, x.b

	t0 := fq6Elem{c0: a.c0.Mul(c0), c1: a.c1.Mul(c0), c2: a.c2.Mul(c0)}
	t1 := b.MulBy01(c3, c4)

	o := fq2Elem{a: c0.a, b: c0.b}.Add(c3)
	t2 := a.Add(b).MulBy01(o, c4)
	t2 = t2.Sub(t0)
	bResult := t2.Sub(t1)
	aResult := t1.MulByNonres().Add(t0)

	return Fq12{a: aResult, b: bResult}
}

// CyclotomicSquare performs Fq12 squaring specialized for elements known
// to lie in the order-(q^4-q^2+1) cyclotomic subgroup (the image of the
// easy part of final exponentiation). Implemented via the Granger-Scott
// method, working on pairs of Fq2 components through fp4Square.
func (x Fq12) CyclotomicSquare() Fq12 {
	z0, z4, z3, z2, z1, z5 := x.a.c0, x.a.c1, x.a.c2, x.b.c0, x.b.c1, x.b.c2

	t0, t1 := fp4Square(z0, z1)
	z0 = t0.Sub(z0).Double().Add(t0)
	z1 = t1.Add(z1).Double().Add(t1)

	t0, t1 = fp4Square(z2, z3)
	t2, t3 := fp4Square(z4, z5)

	z4 = t0.Sub(z4).Double().Add(t0)
	z5 = t1.Add(z5).Double().Add(t1)

	tt0 := t3.MulByNonres()
	z2 = tt0.Add(z2).Double().Add(tt0)
	z3 = t2.Sub(z3).Double().Add(t2)

	return Fq12{
		a: fq6Elem{c0: z0, c1: z4, c2: z3},
		b: fq6Elem{c0: z2, c1: z1, c2: z5},
	}
}

// fp4Square implements the Granger-Scott degree-4 squaring helper used by
// CyclotomicSquare: given (a, b) representing a+b*s in Fp4 = Fq2[s]/(s^2-xi),
// with xi = 9+u, returns (a^2 + xi*b^2, 2ab).
func fp4Square(a, b fq2Elem) (fq2Elem, fq2Elem) {
	t0 := a.Square()
	t1 := b.Square()
	t2 := t1.MulByNonres()
	rc0 := t2.Add(t0)
	t3 := a.Add(b).Square().Sub(t0).Sub(t1)
	return rc0, t3
}

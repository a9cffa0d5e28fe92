package bn254

// fq2Elem represents a + b*u in Fq[u]/(u^2+1).
type fq2Elem struct {
	a, b fqElem
}

var fq2Zero = fq2Elem{}

func fq2One() fq2Elem { return fq2Elem{a: fqOne()} }

func (x fq2Elem) IsZero() bool { return x.a.IsZero() && x.b.IsZero() }

func (x fq2Elem) Equal(y fq2Elem) bool { return x.a.Equal(y.a) && x.b.Equal(y.b) }

func (x fq2Elem) Add(y fq2Elem) fq2Elem {
	return fq2Elem{a: x.a.Add(y.a), b: x.b.Add(y.b)}
}

func (x fq2Elem) Sub(y fq2Elem) fq2Elem {
	return fq2Elem{a: x.a.Sub(y.a), b: x.b.Sub(y.b)}
}

func (x fq2Elem) Neg() fq2Elem {
	return fq2Elem{a: x.a.Neg(), b: x.b.Neg()}
}

func (x fq2Elem) Double() fq2Elem {
	return fq2Elem{a: x.a.Double(), b: x.b.Double()}
}

// Conjugate returns (a, -b), the nontrivial Galois automorphism of Fq2
// over Fq; this doubles as FrobeniusMap for k=1.
func (x fq2Elem) Conjugate() fq2Elem {
	return fq2Elem{a: x.a, b: x.b.Neg()}
}

// Mul implements (a+bu)(c+du) = (ac-bd) + (ad+bc)u.
func (x fq2Elem) Mul(y fq2Elem) fq2Elem {
	ac := x.a.Mul(y.a)
	bd := x.b.Mul(y.b)
	adPlusBc := x.a.Add(x.b).Mul(y.a.Add(y.b)).Sub(ac).Sub(bd)
	return fq2Elem{a: ac.Sub(bd), b: adPlusBc}
}

// Square computes (a+bu)^2 = (a+b)(a-b) + 2ab*u.
func (x fq2Elem) Square() fq2Elem {
	apb := x.a.Add(x.b)
	amb := x.a.Sub(x.b)
	ab := x.a.Mul(x.b)
	return fq2Elem{a: apb.Mul(amb), b: ab.Double()}
}

// MulByNonres multiplies by the quadratic non-residue 9+u used as the
// Fq6 twist constant: (9a-b) + (a+9b)u, computed via three doublings
// rather than a general multiplication.
func (x fq2Elem) MulByNonres() fq2Elem {
	t0, t1 := x.a, x.b
	res := x.Double().Double().Double()
	return fq2Elem{
		a: res.a.Add(t0.Sub(t1)),
		b: res.b.Add(t0.Add(t1)),
	}
}

// FrobeniusMap applies the k-th power Frobenius endomorphism: the real
// part is untouched, the imaginary part is scaled by
// FROBENIUS_COEFF_FQ2_C1[k%2] (which is -1 for odd k, making k=1 agree
// with Conjugate).
func (x fq2Elem) FrobeniusMap(k int) fq2Elem {
	coeff := frobeniusCoeffFQ2C1[k%2]
	return fq2Elem{a: x.a, b: x.b.Mul(coeff)}
}

// Invert computes (a+bu)^-1 = (a-bu)/(a^2+b^2) using the field norm.
func (x fq2Elem) Invert() (fq2Elem, error) {
	norm := x.a.Square().Add(x.b.Square())
	normInv, err := norm.Invert()
	if err != nil {
		return fq2Elem{}, err
	}
	return fq2Elem{a: x.a.Mul(normInv), b: x.b.Neg().Mul(normInv)}, nil
}

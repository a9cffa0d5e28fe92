package bn254

// G1Affine is a point on BN254 in affine coordinates: y^2 = x^3 + 3 over
// Fq. G1 is stored affine only -- the pairing consumes nothing else.
type G1Affine struct {
	x, y       fqElem
	isInfinity bool
}

// G1Generator returns the canonical generator (1, 2).
func G1Generator() G1Affine {
	return G1Affine{x: newFqFromUint64(1), y: newFqFromUint64(2)}
}

// G1Identity returns the point at infinity.
func G1Identity() G1Affine {
	return G1Affine{isInfinity: true}
}

func (p G1Affine) IsIdentity() bool { return p.isInfinity }

func (p G1Affine) Equal(q G1Affine) bool {
	if p.isInfinity || q.isInfinity {
		return p.isInfinity == q.isInfinity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg flips the sign of y.
func (p G1Affine) Neg() G1Affine {
	if p.isInfinity {
		return p
	}
	return G1Affine{x: p.x, y: p.y.Neg()}
}

// g1B is the G1 curve coefficient b=3, lifted to Montgomery form at
// package initialisation.
var g1B = newFqFromUint64(3)

// IsOnCurve reports whether p satisfies y^2 = x^3 + 3 (the identity point
// trivially satisfies this). Used only by test-side membership checks.
func (p G1Affine) IsOnCurve() bool {
	if p.isInfinity {
		return true
	}
	lhs := p.y.Square()
	rhs := p.x.Square().Mul(p.x).Add(g1B)
	return lhs.Equal(rhs)
}

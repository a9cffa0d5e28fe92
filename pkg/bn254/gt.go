package bn254

// Gt is an opaque wrapper over an Fq12 value known to lie in the
// order-r subgroup, produced by Fq12.FinalExp. Equality and the group
// operation are both defined on the wrapped value.
type Gt struct {
	v Fq12
}

// Identity returns the Gt identity element.
func Identity() Gt { return Gt{v: fq12One()} }

// Generator returns the fixed Fq12 generator of the order-r subgroup.
func Generator() Gt { return Gt{v: gtGenerator} }

// Add is the Gt group operation, defined as Fq12 multiplication (Gt is
// written additively; the underlying Fq12 operation is multiplicative).
func (x Gt) Add(y Gt) Gt { return Gt{v: x.v.Mul(y.v)} }

// Neg is defined as Fq12 conjugation.
func (x Gt) Neg() Gt { return Gt{v: x.v.Conjugate()} }

func (x Gt) Equal(y Gt) bool { return x.v.Equal(y.v) }

func (x Gt) IsIdentity() bool { return x.v.Equal(fq12One()) }

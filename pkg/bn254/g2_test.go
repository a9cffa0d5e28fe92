package bn254

import "testing"

func TestG2GeneratorIsOnCurve(t *testing.T) {
	if !G2Generator().IsOnCurve() {
		t.Fatal("G2 generator does not satisfy y^2 = x^3 + twistB")
	}
}

func TestG2IdentityIsOnCurve(t *testing.T) {
	if !G2Identity().IsOnCurve() {
		t.Fatal("G2 identity should trivially satisfy the curve equation")
	}
}

func TestG2NegTwiceIsIdentity(t *testing.T) {
	g := G2Generator()
	if !g.Neg().Neg().Equal(g) {
		t.Fatal("-(-g) != g")
	}
}

func TestG2ScalarMulStaysOnCurve(t *testing.T) {
	k := randomTestScalar("g2-scalarmul-oncurve")
	p := g2ScalarMul(G2Generator(), k)
	if !p.IsOnCurve() {
		t.Fatal("k*G2 left the curve")
	}
}

func TestG2PairingAffineFromIdentityIsEmpty(t *testing.T) {
	pre := NewG2PairingAffine(G2Identity())
	if !pre.isInfinity {
		t.Fatal("precompute of the identity should be marked infinite")
	}
	if len(pre.coeffs) != 0 {
		t.Fatal("precompute of the identity should carry no coefficients")
	}
}

// TestG2PairingAffineCoeffCount pins the deterministic coefficient-count
// invariant described in §4.4: 64 doublings plus one addition per
// nonzero NAF digit (excluding the leading one) plus two trailing
// Frobenius-twisted additions.
func TestG2PairingAffineCoeffCount(t *testing.T) {
	pre := NewG2PairingAffine(G2Generator())

	want := len(sixUPlus2NAF) - 1 // one doubling per non-leading NAF index
	for i := 0; i < len(sixUPlus2NAF)-1; i++ {
		if sixUPlus2NAF[i] != 0 {
			want++
		}
	}
	want += 2 // the two trailing Frobenius-twist additions

	if len(pre.coeffs) != want {
		t.Fatalf("coefficient count = %d, want %d", len(pre.coeffs), want)
	}
}

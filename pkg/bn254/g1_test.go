package bn254

import "testing"

func TestG1GeneratorIsOnCurve(t *testing.T) {
	if !G1Generator().IsOnCurve() {
		t.Fatal("G1 generator does not satisfy y^2 = x^3 + 3")
	}
}

func TestG1IdentityIsOnCurve(t *testing.T) {
	if !G1Identity().IsOnCurve() {
		t.Fatal("G1 identity should trivially satisfy the curve equation")
	}
}

func TestG1NegTwiceIsIdentity(t *testing.T) {
	g := G1Generator()
	if !g.Neg().Neg().Equal(g) {
		t.Fatal("-(-g) != g")
	}
}

func TestG1NegOfIdentityIsIdentity(t *testing.T) {
	if !G1Identity().Neg().Equal(G1Identity()) {
		t.Fatal("-O != O")
	}
}

func TestG1ScalarMulStaysOnCurve(t *testing.T) {
	k := randomTestScalar("g1-scalarmul-oncurve")
	p := g1ScalarMul(G1Generator(), k)
	if !p.IsOnCurve() {
		t.Fatal("k*G1 left the curve")
	}
}

package bn254

// Bit-exact BN254 parameters. All field constants below are stored in
// Montgomery form (x_mont = x * R mod p) for their respective modulus;
// the plain-integer parameters (modulus, BN_X, the NAF digits) are not.

// fqMont is the Montgomery context for the base field Fq.
var fqMont = montgomery{
	p:   [4]uint64{0x3c208c16d87cfd47, 0x97816a916871ca8d, 0xb85045b68181585d, 0x30644e72e131a029},
	inv: 0x87d20782e4866389,
}

// rQ is R_q = 2^256 mod q, in plain (non-Montgomery) limb form -- this is
// simultaneously the Montgomery representation of Fq's multiplicative
// identity 1.
var rQ = [4]uint64{0xd35d438dc58f0d9d, 0x0a78eb28f5c70b3d, 0x666ea36f7879462c, 0x0e0a77c19a07df2f}

// r2Q = R_q^2 mod q, used to lift a plain integer into Montgomery form.
var r2Q = [4]uint64{0xf32cfc5b538afa89, 0xb5e71911d44501fb, 0x47ab1eff0a417ff6, 0x06d89f71cab8351f}

// r3Q = R_q^3 mod q, the second half of the wide-reduction sampling trick.
var r3Q = [4]uint64{0xb1cd6dafda1530df, 0x62f210e6a7283db6, 0xef7f0b0c0ada0afb, 0x20fd6e902d592544}

// bnX is the BN parameter u that generates the BN254 curve family.
const bnX uint64 = 0x44E992B44A6909F1

// sixUPlus2NAF is the non-adjacent-form digit sequence of |6u+2|, read from
// index 0 (least significant) to index 64 (most significant). Every digit
// is in {-1, 0, 1}. The Miller loop and the G2 precompute both scan this
// array from the high end down, so its length fixes the size of every
// coefficient list the precompute allocates.
var sixUPlus2NAF = [65]int8{
	0, 0, 0, 1, 0, 1, 0, -1, 0, 0, 1, -1, 0, 0, 1, 0,
	0, 1, 1, 0, -1, 0, 0, 1, 0, -1, 0, 0, 0, 0, 1, 1,
	1, 0, 0, -1, 0, 0, 1, 0, 0, 0, 0, 0, -1, 0, 0, 1,
	1, 0, 0, -1, 0, 0, 0, 1, 1, 0, -1, 0, 0, 1, 0, 1,
	1,
}

// frobeniusCoeffFQ2C1 holds Fq.frobenius power coefficients for Fq2:
// frobeniusCoeffFQ2C1[k] = nonResidue^((q^k - 1)/2) for k in {0,1}.
var frobeniusCoeffFQ2C1 = [2]fqElem{
	{0xd35d438dc58f0d9d, 0x0a78eb28f5c70b3d, 0x666ea36f7879462c, 0x0e0a77c19a07df2f},
	{0x68c3488912edefaa, 0x8d087f6872aabf4f, 0x51e1a24709081231, 0x2259d6b14729c0fa},
}

// frobeniusCoeffFQ6C1[k] = nonResidue^((q^k - 1)/3), for k in 0..5, as Fq2.
var frobeniusCoeffFQ6C1 = [6]fq2Elem{
	{a: fqElem{0xd35d438dc58f0d9d, 0x0a78eb28f5c70b3d, 0x666ea36f7879462c, 0x0e0a77c19a07df2f}},
	{
		a: fqElem{0xb5773b104563ab30, 0x347f91c8a9aa6454, 0x7a007127242e0991, 0x1956bcd8118214ec},
		b: fqElem{0x6e849f1ea0aa4757, 0xaa1c7b6d89f89141, 0xb6e713cdfae0ca3a, 0x26694fbb4e82ebc3},
	},
	{a: fqElem{0x3350c88e13e80b9c, 0x7dce557cdb5e56b9, 0x6001b4b8b615564a, 0x2682e617020217e0}},
	{
		a: fqElem{0xc9af22f716ad6bad, 0xb311782a4aa662b2, 0x19eeaf64e248c7f4, 0x20273e77e3439f82},
		b: fqElem{0xacc02860f7ce93ac, 0x3933d5817ba76b4c, 0x69e6188b446c8467, 0x0a46036d4417cc55},
	},
	{a: fqElem{0x71930c11d782e155, 0xa6bb947cffbe3323, 0xaa303344d4741444, 0x2c3b3f0d26594943}},
	{
		a: fqElem{0xf91aba2654e8e3b1, 0x4771cb2fdc92ce12, 0xdcb16ae0fc8bdf35, 0x274aa195cd9d8be4},
		b: fqElem{0x5cfc50ae18811f8b, 0x4bb28433cb43988c, 0x4fd35f13c3b56219, 0x301949bd2fc8883a},
	},
}

// frobeniusCoeffFQ6C2[k] = nonResidue^((2*q^k - 2)/3), for k in 0..5, as Fq2.
var frobeniusCoeffFQ6C2 = [6]fq2Elem{
	{a: fqElem{0xd35d438dc58f0d9d, 0x0a78eb28f5c70b3d, 0x666ea36f7879462c, 0x0e0a77c19a07df2f}},
	{
		a: fqElem{0x7361d77f843abe92, 0xa5bb2bd3273411fb, 0x9c941f314b3e2399, 0x15df9cddbb9fd3ec},
		b: fqElem{0x5dddfd154bd8c949, 0x62cb29a5a4445b60, 0x37bc870a0c7dd2b9, 0x24830a9d3171f0fd},
	},
	{a: fqElem{0x71930c11d782e155, 0xa6bb947cffbe3323, 0xaa303344d4741444, 0x2c3b3f0d26594943}},
	{
		a: fqElem{0x448a93a57b6762df, 0xbfd62df528fdeadf, 0xd858f5d00e9bd47a, 0x06b03d4d3476ec58},
		b: fqElem{0x2b19daf4bcc936d1, 0xa1a54e7a56f4299f, 0xb533eee05adeaef1, 0x170c812b84dda0b2},
	},
	{a: fqElem{0x3350c88e13e80b9c, 0x7dce557cdb5e56b9, 0x6001b4b8b615564a, 0x2682e617020217e0}},
	{
		a: fqElem{0x843420f1d8dadbd6, 0x31f010c9183fcdb2, 0x436330b527a76049, 0x13d47447f11adfe4},
		b: fqElem{0xef494023a857fa74, 0x2a925d02d5ab101a, 0x83b015829ba62f10, 0x2539111d0c13aea3},
	},
}

// frobeniusCoeffFQ12C1[k] = nonResidue^((q^k - 1)/6), for k in 0..11, as Fq2.
var frobeniusCoeffFQ12C1 = [12]fq2Elem{
	{a: fqElem{0xd35d438dc58f0d9d, 0x0a78eb28f5c70b3d, 0x666ea36f7879462c, 0x0e0a77c19a07df2f}},
	{
		a: fqElem{0xaf9ba69633144907, 0xca6b1d7387afb78a, 0x11bded5ef08a2087, 0x02f34d751a1f3a7c},
		b: fqElem{0xa222ae234c492d72, 0xd00f02a4565de15b, 0xdc2ff3a253dfc926, 0x10a75716b3899551},
	},
	{a: fqElem{0xca8d800500fa1bf2, 0xf0c5d61468b39769, 0x0e201271ad0d4418, 0x04290f65bad856e6}},
	{
		a: fqElem{0x365316184e46d97d, 0x0af7129ed4c96d9f, 0x659da72fca1009b5, 0x08116d8983a20d23},
		b: fqElem{0xb1df4af7c39c1939, 0x3d9f02878a73bf7f, 0x9b2220928caf0ae0, 0x26684515eff054a6},
	},
	{a: fqElem{0x3350c88e13e80b9c, 0x7dce557cdb5e56b9, 0x6001b4b8b615564a, 0x2682e617020217e0}},
	{
		a: fqElem{0x86b76f821b329076, 0x408bf52b4d19b614, 0x53dfb9d0d985e92d, 0x051e20146982d2a7},
		b: fqElem{0x0fbc9cd47752ebc7, 0x6d8fffe33415de24, 0xbef22cf038cf41b9, 0x15c0edff3c66bf54},
	},
	{a: fqElem{0x68c3488912edefaa, 0x8d087f6872aabf4f, 0x51e1a24709081231, 0x2259d6b14729c0fa}},
	{
		a: fqElem{0x8c84e580a568b440, 0xcd164d1de0c21302, 0xa692585790f737d5, 0x2d7100fdc71265ad},
		b: fqElem{0x99fdddf38c33cfd5, 0xc77267ed1213e931, 0xdc2052142da18f36, 0x1fbcf75c2da80ad7},
	},
	{a: fqElem{0x71930c11d782e155, 0xa6bb947cffbe3323, 0xaa303344d4741444, 0x2c3b3f0d26594943}},
	{
		a: fqElem{0x05cd75fe8a3623ca, 0x8c8a57f293a85cee, 0x52b29e86b7714ea8, 0x2852e0e95d8f9306},
		b: fqElem{0x8a41411f14e0e40e, 0x59e26809ddfe0b0d, 0x1d2e2523f4d24d7d, 0x09fc095cf1414b83},
	},
	{a: fqElem{0x08cfc388c494f1ab, 0x19b315148d1373d4, 0x584e90fdcb6c0213, 0x09e1685bdf2f8849}},
	{
		a: fqElem{0xb5691c94bd4a6cd1, 0x56f575661b581478, 0x64708be5a7fb6f30, 0x2b462e5e77aecd82},
		b: fqElem{0x2c63ef42612a1180, 0x29f16aae345bec69, 0xf95e18c648b216a4, 0x1aa36073a4cae0d4},
	},
}

// xiToQMinus1Over2 is the non-residue 9+u raised to (q-1)/2. The G2
// precompute multiplies the y coordinate of its first trailing Frobenius
// point, pi(Q), by it.
var xiToQMinus1Over2 = fq2Elem{
	a: fqElem{0xe4bbdd0c2936b629, 0xbb30f162e133bacb, 0x31a9d1b6f9645366, 0x253570bea500f8dd},
	b: fqElem{0xa1d77ce45ffe77c7, 0x07affd117826d1db, 0x6d16bd27bb7edc6b, 0x2c87200285defecc},
}

// g2GenX0, g2GenX1, g2GenY0, g2GenY1 are the Montgomery-form coordinates of
// the canonical G2 generator on the sextic twist.
var (
	g2GenX0 = fqElem{0x8e83b5d102bc2026, 0xdceb1935497b0172, 0xfbb8264797811adf, 0x19573841af96503b}
	g2GenX1 = fqElem{0xafb4737da84c6140, 0x6043dd5a5802d8c4, 0x09e950fc52a02f86, 0x14fef0833aea7b6b}
	g2GenY0 = fqElem{0x619dfa9d886be9f6, 0xfe7fd297f59e9b78, 0xff9e1a62231b7dfe, 0x28fd7eebae9e4206}
	g2GenY1 = fqElem{0x64095b56c71856ee, 0xdc57f922327d3cbb, 0x55f935be33351076, 0x0da4a0e693fd6482}
)

// twistB is the curve coefficient of the sextic twist, 3/(9+u) in Fq2. It
// is consulted only by the test-side curve-membership helpers in §12 of
// the design -- the Miller loop itself never evaluates the twist equation.
var twistB = fq2Elem{
	a: fqElem{0x3bf938e377b802a8, 0x020b1b273633535d, 0x26b7edf049755260, 0x2514c6324384a86d},
	b: fqElem{0x38e7ecccd1dcff67, 0x65f0b37d93ce0d3e, 0xd749d0dd22ac00aa, 0x0141b9ce4a688d4d},
}

// gtGenerator is the fixed Fq12 generator of the order-r subgroup; it is
// the canonical Gt generator returned by Gt.Generator().
var gtGenerator = Fq12{
	a: fq6Elem{
		c0: fq2Elem{
			a: fqElem{0xc556f62b2a98671d, 0x23a59ac167bcf363, 0x5ef208445f5f6f37, 0x12adf27ccb29382a},
			b: fqElem{0x2e02a64acbd60549, 0xd618018ea58e4add, 0x14d585f1a45ba647, 0x1832226987c434fc},
		},
		c1: fq2Elem{
			a: fqElem{0x2306e4312363b991, 0x465f6072d4023bf4, 0xa2ff062a4a77e736, 0x076ea6f18435864a},
			b: fqElem{0x172d1f257a4d598e, 0xddf5bc7b7ffb5ac0, 0xae0b22c0bbb0f602, 0x1b158f3c2fae9b18},
		},
		c2: fq2Elem{
			a: fqElem{0x5cf9cc917da86724, 0xc799dc487a0b2753, 0x0df2027bf1de17a7, 0x197cda6cc3e20636},
			b: fqElem{0xf16c96d081754cdb, 0xce0394312bceeb55, 0x644e4dcf1f01ff0a, 0x0cbea85ee0b236cc},
		},
	},
	b: fq6Elem{
		c0: fq2Elem{
			a: fqElem{0x1bb0ce0def1b82a1, 0x4c4c9fe1cadefa95, 0x746d9990cb12b27e, 0x13495c08e5d415c5},
			b: fqElem{0x9458abcb56d24998, 0xb17540bd2a9e5adb, 0x9a9983c82e401a9f, 0x1614817a84c16291},
		},
		c1: fq2Elem{
			a: fqElem{0x8975b68a2bab1f9c, 0x2fdd826b796e0f35, 0x6a90a35fa03dfaa5, 0x1ffef4581607fc37},
			b: fqElem{0x7002907c28ebfe11, 0x7b0591d3d080da67, 0xde7e5aa2181f138e, 0x210e437dfc43d951},
		},
		c2: fq2Elem{
			a: fqElem{0x988ae2485b36cf53, 0x5091cc0581334e54, 0xda7903229312ca0f, 0x2a2341538eaee95c},
			b: fqElem{0xd34bab373157aa84, 0x3511ed44fd0d8598, 0x67e42a0bc2ced972, 0x2b8f1d5dfd20c55b},
		},
	},
}

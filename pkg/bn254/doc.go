// Package bn254 implements the optimal ate pairing on the BN254
// (Barreto-Naehrig) curve: a bilinear map e: G1 x G2 -> GT built from a
// 256-bit Montgomery prime field, its Fq2/Fq6/Fq12 tower, and a
// NAF-driven Miller loop followed by a Fuentes-Castaneda final
// exponentiation.
//
// Field elements carry no side-channel guarantees beyond the branchless
// conditional subtraction used in limb arithmetic. Miller-loop control
// flow depends only on the public BN parameter, so this is adequate for
// pairings over public inputs but not for secret-dependent scalars.
package bn254

// Package dpfgroup is a second Distributed Point Function construction,
// identical in tree shape to package dpf but evaluated over the base field
// of the secp256k1 curve instead of the 31-bit Mersenne prime, for callers
// that want a field wide enough to carry a cryptographic commitment to the
// share alongside the share itself.
//
// It follows the same Gen/Eval/Convert structure of Boyle, Gilboa and Ishai,
// "Function Secret Sharing: Improvements and Extensions" (CCS 2016, revised
// 2018: https://eprint.iacr.org/2018/707.pdf), restricted like package dpf to
// a single non-zero output (beta fixed per key, never a vector).
package dpfgroup

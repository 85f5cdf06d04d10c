// Package dpf implements a two-party Distributed Point Function over the
// 31-bit Mersenne field, following the tree construction of Boyle, Gilboa
// and Ishai, "Function Secret Sharing: Improvements and Extensions" (CCS
// 2016, revised 2018: https://eprint.iacr.org/2018/707.pdf).
//
// Gen produces a pair of keys k0, k1 for a secret index alpha. Evaluating
// both keys at any input x and summing the results modulo p yields 1 if
// x == alpha and 0 otherwise; neither key alone reveals alpha.
package dpf

// SPDX-License-Identifier: MIT

// Package table ships the 4×4 table of structure constants M₃ = R^{⊥3} and
// a small matrix algebra over A⊗A⊗A to combine it with.
//
// What & Why:
//
//	M is static data: sixteen lincomb.Combination values transcribed from
//	the hand derivation. Nothing here derives or validates the entries;
//	callers use them as ordinary lincomb operands, e.g.
//
//	  x := lincomb.Mul(table.M[0][1], table.M[1][2])
//
//	Grid adds the 4×4 matrix product over the ring A⊗A⊗A, so properties of
//	M as a matrix (such as M·M) can be computed exactly.
//
// Concurrency:
//
//	M is built during package initialisation and never written, so any
//	number of goroutines may read it. MatMul computes cells in parallel.
package table

// SPDX-License-Identifier: MIT

// Package tensor lifts the word algebra to the threefold tensor power A⊗A⊗A.
//
// A basis element w1⊗w2⊗w3 is a Triple of canonical words. Triple is a
// fixed-size array, so it is comparable and serves directly as a map key
// for sparse linear combinations (see package lincomb).
//
// Multiplication is componentwise: (a⊗b⊗c)·(x⊗y⊗z) = ax⊗by⊗cz.
package tensor

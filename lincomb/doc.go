// SPDX-License-Identifier: MIT

// Package lincomb implements exact integer linear combinations over the basis
// tensors of A⊗A⊗A.
//
// 🚀 What is a Combination?
//
//	A finite formal sum Σ cᵢ·tᵢ with integer coefficients cᵢ ≠ 0 and basis
//	tensors tᵢ (tensor.Triple). It is stored sparsely as a map; a triple
//	that is absent has coefficient 0.
//
// ✨ Key properties:
//   - Sparse-zero invariant: no stored coefficient is ever 0, also after
//     partial sums cancel during Mul/Add.
//   - Immutable: every operation returns a fresh Combination and never
//     mutates its operands, so values can be shared across goroutines.
//   - Deterministic output: Terms and String sort by tensor.Compare.
//
// ⚙️ Usage:
//
//	x := lincomb.Term(tensor.New(word.P, word.One, word.One), 1)  // p⊗1⊗1
//	y := lincomb.Term(tensor.New(word.One, word.Q, word.One), 1)  // 1⊗q⊗1
//	fmt.Println(lincomb.Mul(x, y))                                // p⊗q⊗1
//
// Input policy:
//
//	New and FromTerms are strict by default: a zero coefficient fails with
//	ErrInvalidLinearCombination. WithPruneZeros switches to silent removal.
//
// Coefficients are int64. Mul is O(|x|·|y|) basis products plus map work.
package lincomb

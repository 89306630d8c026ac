// Package models4plus is an exact integer toolkit for the algebra A generated
// by two idempotents p and q, its third tensor power A⊗A⊗A, and the 4×4
// matrix of A⊗3 combinations that models a projection in M₄(A⊗3).
//
// 🚀 What is model-s4plus?
//
//	A small, dependency-light library that brings together:
//		• Alternating words in p,q with O(1) multiplication (word/)
//		• Basis tensors w₁⊗w₂⊗w₃ as comparable map keys (tensor/)
//		• Sparse ℤ-combinations with the never-store-zero invariant (lincomb/)
//		• The structure-constant table M₃ and grid arithmetic (table/)
//		• A SQLite catalogue of named combinations (internal/store/)
//		• HTML term reports (internal/chart/)
//		• The pqalg command line (cmd/pqalg/)
//
// ✨ Why another algebra package?
//
//   - Exact – int64 coefficients, no floating point anywhere
//   - Canonical – a word is (start, length), so == is semantic equality
//   - Immutable – every operation returns a fresh value, safe to share
//   - Checkable – characters A→ℤ turn every identity into integer arithmetic
//
// Layout:
//
//	word/     Letter, Word, Mul, Parse, characters
//	tensor/   Triple (A⊗3 basis element), componentwise Mul
//	lincomb/  Combination, Mul/Add/Sub/Scale, YAML/JSON codecs, fingerprints
//	table/    Grid, M, MatMul, IsIdempotent
//
// Quick example:
//
//	sq := table.MatMul(table.M, table.M)
//	fmt.Println(table.IsIdempotent(table.M), sq.TermCounts())
//
//	go get github.com/nfaross/model-s4plus
package models4plus

// SPDX-License-Identifier: MIT

// Package word implements the algebra A generated by two projections p and q.
//
// 🚀 What is A?
//
//	A is the free unital algebra on two letters p and q subject only to
//	p·p = p and q·q = q. Nothing forces p and q to commute, so every basis
//	element of A is an alternating word: 1, p, q, pq, qp, pqp, qpq, …
//
// ✨ Representation:
//
//	An alternating word is fixed by its first letter and its length, so a
//	Word stores exactly that pair:
//
//	  1     ⇒ (NoLetter, 0)
//	  pqp   ⇒ (LetterP, 3)
//	  qpqp  ⇒ (LetterQ, 4)
//
//	Word fields are unexported; every Word in circulation comes from New,
//	Parse, the One/P/Q values or Mul, and therefore is canonical. The zero
//	value of Word is the identity 1.
//
// ⚙️ Usage:
//
//	import "github.com/nfaross/model-s4plus/word"
//
//	pq := word.Mul(word.P, word.Q)   // "pq"
//	pqp := word.Mul(pq, word.P)      // "pqp"
//	same := word.Mul(pqp, word.P)    // "pqp", the two p's merge
//
// Performance:
//
//   - Mul, Last, Compare: O(1), no allocation.
//   - String, Letters: O(len).
package word

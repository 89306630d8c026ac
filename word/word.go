// SPDX-License-Identifier: MIT

package word

import (
	"fmt"
	"strings"
)

// Letter names a generator of A. NoLetter stands for the empty word 1.
type Letter uint8

const (
	// NoLetter is the start of the empty word 1.
	NoLetter Letter = iota

	// LetterP is the projection p.
	LetterP

	// LetterQ is the projection q.
	LetterQ
)

// Other returns the opposite generator: p ↔ q. NoLetter maps to itself.
func (l Letter) Other() Letter {
	switch l {
	case LetterP:
		return LetterQ
	case LetterQ:
		return LetterP
	default:
		return NoLetter
	}
}

// String renders a letter as "p", "q" or "1".
func (l Letter) String() string {
	switch l {
	case LetterP:
		return "p"
	case LetterQ:
		return "q"
	case NoLetter:
		return "1"
	default:
		return fmt.Sprintf("Letter(%d)", uint8(l))
	}
}

// Word is an alternating word in p and q stored canonically as (start, length).
// Invariant: n == 0 ⇔ start == NoLetter.
// Word is comparable; == is semantic equality.
type Word struct {
	start Letter // first letter; NoLetter for 1
	n     int    // number of letters
}

// Basis words used everywhere.
var (
	// One is the identity 1 (also the zero value of Word).
	One = Word{}

	// P is the single-letter word "p".
	P = Word{start: LetterP, n: 1}

	// Q is the single-letter word "q".
	Q = Word{start: LetterQ, n: 1}
)

// New returns the alternating word of length n that begins with start.
//
// Errors:
//   - ErrInvalidWord if n < 0, if n == 0 with start != NoLetter,
//     if n > 0 with start == NoLetter, or if start is not a known letter.
//
// Complexity: O(1).
func New(start Letter, n int) (Word, error) {
	switch {
	case n < 0:
		return One, wordErrorf("New", ErrInvalidWord)
	case start > LetterQ:
		return One, wordErrorf("New", ErrInvalidWord)
	case (n == 0) != (start == NoLetter):
		return One, wordErrorf("New", ErrInvalidWord)
	}

	return Word{start: start, n: n}, nil
}

// MustNew is New for static data; it panics on an invalid pair.
func MustNew(start Letter, n int) Word {
	w, err := New(start, n)
	if err != nil {
		panic(fmt.Sprintf("word: MustNew(%v, %d): %v", start, n, err))
	}

	return w
}

// Start returns the first letter, NoLetter for 1.
func (w Word) Start() Letter { return w.start }

// Len returns the number of letters.
func (w Word) Len() int { return w.n }

// IsOne reports whether w is the identity.
func (w Word) IsOne() bool { return w.n == 0 }

// Last returns the final letter of w: the start for odd lengths,
// the other letter for even lengths. Last(1) is NoLetter.
func (w Word) Last() Letter {
	if w.n == 0 {
		return NoLetter
	}
	if w.n%2 == 1 {
		return w.start
	}

	return w.start.Other()
}

// Letters expands w into its letter sequence (nil for 1).
func (w Word) Letters() []Letter {
	if w.n == 0 {
		return nil
	}
	out := make([]Letter, w.n)
	l := w.start
	for i := range out {
		out[i] = l
		l = l.Other()
	}

	return out
}

// String renders w as "1", "p", "pq", "qpq", ...
func (w Word) String() string {
	if w.n == 0 {
		return "1"
	}
	var sb strings.Builder
	sb.Grow(w.n)
	for _, l := range w.Letters() {
		sb.WriteString(l.String())
	}

	return sb.String()
}

// Parse is the inverse of String. It accepts "1" for the identity and
// otherwise a non-empty alternating run of 'p' and 'q'.
//
// Errors:
//   - ErrInvalidWord for the empty string, unknown runes or a repeated
//     neighbour such as "pp" (only canonical spellings are accepted).
func Parse(s string) (Word, error) {
	s = strings.TrimSpace(s)
	if s == "1" {
		return One, nil
	}
	if s == "" {
		return One, wordErrorf("Parse", ErrInvalidWord)
	}

	var start, prev Letter
	for i, r := range s {
		var l Letter
		switch r {
		case 'p':
			l = LetterP
		case 'q':
			l = LetterQ
		default:
			return One, wordErrorf(fmt.Sprintf("Parse(%q)", s), ErrInvalidWord)
		}
		if i == 0 {
			start = l
		} else if l == prev {
			return One, wordErrorf(fmt.Sprintf("Parse(%q)", s), ErrInvalidWord)
		}
		prev = l
	}

	// Only ASCII runes survive the switch, so byte length is letter count.
	return Word{start: start, n: len(s)}, nil
}

// Compare orders words by length, then by start letter (p before q).
// It returns -1, 0 or +1 and is consistent with ==.
func Compare(a, b Word) int {
	switch {
	case a.n < b.n:
		return -1
	case a.n > b.n:
		return 1
	case a.start < b.start:
		return -1
	case a.start > b.start:
		return 1
	}

	return 0
}

// SPDX-License-Identifier: MIT

package word

// Character is an algebra homomorphism A → ℤ. Since p and q are idempotent
// they can only go to 0 or 1, so a Character is fixed by two booleans.
type Character struct {
	P bool // image of p is 1 when set, else 0
	Q bool // image of q is 1 when set, else 0
}

// Augmentation sends both projections to 1, hence every word to 1.
var Augmentation = Character{P: true, Q: true}

// Characters lists all four characters of A.
var Characters = [4]Character{
	{P: false, Q: false},
	{P: true, Q: false},
	{P: false, Q: true},
	{P: true, Q: true},
}

// Eval returns χ(w) ∈ {0, 1}.
// Words of length ≥ 2 contain both letters.
func (c Character) Eval(w Word) int64 {
	var ok bool
	switch {
	case w.n == 0:
		ok = true
	case w.n == 1 && w.start == LetterP:
		ok = c.P
	case w.n == 1:
		ok = c.Q
	default:
		ok = c.P && c.Q
	}
	if ok {
		return 1
	}

	return 0
}

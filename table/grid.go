// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nfaross/model-s4plus/lincomb"
	"github.com/nfaross/model-s4plus/tensor"
	"github.com/nfaross/model-s4plus/word"
)

// Size is the side length of a Grid.
const Size = 4

// ErrOutOfRange indicates a row or column index outside [0, Size).
var ErrOutOfRange = errors.New("table: index out of range")

// Grid is a Size×Size matrix with entries in A⊗A⊗A. The zero value is the
// zero matrix.
type Grid [Size][Size]lincomb.Combination

// At returns g[i][j].
//
// Errors:
//   - ErrOutOfRange if i or j is outside [0, Size).
func (g Grid) At(i, j int) (lincomb.Combination, error) {
	if i < 0 || i >= Size || j < 0 || j >= Size {
		return lincomb.Zero(), fmt.Errorf("At(%d, %d): %w", i, j, ErrOutOfRange)
	}

	return g[i][j], nil
}

// Identity returns the identity grid: Unit on the diagonal, Zero elsewhere.
func Identity() Grid {
	var g Grid
	for i := 0; i < Size; i++ {
		g[i][i] = lincomb.Unit()
	}

	return g
}

// MatMul returns the matrix product a·b, (a·b)[i][j] = Σ_k a[i][k]·b[k][j].
//
// Implementation:
//   - One goroutine per output cell; each writes only its own cell of the
//     result array, and a and b are immutable, so no locking is needed.
//   - Sum is order-independent, hence the output is deterministic.
//
// Complexity: Size³ lincomb.Mul calls.
func MatMul(a, b Grid) Grid {
	var out Grid
	var wg sync.WaitGroup
	wg.Add(Size * Size)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			go func(i, j int) {
				defer wg.Done()
				var parts [Size]lincomb.Combination
				for k := 0; k < Size; k++ {
					parts[k] = lincomb.Mul(a[i][k], b[k][j])
				}
				out[i][j] = lincomb.Sum(parts[:]...)
			}(i, j)
		}
	}
	wg.Wait()

	return out
}

// Add returns the entrywise sum a + b.
func Add(a, b Grid) Grid {
	var out Grid
	for i := range out {
		for j := range out[i] {
			out[i][j] = lincomb.Add(a[i][j], b[i][j])
		}
	}

	return out
}

// Sub returns the entrywise difference a − b.
func Sub(a, b Grid) Grid {
	var out Grid
	for i := range out {
		for j := range out[i] {
			out[i][j] = lincomb.Sub(a[i][j], b[i][j])
		}
	}

	return out
}

// Equal reports whether g and other agree in every cell.
func (g Grid) Equal(other Grid) bool {
	for i := range g {
		for j := range g[i] {
			if !lincomb.Equal(g[i][j], other[i][j]) {
				return false
			}
		}
	}

	return true
}

// IsZero reports whether every cell is zero.
func (g Grid) IsZero() bool {
	return g.Equal(Grid{})
}

// IsIdempotent reports whether g·g = g.
func IsIdempotent(g Grid) bool {
	return MatMul(g, g).Equal(g)
}

// TermCounts returns the number of terms in each cell.
func (g Grid) TermCounts() [Size][Size]int {
	var out [Size][Size]int
	for i := range g {
		for j := range g[i] {
			out[i][j] = g[i][j].Len()
		}
	}

	return out
}

// Evaluate applies a character of A⊗A⊗A cellwise, giving an integer matrix.
// Evaluate(MatMul(a, b)) equals the integer product of Evaluate(a) and
// Evaluate(b).
func (g Grid) Evaluate(chars [tensor.Arity]word.Character) [Size][Size]int64 {
	var out [Size][Size]int64
	for i := range g {
		for j := range g[i] {
			out[i][j] = lincomb.Evaluate(g[i][j], chars)
		}
	}

	return out
}

// String renders one "[i][j] = ..." line per cell.
func (g Grid) String() string {
	var sb strings.Builder
	for i := range g {
		for j := range g[i] {
			fmt.Fprintf(&sb, "[%d][%d] = %s\n", i, j, g[i][j])
		}
	}

	return sb.String()
}

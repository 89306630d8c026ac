// SPDX-License-Identifier: MIT
package word_test

import (
	"testing"

	"github.com/nfaross/model-s4plus/word"
)

var sinkWord word.Word

// BenchmarkMul measures the O(1) normal-form product.
func BenchmarkMul(b *testing.B) {
	x := word.MustNew(word.LetterP, 7)
	y := word.MustNew(word.LetterP, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkWord = word.Mul(x, y)
	}
}

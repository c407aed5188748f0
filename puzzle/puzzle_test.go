package puzzle

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calcsafe/arith"
)

func TestExpressionWellFormed(t *testing.T) {
	g := NewGenerator([]int{5, 5, 5, 5, 5}, rand.New(rand.NewSource(1)))
	for i := 0; i < 200; i++ {
		src := g.Expression()
		_, err := arith.ParseString(src)
		require.NoError(t, err, "candidate %q", src)
		digits := strings.Map(func(r rune) rune {
			if '0' <= r && r <= '9' {
				return r
			}
			return -1
		}, src)
		assert.Equal(t, "55555", digits, "candidate %q", src)
		assert.Equal(t, strings.Count(src, "("), strings.Count(src, ")"), "candidate %q", src)
	}
}

func TestGeneratorCopiesDigits(t *testing.T) {
	digits := []int{1, 2, 3}
	g := NewGenerator(digits, rand.New(rand.NewSource(1)))
	digits[0] = 9
	src := g.Expression()
	assert.NotContains(t, src, "9")
}

func TestSearchFinds(t *testing.T) {
	res, ok := Search([]int{5, 5}, 10, 10000, rand.New(rand.NewSource(7)))
	require.True(t, ok, "5+5 and 5*... should appear within the budget")
	assert.Equal(t, 10.0, res.Value)
	assert.Greater(t, res.Attempts, 0)
	assert.LessOrEqual(t, res.Attempts, 10000)

	a, err := arith.ParseString(res.Expr)
	require.NoError(t, err)
	r, err := a.Eval()
	require.NoError(t, err)
	f, _ := r.Float64()
	assert.Equal(t, 10.0, f)
}

func TestSearchExhaustsBudget(t *testing.T) {
	// Two fives can't make 7.
	res, ok := Search([]int{5, 5}, 7, 200, rand.New(rand.NewSource(3)))
	assert.False(t, ok)
	assert.Zero(t, res)
}

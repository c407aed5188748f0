// Package puzzle assembles random candidate expressions over a fixed
// list of digits and searches them for a target value, e.g. forming the
// numbers 1 to 15 from the digits 5, 5, 5, 5, 5.
package puzzle

import (
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/calcsafe/arith"
)

const (
	// bracketChance is the probability that a digit opens a group.
	bracketChance = 0.3
	// closeChance is the probability that an open group closes after a
	// digit, once the group holds more than one.
	closeChance = 0.5
)

// Generator produces candidate expression strings over a fixed digit
// list. Every candidate uses all digits in order, joined by random
// operators, with randomly placed balanced parentheses.
type Generator struct {
	digits []int
	rng    *rand.Rand
}

// NewGenerator creates a generator over the given digits. The digits are
// copied. If rng is nil, the generator seeds itself from the current
// time.
func NewGenerator(digits []int, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		digits: append([]int(nil), digits...),
		rng:    rng,
	}
}

// Expression assembles one candidate expression. The result always
// parses; it may still fail to evaluate, e.g. by dividing by zero.
func (g *Generator) Expression() string {
	var b strings.Builder
	open := 0
	for i, d := range g.digits {
		opened := false
		if g.rng.Float64() < bracketChance {
			b.WriteByte('(')
			open++
			opened = true
		}
		b.WriteString(strconv.Itoa(d))
		if open > 0 && !opened && g.rng.Float64() < closeChance {
			b.WriteByte(')')
			open--
		}
		if i+1 < len(g.digits) {
			op := arith.ByPrecedence[g.rng.Intn(len(arith.ByPrecedence))]
			b.WriteString(op.String())
		}
	}
	for open > 0 {
		b.WriteByte(')')
		open--
	}
	return b.String()
}

// Result describes a successful search.
type Result struct {
	// Expr is the candidate expression that hit the goal.
	Expr string
	// Value is its evaluated value.
	Value float64
	// Attempts is the number of candidates tested, including Expr.
	Attempts int
}

// Search generates and tests candidates until one evaluates to goal or
// the attempt budget is spent. A candidate that fails to evaluate, e.g.
// by dividing by zero, is discarded and the search moves on. The rng is
// passed to NewGenerator.
func Search(digits []int, goal float64, attempts int, rng *rand.Rand) (Result, bool) {
	g := NewGenerator(digits, rng)
	want := big.NewFloat(goal)
	for i := 1; i <= attempts; i++ {
		src := g.Expression()
		a, err := arith.ParseString(src)
		if err != nil {
			// Candidates are well formed by construction, but a bad one
			// is merely useless, not fatal.
			continue
		}
		r, err := a.Eval()
		if err != nil {
			continue
		}
		if r.Cmp(want) == 0 {
			v, _ := r.Float64()
			return Result{Expr: src, Value: v, Attempts: i}, true
		}
	}
	return Result{}, false
}

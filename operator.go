package arith

import (
	"strconv"
	"strings"
)

// Operator is one of the five recognized binary operators. The set is
// closed; no other value is ever valid.
type Operator rune

const (
	Pow Operator = '^'
	Mul Operator = '*'
	Div Operator = '/'
	Sub Operator = '-'
	Add Operator = '+'
)

// Operators contains the runes which are considered to be operators.
const Operators = "^*/-+"

// ByPrecedence lists every operator from loosest to tightest binding.
// The tree builder tries loose operators first, so the loosest operator
// present ends up at the root of the tree, evaluated last.
var ByPrecedence = [...]Operator{Add, Sub, Div, Mul, Pow}

// Recognized reports whether r is one of the five operator runes.
func Recognized(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// Prec returns the operator's precedence rank. Ranks are total and
// distinct across the five operators; a higher rank binds tighter.
// Panics if op is not a recognized operator.
func (op Operator) Prec() int {
	switch op {
	case Add:
		return 1
	case Sub:
		return 2
	case Div:
		return 3
	case Mul:
		return 4
	case Pow:
		return 5
	}
	panic("arith: invalid operator " + strconv.QuoteRune(rune(op)))
}

func (op Operator) String() string {
	return string(rune(op))
}

// valid reports whether op is a member of the operator set.
func (op Operator) valid() bool {
	return Recognized(rune(op))
}

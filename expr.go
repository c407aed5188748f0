package arith

import (
	"math"
	"math/big"
	"strconv"
)

// Operand is one side of a binary expression: either a Number literal or
// a nested *Expression. The union is closed; no other operand shape is
// legal, which is the boundary that keeps arbitrary input away from the
// operators.
type Operand interface {
	// Render returns the canonical textual form of the operand.
	Render() string
	// Eval computes the operand's numeric value. Evaluation never
	// mutates the operand; the result is freshly allocated on each call.
	Eval() (*big.Float, error)

	operand()
}

// Number is a numeric literal leaf: an integer or floating-point value
// together with the text it renders as.
type Number struct {
	text string
	val  *big.Float
}

// Lit parses a numeric literal into a Number. The literal must be a
// finite decimal integer or floating-point value, with an optional sign
// and exponent.
func Lit(text string) (Number, error) {
	v, _, err := big.ParseFloat(text, 10, DefaultPrec, big.ToNearestEven)
	if err != nil || v.IsInf() {
		return Number{}, &OperandError{Text: text}
	}
	return Number{text: text, val: v}, nil
}

// Float returns a Number with the given value. Panics if f is not
// finite.
func Float(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("arith: Float on non-finite value " + strconv.FormatFloat(f, 'g', -1, 64))
	}
	v := big.NewFloat(f).SetPrec(DefaultPrec)
	return Number{text: v.Text('g', -1), val: v}
}

// Render returns the literal's text.
func (n Number) Render() string {
	return n.text
}

// Eval returns the literal's value.
func (n Number) Eval() (*big.Float, error) {
	if n.val == nil {
		return nil, &OperandError{Text: n.text}
	}
	return new(big.Float).SetPrec(DefaultPrec).Set(n.val), nil
}

func (n Number) String() string {
	return n.text
}

func (n Number) operand() {}

// Expression is an immutable binary node: a left operand, an operator,
// and a right operand. Once constructed it never changes; evaluation and
// rendering are idempotent.
type Expression struct {
	left  Operand
	right Operand
	op    Operator
	src   string
	paren bool
}

// New constructs an Expression from two operands and an operator. It
// performs the same validation as parsing: each operand must be a valid
// Number or a non-nil *Expression, and op must be a member of the
// operator set.
func New(left, right Operand, op Operator) (*Expression, error) {
	if err := checkOperand(left); err != nil {
		return nil, err
	}
	if err := checkOperand(right); err != nil {
		return nil, err
	}
	if !op.valid() {
		return nil, &OperatorError{Operator: op.String()}
	}
	e := &Expression{left: left, right: right, op: op}
	e.src = left.Render() + op.String() + right.Render()
	return e, nil
}

// checkOperand rejects anything that is not a valid member of the
// operand union. The union is closed by construction, so this guards
// only nil operands and zero-value literals.
func checkOperand(op Operand) error {
	switch op := op.(type) {
	case Number:
		if op.val == nil {
			return &OperandError{Text: op.text}
		}
	case *Expression:
		if op == nil {
			return &OperandError{}
		}
	default:
		return &OperandError{}
	}
	return nil
}

// Parenthesize returns a copy of e whose rendering is wrapped in
// parentheses, so that the copy keeps its grouping when it appears as an
// operand of a looser-binding parent.
func (e *Expression) Parenthesize() *Expression {
	n := *e
	n.paren = true
	return &n
}

// Left returns the left operand.
func (e *Expression) Left() Operand {
	return e.left
}

// Right returns the right operand.
func (e *Expression) Right() Operand {
	return e.right
}

// Op returns the operator.
func (e *Expression) Op() Operator {
	return e.op
}

// Parenthesized reports whether the expression renders inside
// parentheses.
func (e *Expression) Parenthesized() bool {
	return e.paren
}

// Render reconstructs the canonical textual form of the expression.
// The result is not guaranteed to match the parsed source byte for byte,
// but it always parses back to a tree that evaluates to the same value.
func (e *Expression) Render() string {
	if e.paren {
		return "(" + e.src + ")"
	}
	return e.src
}

func (e *Expression) String() string {
	return e.Render()
}

func (e *Expression) operand() {}

// Equal reports whether a and b evaluate to the same value. Two
// differently shaped trees that compute the same number are equal. If
// either operand fails to evaluate, the operands are not equal.
func Equal(a, b Operand) bool {
	x, err := a.Eval()
	if err != nil {
		return false
	}
	y, err := b.Eval()
	if err != nil {
		return false
	}
	return x.Cmp(y) == 0
}

// OperandError is an error indicating an operand that is neither a
// numeric literal nor an expression.
type OperandError struct {
	// Text is the literal text of the rejected operand, if it had any.
	Text string
}

func (err *OperandError) Error() string {
	if err.Text != "" {
		return "invalid operand " + strconv.Quote(err.Text) + ": operands must be numeric literals or expressions"
	}
	return "invalid operand: operands must be numeric literals or expressions"
}

package arith

import (
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision in bits to which values are computed.
const DefaultPrec = 64

// Eval computes the expression's numeric value by resolving both
// operands and applying the operator. A tree can be well formed and
// still fail to evaluate; such failures are reported as *EvalError.
//
// The cost of exponentiation grows with the magnitude of the exponent,
// well before the result overflows. Callers evaluating random or
// untrusted candidates should bound the literals they admit.
func (e *Expression) Eval() (*big.Float, error) {
	l, err := e.left.Eval()
	if err != nil {
		return nil, err
	}
	r, err := e.right.Eval()
	if err != nil {
		return nil, err
	}
	switch e.op {
	case Add:
		return finite(l.Add(l, r), Add)
	case Sub:
		return finite(l.Sub(l, r), Sub)
	case Mul:
		return finite(l.Mul(l, r), Mul)
	case Div:
		if r.Sign() == 0 {
			return nil, &EvalError{Op: Div, Reason: "division by zero"}
		}
		return finite(l.Quo(l, r), Div)
	case Pow:
		return pow(l, r)
	}
	panic("arith: invalid operator " + strconv.QuoteRune(rune(e.op)))
}

// pow computes l raised to r. Exponentiation follows real-number power
// semantics: a negative base is legal only with an integer exponent, and
// the result is real, never complex.
func pow(l, r *big.Float) (*big.Float, error) {
	switch {
	case l.Sign() == 0:
		if r.Sign() < 0 {
			return nil, &EvalError{Op: Pow, Reason: "zero base with a negative exponent"}
		}
		if r.Sign() == 0 {
			return l.SetInt64(1), nil
		}
		return l, nil
	case l.Signbit():
		if !r.IsInt() {
			return nil, &EvalError{Op: Pow, Reason: "fractional power of a negative base"}
		}
		// (-x)^n = x^n for even n, -(x^n) for odd n.
		n, _ := r.Int(nil)
		odd := n.Bit(0) == 1
		l.Neg(l)
		bigfloat.Pow(l, l, r)
		if odd {
			l.Neg(l)
		}
		return finite(l, Pow)
	}
	return finite(bigfloat.Pow(l, l, r), Pow)
}

// finite passes v through unless it overflowed to an infinity.
func finite(v *big.Float, op Operator) (*big.Float, error) {
	if v.IsInf() {
		return nil, &EvalError{Op: op, Reason: "overflow"}
	}
	return v, nil
}

// EvalError is an error produced while evaluating a well-formed
// expression, such as a division by zero. Callers driving many candidate
// expressions should treat it as "this candidate is invalid" rather than
// as fatal; retrying the same tree always reproduces the same error.
type EvalError struct {
	// Op is the operator whose evaluation failed.
	Op Operator
	// Reason describes the failure.
	Reason string
}

func (err *EvalError) Error() string {
	return "cannot evaluate " + strconv.Quote(err.Op.String()) + ": " + err.Reason
}

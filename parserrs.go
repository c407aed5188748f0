package arith

import "strconv"

// BracketError is an error indicating unbalanced parentheses in the
// input. It implements SyntaxError.
type BracketError struct {
	// Col is the position of the token that revealed the imbalance.
	Col int
	// Left is the opening parenthesis, if one was open.
	Left string
	// Right is the closing parenthesis, if one was found.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator where none is legal,
// e.g. "*" at the start of an expression or "+" applied to a group. It
// implements SyntaxError. The parse-time Col is zero when the error
// comes from direct node construction with an unrecognized operator.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the offending operator text.
	Operator string
	// Unary is whether the operator appeared where a term was expected.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Col == 0 {
		return "unrecognized operator " + strconv.Quote(err.Operator)
	}
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "invalid "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// TermError is an error indicating a term where an operator was
// expected, e.g. the second number of "5 5" or the group of "2(3)".
// It implements SyntaxError.
type TermError struct {
	// Col is the position of the term.
	Col int
	// Text is the token that started the term.
	Text string
}

func (err *TermError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after a term; expected an operator")
}

func (err *TermError) Pos() int {
	return err.Col
}

// EmptyExprError is an error indicating an empty subexpression, e.g. the
// contents of "()" or the right operand of "5+". It implements
// SyntaxError.
type EmptyExprError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExprError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExprError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// SyntaxError is an error with position information. Every error
// resulting from parsing invalid input implements SyntaxError; a parse
// that fails returns no tree, partial or otherwise.
type SyntaxError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused the error.
	Pos() int
}

var (
	_ SyntaxError = (*LexError)(nil)
	_ SyntaxError = (*BracketError)(nil)
	_ SyntaxError = (*OperatorError)(nil)
	_ SyntaxError = (*TermError)(nil)
	_ SyntaxError = (*EmptyExprError)(nil)
)

package arith

import (
	"io"
	"strings"
)

// Expr = num | '-' num | '+' num | '-' '(' Expr ')' | '(' Expr ')'
//      | Expr op Expr
// op   = '+' | '-' | '/' | '*' | '^'

// Parse parses an expression into its operand tree: an *Expression for a
// compound expression, or a bare Number when the whole input denotes a
// single literal. The given options are applied in order. On failure the
// result is nil and the error implements SyntaxError; no partial tree is
// ever returned.
func Parse(src io.RuneScanner, opts ...ParseOption) (Operand, error) {
	scan := lex(src)
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, err := parseterm(scan, &p, exprbinding)
	if err != nil {
		return nil, err
	}
	if n == nil {
		// parseterm only comes back empty on a pushed close bracket.
		tok := scan.must()
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
		return n, nil
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	default:
		panic("arith: expression ended on " + tok.String())
	}
}

// ParseString parses an expression from a string.
func ParseString(src string) (Operand, error) {
	return Parse(strings.NewReader(src))
}

// parseterm parses a single term, folding in binary operators as long as
// they bind tighter than until. If there is no error, then parseterm
// pushes the last token it scans, including EOF. If the input is an
// empty subexpression ended by a close bracket, the result is nil with
// no error; callers create the error in contexts where that is illegal.
func parseterm(scan *lexer, p *parsectx, until binding) (Operand, error) {
	n, err := parselhs(scan, p)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			b := binop(tok.text)
			if !b.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, b)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				return nil, &EmptyExprError{Col: end.pos, End: end.text}
			}
			n, err = New(n, rhs, b.op)
			if err != nil {
				return nil, err
			}
		case tokenNum, tokenOpen:
			// Implicit multiplication is not a thing here.
			return nil, &TermError{Col: tok.pos, Text: tok.text}
		case tokenClose, tokenEOF:
			scan.push(tok)
			return n, nil
		default:
			panic("arith: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term: a literal, a signed
// literal, or a parenthesized group. Whitespace never ends an expression
// where a term is expected.
func parselhs(scan *lexer, p *parsectx) (Operand, error) {
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		return lit(tok.text, tok.pos)
	case tokenOp:
		return parsesigned(scan, p, tok)
	case tokenOpen:
		return parsegroup(scan, p, tok)
	case tokenClose:
		// This might legitimately end an outer subexpression, so let the
		// caller decide what to do.
		scan.push(tok)
		return nil, nil
	case tokenEOF:
		return nil, &EmptyExprError{Col: tok.pos, End: ""}
	default:
		panic("arith: unknown token: " + tok.String())
	}
}

// parsesigned parses a term that begins with an operator token. Only "-"
// and "+" are legal there, as signs, and a sign binds tighter than any
// operator: it folds into the following numeric literal, and a negated
// group becomes a zero-minus node that keeps its grouping so that
// re-rendering cannot change its value.
func parsesigned(scan *lexer, p *parsectx, sign lexToken) (Operand, error) {
	if sign.text != Sub.String() && sign.text != Add.String() {
		return nil, &OperatorError{Col: sign.pos, Operator: sign.text, Unary: true}
	}
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		return lit(sign.text+tok.text, sign.pos)
	case tokenOpen:
		if sign.text == Add.String() {
			return nil, &OperatorError{Col: sign.pos, Operator: sign.text, Unary: true}
		}
		rhs, err := parsegroup(scan, p, tok)
		if err != nil {
			return nil, err
		}
		e, err := New(Float(0), rhs, Sub)
		if err != nil {
			return nil, err
		}
		return e.Parenthesize(), nil
	default:
		scan.push(tok)
		return nil, &EmptyExprError{Col: tok.pos, End: tok.text}
	}
}

// parsegroup parses a parenthesized subexpression, consuming the closing
// bracket. A compound group stays a subtree flagged as parenthesized;
// nothing inside is evaluated at parse time. A group around a bare
// literal is just the literal.
func parsegroup(scan *lexer, p *parsectx, open lexToken) (Operand, error) {
	rhs, err := parseterm(scan, p, exprbinding)
	if err != nil {
		// Reporting an unclosed bracket is more helpful than an empty
		// expression at EOF, if that's what we'd do here.
		if ee, _ := err.(*EmptyExprError); ee != nil && ee.End == "" {
			return nil, &BracketError{Col: ee.Col, Left: open.text}
		}
		return nil, err
	}
	end := scan.must()
	if end.kind != tokenClose {
		// The only other terminator parseterm pushes is EOF.
		return nil, &BracketError{Col: end.pos, Left: open.text}
	}
	if rhs == nil {
		return nil, &EmptyExprError{Col: end.pos, End: end.text}
	}
	if e, ok := rhs.(*Expression); ok {
		return e.Parenthesize(), nil
	}
	return rhs, nil
}

// lit converts a number token to its literal, reporting a lex error for
// numbers the tokenizer accepts but the value domain does not, such as
// exponents too large to represent.
func lit(text string, pos int) (Operand, error) {
	n, err := Lit(text)
	if err != nil {
		return nil, &LexError{Text: text, Kind: "number", Col: pos}
	}
	return n, nil
}

// binding is the strength with which an operator holds its operands
// together during parsing.
type binding struct {
	// rank is the precedence rank. Higher binds tighter.
	rank int8
	// op is the operator to build when this binding is selected.
	op Operator
}

// moreBinding reports whether b binds tighter than than. Ranks are
// distinct and every operator is left-associative, so ties never bind.
func (b binding) moreBinding(than binding) bool {
	return b.rank > than.rank
}

// binop gets the binding for an operator token. The lexer only produces
// recognized operators, so the lookup cannot fail.
func binop(text string) binding {
	op := Operator(text[0])
	return binding{rank: int8(op.Prec()), op: op}
}

// exprbinding is the binding required to parse an entire subexpression.
var exprbinding = binding{rank: -128}

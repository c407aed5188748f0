// Package arith parses arithmetic expressions into explicit expression
// trees and evaluates them. It is a safe stand-in for handing a formula
// string to a general-purpose evaluator: every operand is validated at
// construction time, so nothing but numbers and nested expressions ever
// reaches an operator.
//
// The operator set is closed: "+", "-", "/", "*" and "^", listed from
// loosest to tightest binding. Every rank is distinct and every operator
// is left-associative, so "8-3-2" is "(8-3)-2" and "6/2*3" is "6/(2*3)".
// A "-" or "+" where a term is expected is a sign on the following
// literal, so "-2^-3" is "(-2)^(-3)".
//
// Parsing and evaluation are deterministic and touch no shared state;
// distinct expressions can be parsed and evaluated concurrently, and a
// single tree can be evaluated from any number of goroutines.
package arith

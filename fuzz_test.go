package arith_test

import (
	"errors"
	"testing"

	"github.com/calcsafe/arith"
)

// FuzzParse checks that every input either fails with a positioned syntax
// error or produces a tree whose rendering parses back to the same value.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"5",
		"2+3*4",
		"6/2*3",
		"2^3^2",
		"-2^-3",
		"-(2+3)*4",
		"(5-4)/5+(5*(5+5/-2))-3-2+3*5^2-1-2-3",
		"5/0",
		"0^-1",
		"(5+3",
		"5)",
		"5$3",
		"2(3)",
		"1e-3+.5",
		"5--2",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		a, err := arith.ParseString(s)
		if err != nil {
			var se arith.SyntaxError
			if !errors.As(err, &se) {
				t.Errorf("%T from %q is not a SyntaxError: %v", err, s, err)
			}
			if a != nil {
				t.Errorf("%q gave both a tree and an error", s)
			}
			return
		}
		r := a.Render()
		b, err := arith.ParseString(r)
		if err != nil {
			t.Fatalf("%q rendered %q which failed to parse: %v", s, r, err)
		}
		x, xerr := a.Eval()
		y, yerr := b.Eval()
		if (xerr == nil) != (yerr == nil) {
			t.Fatalf("%q rendered %q but evaluation disagrees: %v vs %v", s, r, xerr, yerr)
		}
		if xerr == nil && x.Cmp(y) != 0 {
			t.Errorf("%q rendered %q but values disagree: %g vs %g", s, r, x, y)
		}
		// Evaluating again must give the same outcome.
		z, zerr := a.Eval()
		if (xerr == nil) != (zerr == nil) {
			t.Fatalf("%q evaluation is not idempotent: %v then %v", s, xerr, zerr)
		}
		if xerr == nil && x.Cmp(z) != 0 {
			t.Errorf("%q evaluation is not idempotent: %g then %g", s, x, z)
		}
	})
}

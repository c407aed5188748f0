package arith_test

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/calcsafe/arith"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"literal", "42", 42},
		{"sub", "5-4", 1},
		{"precedence", "2+3*4", 14},
		{"div", "6/2", 3},
		{"group", "(2+3)*4", 20},
		{"div-before-mul", "6/2*3", 1},
		{"add-before-sub", "8+3-2", 9},
		{"pow-left", "2^3^2", 64},
		{"sign-pow", "-2^-3", -0.125},
		{"neg-square", "-2^2", 4},
		{"sign-div", "5/-2", -2.5},
		{"zero-pow-zero", "0^0", 1},
		{"frac-pow", "4^0.5", 2},
		{"neg-group", "-(2+3)*4", -20},
		{"neg-group-pow", "-(2)^2", 4},
		{"nested", "(5-4)/5+(5*(5+5/-2))-3-2+3*5^2-1-2-3", 76.7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := arith.ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			r, err := a.Eval()
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			f, _ := r.Float64()
			if math.Abs(f-c.want) > 1e-9 {
				t.Errorf("%q evaluated to %g, want %g", c.src, f, c.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		op   arith.Operator
	}{
		{"div-zero", "5/0", arith.Div},
		{"zero-div-zero", "0/0", arith.Div},
		{"div-zero-group", "5/(3-3)", arith.Div},
		{"neg-sqrt", "(2-3)^0.5", arith.Pow},
		{"zero-neg-pow", "0^-1", arith.Pow},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := arith.ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			r, err := a.Eval()
			if err == nil {
				t.Fatalf("%q evaluated to %g", c.src, r)
			}
			var ee *arith.EvalError
			if !errors.As(err, &ee) {
				t.Fatalf("%q gave %T, not EvalError: %v", c.src, err, err)
			}
			if ee.Op != c.op {
				t.Errorf("%q failed on %v, want %v", c.src, ee.Op, c.op)
			}
			if ee.Reason == "" {
				t.Errorf("%q gave an EvalError with no reason", c.src)
			}
		})
	}
}

func TestEvalIdempotent(t *testing.T) {
	a, err := arith.ParseString("6/2*3")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	s := a.Render()
	x, err := a.Eval()
	if err != nil {
		t.Fatalf("first evaluation failed: %v", err)
	}
	y, err := a.Eval()
	if err != nil {
		t.Fatalf("second evaluation failed: %v", err)
	}
	if x.Cmp(y) != 0 {
		t.Errorf("evaluations disagree: %g then %g", x, y)
	}
	if a.Render() != s {
		t.Errorf("evaluation changed rendering from %q to %q", s, a.Render())
	}
}

func TestEvalParallel(t *testing.T) {
	a, err := arith.ParseString("(5-4)/5+(5*(5+5/-2))-3-2+3*5^2-1-2-3")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	want, err := a.Eval()
	if err != nil {
		t.Fatalf("failed to evaluate: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r, err := a.Eval()
				if err != nil {
					t.Errorf("evaluation failed: %v", err)
					return
				}
				if r.Cmp(want) != 0 {
					t.Errorf("evaluated to %g, want %g", r, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func ExampleParse() {
	a, err := arith.ParseString("(5-4)/5+(5*(5+5/-2))-3-2+3*5^2-1-2-3")
	if err != nil {
		panic(err)
	}
	r, err := a.Eval()
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s = %.1f\n", a.Render(), r)
	// Output: (5-4)/5+(5*(5+5/-2))-3-2+3*5^2-1-2-3 = 76.7
}

func BenchmarkEval(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"literal", "5"},
		{"flat", "1+2+3+4+5"},
		{"pow", "2^3^2"},
		{"nested", "(5-4)/5+(5*(5+5/-2))-3-2+3*5^2-1-2-3"},
	}
	for _, c := range cases {
		a, err := arith.ParseString(c.src)
		if err != nil {
			b.Fatalf("%q failed to parse: %v", c.src, err)
		}
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				a.Eval()
			}
		})
	}
}

package calculator_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	calculator "github.com/digitalwithgovinda/advanced-calculator"
)

const (
	deg = calculator.Degrees
	rad = calculator.Radians
)

// near reports whether got is within a relative or absolute tolerance of
// 1e-12 of want.
func near(got, want float64) bool {
	d := math.Abs(got - want)
	return d <= 1e-12 || d <= 1e-12*math.Abs(want)
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		mode calculator.AngleMode
		r    float64
	}{
		{"num", "1", deg, 1},
		{"decimal", ".5", deg, 0.5},
		{"prec", "2+3*4", deg, 14},
		{"paren", "(2+3)*4", deg, 20},
		{"pow-right", "2^3^2", deg, 512},
		{"sub", "4-5-6", deg, -7},
		{"div", "4/5/6", deg, 4.0 / 5.0 / 6.0},
		{"mod", "10%4", deg, 2},
		{"mod-neg", "-7%3", deg, -1},
		{"space", " 1 +\t2\n", deg, 3},

		{"neg-first", "-3+4", deg, 1},
		{"neg-after-op", "3*-4", deg, -12},
		{"neg-paren", "-(2+3)", deg, -5},
		{"neg-neg", "--3", deg, 3},
		{"neg-pow", "-2^2", deg, 4},
		{"pow-neg", "2^-1", deg, 0.5},
		{"pow-frac", "2^0.5", deg, math.Sqrt2},

		{"implicit-pi", "2pi", rad, 2 * math.Pi},
		{"implicit-paren", "2(3+4)", deg, 14},
		{"implicit-parens", "(1+1)(2+2)", deg, 8},
		{"implicit-nums", "2 3", deg, 6},
		{"implicit-func", "2sqrt(9)", deg, 6},
		{"upper", "PI", rad, math.Pi},
		{"e", "e", deg, math.E},
		{"greek", "2π", deg, 2 * math.Pi},

		{"sin-deg", "sin(90)", deg, 1},
		{"sin-rad", "sin(pi/2)", rad, 1},
		{"cos-deg", "cos(180)", deg, -1},
		{"tan-deg", "tan(45)", deg, 1},
		{"asin-deg", "asin(1)", deg, 90},
		{"asin-rad", "asin(1)", rad, math.Pi / 2},
		{"acos-deg", "acos(0.5)", deg, 60},
		{"atan-deg", "atan(1)", deg, 45},
		{"sinh", "sinh(1)", deg, math.Sinh(1)},
		{"sqrt", "sqrt(16)", deg, 4},
		{"fact", "fact(5)", deg, 120},
		{"fact-zero", "fact(0)", deg, 1},
		{"pow", "pow(2,10)", deg, 1024},
		{"pow-args", "pow(2,3)", deg, 8},
		{"pow-exprs", "pow(1+1, 1+2)", deg, 8},
		{"log", "log(1000)", deg, 3},
		{"ln", "ln(e)", deg, 1},
		{"exp", "exp(0)", deg, 1},
		{"abs", "abs(-7)", deg, 7},
		{"nested", "sqrt(pow(3,2)+16)", deg, 5},
		{"call-bare", "sin 30 + 1", deg, 1.5},
		{"call-upper", "SQRT(4)", deg, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.EvalString(c.src, c.mode)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if !near(r, c.r) {
				t.Errorf("wrong result for %q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	var (
		lex = new(*calculator.LexError)
		syn = new(*calculator.SyntaxError)
		ev  = new(*calculator.EvalError)
	)
	cases := []struct {
		name   string
		src    string
		kind   interface{}
		reason error
	}{
		{"two-dots", "2..3", lex, calculator.ErrNumberFormat},
		{"char", "2 $ 3", lex, calculator.ErrUnexpectedChar},
		{"unclosed", "(2+3", syn, calculator.ErrMismatchedParens},
		{"unopened", "2+3)", syn, calculator.ErrMismatchedParens},
		{"comma", "2,3", syn, calculator.ErrMisplacedComma},
		{"fact-neg", "fact(-1)", ev, calculator.ErrFactorial},
		{"fact-frac", "fact(2.5)", ev, calculator.ErrFactorial},
		{"fact-nan", "fact(0/0)", ev, calculator.ErrFactorial},
		{"fact-huge", "fact(171)", ev, calculator.ErrInvalidExpression},
		{"fact-enormous", "fact(10^300)", ev, calculator.ErrInvalidExpression},
		{"div-zero", "1/0", ev, calculator.ErrInvalidExpression},
		{"zero-zero", "0/0", ev, calculator.ErrInvalidExpression},
		{"mod-zero", "1%0", ev, calculator.ErrInvalidExpression},
		{"sqrt-neg", "sqrt(-1)", ev, calculator.ErrInvalidExpression},
		{"pow-neg-frac", "(-8)^(1/3)", ev, calculator.ErrInvalidExpression},
		{"overflow", "10^400", ev, calculator.ErrInvalidExpression},
		{"long-numeral", "1" + strings.Repeat("0", 400), ev, calculator.ErrInvalidExpression},
		{"unknown-func", "foo(1)", ev, calculator.ErrUnknownFunction},
		{"unknown-name", "2x", ev, calculator.ErrUnknownFunction},
		{"pow-one-arg", "pow(2)", ev, calculator.ErrFunctionArgs},
		{"no-args", "sin()", ev, calculator.ErrFunctionArgs},
		{"dangling-op", "2+", ev, calculator.ErrInvalidExpression},
		{"lone-neg", "-", ev, calculator.ErrInvalidExpression},
		{"empty", "", ev, calculator.ErrInvalidExpression},
		{"empty-parens", "()", ev, calculator.ErrInvalidExpression},
		{"extra-args", "pow(1,2,3)", ev, calculator.ErrInvalidExpression},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.EvalString(c.src, deg)
			if err == nil {
				t.Fatalf("evaluating %q gave %g with no error", c.src, r)
			}
			if r != 0 {
				t.Errorf("evaluating %q gave non-zero result %g with error", c.src, r)
			}
			if !errors.As(err, c.kind) {
				t.Errorf("error %#v has the wrong type", err)
			}
			if !errors.Is(err, c.reason) {
				t.Errorf("error %v does not wrap %v", err, c.reason)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"1 + #", "unexpected character: #"},
		{"2..3", "invalid number format"},
		{"(1", "mismatched parentheses"},
		{"1,2", "misplaced comma"},
		{"fact(-1)", "factorial requires a non-negative integer"},
		{"nope(1)", `unknown function: "nope"`},
		{"pow(1)", `invalid function arguments: "pow"`},
		{"1/0", "invalid expression"},
	}
	for _, c := range cases {
		_, err := calculator.EvalString(c.src, deg)
		if err == nil {
			t.Errorf("%q gave no error", c.src)
			continue
		}
		if !strings.Contains(err.Error(), c.msg) {
			t.Errorf("%q: message %q doesn't mention %q", c.src, err.Error(), c.msg)
		}
	}
}

func TestInputErrorPos(t *testing.T) {
	cases := []struct {
		src string
		pos int
	}{
		{"1 + #", 5},
		{"12..3", 4},
		{"(1+2", 1},
		{"1+(2,3)*4,5", 10},
	}
	for _, c := range cases {
		_, err := calculator.EvalString(c.src, deg)
		var ierr calculator.InputError
		if !errors.As(err, &ierr) {
			t.Errorf("%q: error %#v is not an InputError", c.src, err)
			continue
		}
		if ierr.Pos() != c.pos {
			t.Errorf("%q: wrong position: want %d, got %d", c.src, c.pos, ierr.Pos())
		}
	}
}

func TestEvalIdempotent(t *testing.T) {
	srcs := []string{"2pi", "sin(30)+cos(30)", "asin(0.5)", "fact(7)/3", "pow(2,0.25)"}
	for _, src := range srcs {
		a, err := calculator.Parse(strings.NewReader(src))
		if err != nil {
			t.Fatalf("%q failed to parse: %v", src, err)
		}
		for _, mode := range []calculator.AngleMode{deg, rad} {
			r1, err1 := a.Eval(mode)
			r2, err2 := a.Eval(mode)
			r3, err3 := calculator.EvalString(src, mode)
			if err1 != nil || err2 != nil || err3 != nil {
				t.Fatalf("%q in %v: errors %v, %v, %v", src, mode, err1, err2, err3)
			}
			if r1 != r2 || r1 != r3 {
				t.Errorf("%q in %v gave different results %g, %g, %g", src, mode, r1, r2, r3)
			}
		}
	}
}

func TestEvalModes(t *testing.T) {
	a, err := calculator.Parse(strings.NewReader("sin(30)"))
	if err != nil {
		t.Fatal(err)
	}
	if r, err := a.Eval(deg); err != nil || !near(r, 0.5) {
		t.Errorf("sin(30) in degrees: want 0.5, got %g, %v", r, err)
	}
	if r, err := a.Eval(rad); err != nil || !near(r, math.Sin(30)) {
		t.Errorf("sin(30) in radians: want %g, got %g, %v", math.Sin(30), r, err)
	}
}

func TestParseAngleMode(t *testing.T) {
	cases := []struct {
		s    string
		mode calculator.AngleMode
		ok   bool
	}{
		{"deg", deg, true},
		{"DEG", deg, true},
		{"Degrees", deg, true},
		{"rad", rad, true},
		{" radians ", rad, true},
		{"grad", deg, false},
		{"", deg, false},
	}
	for _, c := range cases {
		m, err := calculator.ParseAngleMode(c.s)
		if (err == nil) != c.ok {
			t.Errorf("%q: wrong error %v", c.s, err)
			continue
		}
		if !c.ok && !errors.Is(err, calculator.ErrAngleMode) {
			t.Errorf("%q: error %v does not wrap ErrAngleMode", c.s, err)
		}
		if c.ok && m != c.mode {
			t.Errorf("%q: want %v, got %v", c.s, c.mode, m)
		}
	}
	if deg.Toggle() != rad || rad.Toggle() != deg {
		t.Error("Toggle does not switch modes")
	}
	var m calculator.AngleMode
	if err := m.Set("rad"); err != nil || m != rad {
		t.Errorf("Set(rad) gave %v, %v", m, err)
	}
	if b, _ := m.MarshalText(); string(b) != "rad" {
		t.Errorf("MarshalText gave %q", b)
	}
}

func BenchmarkEval(b *testing.B) {
	b.Run("parse", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			calculator.Parse(strings.NewReader("2(3+4)^2 - sin(30)/pow(2,10)"))
		}
	})
	b.Run("eval", func(b *testing.B) {
		b.ReportAllocs()
		a, err := calculator.Parse(strings.NewReader("2(3+4)^2 - sin(30)/pow(2,10)"))
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			a.Eval(deg)
		}
	})
}

func Example() {
	for _, src := range []string{"2+3*4", "2^3^2", "2(3+4)", "pow(2,10)", "fact(5)", "1/0"} {
		r, err := calculator.EvalString(src, calculator.Degrees)
		if err != nil {
			fmt.Printf("%s: %v\n", src, err)
			continue
		}
		fmt.Printf("%s = %g\n", src, r)
	}

	// Output:
	// 2+3*4 = 14
	// 2^3^2 = 512
	// 2(3+4) = 14
	// pow(2,10) = 1024
	// fact(5) = 120
	// 1/0: invalid expression
}

func ExampleExpr_String() {
	a, _ := calculator.Parse(strings.NewReader("2pi - sin(30)"))
	r, _ := a.Eval(calculator.Degrees)
	fmt.Println(a)
	fmt.Printf("%.4f\n", r)

	// Output:
	// 2 pi * 30 sin -
	// 5.7832
}

func ExampleAngleMode() {
	a, _ := calculator.Parse(strings.NewReader("asin(1)"))
	for _, mode := range []calculator.AngleMode{calculator.Degrees, calculator.Radians} {
		r, _ := a.Eval(mode)
		fmt.Printf("%v %.6g\n", mode, r)
	}

	// Output:
	// DEG 90
	// RAD 1.5708
}

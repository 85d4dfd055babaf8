package calculator

import "math"

// function is an entry in the function table.
type function struct {
	// arity is the exact number of arguments the function consumes.
	arity int
	// call computes the result from exactly arity arguments in input order.
	call func(mode AngleMode, x []float64) (float64, error)
}

var funcs = map[string]function{
	"sin":  trig(math.Sin),
	"cos":  trig(math.Cos),
	"tan":  trig(math.Tan),
	"asin": invtrig(math.Asin),
	"acos": invtrig(math.Acos),
	"atan": invtrig(math.Atan),

	"sinh": monadic(math.Sinh),
	"cosh": monadic(math.Cosh),
	"tanh": monadic(math.Tanh),

	"exp":  monadic(math.Exp),
	"log":  monadic(math.Log10),
	"ln":   monadic(math.Log),
	"sqrt": monadic(math.Sqrt),
	"abs":  monadic(math.Abs),
	"pow":  dyadic(math.Pow),

	"fact": {1, func(_ AngleMode, x []float64) (float64, error) { return factorial(x[0]) }},
}

// constants are names which the parser replaces with their values.
var constants = map[string]float64{
	"pi": math.Pi,
	"π":  math.Pi,
	"e":  math.E,
}

// monadic wraps a function of one variable that ignores the angle mode.
func monadic(f func(float64) float64) function {
	return function{1, func(_ AngleMode, x []float64) (float64, error) {
		return f(x[0]), nil
	}}
}

// dyadic wraps a function of two variables that ignores the angle mode.
func dyadic(f func(float64, float64) float64) function {
	return function{2, func(_ AngleMode, x []float64) (float64, error) {
		return f(x[0], x[1]), nil
	}}
}

// trig wraps a trigonometric function of an angle in radians so that it
// takes its argument in the evaluation's angle mode.
func trig(f func(float64) float64) function {
	return function{1, func(mode AngleMode, x []float64) (float64, error) {
		return f(mode.toRadians(x[0])), nil
	}}
}

// invtrig wraps an inverse trigonometric function returning radians so
// that its result is in the evaluation's angle mode.
func invtrig(f func(float64) float64) function {
	return function{1, func(mode AngleMode, x []float64) (float64, error) {
		return mode.fromRadians(f(x[0])), nil
	}}
}

// factorial computes n! for non-negative integer n. Once the product
// overflows to +Inf, it stops multiplying, so huge arguments return +Inf
// promptly.
func factorial(n float64) (float64, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 || n != math.Floor(n) {
		return 0, ErrFactorial
	}
	r := 1.0
	for i := 2.0; i <= n && !math.IsInf(r, 1); i++ {
		r *= i
	}
	return r, nil
}

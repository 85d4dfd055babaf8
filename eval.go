package calculator

import (
	"io"
	"math"
	"strings"
)

// Eval evaluates the expression with trigonometric functions using the given
// angle mode. The result is always finite. If an operator or function lacks
// operands, a function is unknown or is called outside its domain, or the
// result is infinite or NaN, the error is an *EvalError.
func (e *Expr) Eval(mode AngleMode) (float64, error) {
	stack := make([]float64, 0, len(e.postfix))
	for _, tok := range e.postfix {
		switch tok.kind {
		case tokenNum:
			stack = append(stack, tok.num)
		case tokenOp:
			op, ok := operators[tok.text]
			if !ok {
				panic("calculator: invalid postfix operator " + tok.String())
			}
			if len(stack) < op.arity {
				return 0, &EvalError{Col: tok.pos, Name: tok.text, Err: ErrInvalidExpression}
			}
			k := len(stack) - op.arity
			r := op.fn(stack[k:])
			stack = append(stack[:k], r)
		case tokenFunc:
			fn, ok := funcs[tok.text]
			if !ok {
				return 0, &EvalError{Col: tok.pos, Name: tok.text, Err: ErrUnknownFunction}
			}
			if len(stack) < fn.arity {
				return 0, &EvalError{Col: tok.pos, Name: tok.text, Err: ErrFunctionArgs}
			}
			k := len(stack) - fn.arity
			r, err := fn.call(mode, stack[k:])
			if err != nil {
				return 0, &EvalError{Col: tok.pos, Name: tok.text, Err: err}
			}
			stack = append(stack[:k], r)
		default:
			panic("calculator: invalid postfix token " + tok.String())
		}
	}
	if len(stack) != 1 || math.IsInf(stack[0], 0) || math.IsNaN(stack[0]) {
		return 0, &EvalError{Err: ErrInvalidExpression}
	}
	return stack[0], nil
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, mode AngleMode) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval(mode)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, mode AngleMode) (float64, error) {
	return Eval(strings.NewReader(src), mode)
}

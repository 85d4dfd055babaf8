package calculator

import (
	"io"
	"math"
	"strings"
)

// Expr is a parsed expression that can be evaluated in either angle mode. An
// Expr is immutable and safe to evaluate concurrently.
type Expr struct {
	// postfix is the expression in postfix order. It contains only tokenNum,
	// tokenOp, and tokenFunc tokens, and no brackets or commas.
	postfix []lexToken
}

// Parse parses an expression so it can be evaluated. Parsing fails with a
// *LexError for invalid characters or numerals and with a *SyntaxError for
// mismatched brackets or misplaced commas. Names other than constants are
// taken to be functions; whether they exist and receive enough arguments is
// decided during evaluation.
func Parse(src io.RuneScanner) (*Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	post, err := toPostfix(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{postfix: post}, nil
}

// toPostfix converts an infix token sequence to postfix order with a
// shunting-yard pass. Constants become numbers, and function names wait on
// the stack until their argument list closes.
func toPostfix(toks []lexToken) ([]lexToken, error) {
	out := make([]lexToken, 0, len(toks))
	var stack []lexToken
	// pop moves the top of the stack to the output.
	pop := func() {
		out = append(out, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	// popToOpen pops until an open bracket is on top or the stack is empty.
	popToOpen := func() {
		for len(stack) > 0 && !isOpen(stack[len(stack)-1]) {
			pop()
		}
	}
	prev := lexToken{}
	for i, tok := range toks {
		switch {
		case tok.kind == tokenNum:
			out = append(out, tok)
		case tok.kind == tokenIdent:
			if v, ok := constants[tok.text]; ok {
				out = append(out, lexToken{text: tok.text, num: v, kind: tokenNum, pos: tok.pos})
				break
			}
			stack = append(stack, lexToken{text: tok.text, kind: tokenFunc, pos: tok.pos})
		case tok.kind != tokenOp:
			panic("calculator: unknown token: " + tok.String())
		case tok.text == ",":
			popToOpen()
			if len(stack) == 0 {
				return nil, &SyntaxError{Col: tok.pos, Text: tok.text, Err: ErrMisplacedComma}
			}
		case tok.text == "(":
			stack = append(stack, tok)
		case tok.text == ")":
			popToOpen()
			if len(stack) == 0 {
				return nil, &SyntaxError{Col: tok.pos, Text: tok.text, Err: ErrMismatchedParens}
			}
			stack = stack[:len(stack)-1]
			if len(stack) > 0 && stack[len(stack)-1].kind == tokenFunc {
				// Bind the function to the argument list just closed.
				pop()
			}
		default:
			if tok.text == "-" && unaryContext(prev) {
				tok.text = "u-"
			}
			o1, ok := operators[tok.text]
			if !ok {
				return nil, &SyntaxError{Col: tok.pos, Text: tok.text, Err: ErrUnknownOperator}
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == tokenFunc {
					pop()
					continue
				}
				if o2, ok := operators[top.text]; ok && o1.yields(o2) {
					pop()
					continue
				}
				break
			}
			stack = append(stack, tok)
		}
		prev = toks[i]
	}
	for len(stack) > 0 {
		if top := stack[len(stack)-1]; isOpen(top) {
			return nil, &SyntaxError{Col: top.pos, Text: top.text, Err: ErrMismatchedParens}
		}
		pop()
	}
	return out, nil
}

func isOpen(tok lexToken) bool {
	return tok.kind == tokenOp && tok.text == "("
}

// unaryContext reports whether a minus following prev is a negation: at the
// start of input, or after any operator, open bracket, or comma, but not
// after a close bracket. prev is the token as it appeared in the input, so a
// preceding "-" is still "-" rather than "u-".
func unaryContext(prev lexToken) bool {
	switch prev.kind {
	case tokenNone:
		return true
	case tokenOp:
		return prev.text != ")"
	default:
		return false
	}
}

// String renders the expression in postfix order, with tokens separated by
// spaces and negation written as u-.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.postfix {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// arity is the number of operands, 1 or 2.
	arity int
	// fn computes the result from exactly arity operands in input order.
	fn func(x []float64) float64
}

// yields reports whether, when p is scanned with top on the stack, top must
// be moved to the output first.
func (p operator) yields(top operator) bool {
	if p.right {
		return p.prec < top.prec
	}
	return p.prec <= top.prec
}

// operators is the operator table. Division by zero and overflow produce
// infinities or NaN here and are rejected when evaluation finishes.
var operators = map[string]operator{
	"+":  {2, false, 2, func(x []float64) float64 { return x[0] + x[1] }},
	"-":  {2, false, 2, func(x []float64) float64 { return x[0] - x[1] }},
	"*":  {3, false, 2, func(x []float64) float64 { return x[0] * x[1] }},
	"/":  {3, false, 2, func(x []float64) float64 { return x[0] / x[1] }},
	"%":  {3, false, 2, func(x []float64) float64 { return math.Mod(x[0], x[1]) }},
	"^":  {4, true, 2, func(x []float64) float64 { return math.Pow(x[0], x[1]) }},
	"u-": {5, true, 1, func(x []float64) float64 { return -x[0] }},
}

package calculator

// implicitMul returns a copy of toks with a multiplication inserted wherever
// a token that ends a value is immediately followed by one that starts a
// value: 2pi -> 2*pi, 3(4) -> 3*(4), (1)(2) -> (1)*(2).
func implicitMul(toks []lexToken) []lexToken {
	out := make([]lexToken, 0, len(toks))
	for _, tok := range toks {
		if len(out) > 0 && endsValue(out[len(out)-1]) && startsValue(tok) {
			out = append(out, lexToken{text: "*", kind: tokenOp, pos: tok.pos})
		}
		out = append(out, tok)
	}
	return out
}

// endsValue reports whether tok can be the last token of an operand. Function
// names cannot, so sin(x) stays a call.
func endsValue(tok lexToken) bool {
	switch tok.kind {
	case tokenNum:
		return true
	case tokenIdent:
		_, ok := constants[tok.text]
		return ok
	case tokenOp:
		return tok.text == ")"
	default:
		return false
	}
}

// startsValue reports whether tok can be the first token of an operand.
func startsValue(tok lexToken) bool {
	switch tok.kind {
	case tokenNum, tokenIdent:
		return true
	case tokenOp:
		return tok.text == "("
	default:
		return false
	}
}

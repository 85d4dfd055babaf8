package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	// num is the value of a tokenNum.
	num  float64
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeral, or a constant after conversion to postfix.
	tokenNum
	// tokenIdent is a constant or function name, always lowercase.
	tokenIdent
	// tokenOp is an operator, bracket, or comma. After conversion to
	// postfix, unary minus has the text "u-".
	tokenOp
	// tokenFunc is a function to apply. It only appears in postfix output.
	tokenFunc
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenFunc:
		return "Func"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are lexed as single-character operator
// tokens, including brackets and the argument separator.
const Operators = "()+-*/%^,"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is
// encountered, the result is an EOF token with a nil error. Subsequent times,
// the result is an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case r == ' ', r == '\t', r == '\n':
			tok.pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				// Only a lone "." gets here.
				return tok, l.error(ErrNumberFormat, l.rune-1)
			}
			// Out of range numerals are ±Inf, which evaluation rejects.
			tok.num = v
			tok.kind = tokenNum
			return tok, nil
		case unicode.IsLetter(r):
			l.buf.WriteRune(r)
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.text = strings.ToLower(l.buf.String())
			tok.kind = tokenIdent
			return tok, nil
		default:
			if strings.ContainsRune(Operators, r) {
				tok.text = string(r)
				tok.kind = tokenOp
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error(ErrUnexpectedChar, l.rune-1)
		}
	}
}

// scanNum scans a maximal run of digits and decimal points. A second decimal
// point is an error.
func (l *lexer) scanNum() error {
	var dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9':
			l.buf.WriteRune(r)
		case r == '.':
			l.buf.WriteRune(r)
			if dot {
				return l.error(ErrNumberFormat, l.rune-1)
			}
			dot = true
		default:
			l.unreadRune()
			return nil
		}
	}
}

// scanIdent scans the remainder of an identifier. next writes the first
// letter before calling scanIdent.
func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case r == '_', unicode.IsLetter(r), '0' <= r && r <= '9':
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return nil
		}
	}
}

func (l *lexer) error(reason error, col int) error {
	return &LexError{
		Text: l.buf.String(),
		Col:  col,
		Err:  reason,
	}
}

// tokenize scans all of src and then makes implicit multiplications explicit.
func tokenize(src io.RuneScanner) ([]lexToken, error) {
	scan := lex(src)
	var toks []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			return implicitMul(toks), nil
		}
		toks = append(toks, tok)
	}
}

// LexError indicates an invalid character or numeral. It implements
// InputError and unwraps to ErrUnexpectedChar or ErrNumberFormat.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, including the invalid rune.
	Text string
	// Col is the 1-based rune column of the invalid rune.
	Col int
	// Err is the reason the token is invalid.
	Err error
}

func (err *LexError) Error() string {
	return errpos(err.Col, err.Err.Error()+": "+err.Text)
}

func (err *LexError) Unwrap() error {
	return err.Err
}

func (err *LexError) Pos() int {
	return err.Col
}

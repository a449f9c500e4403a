package parsemath

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Tokenizer scans tokens from an expression. It makes a single forward pass
// over its input and cannot be restarted.
type Tokenizer struct {
	src  *strings.Reader
	buf  strings.Builder
	rune int
	pos  int
	eof  bool
	err  error
	// implicit allows a numeric literal to be directly followed by an open
	// bracket.
	implicit bool
}

// NewTokenizer creates a tokenizer over expr.
func NewTokenizer(expr string) *Tokenizer {
	return &Tokenizer{src: strings.NewReader(expr)}
}

// readRune reads a rune from the src and updates the tokenizer's position
// info.
func (t *Tokenizer) readRune() (r rune, err error) {
	r, sz, err := t.src.ReadRune()
	if sz > 0 {
		t.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the tokenizer's position
// info. Panics if unreading returns an error.
func (t *Tokenizer) unreadRune() {
	if err := t.src.UnreadRune(); err != nil {
		panic(err)
	}
	t.rune--
}

// Next scans the next token from the input. The first time the input is
// exhausted, the result is a TokenEOF token with a nil error. Later calls
// return io.EOF. If the input contains an invalid token, the result is a
// *LexError, and every later call returns the same error.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	if t.eof {
		return Token{}, io.EOF
	}
	for {
		r, err := t.readRune()
		if err != nil {
			// A strings.Reader fails only at the end of its input.
			t.pos = t.rune + 1
			t.eof = true
			return Token{Kind: TokenEOF}, nil
		}
		t.pos = t.rune
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			t.unreadRune()
			v, err := t.scanNum()
			if err != nil {
				t.err = err
				return Token{}, err
			}
			return Token{Kind: TokenNum, Num: v}, nil
		}
		if k, ok := symbols[r]; ok {
			return Token{Kind: k}, nil
		}
		t.err = &LexError{Text: string(r), Col: t.pos}
		return Token{}, t.err
	}
}

// Pos returns the column of the start of the most recently scanned token or
// invalid token, counted in runes from 1.
func (t *Tokenizer) Pos() int {
	return t.pos
}

// scanNum scans a decimal literal. The first rune must be a digit.
func (t *Tokenizer) scanNum() (float64, error) {
	defer t.buf.Reset()
	var dot bool
	for {
		r, err := t.readRune()
		if err != nil {
			break
		}
		if '0' <= r && r <= '9' {
			t.buf.WriteRune(r)
			continue
		}
		if r == '.' {
			t.buf.WriteRune(r)
			if dot {
				return 0, t.error("number", nil)
			}
			dot = true
			continue
		}
		if r == '(' && !t.implicit {
			// Implicit multiplication like 2(3) is rejected unless enabled.
			t.buf.WriteRune(r)
			return 0, t.error("number", nil)
		}
		t.unreadRune()
		break
	}
	v, err := strconv.ParseFloat(t.buf.String(), 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, t.error("number", err)
	}
	return v, nil
}

func (t *Tokenizer) error(kind string, err error) error {
	return &LexError{
		Text: t.buf.String(),
		Kind: kind,
		Col:  t.pos,
		Err:  err,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the tokenizer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the tokenizer was scanning. This is "number"
	// for malformed numeric literals or the empty string for a rune that
	// begins no token.
	Kind string
	// Col is the column at which the invalid token starts.
	Col int
	// Err is the reason a numeric literal could not be converted, if any,
	// e.g. strconv.ErrRange.
	Err error
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	var r string
	if err.Kind == "" {
		r = "invalid token at " + pos + ": " + strconv.Quote(err.Text)
	} else {
		r = "invalid " + err.Kind + " token at " + pos + ": " + strconv.Quote(err.Text)
	}
	if err.Err != nil {
		r += " (" + err.Err.Error() + ")"
	}
	return r
}

func (err *LexError) Unwrap() error {
	return err.Err
}

func (err *LexError) Pos() int {
	return err.Col
}

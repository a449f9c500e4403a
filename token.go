package parsemath

import "strconv"

// Token is a lexical unit of an expression. Tokens are plain values and
// compare with ==.
type Token struct {
	// Kind is the token's kind.
	Kind TokenKind
	// Num is the value of a TokenNum token. It is zero for other kinds.
	Num float64
}

// TokenKind identifies the kind of a token.
type TokenKind int

const (
	// TokenInvalid is the zero TokenKind. Tokenizers never produce it.
	TokenInvalid TokenKind = iota
	// TokenNum is a numeric literal.
	TokenNum
	TokenAdd
	TokenSubtract
	TokenMultiply
	TokenDivide
	TokenCaret
	TokenLeftParen
	TokenRightParen
	// TokenEOF indicates the end of the input.
	TokenEOF
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// symbols maps operator and bracket runes to their token kinds.
var symbols = map[rune]TokenKind{
	'+': TokenAdd,
	'-': TokenSubtract,
	'*': TokenMultiply,
	'/': TokenDivide,
	'^': TokenCaret,
	'(': TokenLeftParen,
	')': TokenRightParen,
}

func (t Token) String() string {
	if t.Kind == TokenNum {
		return "Num(" + strconv.FormatFloat(t.Num, 'g', -1, 64) + ")"
	}
	return t.Kind.String()
}

// text describes the token the way it appears in the input, for error
// messages.
func (t Token) text() string {
	switch t.Kind {
	case TokenNum:
		return "number " + strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenEOF:
		return "end of input"
	}
	for r, k := range symbols {
		if k == t.Kind {
			return strconv.QuoteRune(r)
		}
	}
	return t.Kind.String()
}

package parsemath

import (
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(v float64) Token {
	return Token{Kind: TokenNum, Num: v}
}

func tok(k TokenKind) Token {
	return Token{Kind: k}
}

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
		pos    []int
	}{
		// spaces
		{"", nil, nil},
		{" \t \r\n ", nil, nil},
		// numbers
		{"0", []Token{num(0)}, []int{1}},
		{"34", []Token{num(34)}, []int{1}},
		{"9876543210", []Token{num(9876543210)}, []int{1}},
		{"34.5", []Token{num(34.5)}, []int{1}},
		{"1.", []Token{num(1)}, []int{1}},
		{"007", []Token{num(7)}, []int{1}},
		{"1 0", []Token{num(1), num(0)}, []int{1, 3}},
		{"-1", []Token{tok(TokenSubtract), num(1)}, []int{1, 2}},
		// operators
		{"+", []Token{tok(TokenAdd)}, []int{1}},
		{"3+4", []Token{num(3), tok(TokenAdd), num(4)}, []int{1, 2, 3}},
		{"1*2/3^4", []Token{num(1), tok(TokenMultiply), num(2), tok(TokenDivide), num(3), tok(TokenCaret), num(4)}, []int{1, 2, 3, 4, 5, 6, 7}},
		{"--", []Token{tok(TokenSubtract), tok(TokenSubtract)}, []int{1, 2}},
		// brackets
		{"()", []Token{tok(TokenLeftParen), tok(TokenRightParen)}, []int{1, 2}},
		{"(1)", []Token{tok(TokenLeftParen), num(1), tok(TokenRightParen)}, []int{1, 2, 3}},
		{"1 (", []Token{num(1), tok(TokenLeftParen)}, []int{1, 3}},
		{"(1)(2)", []Token{tok(TokenLeftParen), num(1), tok(TokenRightParen), tok(TokenLeftParen), num(2), tok(TokenRightParen)}, []int{1, 2, 3, 4, 5, 6}},
		// whitespace between tokens
		{" 12 \t+\n3 ", []Token{num(12), tok(TokenAdd), num(3)}, []int{2, 6, 8}},
	}
	for _, c := range cases {
		t.Run(strconv.Quote(c.src), func(t *testing.T) {
			scan := NewTokenizer(c.src)
			for i, want := range c.tokens {
				got, err := scan.Next()
				require.NoError(t, err, "token %d", i)
				assert.Equal(t, want, got, "token %d", i)
				assert.Equal(t, c.pos[i], scan.Pos(), "position of token %d", i)
			}
			got, err := scan.Next()
			require.NoError(t, err)
			assert.Equal(t, tok(TokenEOF), got)
			_, err = scan.Next()
			assert.Equal(t, io.EOF, err, "scanning after EOF token")
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src  string
		good []Token
		text string
		kind string
		col  int
	}{
		{"#", nil, "#", "", 1},
		{"#$%", nil, "#", "", 1},
		{"1 + $", []Token{num(1), tok(TokenAdd)}, "$", "", 5},
		{"1a", []Token{num(1)}, "a", "", 2},
		{".5", nil, ".", "", 1},
		{"1.1.1", nil, "1.1.", "number", 1},
		{"2(3+4)", nil, "2(", "number", 1},
		{"1 + 2.5(", []Token{num(1), tok(TokenAdd)}, "2.5(", "number", 5},
		{"1,5", []Token{num(1)}, ",", "", 2},
		{"１", nil, "１", "", 1},
	}
	for _, c := range cases {
		t.Run(strconv.Quote(c.src), func(t *testing.T) {
			scan := NewTokenizer(c.src)
			for i, want := range c.good {
				got, err := scan.Next()
				require.NoError(t, err, "token %d", i)
				assert.Equal(t, want, got, "token %d", i)
			}
			_, err := scan.Next()
			require.Error(t, err)
			var le *LexError
			require.True(t, errors.As(err, &le), "%#v is not *LexError", err)
			assert.Equal(t, c.text, le.Text)
			assert.Equal(t, c.kind, le.Kind)
			assert.Equal(t, c.col, le.Pos())
			assert.Equal(t, c.col, scan.Pos())
			// Errors are sticky.
			_, again := scan.Next()
			assert.Same(t, err, again)
		})
	}
}

func TestLexRange(t *testing.T) {
	src := "1"
	for i := 0; i < 400; i++ {
		src += "0"
	}
	_, err := NewTokenizer(src).Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrRange)
	var le *LexError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "number", le.Kind)
}

func TestLexImplicit(t *testing.T) {
	scan := NewTokenizer("2(3)")
	scan.implicit = true
	want := []Token{num(2), tok(TokenLeftParen), num(3), tok(TokenRightParen), tok(TokenEOF)}
	for i, w := range want {
		got, err := scan.Next()
		require.NoError(t, err, "token %d", i)
		assert.Equal(t, w, got, "token %d", i)
	}
}

func TestLexRepeatable(t *testing.T) {
	const src = "12.5*(3 - 4)^2/7 + 1"
	var first []Token
	scan := NewTokenizer(src)
	for {
		tk, err := scan.Next()
		require.NoError(t, err)
		first = append(first, tk)
		if tk.Kind == TokenEOF {
			break
		}
	}
	for i := 0; i < 3; i++ {
		scan := NewTokenizer(src)
		for j, want := range first {
			got, err := scan.Next()
			require.NoError(t, err)
			assert.Equal(t, want, got, "pass %d token %d", i, j)
		}
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "Num(34.5)", num(34.5).String())
	assert.Equal(t, "Caret", tok(TokenCaret).String())
	assert.Equal(t, "EOF", tok(TokenEOF).String())
	assert.Equal(t, "TokenKind(42)", TokenKind(42).String())
	assert.Equal(t, `'^'`, tok(TokenCaret).text())
	assert.Equal(t, "number 2", num(2).text())
	assert.Equal(t, "end of input", tok(TokenEOF).text())
}

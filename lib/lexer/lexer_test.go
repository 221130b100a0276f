package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := map[byte]Symbol{
		'+':  Plus,
		'-':  Minus,
		'^':  Expo,
		'*':  Mult,
		'/':  Div,
		'(':  OpeningScope,
		')':  ClosingScope,
		' ':  Whitespace,
		'\t': Tab,
		'0':  Zero,
		'1':  NonZeroDigit,
		'5':  NonZeroDigit,
		'9':  NonZeroDigit,
		0:    EndOfString,
		'a':  Invalid,
		'Z':  Invalid,
		'.':  Invalid,
		'%':  Invalid,
		'\n': Invalid,
		0xff: Invalid,
	}
	for c, want := range tests {
		assert.Equal(t, want, Classify(c), "Classify(%q)", c)
	}
}

func TestClassifyTotal(t *testing.T) {
	for c := 0; c < 256; c++ {
		s := Classify(byte(c))
		assert.True(t, s >= Plus && s <= Invalid, "Classify(%d) = %d", c, s)
	}
}

func TestTokenStr(t *testing.T) {
	assert.Equal(t, "+", TokenStr(Plus))
	assert.Equal(t, "-", TokenStr(Minus))
	assert.Equal(t, "^", TokenStr(Expo))
	assert.Equal(t, "*", TokenStr(Mult))
	assert.Equal(t, "/", TokenStr(Div))
	assert.Equal(t, " ", TokenStr(Whitespace))
	assert.Equal(t, "0", TokenStr(Zero))
	for _, s := range []Symbol{OpeningScope, ClosingScope, Tab, NonZeroDigit, EndOfString, Invalid} {
		assert.Equal(t, "X", TokenStr(s), s.String())
	}
}

func TestSymbolString(t *testing.T) {
	assert.Equal(t, "NONZERO_DIGIT", NonZeroDigit.String())
	assert.Equal(t, "END_OF_STRING", EndOfString.String())
	assert.Equal(t, "INVALID", Symbol(42).String())
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(Whitespace))
	assert.True(t, IsBlank(Tab))
	assert.False(t, IsBlank(Zero))
	assert.False(t, IsBlank(EndOfString))
}

// Package lexer classifies single input characters into the terminal
// symbols of the expression grammar.
package lexer

// Symbol is the terminal category of one input character.
type Symbol int

const (
	Plus Symbol = iota
	Minus
	Expo
	Mult
	Div
	OpeningScope
	ClosingScope
	Whitespace
	Tab
	Zero
	NonZeroDigit
	EndOfString
	Invalid
)

var symbolNames = [...]string{
	Plus:         "PLUS",
	Minus:        "MINUS",
	Expo:         "EXPO",
	Mult:         "MULT",
	Div:          "DIV",
	OpeningScope: "OPENING_SCOPE",
	ClosingScope: "CLOSING_SCOPE",
	Whitespace:   "WHITESPACE",
	Tab:          "TAB",
	Zero:         "ZERO",
	NonZeroDigit: "NONZERO_DIGIT",
	EndOfString:  "END_OF_STRING",
	Invalid:      "INVALID",
}

func (s Symbol) String() string {
	if s < 0 || int(s) >= len(symbolNames) {
		return "INVALID"
	}
	return symbolNames[s]
}

// Classify returns the terminal symbol for c. Anything not part of the
// grammar's alphabet is Invalid. The NUL byte stands for end of string.
func Classify(c byte) Symbol {
	switch c {
	case '+':
		return Plus
	case '-':
		return Minus
	case '^':
		return Expo
	case '*':
		return Mult
	case '/':
		return Div
	case '(':
		return OpeningScope
	case ')':
		return ClosingScope
	case ' ':
		return Whitespace
	case '\t':
		return Tab
	case '0':
		return Zero
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return NonZeroDigit
	case 0:
		return EndOfString
	}
	return Invalid
}

// IsBlank reports whether s is skipped between grammar points.
func IsBlank(s Symbol) bool {
	return s == Whitespace || s == Tab
}

// TokenStr maps a symbol back to its glyph. It only knows the operators,
// zero and the blank; everything else renders as "X".
func TokenStr(s Symbol) string {
	switch s {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Expo:
		return "^"
	case Mult:
		return "*"
	case Div:
		return "/"
	case Whitespace:
		return " "
	case Zero:
		return "0"
	default:
		return "X"
	}
}

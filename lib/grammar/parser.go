// Package grammar holds a declarative description of the expression
// grammar built with participle. It is used to print the grammar and as an
// independent reference for the hand-written parser. Its lexer has no
// blank rule, so it only understands expressions without whitespace.
package grammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Zero", Pattern: `0`},
	{Name: "NonZero", Pattern: `[1-9]`},
	{Name: "Op", Pattern: `[-+^*/]`},
	{Name: "Paren", Pattern: `[()]`},
})

var reference = Parser()

func Parser() *participle.Parser[Expression] {
	return participle.MustBuild[Expression](
		participle.Lexer(Lexer),
	)
}

// EBNF returns the grammar in participle's EBNF notation.
func EBNF() string {
	return reference.String()
}

func ParseString(expr string) (*Expression, error) {
	return reference.ParseString("", expr)
}

// Accepts reports whether expr is a sentence of the grammar. Operand range
// is not checked.
func Accepts(expr string) bool {
	_, err := ParseString(expr)
	return err == nil
}

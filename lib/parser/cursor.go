package parser

import "github.com/erickos/bares/lib/lexer"

// cursor is a forward-only read position over an expression.
type cursor struct {
	expr string
	pos  int
}

func (c *cursor) reset(expr string) {
	c.expr = expr
	c.pos = 0
}

func (c *cursor) endInput() bool {
	return c.pos == len(c.expr)
}

// column is the 0-based offset of the current position.
func (c *cursor) column() int {
	return c.pos
}

func (c *cursor) nextSymbol() {
	c.pos++
}

func (c *cursor) peek(s lexer.Symbol) bool {
	return !c.endInput() && lexer.Classify(c.expr[c.pos]) == s
}

func (c *cursor) accept(s lexer.Symbol) bool {
	if c.peek(s) {
		c.nextSymbol()
		return true
	}
	return false
}

// expect skips blanks and then accepts s. Blanks are only skipped here,
// never inside an accept sequence.
func (c *cursor) expect(s lexer.Symbol) bool {
	c.skipWS()
	return c.accept(s)
}

func (c *cursor) skipWS() {
	for !c.endInput() && lexer.IsBlank(lexer.Classify(c.expr[c.pos])) {
		c.nextSymbol()
	}
}

// since returns the text consumed from start up to the current position.
func (c *cursor) since(start int) string {
	return c.expr[start:c.pos]
}

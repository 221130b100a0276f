package grammar

import "github.com/erickos/bares/lib/parser"

type Expression struct {
	Left  *Term     `parser:"@@"`
	Right []*OpTerm `parser:"@@*"`
}

type OpTerm struct {
	Op   string `parser:"@( '+' | '-' | '^' | '*' | '/' )"`
	Term *Term  `parser:"@@"`
}

type Term struct {
	Group   *Expression `parser:"  '(' @@ ')'"`
	Integer *Integer    `parser:"| @@"`
}

type Integer struct {
	Literal string `parser:"  @Zero | @'-'? @NonZero @( Zero | NonZero )*"`
}

// Tokens flattens the tree into the token stream the descent parser
// records for the same input.
func (e *Expression) Tokens() []parser.Token {
	tokens := e.Left.Tokens()
	for _, r := range e.Right {
		tokens = append(tokens, parser.Token{Value: r.Op, Kind: parser.Operator})
		tokens = append(tokens, r.Term.Tokens()...)
	}
	return tokens
}

func (t *Term) Tokens() []parser.Token {
	if t.Group != nil {
		tokens := []parser.Token{{Value: "(", Kind: parser.OpeningScope}}
		tokens = append(tokens, t.Group.Tokens()...)
		return append(tokens, parser.Token{Value: ")", Kind: parser.ClosingScope})
	}
	return []parser.Token{{Value: t.Integer.Literal, Kind: parser.Operand}}
}

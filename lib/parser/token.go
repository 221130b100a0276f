package parser

import (
	"fmt"
	"strings"
)

// Kind is the lexical class of a recognized token.
type Kind int

const (
	Operator Kind = iota
	Operand
	OpeningScope
	ClosingScope
)

var kindNames = map[Kind]string{
	Operator:     "OPERATOR",
	Operand:      "OPERAND",
	OpeningScope: "OPENING_SCOPE",
	ClosingScope: "CLOSING_SCOPE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown token kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if strings.EqualFold(name, string(text)) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", text)
}

// Token is a lexeme recognized by a grammar production. Value is the exact
// text matched in the input; operands are never converted.
type Token struct {
	Value string `json:"value" yaml:"value"`
	Kind  Kind   `json:"kind" yaml:"kind"`
}

func (t Token) String() string {
	return fmt.Sprintf("<%q,%s>", t.Value, t.Kind)
}

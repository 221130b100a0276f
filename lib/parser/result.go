package parser

import (
	"errors"
	"fmt"
)

// Code identifies the outcome of a parse.
type Code int

const (
	OK Code = iota
	MissingTerm
	MissingClosingParenthesis
	IntegerOutOfRange
	IllFormedInteger
	UnexpectedEndOfExpression
	ExtraneousSymbol
)

var codeNames = [...]string{
	OK:                        "OK",
	MissingTerm:               "MISSING_TERM",
	MissingClosingParenthesis: "MISSING_CLOSING_PARENTHESIS",
	IntegerOutOfRange:         "INTEGER_OUT_OF_RANGE",
	IllFormedInteger:          "ILL_FORMED_INTEGER",
	UnexpectedEndOfExpression: "UNEXPECTED_END_OF_EXPRESSION",
	ExtraneousSymbol:          "EXTRANEOUS_SYMBOL",
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return codeNames[c]
}

func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Code) UnmarshalText(text []byte) error {
	for code, name := range codeNames {
		if name == string(text) {
			*c = Code(code)
			return nil
		}
	}
	return fmt.Errorf("unknown result code %q", text)
}

var (
	ErrMissingTerm               = errors.New("missing <term>")
	ErrMissingClosingParenthesis = errors.New(`missing closing ")"`)
	ErrIntegerOutOfRange         = errors.New("integer constant out of range")
	ErrIllFormedInteger          = errors.New("ill formed integer")
	ErrUnexpectedEnd             = errors.New("unexpected end of input")
	ErrExtraneousSymbol          = errors.New("extraneous symbol after valid expression")
)

var codeErrors = map[Code]error{
	MissingTerm:               ErrMissingTerm,
	MissingClosingParenthesis: ErrMissingClosingParenthesis,
	IntegerOutOfRange:         ErrIntegerOutOfRange,
	IllFormedInteger:          ErrIllFormedInteger,
	UnexpectedEndOfExpression: ErrUnexpectedEnd,
	ExtraneousSymbol:          ErrExtraneousSymbol,
}

// Result is the outcome of a parse. Column is the 0-based offset where a
// failure was detected; it carries no meaning when Code is OK.
type Result struct {
	Code   Code `json:"code" yaml:"code"`
	Column int  `json:"column" yaml:"column"`
}

func (r Result) OK() bool {
	return r.Code == OK
}

// Err returns nil for a successful result and a *SyntaxError otherwise.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &SyntaxError{Code: r.Code, Column: r.Column}
}

func (r Result) String() string {
	if r.OK() {
		return r.Code.String()
	}
	return fmt.Sprintf("%s@%d", r.Code, r.Column)
}

// SyntaxError describes a failed parse.
type SyntaxError struct {
	Code   Code
	Column int
}

func (e *SyntaxError) Error() string {
	base, ok := codeErrors[e.Code]
	if !ok {
		return fmt.Sprintf("parse failed with %s at column (%d)", e.Code, e.Column+1)
	}
	switch e.Code {
	case IntegerOutOfRange:
		return fmt.Sprintf("%s beginning at column (%d)", base, e.Column+1)
	case ExtraneousSymbol:
		return fmt.Sprintf("%s found at column (%d)", base, e.Column+1)
	}
	return fmt.Sprintf("%s at column (%d)", base, e.Column+1)
}

func (e *SyntaxError) Unwrap() error {
	return codeErrors[e.Code]
}

// Package parser implements a recursive-descent syntax analyzer for
// integer arithmetic expressions. The accepted language is
//
//	expression     := term , { ("+"|"-"|"^"|"*"|"/") , term }
//	term           := "(" , expression , ")" | integer
//	integer        := "0" | ["-"] , natural_number
//	natural_number := digit_excl_zero , { digit }
//	digit          := "0" | digit_excl_zero
//
// All binary operators live at the same grammar level, so the parser
// validates structure only and records a flat token stream for a later
// evaluation stage.
package parser

import (
	"errors"
	"math"
	"strconv"

	"github.com/erickos/bares/lib/lexer"
)

// Bounds of the integer domain operands must fit in.
const (
	RequiredMin = math.MinInt32
	RequiredMax = math.MaxInt32
)

var operators = []lexer.Symbol{lexer.Plus, lexer.Minus, lexer.Expo, lexer.Mult, lexer.Div}

// Parser validates expressions and records their tokens. A Parser may be
// reused; every call to Parse starts from a clean state. It is not safe
// for concurrent use.
type Parser struct {
	cur    cursor
	tokens []Token
	result Result
}

func New() *Parser {
	return &Parser{}
}

// Parse validates expr and returns the outcome. The tokens recognized
// before the parse ended are available from Tokens.
func (p *Parser) Parse(expr string) Result {
	p.cur.reset(expr)
	p.tokens = p.tokens[:0]
	p.result = p.parse()
	return p.result
}

func (p *Parser) parse() Result {
	p.cur.skipWS()
	if p.cur.endInput() {
		return Result{UnexpectedEndOfExpression, p.cur.column()}
	}

	result := p.expression()
	if result.OK() {
		p.cur.skipWS()
		if !p.cur.endInput() {
			return Result{ExtraneousSymbol, p.cur.column()}
		}
	}
	return result
}

// Tokens returns a copy of the tokens recorded by the last call to Parse.
func (p *Parser) Tokens() []Token {
	out := make([]Token, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// Result returns the outcome of the last call to Parse.
func (p *Parser) Result() Result {
	return p.result
}

func (p *Parser) emit(value string, kind Kind) {
	p.tokens = append(p.tokens, Token{Value: value, Kind: kind})
}

func (p *Parser) expression() Result {
	p.cur.skipWS()
	result := p.term()

	for result.OK() && !p.cur.endInput() {
		if !p.operator() {
			return result
		}
		// An operator was consumed, so whatever went wrong with the
		// right-hand side is reported as a missing term.
		result = p.term()
		if !result.OK() {
			result.Code = MissingTerm
			return result
		}
	}
	return result
}

func (p *Parser) operator() bool {
	for _, op := range operators {
		if p.cur.expect(op) {
			p.emit(p.cur.since(p.cur.column()-1), Operator)
			return true
		}
	}
	return false
}

func (p *Parser) term() Result {
	p.cur.skipWS()
	begin := p.cur.column()

	if p.cur.expect(lexer.OpeningScope) {
		p.emit("(", OpeningScope)
		result := p.expression()
		if !result.OK() {
			return result
		}
		if !p.cur.expect(lexer.ClosingScope) {
			return Result{MissingClosingParenthesis, p.cur.column()}
		}
		p.emit(")", ClosingScope)
		return result
	}

	if !p.cur.peek(lexer.Zero) && !p.cur.peek(lexer.Minus) && !p.cur.peek(lexer.NonZeroDigit) {
		return Result{MissingTerm, begin}
	}

	result := p.integer()
	if !result.OK() {
		return result
	}

	num := p.cur.since(begin)
	value, err := strconv.ParseInt(num, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return Result{IntegerOutOfRange, begin}
	case err != nil:
		return Result{IllFormedInteger, begin}
	case value < RequiredMin || value > RequiredMax:
		return Result{IntegerOutOfRange, begin}
	}
	p.emit(num, Operand)
	return result
}

func (p *Parser) integer() Result {
	if p.cur.accept(lexer.Zero) {
		// A zero literal stands alone; it cannot lead a longer number.
		if p.cur.peek(lexer.Zero) || p.cur.peek(lexer.NonZeroDigit) {
			return Result{IllFormedInteger, p.cur.column() - 1}
		}
		return Result{Code: OK}
	}
	p.cur.accept(lexer.Minus)
	return p.naturalNumber()
}

func (p *Parser) naturalNumber() Result {
	if p.digitExclZero() {
		for p.digit() {
		}
		return Result{Code: OK}
	}
	return Result{IllFormedInteger, p.cur.column()}
}

func (p *Parser) digitExclZero() bool {
	return p.cur.accept(lexer.NonZeroDigit)
}

func (p *Parser) digit() bool {
	return p.cur.accept(lexer.Zero) || p.cur.accept(lexer.NonZeroDigit)
}

// Parse is a convenience wrapper that parses expr with a fresh Parser.
func Parse(expr string) ([]Token, error) {
	p := New()
	if err := p.Parse(expr).Err(); err != nil {
		return p.Tokens(), err
	}
	return p.Tokens(), nil
}

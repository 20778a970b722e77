package expr

import (
	"strconv"
	"strings"

	apperrors "github.com/agbru/stepsolve/internal/errors"
)

// Operator precedence levels. Exponentiation binds tightest and is
// right-associative; unary minus binds between product and power, so
// "-x^2" parses as -(x^2) while "-2*3" parses as (-2)*3.
const (
	precAdd   = 1
	precMul   = 2
	precUnary = 3
	precPow   = 4
)

// parser is a Pratt parser over the token stream produced by lex.
type parser struct {
	input  string
	tokens []token
	pos    int
}

// Parse converts input text into an expression tree.
//
// Parameters:
//   - input: UTF-8 text in the supported grammar.
//
// Returns:
//   - Node: Root of the parsed tree.
//   - error: An apperrors.ParseError when the text does not conform.
func Parse(input string) (Node, error) {
	if strings.TrimSpace(input) == "" {
		return nil, apperrors.NewParseError(input, 0, "empty expression")
	}
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, tokens: tokens}
	node, err := p.parseExpr(precAdd)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, apperrors.NewParseError(input, tok.pos, "unexpected %q after expression", tok.text)
	}
	return node, nil
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

// parseExpr parses an expression whose operators all have precedence of at
// least minPrec. Adjacency of a value with an identifier, number, or opening
// parenthesis is treated as implicit multiplication ("2x", "5(x+1)").
func (p *parser) parseExpr(minPrec int) (Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		var op Op
		var prec int
		implicit := false
		switch tok.kind {
		case tokPlus:
			op, prec = OpAdd, precAdd
		case tokMinus:
			op, prec = OpSub, precAdd
		case tokStar:
			op, prec = OpMul, precMul
		case tokSlash:
			op, prec = OpDiv, precMul
		case tokCaret:
			op, prec = OpPow, precPow
		case tokNumber, tokIdent, tokLParen:
			op, prec = OpMul, precMul
			implicit = true
		default:
			return left, nil
		}
		if prec < minPrec {
			return left, nil
		}
		if !implicit {
			p.next()
		}
		nextPrec := prec + 1
		if op == OpPow {
			// Right-associative: 2^3^2 is 2^(3^2).
			nextPrec = prec
		}
		right, err := p.parseExpr(nextPrec)
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

// parsePrefix parses a primary expression: a literal, variable, function
// call, parenthesized group, or unary sign.
func (p *parser) parsePrefix() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, apperrors.NewParseError(p.input, tok.pos, "malformed number %q", tok.text)
		}
		return &Number{Value: v}, nil

	case tokIdent:
		if p.peek().kind == tokLParen && IsFunction(tok.text) {
			return p.parseCall(tok)
		}
		// Any other identifier is a symbol; an adjacent "(" becomes
		// implicit multiplication in parseExpr, so "x(x+1)" works.
		return &Variable{Name: tok.text}, nil

	case tokMinus:
		operand, err := p.parseExpr(precUnary)
		if err != nil {
			return nil, err
		}
		return &Unary{Op: OpNeg, Operand: operand}, nil

	case tokPlus:
		// Unary plus is a no-op.
		return p.parseExpr(precUnary)

	case tokLParen:
		inner, err := p.parseExpr(precAdd)
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, apperrors.NewParseError(p.input, closing.pos, "missing closing parenthesis")
		}
		return inner, nil

	case tokEOF:
		return nil, apperrors.NewParseError(p.input, tok.pos, "unexpected end of expression")
	}
	return nil, apperrors.NewParseError(p.input, tok.pos, "unexpected %q", tok.text)
}

// parseCall parses "name(arg, ...)" with name already consumed.
func (p *parser) parseCall(name token) (Node, error) {
	p.next() // consume "("
	var args []Node
	if p.peek().kind != tokRParen {
		for {
			arg, err := p.parseExpr(precAdd)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if closing := p.next(); closing.kind != tokRParen {
		return nil, apperrors.NewParseError(p.input, closing.pos, "missing closing parenthesis in call to %s", name.text)
	}
	if len(args) == 0 {
		return nil, apperrors.NewParseError(p.input, name.pos, "function %s requires an argument", name.text)
	}
	return &Call{Name: name.text, Args: args}, nil
}

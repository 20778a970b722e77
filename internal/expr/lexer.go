package expr

import (
	"unicode"

	apperrors "github.com/agbru/stepsolve/internal/errors"
)

// tokenKind classifies a lexical token.
type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
	tokEOF
)

// token is one lexical unit with its rune offset in the input, kept for
// parse error positions.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex splits input into tokens. Whitespace separates tokens but is otherwise
// insignificant. Numbers are decimal with an optional fractional part;
// identifiers start with a letter and may continue with letters or digits.
func lex(input string) ([]token, error) {
	runes := []rune(input)
	tokens := make([]token, 0, len(runes))
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9' || r == '.':
			start := i
			sawDot := false
			for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
				if runes[i] == '.' {
					if sawDot {
						return nil, apperrors.NewParseError(input, i, "unexpected second decimal point")
					}
					sawDot = true
				}
				i++
			}
			text := string(runes[start:i])
			if text == "." {
				return nil, apperrors.NewParseError(input, start, "lone decimal point")
			}
			tokens = append(tokens, token{kind: tokNumber, text: text, pos: start})
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])) {
				i++
			}
			tokens = append(tokens, token{kind: tokIdent, text: string(runes[start:i]), pos: start})
		default:
			kind, ok := operatorKind(r)
			if !ok {
				return nil, apperrors.NewParseError(input, i, "unexpected character %q", string(r))
			}
			tokens = append(tokens, token{kind: kind, text: string(r), pos: i})
			i++
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(runes)})
	return tokens, nil
}

// operatorKind maps a single-rune operator to its token kind.
func operatorKind(r rune) (tokenKind, bool) {
	switch r {
	case '+':
		return tokPlus, true
	case '-', '−':
		return tokMinus, true
	case '*', '×', '·':
		return tokStar, true
	case '/', '÷':
		return tokSlash, true
	case '^':
		return tokCaret, true
	case '(':
		return tokLParen, true
	case ')':
		return tokRParen, true
	case ',':
		return tokComma, true
	}
	return 0, false
}

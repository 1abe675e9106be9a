package r1cs

import "github.com/zkcore/zkcore/zkerrors"

// tokenKind names one lexical class of the equation grammar spec.md 4.G
// names: variables, integer literals, +, -, *, /, parenthesization, and
// the '=' separating an equation's two sides.
type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEquals
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex tokenizes an equation string, reporting a ParseError at the byte
// offset of the first character it cannot classify.
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9':
			start := i
			for i < len(src) && src[i] >= '0' && src[i] <= '9' {
				i++
			}
			toks = append(toks, token{kind: tokNumber, text: src[start:i], pos: start})
		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], pos: start})
		default:
			kind, ok := singleCharToken(c)
			if !ok {
				return nil, zkerrors.NewParseError(i, "unexpected character '"+string(c)+"'")
			}
			toks = append(toks, token{kind: kind, text: string(c), pos: i})
			i++
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func singleCharToken(c byte) (tokenKind, bool) {
	switch c {
	case '+':
		return tokPlus, true
	case '-':
		return tokMinus, true
	case '*':
		return tokStar, true
	case '/':
		return tokSlash, true
	case '(':
		return tokLParen, true
	case ')':
		return tokRParen, true
	case '=':
		return tokEquals, true
	}
	return 0, false
}

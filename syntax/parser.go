package syntax

import (
	"fmt"
	"strings"
)

// ErrorCode is the typed reason a pattern failed to parse.
type ErrorCode string

const (
	// ErrInvalidEscape covers both an unrecognized `\x` pair and a lone
	// backslash at the end of the pattern.
	ErrInvalidEscape ErrorCode = "invalid escape sequence"
	// ErrDanglingQuantifier is returned when + or ? has no preceding token
	// to wrap.
	ErrDanglingQuantifier ErrorCode = "quantifier has nothing to repeat"
)

// Error is the typed error returned by Parse.
type Error struct {
	Code ErrorCode
	Expr string
	Args []interface{}
}

func (e *Error) Error() string {
	msg := string(e.Code)
	if len(e.Args) > 0 {
		msg += ": " + fmt.Sprint(e.Args...)
	}
	return "error parsing pattern: " + msg + " in `" + e.Expr + "`"
}

type parser struct {
	expr    string
	pattern []rune
	pos     int
	tokens  []*Token
}

// Parse compiles a pattern string into a Tree in a single left-to-right
// scan. The only error cases are a bad escape and a quantifier with nothing
// before it; an unterminated [ or ( is not an error, the scan consumes the
// rest of the pattern as class or group content.
func Parse(expr string) (*Tree, error) {
	tree := &Tree{Expr: expr}

	rest := expr
	if strings.HasPrefix(rest, "^") {
		tree.AnchorStart = true
		rest = rest[1:]
	}
	// stripped independently of ^, so "^$" leaves an empty token sequence
	if strings.HasSuffix(rest, "$") {
		tree.AnchorEnd = true
		rest = rest[:len(rest)-1]
	}

	p := parser{expr: expr, pattern: []rune(rest)}
	if err := p.scan(); err != nil {
		return nil, err
	}
	tree.Tokens = p.tokens
	return tree, nil
}

func (p *parser) scan() error {
	for p.pos < len(p.pattern) {
		ch := p.pattern[p.pos]
		p.pos++

		switch ch {
		case '\\':
			if err := p.scanEscape(); err != nil {
				return err
			}
		case '[':
			p.scanClass()
		case '(':
			p.scanGroup()
		case '.':
			p.push(&Token{Kind: KWildcard})
		case '+':
			if err := p.wrapLast(KOneOrMore, ch); err != nil {
				return err
			}
		case '?':
			if err := p.wrapLast(KZeroOrOne, ch); err != nil {
				return err
			}
		default:
			p.push(newTokenCh(KLiteral, ch))
		}
	}
	return nil
}

func (p *parser) scanEscape() error {
	if p.pos >= len(p.pattern) {
		return p.newError(ErrInvalidEscape, "pattern ends with \\")
	}
	ch := p.pattern[p.pos]
	p.pos++

	switch ch {
	case 'd':
		p.push(&Token{Kind: KDigit})
	case 'w':
		p.push(&Token{Kind: KWord})
	case '\\':
		p.push(newTokenCh(KLiteral, '\\'))
	default:
		return p.newError(ErrInvalidEscape, "\\"+string(ch))
	}
	return nil
}

// scanClass consumes a [...] class. Everything up to ] is collected verbatim
// into the membership set, with a ^ right after the bracket negating it. A
// missing ] swallows the rest of the pattern into the set.
func (p *parser) scanClass() {
	negated := false
	if p.pos < len(p.pattern) && p.pattern[p.pos] == '^' {
		negated = true
		p.pos++
	}

	set := &CharSet{}
	for p.pos < len(p.pattern) {
		ch := p.pattern[p.pos]
		p.pos++
		if ch == ']' {
			break
		}
		set.addChar(ch)
	}

	if negated {
		p.push(newTokenSet(KNegClass, set))
	} else {
		p.push(newTokenSet(KClass, set))
	}
}

// scanGroup consumes a (...) alternation. The interior is split on | into
// plain literal options; it is never re-tokenized and groups never nest. A
// missing ) swallows the rest of the pattern, same as scanClass.
func (p *parser) scanGroup() {
	start := p.pos
	for p.pos < len(p.pattern) && p.pattern[p.pos] != ')' {
		p.pos++
	}
	interior := string(p.pattern[start:p.pos])
	if p.pos < len(p.pattern) {
		p.pos++ // the )
	}
	p.push(newTokenAlts(strings.Split(interior, "|")))
}

// wrapLast pops the previously pushed token and re-pushes it wrapped in a
// quantifier. Quantifiers bind to exactly one token, so they can never open
// the pattern.
func (p *parser) wrapLast(k TokenKind, ch rune) error {
	if len(p.tokens) == 0 {
		return p.newError(ErrDanglingQuantifier, string(ch))
	}
	last := p.tokens[len(p.tokens)-1]
	p.tokens[len(p.tokens)-1] = newTokenSub(k, last)
	return nil
}

func (p *parser) push(t *Token) {
	p.tokens = append(p.tokens, t)
}

func (p *parser) newError(code ErrorCode, args ...interface{}) *Error {
	return &Error{Code: code, Expr: p.expr, Args: args}
}

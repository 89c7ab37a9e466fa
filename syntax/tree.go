package syntax

import (
	"bytes"
	"sort"
	"strconv"
)

// TokenKind identifies what a Token matches.
type TokenKind int32

const (
	KLiteral     TokenKind = iota // a
	KDigit                        // \d
	KWord                         // \w
	KWildcard                     // .
	KClass                        // [abc]
	KNegClass                     // [^abc]
	KOneOrMore                    // x+
	KZeroOrOne                    // x?
	KAlternation                  // (cat|dog)
)

// Token is one compiled unit of pattern syntax.
//
// Implementation notes:
//
// Tokens form a shallow tree rather than a flat list because a quantifier
// owns the single token it wraps. Only one payload field is populated per
// kind: Ch for KLiteral, Set for KClass/KNegClass, Sub for the quantifier
// kinds, Alts for KAlternation. The other fields stay zero.
//
// Alts are the raw substrings of the pattern between the pipes; they are
// never themselves tokenized.
type Token struct {
	Kind TokenKind
	Ch   rune
	Set  *CharSet
	Sub  *Token
	Alts []string
}

func newTokenCh(k TokenKind, ch rune) *Token {
	return &Token{Kind: k, Ch: ch}
}

func newTokenSet(k TokenKind, set *CharSet) *Token {
	return &Token{Kind: k, Set: set}
}

func newTokenSub(k TokenKind, sub *Token) *Token {
	return &Token{Kind: k, Sub: sub}
}

func newTokenAlts(alts []string) *Token {
	return &Token{Kind: KAlternation, Alts: alts}
}

// IsQuantifier reports whether the token wraps another token rather than
// matching a character itself.
func (t *Token) IsQuantifier() bool {
	return t.Kind == KOneOrMore || t.Kind == KZeroOrOne
}

// String renders the token for dumps and test failures.
func (t *Token) String() string {
	switch t.Kind {
	case KLiteral:
		return "Literal(" + strconv.QuoteRune(t.Ch) + ")"
	case KDigit:
		return "Digit"
	case KWord:
		return "Word"
	case KWildcard:
		return "Wildcard"
	case KClass:
		return "Class(" + t.Set.String() + ")"
	case KNegClass:
		return "NegClass(" + t.Set.String() + ")"
	case KOneOrMore:
		return "OneOrMore(" + t.Sub.String() + ")"
	case KZeroOrOne:
		return "ZeroOrOne(" + t.Sub.String() + ")"
	case KAlternation:
		buf := &bytes.Buffer{}
		buf.WriteString("Alternation(")
		for i, alt := range t.Alts {
			if i > 0 {
				buf.WriteRune('|')
			}
			buf.WriteString(strconv.Quote(alt))
		}
		buf.WriteString(")")
		return buf.String()
	}
	return "Unknown"
}

// Tree is a compiled pattern: the anchor flags plus the ordered token
// sequence. Read-only once Parse returns it.
type Tree struct {
	AnchorStart bool
	AnchorEnd   bool
	Tokens      []*Token

	// pattern text as passed to Parse
	Expr string
}

// Dump returns a multi-line rendering of the tree for debugging.
func (tree *Tree) Dump() string {
	buf := &bytes.Buffer{}
	buf.WriteString("pattern: ")
	buf.WriteString(strconv.Quote(tree.Expr))
	buf.WriteRune('\n')
	if tree.AnchorStart || tree.AnchorEnd {
		buf.WriteString("anchors:")
		if tree.AnchorStart {
			buf.WriteString(" ^")
		}
		if tree.AnchorEnd {
			buf.WriteString(" $")
		}
		buf.WriteRune('\n')
	}
	for _, t := range tree.Tokens {
		buf.WriteString("  ")
		buf.WriteString(t.String())
		buf.WriteRune('\n')
	}
	return buf.String()
}

// CharSet is the membership set behind a [...] class. The pattern language
// has no ranges and interprets no escapes inside brackets, so a flat set of
// runes is the whole story.
type CharSet struct {
	chars map[rune]struct{}
}

func (s *CharSet) addChar(ch rune) {
	if s.chars == nil {
		s.chars = make(map[rune]struct{})
	}
	s.chars[ch] = struct{}{}
}

// Contains reports whether ch is a member of the set.
func (s *CharSet) Contains(ch rune) bool {
	_, ok := s.chars[ch]
	return ok
}

// Len returns the number of distinct runes in the set.
func (s *CharSet) Len() int {
	return len(s.chars)
}

// String renders the members sorted so dumps are stable.
func (s *CharSet) String() string {
	members := make([]rune, 0, len(s.chars))
	for ch := range s.chars {
		members = append(members, ch)
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })

	buf := &bytes.Buffer{}
	for _, ch := range members {
		buf.WriteRune(ch)
	}
	return strconv.Quote(buf.String())
}

package patmat

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/patmat/patmat/syntax"
)

// prefilter answers IsMatch directly for token shapes where a plain literal
// search is provably equivalent to the backtracking search. It is an
// internal shortcut only; results are identical either way.
type prefilter interface {
	isMatch(subject string) bool
}

// newPrefilter classifies the compiled shape. Returns nil when no
// equivalent fast path exists and the backtracker must run.
func newPrefilter(tree *syntax.Tree) prefilter {
	if lit, ok := literalString(tree); ok {
		return &literalFilter{
			lit:         lit,
			anchorStart: tree.AnchorStart,
			anchorEnd:   tree.AnchorEnd,
		}
	}

	if alts, ok := literalAlternation(tree); ok {
		builder := ahocorasick.NewBuilder()
		for _, alt := range alts {
			builder.AddPattern([]byte(alt))
		}
		auto, err := builder.Build()
		if err != nil {
			// fall back to the backtracker
			return nil
		}
		return &multiLiteralFilter{auto: auto}
	}

	return nil
}

// literalString reports whether the tokens are a pure literal run and
// returns the concatenated string. An empty token sequence is the empty
// literal, which keeps "" and "^$" on this path.
func literalString(tree *syntax.Tree) (string, bool) {
	var sb strings.Builder
	for _, t := range tree.Tokens {
		if t.Kind != syntax.KLiteral {
			return "", false
		}
		sb.WriteRune(t.Ch)
	}
	return sb.String(), true
}

// literalAlternation reports whether the pattern is a single unanchored
// alternation with no empty option. An empty option matches everywhere,
// which the automaton cannot express, and anchors need position checks the
// automaton does not do; both shapes stay with the backtracker.
func literalAlternation(tree *syntax.Tree) ([]string, bool) {
	if tree.AnchorStart || tree.AnchorEnd || len(tree.Tokens) != 1 {
		return nil, false
	}
	t := tree.Tokens[0]
	if t.Kind != syntax.KAlternation {
		return nil, false
	}
	for _, alt := range t.Alts {
		if alt == "" {
			return nil, false
		}
	}
	return t.Alts, true
}

// literalFilter matches a single literal with the anchor flags mapped onto
// the corresponding string predicate.
type literalFilter struct {
	lit         string
	anchorStart bool
	anchorEnd   bool
}

func (f *literalFilter) isMatch(subject string) bool {
	switch {
	case f.anchorStart && f.anchorEnd:
		return subject == f.lit
	case f.anchorStart:
		return strings.HasPrefix(subject, f.lit)
	case f.anchorEnd:
		return strings.HasSuffix(subject, f.lit)
	default:
		return strings.Contains(subject, f.lit)
	}
}

// multiLiteralFilter matches an unanchored literal alternation with an
// Aho-Corasick automaton over the options.
type multiLiteralFilter struct {
	auto *ahocorasick.Automaton
}

func (f *multiLiteralFilter) isMatch(subject string) bool {
	return f.auto.IsMatch([]byte(subject))
}

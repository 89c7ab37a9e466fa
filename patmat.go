/*
Package patmat implements a small pattern language with a compile step and a
recursive backtracking matcher.

The language supports literals, \d, \w, ., flat [abc] and [^abc] classes,
one-token + and ? quantifiers, non-nested (a|b) literal alternations, and
whole-pattern ^ and $ anchors. There are no captures, ranges, or lazy
quantifiers, and matching reports only a boolean. Backtracking depth is
unbounded, so adversarial quantifier-heavy patterns on long subjects can
exhaust the stack.
*/
package patmat

import (
	"strconv"

	"github.com/patmat/patmat/runecacher"
	"github.com/patmat/patmat/syntax"
)

// Pattern is the representation of a compiled pattern.
// A Pattern is safe for concurrent use by multiple goroutines.
type Pattern struct {
	// read-only after Compile
	pattern string
	tree    *syntax.Tree

	// literal fast path, nil when the backtracker must run
	pre prefilter
}

// Compile parses a pattern and returns, if successful, a Pattern that can
// be matched against text any number of times.
func Compile(expr string) (*Pattern, error) {
	tree, err := syntax.Parse(expr)
	if err != nil {
		return nil, err
	}

	return &Pattern{
		pattern: expr,
		tree:    tree,
		pre:     newPrefilter(tree),
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
// It simplifies safe initialization of global variables holding compiled
// patterns.
func MustCompile(str string) *Pattern {
	pattern, err := Compile(str)
	if err != nil {
		panic(`patmat: Compile(` + quote(str) + `): ` + err.Error())
	}
	return pattern
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.pattern
}

// Dump returns a debug rendering of the compiled token sequence.
func (p *Pattern) Dump() string {
	return p.tree.Dump()
}

// IsMatch reports whether the subject contains a substring matching the
// pattern, or, when anchored, whether the anchored match succeeds. It never
// fails; malformed patterns are rejected by Compile, not here.
func (p *Pattern) IsMatch(subject string) bool {
	if p.pre != nil {
		return p.pre.isMatch(subject)
	}
	return p.match(runecacher.NewFromString(subject))
}

// MatchRunes is IsMatch for callers that already hold the subject as runes.
func (p *Pattern) MatchRunes(rs []rune) bool {
	if p.pre != nil {
		return p.pre.isMatch(string(rs))
	}
	return p.match(runecacher.NewFromRunes(rs))
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

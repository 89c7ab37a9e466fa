package patmat

import (
	"strings"
	"sync"
	"testing"
)

func TestIsMatch_Basic(t *testing.T) {
	type d struct {
		p    string
		s    string
		want bool
	}
	data := []d{
		// one-or-more
		{"a+", "", false},
		{"a+", "a", true},
		{"a+", "aaa", true},
		{"b+", "aabbb", true},
		{"^b+", "aabbb", false},

		// anchors
		{"^abc$", "abc", true},
		{"^abc$", "xabcx", false},
		{"^abc$", "ab", false},
		{"^abc", "abcdef", true},
		{"abc$", "xyzabc", true},
		{"abc$", "abcx", false},

		// classes
		{"[abc]", "a", true},
		{"[abc]", "x", false},
		{"[abc]", "xay", true},
		{"[^abc]", "a", false},
		{"[^abc]", "x", true},

		// escapes
		{`\d+`, "abc", false},
		{`\d+`, "a123b", true},
		{`\w`, "_", true},
		{`\w`, "-", false},
		{`\\`, `a\b`, true},

		// wildcard
		{"a.c", "abc", true},
		{"a.c", "ac", false},
		{"a.c", "a\nc", false},

		// alternation
		{"(cat|dog)", "I have a cat", true},
		{"(cat|dog)", "dog house", true},
		{"(cat|dog)", "cow", false},

		// zero-or-one
		{"colou?r", "color", true},
		{"colou?r", "colour", true},
		{"colou?r", "colr", false},

		// plain literals (these take the prefilter path)
		{"hello", "say hello world", true},
		{"hello", "help", false},
		{"", "anything", true},
		{"", "", true},
		{"^$", "", true},
		{"^$", "x", false},
	}

	for _, tt := range data {
		p, err := Compile(tt.p)
		if err != nil {
			t.Fatalf("Compile(%q): unexpected error: %v", tt.p, err)
		}
		if want, got := tt.want, p.IsMatch(tt.s); want != got {
			t.Fatalf("IsMatch(%q, %q): wanted %v, got %v", tt.s, tt.p, want, got)
		}
	}
}

func TestIsMatch_Deterministic(t *testing.T) {
	for i := 0; i < 2; i++ {
		p, err := Compile(`(cat|dog)\d+`)
		if err != nil {
			t.Fatalf("unexpected compile err: %v", err)
		}
		for j := 0; j < 3; j++ {
			if want, got := true, p.IsMatch("a dog42"); want != got {
				t.Fatalf("wanted %v, got %v", want, got)
			}
			if want, got := false, p.IsMatch("a dog"); want != got {
				t.Fatalf("wanted %v, got %v", want, got)
			}
		}
	}
}

func TestCompile_Errors(t *testing.T) {
	for _, expr := range []string{`+abc`, `?x`, `\z`, `ab\`} {
		p, err := Compile(expr)
		if err == nil {
			t.Fatalf("Compile(%q): expected error, got %v", expr, p.Dump())
		}
		if p != nil {
			t.Fatalf("Compile(%q): expected nil pattern on error", expr)
		}
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic from MustCompile on bad pattern")
		}
		msg, ok := r.(string)
		if !ok || !strings.HasPrefix(msg, "patmat: Compile(") {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	MustCompile(`+a`)
}

func TestPattern_String(t *testing.T) {
	p := MustCompile("^ab+c$")
	if want, got := "^ab+c$", p.String(); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}

func TestMatchRunes(t *testing.T) {
	p := MustCompile(`\d`)
	if want, got := true, p.MatchRunes([]rune("a1b")); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
	if want, got := false, p.MatchRunes([]rune("abc")); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}

func TestIsMatch_NonASCIISubject(t *testing.T) {
	// Subject positions are rune positions, so multi-byte characters count
	// as one consumed character each.
	p := MustCompile("^.x$")
	if want, got := true, p.IsMatch("éx"); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}

	p = MustCompile("[é]")
	if want, got := true, p.IsMatch("café"); want != got {
		t.Fatalf("wanted %v, got %v", want, got)
	}
}

// one Pattern, many goroutines
func TestIsMatch_Concurrent(t *testing.T) {
	p := MustCompile(`(cat|dog)\d?`)
	subjects := []string{"catdog1", "cat", "cow", "", "dogdogdog9"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				s := subjects[i%len(subjects)]
				want := s != "cow" && s != ""
				if got := p.IsMatch(s); want != got {
					t.Errorf("IsMatch(%q): wanted %v, got %v", s, want, got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

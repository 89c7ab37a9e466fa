package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharSet_Basic(t *testing.T) {
	set := &CharSet{}
	require.Equal(t, 0, set.Len())
	require.False(t, set.Contains('a'))

	set.addChar('a')
	set.addChar('b')
	set.addChar('a') // duplicates collapse

	require.Equal(t, 2, set.Len())
	require.True(t, set.Contains('a'))
	require.True(t, set.Contains('b'))
	require.False(t, set.Contains('c'))
}

func TestCharSet_StringIsSorted(t *testing.T) {
	set := &CharSet{}
	set.addChar('c')
	set.addChar('a')
	set.addChar('b')
	require.Equal(t, `"abc"`, set.String())
}

func TestToken_String(t *testing.T) {
	set := &CharSet{}
	set.addChar('x')

	tests := map[string]struct {
		tok  *Token
		want string
	}{
		"literal":  {tok: newTokenCh(KLiteral, 'a'), want: `Literal('a')`},
		"digit":    {tok: &Token{Kind: KDigit}, want: "Digit"},
		"word":     {tok: &Token{Kind: KWord}, want: "Word"},
		"wildcard": {tok: &Token{Kind: KWildcard}, want: "Wildcard"},
		"class":    {tok: newTokenSet(KClass, set), want: `Class("x")`},
		"negclass": {tok: newTokenSet(KNegClass, set), want: `NegClass("x")`},
		"plus": {
			tok:  newTokenSub(KOneOrMore, newTokenCh(KLiteral, 'a')),
			want: `OneOrMore(Literal('a'))`,
		},
		"question": {
			tok:  newTokenSub(KZeroOrOne, &Token{Kind: KDigit}),
			want: `ZeroOrOne(Digit)`,
		},
		"alternation": {
			tok:  newTokenAlts([]string{"cat", "dog"}),
			want: `Alternation("cat"|"dog")`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.tok.String())
		})
	}
}

func TestTree_Dump(t *testing.T) {
	tree, err := Parse(`^a\d+$`)
	require.NoError(t, err)

	want := "pattern: \"^a\\\\d+$\"\n" +
		"anchors: ^ $\n" +
		"  Literal('a')\n" +
		"  OneOrMore(Digit)\n"
	require.Equal(t, want, tree.Dump())
}

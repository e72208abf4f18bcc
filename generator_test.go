package typox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	c := Generate("abc")
	expected := []string{
		"bc", "aabc", "qbc", "wbc", "sbc", ";bc",
		"ac", "abbc", "avc", "agc", "ahc", "anc", "adc",
		"ab", "abcc", "abx", "abd", "abf", "abv",
		"bac", "acb",
	}
	require.Equal(t, expected, c.Typos())
	require.Equal(t, "abc", c.Domain())
	require.Equal(t, len(expected), c.Len())

	require.Equal(t, NewCauseSet(DroppedChar), c.Causes("bc"))
	require.Equal(t, NewCauseSet(SymmetricKey), c.Causes(";bc"))
	require.Equal(t, NewCauseSet(Homoglyph), c.Causes("adc"))
	require.Equal(t, NewCauseSet(AdjacentKey), c.Causes("abd"))
	require.Equal(t, NewCauseSet(Transposition), c.Causes("acb"))
}

func TestGenerateNeverEmitsDomain(t *testing.T) {
	c := Generate("aa.com")
	require.NotContains(t, c.Typos(), "aa.com")
	require.Equal(t, NewCauseSet(DoubleInput), c.Causes("aaa.com"))
}

func TestGenerateDotsAndSuffixes(t *testing.T) {
	c := Generate("ntt.co.jp")
	require.Equal(t, NewCauseSet(DroppedChar), c.Causes("nttco.jp"))
	for _, alt := range []string{"ntt.jp", "ntt.com", "ntt.ne.jp", "ntt.go.jp"} {
		require.True(t, c.Causes(alt).Has(TldMismatch), alt)
	}
	m := c.Map()
	m["nttco.jp"].Add(Homoglyph)
	require.False(t, c.Causes("nttco.jp").Has(Homoglyph))
}

func TestGenerateSymmetricIsCaseSensitive(t *testing.T) {
	require.Equal(t, NewCauseSet(SymmetricKey), Generate("a.com").Causes(";.com"))
	require.NotContains(t, Generate("A.com").Typos(), ";.com")
	require.Equal(t, NewCauseSet(SymmetricKey), Generate("x;.com").Causes("xa.com"))
}

package typox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	testcases := []struct {
		a, b         string
		lev, damerau int
	}{
		{a: "ab", b: "ba", lev: 2, damerau: 1},
		{a: "kitten", b: "sitting", lev: 3, damerau: 3},
		{a: "", b: "abc", lev: 3, damerau: 3},
		{a: "google.com", b: "goolge.com", lev: 2, damerau: 1},
		{a: "ntt.co.jp", b: "ntt.jp", lev: 3, damerau: 3},
		{a: "same", b: "same", lev: 0, damerau: 0},
	}
	for _, v := range testcases {
		lev, damerau := Distance(v.a, v.b)
		require.Equalf(t, v.lev, lev, "levenshtein %v %v", v.a, v.b)
		require.Equalf(t, v.damerau, damerau, "damerau %v %v", v.a, v.b)
	}
}

func TestEditOps(t *testing.T) {
	ops := EditOps("abc", "abd")
	require.Equal(t, []EditOp{{Kind: OpReplace, SourceStart: 2, SourceEnd: 3, TargetStart: 2, TargetEnd: 3, Source: "c", Target: "d"}}, ops)

	ops = EditOps("ntt.co.jp", "ntt.jp")
	require.Len(t, ops, 3)
	for _, op := range ops {
		require.Equal(t, OpDelete, op.Kind)
	}

	pairs := [][2]string{{"kitten", "sitting"}, {"example.com", "exampel.com"}, {"", "abc"}, {"abc", ""}}
	for _, p := range pairs {
		require.Len(t, EditOps(p[0], p[1]), Levenshtein(p[0], p[1]), "%v %v", p[0], p[1])
	}
}

func TestAlignReconstructs(t *testing.T) {
	pairs := [][2]string{
		{"google.com", "gogle.com"},
		{"ntt.co.jp", "ntt.jp"},
		{"example.com", "exampel.con"},
		{"ｇoogle.com", "google.com"},
		{"", "abc"},
		{"abc", "abc"},
	}
	for _, p := range pairs {
		var source, target strings.Builder
		for _, op := range Align(p[0], p[1]) {
			source.WriteString(op.Source)
			target.WriteString(op.Target)
		}
		require.Equal(t, p[0], source.String())
		require.Equal(t, p[1], target.String())
	}
}

func TestDiffs(t *testing.T) {
	diffs := Diffs("google.com", "gogle.com")
	require.Len(t, diffs, 1)
	require.Equal(t, OpDelete, diffs[0].Kind)
	require.Equal(t, "o", diffs[0].Source)
	require.Empty(t, diffs[0].Target)

	require.Empty(t, Diffs("same.com", "same.com"))
	require.Equal(t, "replace", OpReplace.String())
}

package typox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankWithoutStatistics(t *testing.T) {
	ranked := Rank("ntt.co.jp", nil, nil, 0)
	require.NotEmpty(t, ranked)
	for i, c := range ranked {
		require.NotEqual(t, "ntt.co.jp", c.Typo)
		require.False(t, strings.ContainsAny(c.Typo, ",/"), c.Typo)
		require.Zero(t, c.Score)
		if i > 0 {
			require.LessOrEqual(t, ranked[i-1].Distance, c.Distance)
		}
	}
	require.Len(t, Rank("ntt.co.jp", nil, nil, 5), 5)
}

func TestRankSingleEdit(t *testing.T) {
	stats := Aggregate([]LabeledPair{{Correct: "ntt.co.jp", Typo: "mtt.co.jp", Label: "AdjacentKey"}})
	ranked := Rank("ntt.co.jp", nil, stats, 4)
	require.Len(t, ranked, 4)
	// weight 1 plus the positional bonus of n at position 8
	require.Equal(t, "mtt.co.jp", ranked[0].Typo)
	require.Equal(t, 1.5, ranked[0].Score)
	require.Equal(t, 1, ranked[0].Distance)
	// other adjacent keys of n only get the positional bonus
	for _, c := range ranked[1:] {
		require.Equal(t, 0.5, c.Score, c.Typo)
	}
}

func TestRankReversedPair(t *testing.T) {
	stats := Aggregate([]LabeledPair{{Correct: "mtt.co.jp", Typo: "ntt.co.jp", Label: "AdjacentKey"}})
	ranked := Rank("ntt.co.jp", nil, stats, 1)
	require.Equal(t, "mtt.co.jp", ranked[0].Typo)
	require.Equal(t, 1.0, ranked[0].Score)
}

func TestRankTLDMismatch(t *testing.T) {
	stats := Aggregate([]LabeledPair{{Correct: "ntt.co.jp", Typo: "ntt.jp", Label: "TldMismatch"}})
	ranked := Rank("ntt.co.jp", nil, stats, 0)
	require.Equal(t, "ntt.jp", ranked[0].Typo)
	require.Equal(t, 5.0, ranked[0].Score)
	require.Equal(t, NewCauseSet(TldMismatch), ranked[0].Causes)
}

func TestRankTranspositionAndTies(t *testing.T) {
	stats := Aggregate([]LabeledPair{
		{Correct: "google.com", Typo: "goolge.com", Label: "Transposition"},
		{Correct: "yahoo.com", Typo: "yahoo.co.jp", Label: "TldMismatch"},
	})
	ranked := Rank("google.com", nil, stats, 0)
	require.Equal(t, "google.co.jp", ranked[0].Typo)
	require.Equal(t, 2.5, ranked[0].Score)
	require.Equal(t, "goolge.com", ranked[1].Typo)
	require.Equal(t, 0.5, ranked[1].Score)
	for i := 3; i < len(ranked); i++ {
		if ranked[i-1].Score == ranked[i].Score {
			require.LessOrEqual(t, ranked[i-1].Distance, ranked[i].Distance)
		}
	}
}

func TestRankerCustomCandidates(t *testing.T) {
	c := newCandidates("abc.com")
	c.add("abd.com", AdjacentKey)
	c.add("ab/.com", AdjacentKey)
	c.add("abc.com", AdjacentKey)
	ranked := NewRanker(nil).Rank("abc.com", c, 0)
	require.Len(t, ranked, 1)
	require.Equal(t, "abd.com", ranked[0].Typo)
}

func TestRankTieBreaksOnDistance(t *testing.T) {
	c := newCandidates("abc.com")
	c.add("xyz.com", CognitiveSpelling)
	c.add("abd.com", AdjacentKey)
	ranked := NewRanker(nil).Rank("abc.com", c, 0)
	require.Equal(t, []string{"abd.com", "xyz.com"}, []string{ranked[0].Typo, ranked[1].Typo})
	require.Equal(t, 1, ranked[0].Distance)
	require.Equal(t, 3, ranked[1].Distance)
}

func TestRankDroppedDotOnlyGetsPositionalBonus(t *testing.T) {
	stats := Aggregate([]LabeledPair{{Correct: "a.bc", Typo: "abc", Label: "DroppedDot"}})
	require.Equal(t, 1.0, stats.Weights.Weight(DroppedDot, CharPair{Source: ".", Target: EmptyFragment}))

	ranked := Rank("a.bc", nil, stats, 1)
	require.Equal(t, "abc", ranked[0].Typo)
	require.Equal(t, NewCauseSet(DroppedChar), ranked[0].Causes)
	// generated omissions are weighted as DroppedChar, the dot bonus still applies
	require.Equal(t, 0.5, ranked[0].Score)
}

func TestRankEqualScoresPreferCloserTypo(t *testing.T) {
	r := &Ranker{weights: &WeightTable{weights: map[Cause]map[WeightKey]float64{
		DroppedChar: {CharPair{Source: "bc", Target: EmptyFragment}: 0.8},
		AdjacentKey: {CharPair{Source: "c", Target: "d"}: 0.8},
	}}}
	c := newCandidates("abc.com")
	c.add("a.com", DroppedChar)
	c.add("abd.com", AdjacentKey)
	ranked := r.Rank("abc.com", c, 0)
	require.Len(t, ranked, 2)
	require.Equal(t, "abd.com", ranked[0].Typo)
	require.Equal(t, 0.8, ranked[0].Score)
	require.Equal(t, 1, ranked[0].Distance)
	require.Equal(t, "a.com", ranked[1].Typo)
	require.Equal(t, 0.8, ranked[1].Score)
	require.Equal(t, 2, ranked[1].Distance)
}

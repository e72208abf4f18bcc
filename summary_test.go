package typox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	require.Equal(t, ScoreSummary{}, Summarize(nil))

	ranked := []*Candidate{{Score: 4}, {Score: 2}, {Score: 0}, {Score: 2}}
	summary := Summarize(ranked)
	require.Equal(t, 4, summary.Count)
	require.Equal(t, 3, summary.Scored)
	require.Equal(t, 2.0, summary.Mean)
	require.Equal(t, 2.0, summary.Median)
	require.Equal(t, 4.0, summary.Max)
}

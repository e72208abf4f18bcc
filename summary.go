package typox

import (
	"github.com/montanaflynn/stats"
)

// ScoreSummary describes the score distribution of a ranking
type ScoreSummary struct {
	Count  int
	Mean   float64
	Median float64
	P90    float64
	Max    float64
	Scored int // candidates with a non-zero score
}

// Summarize computes the score distribution of ranked candidates
func Summarize(ranked []*Candidate) ScoreSummary {
	summary := ScoreSummary{Count: len(ranked)}
	if len(ranked) == 0 {
		return summary
	}
	data := make(stats.Float64Data, 0, len(ranked))
	for _, c := range ranked {
		data = append(data, c.Score)
		if c.Score > 0 {
			summary.Scored++
		}
	}
	summary.Mean, _ = stats.Mean(data)
	summary.Median, _ = stats.Median(data)
	summary.P90, _ = stats.Percentile(data, 90)
	summary.Max, _ = stats.Max(data)
	return summary
}

package typox

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// LabeledPair is one classified observation of the corpus
type LabeledPair struct {
	Correct string // correct domain
	Typo    string // mistyped domain
	Label   string // rendered cause label
}

// Statistics is the read-only output of aggregation
type Statistics struct {
	// MajorRatios is the share of each cause over all cause tags
	MajorRatios map[Cause]float64
	// Weights holds per (cause, key) joint probabilities
	Weights *WeightTable
	// Positional holds single edit positions counted from the end
	Positional *PositionalTable
	// Rows is the number of aggregated rows
	Rows int
	// Events is the shared weight denominator (floored at 1)
	Events int
	// Tags is the number of cause tags over all rows
	Tags int
}

// Aggregator accumulates corpus statistics. It is not safe for concurrent
// use: shard rows across aggregators and Merge them instead.
type Aggregator struct {
	causeCounts map[Cause]int
	keyCounts   map[Cause]map[WeightKey]int
	positional  *PositionalTable
	rows        int
}

// NewAggregator returns an empty aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{
		causeCounts: map[Cause]int{},
		keyCounts:   map[Cause]map[WeightKey]int{},
		positional:  newPositionalTable(),
	}
}

func (a *Aggregator) increment(cause Cause, key WeightKey, n int) {
	keys, ok := a.keyCounts[cause]
	if !ok {
		keys = map[WeightKey]int{}
		a.keyCounts[cause] = keys
	}
	keys[key] += n
}

// Add accounts a single labeled pair
func (a *Aggregator) Add(pair LabeledPair) {
	a.rows++
	causes := ParseCauses(pair.Label)
	if len(causes) == 0 {
		return
	}
	for c := range causes {
		a.causeCounts[c]++
	}

	customHandled := false
	if causes.Has(TldMismatch) {
		if diff, ok := DetectTLDMismatch(pair.Correct, pair.Typo); ok {
			a.increment(TldMismatch, diff, 1)
			customHandled = true
		}
	}
	if causes.Has(Transposition) {
		if swapped, ok := FindTransposition(pair.Correct, pair.Typo); ok {
			a.increment(Transposition, swapped, 1)
			customHandled = true
		}
	}
	if !customHandled {
		diffs := Diffs(pair.Correct, pair.Typo)
		for c := range causes {
			if c == TldMismatch || c == Transposition {
				continue
			}
			for _, d := range diffs {
				a.increment(c, fragmentKey(d), 1)
			}
		}
	}

	if !causes.Has(TldMismatch) && !causes.Has(Transposition) {
		a.addPositional(pair.Correct, pair.Typo)
	}
}

// fragmentKey renders a diff span as a character pair, empty sides become
// the EmptyFragment sentinel
func fragmentKey(op EditOp) CharPair {
	key := CharPair{Source: op.Source, Target: op.Target}
	if key.Source == "" {
		key.Source = EmptyFragment
	}
	if key.Target == "" {
		key.Target = EmptyFragment
	}
	return key
}

func (a *Aggregator) addPositional(correct, typo string) {
	lev, damerau := Distance(correct, typo)
	if damerau != 1 || lev != 1 {
		return
	}
	ops := EditOps(correct, typo)
	if len(ops) != 1 {
		return
	}
	op := ops[0]
	var char string
	switch op.Kind {
	case OpInsert:
		char = op.Target
	case OpDelete, OpReplace:
		char = op.Source
	default:
		return
	}
	cause, _ := OperationCause(op)
	position := len([]rune(correct)) - 1 - op.SourceStart
	a.positional.add(cause, strings.ToLower(char), position, 1)
}

// Merge folds the counts of other into a
func (a *Aggregator) Merge(other *Aggregator) {
	a.rows += other.rows
	for c, n := range other.causeCounts {
		a.causeCounts[c] += n
	}
	for c, keys := range other.keyCounts {
		for k, n := range keys {
			a.increment(c, k, n)
		}
	}
	for c, chars := range other.positional.counts {
		for char, positions := range chars {
			for pos, n := range positions {
				a.positional.add(c, char, pos, n)
			}
		}
	}
}

// Finalize normalizes the accumulated counts
func (a *Aggregator) Finalize() *Statistics {
	stats := &Statistics{
		MajorRatios: map[Cause]float64{},
		Weights:     &WeightTable{weights: map[Cause]map[WeightKey]float64{}},
		Positional:  newPositionalTable(),
		Rows:        a.rows,
	}

	totalTags := 0
	for _, n := range a.causeCounts {
		totalTags += n
	}
	stats.Tags = totalTags
	if totalTags > 0 {
		for c, n := range a.causeCounts {
			stats.MajorRatios[c] = float64(n) / float64(totalTags)
		}
	}

	events := 0
	for _, keys := range a.keyCounts {
		for _, n := range keys {
			events += n
		}
	}
	if events == 0 {
		events = 1
	}
	stats.Events = events
	for c, keys := range a.keyCounts {
		weights := make(map[WeightKey]float64, len(keys))
		for k, n := range keys {
			weights[k] = float64(n) / float64(events)
		}
		stats.Weights.weights[c] = weights
	}

	for c, chars := range a.positional.counts {
		for char, positions := range chars {
			for pos, n := range positions {
				stats.Positional.add(c, char, pos, n)
			}
		}
	}
	return stats
}

// Aggregate computes statistics over pairs sequentially
func Aggregate(pairs []LabeledPair) *Statistics {
	agg := NewAggregator()
	for _, p := range pairs {
		agg.Add(p)
	}
	return agg.Finalize()
}

// AggregateParallel shards pairs across workers and merges the partial
// counts. The result equals Aggregate over the same pairs.
func AggregateParallel(ctx context.Context, pairs []LabeledPair, workers int) (*Statistics, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}
	if workers <= 1 {
		return Aggregate(pairs), nil
	}

	shards := make([]*Aggregator, workers)
	size := (len(pairs) + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := min(w*size, len(pairs))
		end := min(start+size, len(pairs))
		shard := NewAggregator()
		shards[w] = shard
		g.Go(func() error {
			for _, p := range pairs[start:end] {
				if err := ctx.Err(); err != nil {
					return err
				}
				shard.Add(p)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := NewAggregator()
	for _, shard := range shards {
		merged.Merge(shard)
	}
	return merged.Finalize(), nil
}

package typox

import (
	"math"
	"sort"
	"strings"
)

const (
	// KPositionBoost scales the positional bonus of single edit mistakes
	KPositionBoost = 0.5
	// TLDAmplification multiplies the weight of suffix confusions
	TLDAmplification = 5.0
)

// Candidate is a ranked typo of a domain
type Candidate struct {
	Typo     string
	Causes   CauseSet
	Score    float64
	Distance int
}

// Ranker scores generated candidates against corpus statistics
type Ranker struct {
	weights    *WeightTable
	positional *PositionalTable
}

// NewRanker returns a ranker reading stats. A nil stats ranks every
// candidate with a zero score, leaving generation order.
func NewRanker(stats *Statistics) *Ranker {
	r := &Ranker{}
	if stats != nil {
		r.weights = stats.Weights
		r.positional = stats.Positional
	}
	return r
}

// Rank scores candidates of domain and returns the best topN of them,
// topN <= 0 returns all
func Rank(domain string, candidates *Candidates, stats *Statistics, topN int) []*Candidate {
	return NewRanker(stats).Rank(domain, candidates, topN)
}

// singleEdit is the only non-equal span of an alignment
type singleEdit struct {
	op  EditOp
	key CharPair
}

// findSingleEdit returns the edit when correct and typo differ by exactly
// one substitution of one character, one insertion or one deletion
func findSingleEdit(correct, typo string) (singleEdit, bool) {
	diffs := Diffs(correct, typo)
	if len(diffs) != 1 {
		return singleEdit{}, false
	}
	op := diffs[0]
	if op.Kind == OpReplace && (len([]rune(op.Source)) != 1 || len([]rune(op.Target)) != 1) {
		return singleEdit{}, false
	}
	return singleEdit{op: op, key: fragmentKey(op)}, true
}

// Rank scores candidates of domain and returns the best topN of them
func (r *Ranker) Rank(domain string, candidates *Candidates, topN int) []*Candidate {
	if candidates == nil {
		candidates = Generate(domain)
	}
	ranked := make([]*Candidate, 0, candidates.Len())
	for _, typo := range candidates.order {
		if typo == domain {
			continue
		}
		ranked = append(ranked, r.score(domain, typo, candidates.causes[typo]))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Distance < ranked[j].Distance
	})

	filtered := ranked[:0]
	for _, c := range ranked {
		if strings.ContainsAny(c.Typo, ",/") {
			continue
		}
		filtered = append(filtered, c)
	}
	if topN > 0 && len(filtered) > topN {
		filtered = filtered[:topN]
	}
	return filtered
}

func (r *Ranker) score(domain, typo string, causes CauseSet) *Candidate {
	tldDiff, isTLD := DetectTLDMismatch(domain, typo)
	edit, isSingle := findSingleEdit(domain, typo)

	score := 0.0
	for _, cause := range causes.Sorted() {
		switch {
		case cause == TldMismatch:
			if isTLD {
				score += r.weights.Weight(TldMismatch, tldDiff) * TLDAmplification
			}
		case cause == Transposition:
			if pair, ok := FindTransposition(domain, typo); ok {
				score += r.weights.Weight(Transposition, pair)
			}
		case isSingle:
			score += r.singleEditWeight(cause, edit)
			score += r.positionalBonus(domain, edit)
		}
	}

	out := &Candidate{
		Typo:     typo,
		Causes:   causes.Clone(),
		Score:    math.Round(score*1e7) / 1e7,
		Distance: DamerauLevenshtein(domain, typo),
	}
	if isTLD {
		out.Causes = NewCauseSet(TldMismatch)
	}
	return out
}

func (r *Ranker) singleEditWeight(cause Cause, edit singleEdit) float64 {
	switch cause {
	case AdjacentKey, Homoglyph, SymmetricKey, CognitiveSpelling:
		w := r.weights.Weight(cause, edit.key)
		if w == 0 && edit.op.Kind == OpReplace {
			w = r.weights.Weight(cause, edit.key.Reversed())
		}
		return w
	case DroppedChar, DroppedDot, DoubleInput:
		return r.weights.Weight(cause, edit.key)
	}
	return 0
}

// positionalBonus rewards mistakes at positions where the same cause and
// character were frequent in the corpus
func (r *Ranker) positionalBonus(domain string, edit singleEdit) float64 {
	var (
		char  string
		cause Cause
	)
	switch edit.op.Kind {
	case OpInsert:
		char, cause = edit.op.Target, DoubleInput
	case OpDelete:
		char, cause = edit.op.Source, DeletionCause(edit.op.Source)
	case OpReplace:
		char, cause = edit.op.Source, ReplacementCause(edit.op.Source, edit.op.Target)
	default:
		return 0
	}
	if len([]rune(char)) != 1 {
		return 0
	}
	position := len([]rune(domain)) - 1 - edit.op.SourceStart
	count := r.positional.Count(cause, strings.ToLower(char), position)
	return float64(count) / float64(r.positional.Normalizer()) * KPositionBoost
}

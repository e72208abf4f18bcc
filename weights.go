package typox

import (
	"fmt"
	"sort"
)

// EmptyFragment stands in for the missing side of an insert or delete
const EmptyFragment = "∅"

// WeightKey identifies one specific mistake inside a cause. Keys of
// different shapes never collide.
type WeightKey interface {
	// String renders the key the way exported statistics spell it
	String() string
	weightKey()
}

// CharPair keys substitutions, insertions and deletions
type CharPair struct {
	Source string
	Target string
}

func (k CharPair) String() string { return k.Source + k.Target }
func (CharPair) weightKey()       {}

// Reversed returns the pair with both sides swapped
func (k CharPair) Reversed() CharPair { return CharPair{Source: k.Target, Target: k.Source} }

// TransposedPair keys an adjacent swap of First and Second
type TransposedPair struct {
	First  string
	Second string
}

func (k TransposedPair) String() string {
	return fmt.Sprintf("%s %s -> %s %s", k.First, k.Second, k.Second, k.First)
}
func (TransposedPair) weightKey() {}

// TLDDiff keys a confusion between two domain suffixes
type TLDDiff struct {
	From string
	To   string
}

func (k TLDDiff) String() string { return k.From + " -> " + k.To }
func (TLDDiff) weightKey()       {}

// WeightTable holds joint empirical probabilities of specific mistakes.
// Every entry shares a single denominator: the number of classified events.
type WeightTable struct {
	weights map[Cause]map[WeightKey]float64
}

// Weight returns the weight of key under cause, 0 when unknown
func (w *WeightTable) Weight(cause Cause, key WeightKey) float64 {
	if w == nil {
		return 0
	}
	return w.weights[cause][key]
}

// Causes returns the causes holding at least one weight
func (w *WeightTable) Causes() []Cause {
	if w == nil {
		return nil
	}
	out := make([]Cause, 0, len(w.weights))
	for c := range w.weights {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Entries returns a copy of the weights of cause
func (w *WeightTable) Entries(cause Cause) map[WeightKey]float64 {
	if w == nil {
		return nil
	}
	out := make(map[WeightKey]float64, len(w.weights[cause]))
	for k, v := range w.weights[cause] {
		out[k] = v
	}
	return out
}

// Len returns the number of weighted keys across causes
func (w *WeightTable) Len() int {
	if w == nil {
		return 0
	}
	n := 0
	for _, m := range w.weights {
		n += len(m)
	}
	return n
}

// PositionalTable counts single edit mistakes by cause, lower-cased
// character and position from the end of the correct string (0 = last)
type PositionalTable struct {
	counts map[Cause]map[string]map[int]int
	total  int
}

func newPositionalTable() *PositionalTable {
	return &PositionalTable{counts: map[Cause]map[string]map[int]int{}}
}

func (p *PositionalTable) add(cause Cause, char string, position, n int) {
	chars, ok := p.counts[cause]
	if !ok {
		chars = map[string]map[int]int{}
		p.counts[cause] = chars
	}
	positions, ok := chars[char]
	if !ok {
		positions = map[int]int{}
		chars[char] = positions
	}
	positions[position] += n
	p.total += n
}

// Count returns the occurrences of char at position under cause
func (p *PositionalTable) Count(cause Cause, char string, position int) int {
	if p == nil {
		return 0
	}
	return p.counts[cause][char][position]
}

// Total returns the number of counted events
func (p *PositionalTable) Total() int {
	if p == nil {
		return 0
	}
	return p.total
}

// Normalizer returns Total floored at 1
func (p *PositionalTable) Normalizer() int {
	if t := p.Total(); t > 0 {
		return t
	}
	return 1
}

// ByPosition sums counts of every cause and character per position
func (p *PositionalTable) ByPosition() map[int]int {
	out := map[int]int{}
	if p == nil {
		return out
	}
	for _, chars := range p.counts {
		for _, positions := range chars {
			for pos, n := range positions {
				out[pos] += n
			}
		}
	}
	return out
}

// Snapshot returns a deep copy of the counts
func (p *PositionalTable) Snapshot() map[Cause]map[string]map[int]int {
	out := map[Cause]map[string]map[int]int{}
	if p == nil {
		return out
	}
	for cause, chars := range p.counts {
		out[cause] = map[string]map[int]int{}
		for char, positions := range chars {
			out[cause][char] = map[int]int{}
			for pos, n := range positions {
				out[cause][char][pos] = n
			}
		}
	}
	return out
}

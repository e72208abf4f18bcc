package typox

import (
	"sort"
	"strings"
)

// Cause explains why a typo was likely made
type Cause string

const (
	AdjacentKey       Cause = "AdjacentKey"
	SymmetricKey      Cause = "SymmetricKey"
	Homoglyph         Cause = "Homoglyph"
	CognitiveSpelling Cause = "CognitiveSpelling"
	DoubleInput       Cause = "DoubleInput"
	DroppedChar       Cause = "DroppedChar"
	DroppedDot        Cause = "DroppedDot"
	Transposition     Cause = "Transposition"
	TldMismatch       Cause = "TldMismatch"
)

// CauseSeparator joins causes in a rendered label
const CauseSeparator = "・"

// AllCauses is the closed cause taxonomy in label order
var AllCauses = []Cause{
	AdjacentKey, CognitiveSpelling, DoubleInput, DroppedChar, DroppedDot,
	Homoglyph, SymmetricKey, TldMismatch, Transposition,
}

// legacyCauseNames maps the japanese labels found in older labeled corpora
var legacyCauseNames = map[string]Cause{
	"隣接キー誤打":        AdjacentKey,
	"左右対称キー誤打":      SymmetricKey,
	"ホモグリフ（視覚類似文字）": Homoglyph,
	"スペルミス（認知ミス）":   CognitiveSpelling,
	"二重入力":          DoubleInput,
	"入力漏れ":          DroppedChar,
	"ドット抜け":         DroppedDot,
	"入力順序ミス":        Transposition,
	"TLDミス":         TldMismatch,
}

// ParseCause parses a single cause name, returns false for unknown names
func ParseCause(name string) (Cause, bool) {
	name = strings.TrimSpace(name)
	for _, c := range AllCauses {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	c, ok := legacyCauseNames[name]
	return c, ok
}

// CauseSet is an unordered set of causes
type CauseSet map[Cause]struct{}

// NewCauseSet returns a set holding causes
func NewCauseSet(causes ...Cause) CauseSet {
	s := make(CauseSet, len(causes))
	for _, c := range causes {
		s[c] = struct{}{}
	}
	return s
}

// ParseCauses parses a rendered label, unknown or empty parts are dropped
func ParseCauses(label string) CauseSet {
	s := CauseSet{}
	for _, part := range strings.Split(label, CauseSeparator) {
		if c, ok := ParseCause(part); ok {
			s[c] = struct{}{}
		}
	}
	return s
}

func (s CauseSet) Add(c Cause) { s[c] = struct{}{} }

func (s CauseSet) Has(c Cause) bool {
	_, ok := s[c]
	return ok
}

func (s CauseSet) Remove(causes ...Cause) {
	for _, c := range causes {
		delete(s, c)
	}
}

// Sorted returns the causes in deterministic order
func (s CauseSet) Sorted() []Cause {
	out := make([]Cause, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns a copy of the set
func (s CauseSet) Clone() CauseSet {
	out := make(CauseSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// String renders the set as a sorted label
func (s CauseSet) String() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, c := range sorted {
		parts[i] = string(c)
	}
	return strings.Join(parts, CauseSeparator)
}

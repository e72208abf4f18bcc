package typox

import (
	"strings"
)

// ClassificationResult explains a single (correct, typo) pair
type ClassificationResult struct {
	Causes          CauseSet
	CorrectFragment string // space joined source side of each edit
	TypoFragment    string // space joined target side of each edit
	Distance        int    // damerau-levenshtein distance
}

// Label renders the causes as a sorted label
func (r *ClassificationResult) Label() string {
	return r.Causes.String()
}

// classification is the mutable state passed through override rules
type classification struct {
	correct      string
	typo         string
	causes       CauseSet
	correctParts []string
	typoParts    []string
	transposed   *TransposedPair
}

// overrideRule rewrites the naive per-operation tags of a classification
type overrideRule struct {
	name  string
	apply func(c *classification)
}

// overrideRules run in order after naive tagging
var overrideRules = []overrideRule{
	{name: "transposition", apply: applyTranspositionOverride},
	{name: "tld-mismatch", apply: applyTLDOverride},
}

// a confirmed swap explains the whole difference, per character tags
// derived from the two swapped positions are dropped
func applyTranspositionOverride(c *classification) {
	if c.transposed == nil {
		return
	}
	c.causes.Remove(AdjacentKey, SymmetricKey, Homoglyph, CognitiveSpelling, DoubleInput, DroppedChar, DroppedDot)
}

func applyTLDOverride(c *classification) {
	diff, ok := DetectTLDMismatch(c.correct, c.typo)
	if !ok {
		return
	}
	c.causes.Remove(CognitiveSpelling, DoubleInput, DroppedChar, DroppedDot)
	c.causes.Add(TldMismatch)
	c.correctParts = []string{diff.From}
	c.typoParts = []string{diff.To}
}

// Classify explains why typo may have been typed instead of correct.
// Identical strings yield an empty cause set.
func Classify(correct, typo string) *ClassificationResult {
	res := &ClassificationResult{Causes: CauseSet{}}
	if correct == typo {
		return res
	}
	c := &classification{correct: correct, typo: typo, causes: CauseSet{}}

	if pair, ok := FindTransposition(correct, typo); ok {
		c.transposed = &pair
		c.causes.Add(Transposition)
	}
	for _, op := range EditOps(correct, typo) {
		c.correctParts = append(c.correctParts, op.Source)
		c.typoParts = append(c.typoParts, op.Target)
		if cause, ok := OperationCause(op); ok {
			c.causes.Add(cause)
		}
	}
	for _, rule := range overrideRules {
		rule.apply(c)
	}

	res.Causes = c.causes
	res.CorrectFragment = strings.Join(c.correctParts, " ")
	res.TypoFragment = strings.Join(c.typoParts, " ")
	res.Distance = DamerauLevenshtein(correct, typo)
	return res
}

// OperationCause returns the naive cause of a single non-equal edit
func OperationCause(op EditOp) (Cause, bool) {
	switch op.Kind {
	case OpReplace:
		return ReplacementCause(op.Source, op.Target), true
	case OpInsert:
		return DoubleInput, true
	case OpDelete:
		return DeletionCause(op.Source), true
	}
	return "", false
}

// ReplacementCause classifies a substitution of c1 by c2 in priority order:
// keyboard adjacency, symmetric keys, homoglyphs, then spelling
func ReplacementCause(c1, c2 string) Cause {
	switch {
	case IsKeyboardAdjacent(c1, c2):
		return AdjacentKey
	case IsSymmetricKey(c1, c2):
		return SymmetricKey
	case IsHomoglyph(c1, c2):
		return Homoglyph
	default:
		return CognitiveSpelling
	}
}

// DeletionCause classifies the omission of c
func DeletionCause(c string) Cause {
	if c == "." {
		return DroppedDot
	}
	return DroppedChar
}

// FindTransposition returns the swapped pair when a single adjacent swap
// turns correct into typo and nothing else differs
func FindTransposition(correct, typo string) (TransposedPair, bool) {
	lev, damerau := Distance(correct, typo)
	if damerau != 1 || lev <= 1 {
		return TransposedPair{}, false
	}
	rc, rt := []rune(correct), []rune(typo)
	if len(rc) != len(rt) {
		return TransposedPair{}, false
	}
	for i := 0; i+1 < len(rc); i++ {
		if rc[i] != rt[i+1] || rc[i+1] != rt[i] {
			continue
		}
		if string(rc[:i]) == string(rt[:i]) && string(rc[i+2:]) == string(rt[i+2:]) {
			return TransposedPair{First: string(rc[i]), Second: string(rc[i+1])}, true
		}
	}
	return TransposedPair{}, false
}

// DetectTLDMismatch reports whether typo only differs from correct by a
// commonly confused suffix, with the part before the suffix byte identical
func DetectTLDMismatch(correct, typo string) (TLDDiff, bool) {
	if !strings.Contains(correct, ".") || !strings.Contains(typo, ".") {
		return TLDDiff{}, false
	}
	for _, pair := range tldMismatchPairs {
		if !strings.HasSuffix(correct, pair[0]) || !strings.HasSuffix(typo, pair[1]) {
			continue
		}
		correctBase := correct[:len(correct)-len(pair[0])]
		typoBase := typo[:len(typo)-len(pair[1])]
		if correctBase == typoBase {
			return TLDDiff{From: correct[len(correctBase):], To: typo[len(typoBase):]}, true
		}
	}
	return TLDDiff{}, false
}

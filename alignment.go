package typox

import (
	"github.com/agnivade/levenshtein"
	"github.com/pmezard/go-difflib/difflib"
)

// OpKind is the kind of an edit operation
type OpKind uint8

const (
	OpEqual OpKind = iota
	OpInsert
	OpDelete
	OpReplace
)

func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	}
	return "unknown"
}

// EditOp is one span of an alignment between a source and a target string.
// Indexes are rune offsets, End is exclusive.
type EditOp struct {
	Kind        OpKind
	SourceStart int
	SourceEnd   int
	TargetStart int
	TargetEnd   int
	Source      string // affected source characters (empty for insert)
	Target      string // affected target characters (empty for delete)
}

// Distance returns both the levenshtein and the damerau-levenshtein
// (optimal string alignment) distance between a and b
func Distance(a, b string) (lev int, damerau int) {
	return Levenshtein(a, b), DamerauLevenshtein(a, b)
}

// Levenshtein returns the levenshtein distance between a and b
func Levenshtein(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// DamerauLevenshtein returns the optimal string alignment distance where
// an adjacent transposition counts as a single edit
func DamerauLevenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		d[0][j] = j
	}
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+cost)
			}
		}
	}
	return d[len(ra)][len(rb)]
}

// EditOps returns the minimal single character edit script (replace, insert
// and delete only) turning a into b. Backtracking prefers matches, then
// substitutions, then deletions so the script is stable for a given pair.
func EditOps(a, b string) []EditOp {
	ra, rb := []rune(a), []rune(b)
	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		d[0][j] = j
	}
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
		}
	}

	var reversed []EditOp
	i, j := len(ra), len(rb)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && ra[i-1] == rb[j-1] && d[i][j] == d[i-1][j-1]:
			i--
			j--
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+1:
			reversed = append(reversed, EditOp{
				Kind: OpReplace, SourceStart: i - 1, SourceEnd: i, TargetStart: j - 1, TargetEnd: j,
				Source: string(ra[i-1]), Target: string(rb[j-1]),
			})
			i--
			j--
		case i > 0 && d[i][j] == d[i-1][j]+1:
			reversed = append(reversed, EditOp{
				Kind: OpDelete, SourceStart: i - 1, SourceEnd: i, TargetStart: j, TargetEnd: j,
				Source: string(ra[i-1]),
			})
			i--
		default:
			reversed = append(reversed, EditOp{
				Kind: OpInsert, SourceStart: i, SourceEnd: i, TargetStart: j - 1, TargetEnd: j,
				Target: string(rb[j-1]),
			})
			j--
		}
	}
	ops := make([]EditOp, 0, len(reversed))
	for k := len(reversed) - 1; k >= 0; k-- {
		ops = append(ops, reversed[k])
	}
	return ops
}

// Align returns the opcode alignment of a and b. Spans cover both strings
// without gaps: concatenating Source of every op rebuilds a, and Target
// rebuilds b. Matching blocks follow the longest common run first with the
// leftmost run winning ties.
func Align(a, b string) []EditOp {
	ra, rb := []rune(a), []rune(b)
	matcher := difflib.NewMatcher(splitRunes(ra), splitRunes(rb))
	codes := matcher.GetOpCodes()
	ops := make([]EditOp, 0, len(codes))
	for _, c := range codes {
		op := EditOp{
			SourceStart: c.I1, SourceEnd: c.I2,
			TargetStart: c.J1, TargetEnd: c.J2,
			Source: string(ra[c.I1:c.I2]),
			Target: string(rb[c.J1:c.J2]),
		}
		switch c.Tag {
		case 'e':
			op.Kind = OpEqual
		case 'i':
			op.Kind = OpInsert
		case 'd':
			op.Kind = OpDelete
		default:
			op.Kind = OpReplace
		}
		ops = append(ops, op)
	}
	return ops
}

// Diffs returns only the non-equal spans of Align
func Diffs(a, b string) []EditOp {
	var diffs []EditOp
	for _, op := range Align(a, b) {
		if op.Kind != OpEqual {
			diffs = append(diffs, op)
		}
	}
	return diffs
}

func splitRunes(r []rune) []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = string(c)
	}
	return out
}

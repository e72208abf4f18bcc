package typox

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/projectdiscovery/utils/errkit"
	"github.com/xuri/excelize/v2"
)

// ErrCorpusUnavailable is returned when the labeled corpus cannot be read.
// Generation still works without it, ranking degrades to generation order.
var ErrCorpusUnavailable = errkit.New("typo corpus is unavailable")

// corpusColumns is the column order of a labeled corpus file
var corpusColumns = []string{
	"user_id", "step_id",
	"correct_address", "input_address",
	"edit_distance",
	"correct_part", "mismatched_part", "cause",
}

// Row is one observation of a user typing an address
type Row struct {
	UserID         string
	StepID         string
	CorrectAddress string
	InputAddress   string
	EditDistance   int
	CorrectPart    string
	MismatchedPart string
	Cause          string
}

// CorrectDomain returns the domain part of the correct address
func (r *Row) CorrectDomain() string { return ExtractDomain(r.CorrectAddress) }

// InputDomain returns the domain part of the typed address
func (r *Row) InputDomain() string { return ExtractDomain(r.InputAddress) }

// ExtractDomain returns the part of an email address after the '@'
// separator, or an empty string when there is none
func ExtractDomain(address string) string {
	parts := strings.Split(address, "@")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// ReadCorpus reads a corpus from a csv or xlsx file. Columns are matched
// by header name, missing columns are left empty.
func ReadCorpus(path string) ([]*Row, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		records, err = readXLSX(path)
	default:
		records, err = readCSV(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %v has no header", ErrCorpusUnavailable, path)
	}
	return parseRecords(records), nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeCSV(f)
}

func decodeCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) > 0 && len(records[0]) > 0 {
		// files written by spreadsheet tools carry a utf-8 bom
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return records, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %v has no sheets", path)
	}
	return f.GetRows(sheets[0])
}

func parseRecords(records [][]string) []*Row {
	index := map[string]int{}
	for i, h := range records[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	get := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]*Row, 0, len(records)-1)
	for _, record := range records[1:] {
		distance, _ := strconv.Atoi(get(record, "edit_distance"))
		rows = append(rows, &Row{
			UserID:         get(record, "user_id"),
			StepID:         get(record, "step_id"),
			CorrectAddress: get(record, "correct_address"),
			InputAddress:   get(record, "input_address"),
			EditDistance:   distance,
			CorrectPart:    get(record, "correct_part"),
			MismatchedPart: get(record, "mismatched_part"),
			Cause:          get(record, "cause"),
		})
	}
	return rows
}

// WriteCorpus writes rows as csv in the labeled corpus column order
func WriteCorpus(path string, rows []*Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeCorpus(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodeCorpus writes rows as csv to w
func EncodeCorpus(w io.Writer, rows []*Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(corpusColumns); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.UserID, r.StepID,
			r.CorrectAddress, r.InputAddress,
			strconv.Itoa(r.EditDistance),
			r.CorrectPart, r.MismatchedPart, r.Cause,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// FilterTypos keeps rows whose domains differ by a damerau-levenshtein
// distance in (0, threshold] and records the distance and the typed side
// of every differing span
func FilterTypos(rows []*Row, threshold int) []*Row {
	var out []*Row
	for _, r := range rows {
		correct, typo := r.CorrectDomain(), r.InputDomain()
		distance := DamerauLevenshtein(correct, typo)
		if distance == 0 || distance > threshold {
			continue
		}
		var mismatched strings.Builder
		for _, d := range Diffs(correct, typo) {
			mismatched.WriteString(d.Target)
		}
		filtered := *r
		filtered.EditDistance = distance
		filtered.MismatchedPart = mismatched.String()
		out = append(out, &filtered)
	}
	return out
}

// LabelRows classifies every row in place
func LabelRows(rows []*Row) {
	for _, r := range rows {
		res := Classify(r.CorrectDomain(), r.InputDomain())
		r.Cause = res.Label()
		r.CorrectPart = res.CorrectFragment
		r.MismatchedPart = res.TypoFragment
	}
}

// Pairs converts rows to labeled pairs for aggregation
func Pairs(rows []*Row) []LabeledPair {
	pairs := make([]LabeledPair, 0, len(rows))
	for _, r := range rows {
		pairs = append(pairs, LabeledPair{
			Correct: r.CorrectDomain(),
			Typo:    r.InputDomain(),
			Label:   r.Cause,
		})
	}
	return pairs
}

package typox

import (
	"encoding/json"
	"io"
	"math"
	"os"
)

// Export is the statistics bundle consumed by front-ends that re-run
// generation and ranking without the corpus
type Export struct {
	MajorRatios            map[Cause]float64                `json:"major_ratios"`
	IndividualWeights      map[Cause]map[string]float64     `json:"individual_weights"`
	PositionalFreqs        map[Cause]map[string]map[int]int `json:"positional_freqs"`
	TotalDL1Count          int                              `json:"total_dl1_count"`
	KPositionBoost         float64                          `json:"K_POSITION_BOOST"`
	TLDCosts               map[string]string                `json:"TLD_COSTS"`
	KeyboardAdjacent       map[string]string                `json:"keyboard_adjacent"`
	SymmetricKeyPairs      [][2]string                      `json:"symmetric_key_pairs"`
	HomoglyphsForGenerator map[string][]string              `json:"homoglyphs_for_generator"`
}

// NewExport flattens stats and the fixed rule tables. Weight keys are
// rendered with WeightKey.String.
func NewExport(stats *Statistics, prices *PriceTable) *Export {
	if prices == nil {
		prices = NewPriceTable(nil)
	}
	e := &Export{
		MajorRatios:            map[Cause]float64{},
		IndividualWeights:      map[Cause]map[string]float64{},
		PositionalFreqs:        map[Cause]map[string]map[int]int{},
		TotalDL1Count:          1,
		KPositionBoost:         KPositionBoost,
		TLDCosts:               prices.Prices(),
		KeyboardAdjacent:       KeyboardAdjacency(),
		SymmetricKeyPairs:      SymmetricKeyPairs(),
		HomoglyphsForGenerator: GeneratorHomoglyphs(),
	}
	if stats == nil {
		return e
	}
	for cause, ratio := range stats.MajorRatios {
		e.MajorRatios[cause] = math.Round(ratio*1000) / 1000
	}
	for _, cause := range stats.Weights.Causes() {
		rendered := map[string]float64{}
		for key, w := range stats.Weights.Entries(cause) {
			rendered[key.String()] = w
		}
		e.IndividualWeights[cause] = rendered
	}
	e.PositionalFreqs = stats.Positional.Snapshot()
	e.TotalDL1Count = stats.Positional.Normalizer()
	return e
}

// Encode writes the export as indented json
func (e *Export) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(e)
}

// WriteFile writes the export as indented json to path
func (e *Export) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := e.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

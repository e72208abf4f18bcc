package typox

import (
	"fmt"
	"io"
	"strings"
)

// heatmap symbols from high to none
const (
	heatHigh   = "■"
	heatMedium = "█"
	heatLow    = "░"
	heatNone   = "・"
)

// WriteHeatmap renders how often single edit mistakes happen at each
// position counted from the end of the domain. Position 0 is printed last.
func WriteHeatmap(w io.Writer, table *PositionalTable, totalEvents int) error {
	byPosition := table.ByPosition()
	maxCount, maxPos := 0, 0
	for pos, n := range byPosition {
		maxCount = max(maxCount, n)
		maxPos = max(maxPos, pos)
	}
	if maxCount == 0 {
		maxCount = 1
	}

	symbol := func(n int) string {
		switch {
		case n == 0:
			return heatNone
		case float64(n) >= float64(maxCount)*0.7:
			return heatHigh
		case float64(n) >= float64(maxCount)*0.3:
			return heatMedium
		default:
			return heatLow
		}
	}

	var header, freq strings.Builder
	header.WriteString("position from end: ")
	freq.WriteString("frequency:         ")
	for pos := maxPos; pos >= 0; pos-- {
		fmt.Fprintf(&header, "%4d", pos)
		fmt.Fprintf(&freq, "%4s", symbol(byPosition[pos]))
	}

	rule := strings.Repeat("=", 78)
	_, err := fmt.Fprintf(w, "%s\ntypo position heatmap (0 is the last character)\n(typo events: %d, single edit events: %d)\n\n%s\n%s\n\nlegend: %s high %s medium %s low %s none\n%s\n",
		rule, totalEvents, table.Total(), header.String(), freq.String(),
		heatHigh, heatMedium, heatLow, heatNone, rule)
	return err
}

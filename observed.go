package typox

import "sort"

// ObservedTypo is a typo of a domain actually seen in the corpus
type ObservedTypo struct {
	Typo       string
	Count      int
	Distance   int
	Percentage float64
	Result     *ClassificationResult
}

// ObservedRanking groups the typed domains of rows that are within
// maxDistance of domain, most frequent first and closest first on ties
func ObservedRanking(rows []*Row, domain string, maxDistance int) []*ObservedTypo {
	byTypo := map[string]*ObservedTypo{}
	var order []string
	total := 0
	for _, r := range rows {
		typo := r.InputDomain()
		if typo == domain {
			continue
		}
		distance := DamerauLevenshtein(domain, typo)
		if distance > maxDistance {
			continue
		}
		entry, ok := byTypo[typo]
		if !ok {
			entry = &ObservedTypo{Typo: typo, Distance: distance}
			byTypo[typo] = entry
			order = append(order, typo)
		}
		entry.Count++
		total++
	}

	out := make([]*ObservedTypo, 0, len(order))
	for _, typo := range order {
		entry := byTypo[typo]
		entry.Percentage = float64(entry.Count) / float64(total) * 100
		entry.Result = Classify(domain, typo)
		out = append(out, entry)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Distance < out[j].Distance
	})
	return out
}

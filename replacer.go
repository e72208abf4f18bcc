package typox

import (
	"fmt"
	"strconv"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// Replace replaces placeholders in template with values on the fly.
func Replace(template string, values map[string]interface{}) string {
	valuesMap := make(map[string]interface{}, len(values))
	for k, v := range values {
		valuesMap[k] = fmt.Sprint(v)
	}
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, valuesMap)
}

// ValidateTemplate checks that every placeholder of template is well formed
func ValidateTemplate(template string) error {
	_, err := fasttemplate.NewTemplate(template, ParenthesisOpen, ParenthesisClose)
	return err
}

// Result is a ranked candidate with its presentation fields
type Result struct {
	Domain string
	Rank   int
	*Candidate
	Price string
	Valid bool
}

// GetMap returns the template variables of the result
func (r *Result) GetMap() map[string]interface{} {
	return map[string]interface{}{
		"domain":   r.Domain,
		"rank":     r.Rank,
		"typo":     r.Typo,
		"score":    strconv.FormatFloat(r.Score, 'f', 7, 64),
		"distance": r.Distance,
		"price":    r.Price,
		"causes":   r.Causes.String(),
		"valid":    r.Valid,
	}
}

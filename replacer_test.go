package typox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplace(t *testing.T) {
	res := &Result{
		Domain:    "ntt.co.jp",
		Rank:      1,
		Candidate: &Candidate{Typo: "mtt.co.jp", Causes: NewCauseSet(AdjacentKey), Score: 1.5, Distance: 1},
		Price:     "¥4,378/yr",
		Valid:     true,
	}
	got := Replace(DefaultTemplate, res.GetMap())
	require.Equal(t, "1. mtt.co.jp (score: 1.5000000, distance: 1, price: ¥4,378/yr, causes: AdjacentKey)", got)
	require.Equal(t, "mtt.co.jp true {{missing}}", Replace("{{typo}} {{valid}} {{missing}}", res.GetMap()))
}

func TestValidateTemplate(t *testing.T) {
	require.Nil(t, ValidateTemplate(DefaultTemplate))
	require.NotNil(t, ValidateTemplate("{{typo"))
}

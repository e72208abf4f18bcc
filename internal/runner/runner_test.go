package runner

import (
	"testing"

	"github.com/projectdiscovery/typox"
	"github.com/stretchr/testify/require"
)

func TestApplyConfig(t *testing.T) {
	opts := &Options{TopN: 3}
	opts.applyConfig(&typox.Config{TopN: 20, Threshold: 4, Workers: 2, Template: "{{typo}}"})
	require.Equal(t, 3, opts.TopN)
	require.Equal(t, 4, opts.Threshold)
	require.Equal(t, 2, opts.Workers)
	require.Equal(t, "{{typo}}", opts.Template)
}

func TestHasWork(t *testing.T) {
	require.False(t, (&Options{Estimate: true}).hasWork())
	require.True(t, (&Options{PriceSnapshot: "prices.json"}).hasWork())
	require.True(t, (&Options{Domains: []string{"ntt.co.jp"}, Estimate: true}).hasWork())
	require.True(t, (&Options{Heatmap: true}).hasWork())
}

package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/typox"
	"github.com/projectdiscovery/typox/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()
	ctx := context.Background()
	cfg := typox.DefaultConfig

	if cliOpts.PriceSnapshot != "" {
		if err := typox.WritePriceSnapshot(cliOpts.PriceSnapshot); err != nil {
			gologger.Error().Msgf("failed to write price snapshot to %v got %v", cliOpts.PriceSnapshot, err)
		} else {
			gologger.Info().Msgf("Saved %d tld prices to %v", len(typox.DefaultPrices), cliOpts.PriceSnapshot)
		}
	}

	prices := typox.NewPriceTable(cfg.Prices)
	if cliOpts.Prices != "" {
		p, err := typox.LoadPrices(cliOpts.Prices)
		if err != nil {
			gologger.Fatal().Msgf("failed to read price table got %v", err)
		}
		prices = p
	}

	registry := typox.NewTLDRegistry()
	if cfg.RegistryURL != "" {
		registry.URL = cfg.RegistryURL
	}
	if cliOpts.RefreshTLDs {
		if err := registry.Refresh(ctx); err != nil {
			gologger.Warning().Msgf("failed to refresh tld registry, using %d built-in tlds: %v", registry.Len(), err)
		}
	}

	rows, stats := loadStatistics(ctx, cliOpts)

	if cliOpts.Export != "" {
		if err := typox.NewExport(stats, prices).WriteFile(cliOpts.Export); err != nil {
			gologger.Error().Msgf("failed to write statistics to %v got %v", cliOpts.Export, err)
		} else {
			gologger.Info().Msgf("Saved statistics to %v", cliOpts.Export)
		}
	}
	if cliOpts.Heatmap && stats != nil {
		if err := typox.WriteHeatmap(os.Stderr, stats.Positional, stats.Tags); err != nil {
			gologger.Error().Msgf("failed to render heatmap got %v", err)
		}
	}
	if len(cliOpts.Domains) == 0 {
		return
	}

	e, err := typox.New(&typox.Options{
		Domains:   cliOpts.Domains,
		TopN:      cliOpts.TopN,
		Template:  cliOpts.Template,
		Limit:     cliOpts.Limit,
		Stats:     stats,
		Prices:    prices,
		Registry:  registry,
		ValidOnly: cliOpts.ValidOnly,
		PlainList: cliOpts.PlainList,
	})
	if err != nil {
		gologger.Fatal().Msgf("failed to parse input got %v", err)
	}

	if cliOpts.Estimate {
		gologger.Info().Msgf("Estimated Typos (before ranking): %v", e.EstimateCount())
		return
	}

	for _, in := range e.Inputs {
		if cliOpts.Observed && len(rows) > 0 {
			for _, o := range typox.ObservedRanking(rows, in.Domain, cfg.MaxDistance) {
				gologger.Info().Msgf("observed %v: %v (count: %d, distance: %d, share: %.2f%%, causes: %v)", in.Domain, o.Typo, o.Count, o.Distance, o.Percentage, o.Result.Label())
			}
		}
		summary := typox.Summarize(typox.Rank(in.Domain, nil, stats, cliOpts.TopN))
		gologger.Verbose().Msgf("%v: %d candidates (%d scored), mean %.7f median %.7f p90 %.7f max %.7f", in.Domain, summary.Count, summary.Scored, summary.Mean, summary.Median, summary.P90, summary.Max)
	}

	output := getOutputWriter(cliOpts.Output)
	defer closeOutput(output, cliOpts.Output)

	if err = e.ExecuteWithWriter(output); err != nil {
		gologger.Error().Msgf("failed to write output to file got %v", err)
	}
}

// loadStatistics reads, filters and labels the corpus and aggregates it.
// Without a usable corpus it returns nil statistics.
func loadStatistics(ctx context.Context, opts *runner.Options) ([]*typox.Row, *typox.Statistics) {
	if opts.Corpus == "" {
		gologger.Warning().Msgf("no corpus given, typos are ranked with empty statistics")
		return nil, nil
	}
	all, err := typox.ReadCorpus(opts.Corpus)
	if err != nil {
		if errors.Is(err, typox.ErrCorpusUnavailable) {
			gologger.Warning().Msgf("%v, typos are ranked with empty statistics", err)
		} else {
			gologger.Error().Msgf("failed to read corpus got %v", err)
		}
		return nil, nil
	}
	rows := typox.FilterTypos(all, opts.Threshold)
	gologger.Info().Msgf("Loaded %d typo rows out of %d corpus rows", len(rows), len(all))

	var unlabeled []*typox.Row
	for _, r := range rows {
		if r.Cause == "" {
			unlabeled = append(unlabeled, r)
		}
	}
	if len(unlabeled) > 0 {
		typox.LabelRows(unlabeled)
		gologger.Verbose().Msgf("labeled %d rows without a cause", len(unlabeled))
	}
	if opts.LabelOutput != "" {
		if err := typox.WriteCorpus(opts.LabelOutput, rows); err != nil {
			gologger.Error().Msgf("failed to write labeled corpus to %v got %v", opts.LabelOutput, err)
		}
	}

	stats, err := typox.AggregateParallel(ctx, typox.Pairs(rows), opts.Workers)
	if err != nil {
		gologger.Error().Msgf("failed to aggregate corpus got %v", err)
		return rows, nil
	}
	for _, cause := range typox.AllCauses {
		if ratio, ok := stats.MajorRatios[cause]; ok {
			gologger.Verbose().Msgf("%v: %.3f", cause, ratio)
		}
	}
	return rows, stats
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) io.Writer {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			gologger.Fatal().Msgf("failed to open output file %v got %v", outputPath, err)
		}
		return fs
	}
	return os.Stdout
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			_ = closer.Close()
		}
	}
}

package runner

import (
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/typox"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Domains            goflags.StringSlice // Domains to generate typos for
	Corpus             string              // labeled or raw typo corpus (csv, xlsx)
	Threshold          int
	Workers            int
	Prices             string
	TopN               int
	Template           string
	PlainList          bool
	ValidOnly          bool
	RefreshTLDs        bool
	Limit              int
	Output             string
	Export             string
	Heatmap            bool
	Estimate           bool
	PriceSnapshot      string
	Observed           bool
	LabelOutput        string
	Config             string
	TypoxConfig        string
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Corpus driven domain typo generator and ranker.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Domains, "list", "l", nil, "domains to generate typos for (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Corpus, "corpus", "c", "", "typo corpus to learn weights from (csv, xlsx)"),
		flagSet.StringVar(&opts.Prices, "prices", "", "tld price table (json, yaml)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Estimate, "estimate", "es", false, "estimate generated typo count without ranking"),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write ranked typos"),
		flagSet.StringVarP(&opts.Template, "template", "t", "", "output line template ({{rank}}, {{typo}}, {{score}}, {{distance}}, {{price}}, {{causes}}, {{valid}}, {{domain}})"),
		flagSet.BoolVar(&opts.PlainList, "plain", false, "write bare typos deduped across all domains"),
		flagSet.StringVar(&opts.Export, "export", "", "file to write learned statistics as json"),
		flagSet.StringVar(&opts.PriceSnapshot, "price-snapshot", "", "file to write the built-in tld price table as json"),
		flagSet.StringVar(&opts.LabelOutput, "label-output", "", "file to write the filtered and labeled corpus as csv"),
		flagSet.BoolVar(&opts.Heatmap, "heatmap", false, "display positional heatmap of single edit typos"),
		flagSet.BoolVar(&opts.Observed, "observed", false, "display typos of each domain observed in the corpus"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display typox version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `typox cli config file (default '$HOME/.config/typox/cli.yaml')`),
		flagSet.StringVar(&opts.TypoxConfig, "tc", "", `typox ranking config file (default '$HOME/.config/typox/config.yaml')`),
		flagSet.IntVarP(&opts.TopN, "top", "n", 0, "number of ranked typos per domain (0 = config value)"),
		flagSet.IntVar(&opts.Threshold, "threshold", 0, "max damerau-levenshtein distance of corpus rows (0 = config value)"),
		flagSet.IntVar(&opts.Workers, "workers", 0, "corpus aggregation workers (0 = config value)"),
		flagSet.BoolVarP(&opts.ValidOnly, "valid-only", "vo", false, "drop typos whose tld is not delegated"),
		flagSet.BoolVarP(&opts.RefreshTLDs, "refresh-tlds", "rt", false, "refresh the tld registry from iana"),
		flagSet.IntVar(&opts.Limit, "limit", 0, "limit the number of results to return (default 0)"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update typox to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic typox update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("typox")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("typox version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current typox version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	loadDefaultConfig()
	if opts.TypoxConfig != "" {
		cfg, err := typox.NewConfig(opts.TypoxConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", opts.TypoxConfig, err)
		}
		typox.DefaultConfig = *cfg
	}
	opts.applyConfig(&typox.DefaultConfig)

	// read from stdin
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.Domains = append(opts.Domains, strings.Fields(string(bin))...)
	}

	if !opts.hasWork() {
		gologger.Fatal().Msgf("typox: no input found")
	}

	return opts
}

// hasWork reports whether any input domain or standalone output was requested
func (o *Options) hasWork() bool {
	return len(o.Domains) > 0 || o.Export != "" || o.LabelOutput != "" || o.PriceSnapshot != "" || o.Heatmap
}

// applyConfig fills every option left at its zero value from cfg
func (o *Options) applyConfig(cfg *typox.Config) {
	if o.TopN == 0 {
		o.TopN = cfg.TopN
	}
	if o.Threshold == 0 {
		o.Threshold = cfg.Threshold
	}
	if o.Workers == 0 {
		o.Workers = cfg.Workers
	}
	if o.Template == "" {
		o.Template = cfg.Template
	}
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

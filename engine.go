package typox

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Engine Options
type Options struct {
	// list of Domains to generate typos for
	Domains []string
	// TopN ranked candidates kept per domain (0 = all)
	TopN int
	// Template used to render each result
	// if empty DefaultTemplate is used
	Template string
	// Limits output results (0 = no limit)
	Limit int
	// Stats learned from a labeled corpus, nil ranks with zero scores
	Stats *Statistics
	// Prices used to label candidates, nil uses DefaultPrices
	Prices *PriceTable
	// Registry used to flag candidates with a valid tld, nil uses the static set
	Registry *TLDRegistry
	// ValidOnly drops candidates whose tld is not delegated
	ValidOnly bool
	// PlainList writes bare typos deduped across all domains
	PlainList bool
}

// Engine generates and ranks typo candidates of every input domain
type Engine struct {
	Options    *Options
	Inputs     []*Input // all processed inputs
	ranker     *Ranker
	inputNames map[string]struct{}
}

// New creates and returns new engine instance from options
func New(opts *Options) (*Engine, error) {
	if len(opts.Domains) == 0 {
		return nil, fmt.Errorf("no input provided to generate typos")
	}
	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}
	if err := ValidateTemplate(opts.Template); err != nil {
		return nil, err
	}
	if opts.Prices == nil {
		opts.Prices = NewPriceTable(nil)
	}
	if opts.Registry == nil {
		opts.Registry = NewTLDRegistry()
	}
	dedupe := sliceutil.Dedupe(opts.Domains)
	if len(dedupe) != len(opts.Domains) {
		gologger.Warning().Msgf("%v duplicate domains found in input. purging them..", len(opts.Domains)-len(dedupe))
		opts.Domains = dedupe
	}
	e := &Engine{
		Options: opts,
		ranker:  NewRanker(opts.Stats),
	}
	if err := e.prepareInputs(); err != nil {
		return nil, err
	}
	return e, nil
}

// Execute ranks the candidates of every input in input order and writes
// them to a result channel
func (e *Engine) Execute(ctx context.Context) <-chan *Result {
	results := make(chan *Result, 100)
	go func() {
		defer close(results)
		for _, in := range e.Inputs {
			rank := 0
			for _, c := range e.ranker.Rank(in.Domain, Generate(in.Domain), 0) {
				valid := e.Options.Registry.IsValid(c.Typo)
				if e.Options.ValidOnly && !valid {
					continue
				}
				rank++
				if e.Options.TopN > 0 && rank > e.Options.TopN {
					break
				}
				res := &Result{
					Domain:    in.Domain,
					Rank:      rank,
					Candidate: c,
					Price:     e.Options.Prices.Lookup(c.Typo),
					Valid:     valid,
				}
				select {
				case <-ctx.Done():
					return
				case results <- res:
				}
			}
		}
	}()
	return results
}

// ExecuteWithWriter executes Engine and writes results directly to type that implements io.Writer interface
func (e *Engine) ExecuteWithWriter(Writer io.Writer) error {
	if Writer == nil {
		return errorutil.NewWithTag("typox", "writer destination cannot be nil")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if e.Options.PlainList {
		return e.writePlain(ctx, Writer)
	}
	counter := 0
	for res := range e.Execute(ctx) {
		if e.Options.Limit > 0 && counter == e.Options.Limit {
			return nil
		}
		if _, err := Writer.Write([]byte(Replace(e.Options.Template, res.GetMap()) + "\n")); err != nil {
			return err
		}
		counter++
	}
	return nil
}

// writePlain writes each distinct typo once, skipping input domains
func (e *Engine) writePlain(ctx context.Context, w io.Writer) error {
	typos := make(chan string, 100)
	go func() {
		defer close(typos)
		for res := range e.Execute(ctx) {
			if _, ok := e.inputNames[res.Typo]; ok {
				continue
			}
			typos <- res.Typo
		}
	}()
	d := NewDedupe(typos, e.estimateBytes())
	d.Drain()
	counter := 0
	var writeErr error
	for typo := range d.GetResults() {
		if writeErr != nil || (e.Options.Limit > 0 && counter == e.Options.Limit) {
			continue
		}
		if _, err := w.Write([]byte(typo + "\n")); err != nil {
			writeErr = err
			continue
		}
		counter++
	}
	return writeErr
}

// EstimateCount returns the number of generated candidates of all inputs
// before ranking cuts
func (e *Engine) EstimateCount() int {
	counter := 0
	for _, in := range e.Inputs {
		counter += Generate(in.Domain).Len()
	}
	return counter
}

// estimateBytes approximates the size of all generated typos
func (e *Engine) estimateBytes() int {
	size := 0
	for _, in := range e.Inputs {
		size += Generate(in.Domain).Len() * (len(in.Domain) + 2)
	}
	return size
}

// prepares inputs and collects parse errors
func (e *Engine) prepareInputs() error {
	errors := []string{}
	allInputs := []*Input{}
	e.inputNames = map[string]struct{}{}
	for _, v := range e.Options.Domains {
		i, err := NewInput(v)
		if err != nil {
			errors = append(errors, err.Error())
			continue
		}
		allInputs = append(allInputs, i)
		e.inputNames[i.Domain] = struct{}{}
	}
	e.Inputs = allInputs
	if len(errors) > 0 {
		return errorutil.NewWithTag("typox", "%v", strings.Join(errors, " : "))
	}
	return nil
}

package typox

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/projectdiscovery/gologger"
	mapsutil "github.com/projectdiscovery/utils/maps"
	"gopkg.in/yaml.v3"
)

// UnknownPrice is returned for domains without a known suffix price
const UnknownPrice = "unknown"

// DefaultPrices is a snapshot of yearly registration prices per suffix
var DefaultPrices = map[string]string{
	".jp": "¥3,124/yr", ".co.jp": "¥4,378/yr", ".ne.jp": "¥4,378/yr", ".or.jp": "¥4,378/yr",
	".gr.jp": "¥4,378/yr", ".ac.jp": "¥4,378/yr", ".ed.jp": "¥4,378/yr", ".go.jp": "¥4,378/yr",
	".com": "¥1,580/yr", ".net": "¥1,680/yr", ".org": "¥1,780/yr", ".info": "¥2,280/yr",
	".biz": "¥2,280/yr", ".mobi": "¥2,860/yr", ".asia": "¥2,500/yr", ".xyz": "¥1,480/yr",
	".shop": "¥4,378/yr", ".site": "¥4,378/yr", ".online": "¥4,980/yr", ".store": "¥6,980/yr",
	".tech": "¥5,980/yr", ".app": "¥2,580/yr", ".dev": "¥2,580/yr", ".work": "¥990/yr",
	".cloud": "¥2,980/yr", ".tokyo": "¥990/yr", ".yokohama": "¥990/yr", ".nagoya": "¥990/yr",
	".email": "¥2,480/yr", ".link": "¥1,480/yr", ".click": "¥1,280/yr", ".ai": "¥12,980/yr",
	".io": "¥8,980/yr", ".me": "¥2,980/yr", ".tv": "¥4,980/yr", ".cc": "¥1,580/yr",
	".co": "¥3,500/yr", ".ntt": "on request", ".club": "¥1,980/yr", ".guru": "¥3,980/yr",
	".life": "¥3,980/yr", ".world": "¥3,980/yr", ".today": "¥2,980/yr",
}

// PriceTable looks up registration prices by the longest matching suffix
type PriceTable struct {
	prices   map[string]string
	suffixes []string // longest first
}

// NewPriceTable returns a table over prices, nil or empty uses DefaultPrices
func NewPriceTable(prices map[string]string) *PriceTable {
	if len(prices) == 0 {
		prices = DefaultPrices
	}
	t := &PriceTable{prices: make(map[string]string, len(prices))}
	for suffix, label := range prices {
		t.prices[normalizeSuffix(suffix)] = label
	}
	t.suffixes = mapsutil.GetKeys(t.prices)
	sort.Slice(t.suffixes, func(i, j int) bool {
		if len(t.suffixes[i]) != len(t.suffixes[j]) {
			return len(t.suffixes[i]) > len(t.suffixes[j])
		}
		return t.suffixes[i] < t.suffixes[j]
	})
	return t
}

func normalizeSuffix(suffix string) string {
	suffix = strings.ToLower(strings.TrimSpace(suffix))
	if !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	return suffix
}

// Lookup returns the price label of domain or UnknownPrice
func (t *PriceTable) Lookup(domain string) string {
	domain = strings.ToLower(domain)
	for _, suffix := range t.suffixes {
		if strings.HasSuffix(domain, suffix) {
			return t.prices[suffix]
		}
	}
	return UnknownPrice
}

// Prices returns a copy of the suffix to label mapping
func (t *PriceTable) Prices() map[string]string {
	out := make(map[string]string, len(t.prices))
	for k, v := range t.prices {
		out[k] = v
	}
	return out
}

// LoadPrices reads a suffix to label mapping from a json or yaml file
func LoadPrices(path string) (*PriceTable, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	prices := map[string]string{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bin, &prices)
	default:
		err = json.Unmarshal(bin, &prices)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse price table %v: %w", path, err)
	}
	return NewPriceTable(prices), nil
}

// WritePriceSnapshot writes DefaultPrices as indented json to path
func WritePriceSnapshot(path string) error {
	bin, err := json.MarshalIndent(DefaultPrices, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bin, 0644)
}

// IANATLDListURL is the official list of delegated top level domains
const IANATLDListURL = "https://data.iana.org/TLD/tlds-alpha-by-domain.txt"

// fallbackTLDs is used when the registry cannot be refreshed
var fallbackTLDs = []string{
	"com", "net", "org", "edu", "gov", "mil", "int", "jp", "co.jp", "ne.jp",
	"ai", "io", "co", "me", "info", "biz", "us", "uk", "ca", "de", "fr", "au",
	"ntt", "google", "amazon", "shop", "blog", "tech", "dev", "app", "xyz",
}

// TLDRegistry answers whether the last label of a domain is a delegated
// top level domain. It starts from a static set and can be refreshed.
type TLDRegistry struct {
	mu      sync.RWMutex
	tlds    map[string]struct{}
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

// NewTLDRegistry returns a registry seeded with the static fallback set
func NewTLDRegistry() *TLDRegistry {
	r := &TLDRegistry{
		tlds:    make(map[string]struct{}, len(fallbackTLDs)),
		URL:     IANATLDListURL,
		Timeout: 5 * time.Second,
		Client:  http.DefaultClient,
	}
	for _, tld := range fallbackTLDs {
		r.tlds[tld] = struct{}{}
	}
	return r
}

// Refresh adds every tld of the remote list to the registry. On failure the
// registry keeps its current contents.
func (r *TLDRegistry) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %v fetching %v", resp.Status, r.URL)
	}

	fetched := map[string]struct{}{}
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fetched[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	for tld := range fetched {
		r.tlds[tld] = struct{}{}
	}
	size := len(r.tlds)
	r.mu.Unlock()
	gologger.Verbose().Msgf("refreshed tld registry (total: %d)", size)
	return nil
}

// IsValid reports whether the last label of domain is a known tld
func (r *TLDRegistry) IsValid(domain string) bool {
	idx := strings.LastIndex(domain, ".")
	if idx < 0 {
		return false
	}
	tld := strings.ToLower(domain[idx+1:])
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tlds[tld]
	return ok
}

// Len returns the number of known tlds
func (r *TLDRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tlds)
}

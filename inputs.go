package typox

import (
	"fmt"
	"strings"

	urlutil "github.com/projectdiscovery/utils/url"
	"golang.org/x/net/publicsuffix"
)

// Input is a parsed domain to generate typos for
type Input struct {
	Domain string // host as typed, without scheme, port or mailbox
	Base   string // everything before the first dot
	Suffix string // everything after the first dot
	TLD    string // right most label ex: `jp`
	ETLD   string // public suffix when it has more than one label ex: `co.jp`
	Root   string // registrable domain (eTLD+1)
}

// NewInput parses a bare domain, an email address or a URL
func NewInput(raw string) (*Input, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty input")
	}
	host := raw
	switch {
	case strings.Contains(raw, "@") && !strings.Contains(raw, "://"):
		host = ExtractDomain(raw)
	case strings.Contains(raw, "://") || strings.ContainsAny(raw, ":/"):
		if !strings.Contains(raw, "://") {
			raw = "https://" + raw
		}
		u, err := urlutil.Parse(raw)
		if err != nil {
			return nil, err
		}
		host = u.Hostname()
	}
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return nil, fmt.Errorf("input %v has no domain", raw)
	}
	if strings.ContainsAny(host, ",/ ") {
		return nil, fmt.Errorf("input %v is not a valid domain", raw)
	}

	in := &Input{Domain: host}
	in.Base, in.Suffix, _ = strings.Cut(host, ".")
	suffix, _ := publicsuffix.PublicSuffix(strings.ToLower(host))
	if strings.Contains(suffix, ".") {
		in.ETLD = suffix
		in.TLD = suffix[strings.LastIndex(suffix, ".")+1:]
	} else {
		in.TLD = suffix
	}
	if root, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(host)); err == nil {
		in.Root = root
	}
	return in, nil
}

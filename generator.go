package typox

import (
	"strings"
)

// Candidates is an insertion ordered set of generated typos and the causes
// that can produce each of them
type Candidates struct {
	domain string
	order  []string
	causes map[string]CauseSet
}

func newCandidates(domain string) *Candidates {
	return &Candidates{domain: domain, causes: map[string]CauseSet{}}
}

func (c *Candidates) add(typo string, cause Cause) {
	if typo == c.domain || typo == "" {
		return
	}
	set, ok := c.causes[typo]
	if !ok {
		set = CauseSet{}
		c.causes[typo] = set
		c.order = append(c.order, typo)
	}
	set.Add(cause)
}

// Domain returns the domain the candidates were generated for
func (c *Candidates) Domain() string { return c.domain }

// Len returns the number of distinct candidates
func (c *Candidates) Len() int { return len(c.order) }

// Typos returns candidates in generation order
func (c *Candidates) Typos() []string {
	return append([]string(nil), c.order...)
}

// Causes returns the causes tagged on typo
func (c *Candidates) Causes(typo string) CauseSet {
	return c.causes[typo]
}

// Map returns a copy of the candidate to causes mapping
func (c *Candidates) Map() map[string]CauseSet {
	out := make(map[string]CauseSet, len(c.causes))
	for k, v := range c.causes {
		out[k] = v.Clone()
	}
	return out
}

// Generate enumerates every single mistake of the taxonomy for domain:
// omissions, duplications, adjacent keys, homoglyphs and symmetric keys
// per character, then adjacent swaps, then suffix confusions.
func Generate(domain string) *Candidates {
	c := newCandidates(domain)
	runes := []rune(domain)

	replaceAt := func(i int, with string) string {
		return string(runes[:i]) + with + string(runes[i+1:])
	}

	for i, r := range runes {
		char := string(r)
		lower := strings.ToLower(char)

		c.add(string(runes[:i])+string(runes[i+1:]), DroppedChar)
		c.add(string(runes[:i+1])+string(runes[i:]), DoubleInput)

		for _, adj := range keyboardAdjacent[lower] {
			if IsKeyboardAdjacent(char, string(adj)) {
				c.add(replaceAt(i, string(adj)), AdjacentKey)
			}
		}
		for _, glyph := range generatorHomoglyphs[lower] {
			c.add(replaceAt(i, glyph), Homoglyph)
		}
		for _, pair := range symmetricKeyPairs {
			switch char {
			case pair[0]:
				c.add(replaceAt(i, pair[1]), SymmetricKey)
			case pair[1]:
				c.add(replaceAt(i, pair[0]), SymmetricKey)
			}
		}
	}

	for i := 0; i+1 < len(runes); i++ {
		swapped := string(runes[:i]) + string(runes[i+1]) + string(runes[i]) + string(runes[i+2:])
		c.add(swapped, Transposition)
	}

	if base, suffix, ok := strings.Cut(domain, "."); ok {
		for _, alt := range tldAlternatives[suffix] {
			c.add(base+"."+alt, TldMismatch)
		}
	}
	return c
}

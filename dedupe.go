package typox

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/typox/internal/dedupe"
)

// MaxInMemoryDedupeSize (default : 100 MB)
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

// DedupeBackend stores the distinct elements seen by Dedupe
type DedupeBackend interface {
	// Upsert add/update key to backend/database
	Upsert(elem string)
	// Execute given callback on each element while iterating
	IterCallback(callback func(elem string))
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// Dedupe removes duplicate typos produced for different input domains
type Dedupe struct {
	receive <-chan string
	backend DedupeBackend
}

// Drain consumes the channel until it is closed
func (d *Dedupe) Drain() {
	for val := range d.receive {
		d.backend.Upsert(val)
	}
}

// GetResults iterates over dedupe storage and returns results
func (d *Dedupe) GetResults() <-chan string {
	send := make(chan string, 100)
	go func() {
		defer close(send)
		d.backend.IterCallback(func(elem string) {
			send <- elem
		})
		d.backend.Cleanup()
	}()
	return send
}

// NewDedupe returns a dedupe instance reading ch. byteLen is the estimated
// size of all elements and selects the backend, the disk store is used
// above MaxInMemoryDedupeSize.
func NewDedupe(ch <-chan string, byteLen int) *Dedupe {
	d := &Dedupe{
		receive: ch,
	}
	if byteLen <= MaxInMemoryDedupeSize {
		d.backend = dedupe.NewMapBackend()
		return d
	}
	backend, err := dedupe.NewHybridBackend()
	if err != nil {
		gologger.Warning().Msgf("failed to create disk dedupe store got %v, falling back to memory", err)
		d.backend = dedupe.NewMapBackend()
		return d
	}
	gologger.Verbose().Msgf("using disk dedupe store for ~%d bytes of typos", byteLen)
	d.backend = backend
	return d
}

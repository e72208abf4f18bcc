package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// HybridBackend keeps seen typos in an hmap disk store
type HybridBackend struct {
	storage *hybrid.HybridMap
}

// NewHybridBackend opens a disk backed store in a temp dir
func NewHybridBackend() (*HybridBackend, error) {
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		return nil, err
	}
	return &HybridBackend{storage: db}, nil
}

func (h *HybridBackend) Upsert(elem string) {
	if err := h.storage.Set(elem, nil); err != nil {
		gologger.Error().Msgf("dedupe: hybrid: got %v while writing %v", err, elem)
	}
}

func (h *HybridBackend) IterCallback(callback func(elem string)) {
	h.storage.Scan(func(k, _ []byte) error {
		callback(string(k))
		return nil
	})
}

func (h *HybridBackend) Cleanup() {
	_ = h.storage.Close()
}

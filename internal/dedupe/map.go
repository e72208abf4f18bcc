package dedupe

import (
	"runtime/debug"
	"sort"
)

// MapBackend keeps seen typos in memory
type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]struct{}{}}
}

func (m *MapBackend) Upsert(elem string) {
	m.storage[elem] = struct{}{}
}

// IterCallback visits elements in lexical order, matching the key order
// of the disk backend
func (m *MapBackend) IterCallback(callback func(elem string)) {
	keys := make([]string, 0, len(m.storage))
	for k := range m.storage {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		callback(k)
	}
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// force release of the map buckets instead of waiting for the next gc cycle
	debug.FreeOSMemory()
}

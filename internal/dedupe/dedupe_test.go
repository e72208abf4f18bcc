package dedupe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapBackend(t *testing.T) {
	m := NewMapBackend()
	for _, v := range []string{"ntt.co.jp", "nt.co.jp", "ntt.co.jp", "ntt.jp"} {
		m.Upsert(v)
	}
	got := []string{}
	m.IterCallback(func(elem string) { got = append(got, elem) })
	require.Equal(t, []string{"nt.co.jp", "ntt.co.jp", "ntt.jp"}, got)
	m.Cleanup()
}

func TestHybridBackend(t *testing.T) {
	h, err := NewHybridBackend()
	require.Nil(t, err)
	defer h.Cleanup()
	for _, v := range []string{"gogle.com", "google.co.jp", "gogle.com"} {
		h.Upsert(v)
	}
	got := map[string]struct{}{}
	h.IterCallback(func(elem string) { got[elem] = struct{}{} })
	require.Len(t, got, 2)
	require.Contains(t, got, "gogle.com")
	require.Contains(t, got, "google.co.jp")
}

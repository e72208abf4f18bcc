package typox

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceTableLookup(t *testing.T) {
	table := NewPriceTable(nil)
	require.Equal(t, DefaultPrices[".co.jp"], table.Lookup("ntt.co.jp"))
	require.Equal(t, DefaultPrices[".jp"], table.Lookup("ntt.jp"))
	require.Equal(t, DefaultPrices[".com"], table.Lookup("GOOGLE.COM"))
	require.Equal(t, UnknownPrice, table.Lookup("example.invalid"))

	custom := NewPriceTable(map[string]string{"jp": "cheap", ".co.jp": "pricey"})
	require.Equal(t, "pricey", custom.Lookup("ntt.co.jp"))
	require.Equal(t, "cheap", custom.Lookup("ntt.ne.jp"))
	require.Equal(t, map[string]string{".jp": "cheap", ".co.jp": "pricey"}, custom.Prices())
}

func TestLoadPrices(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "prices.yaml")
	require.Nil(t, os.WriteFile(yamlPath, []byte("\".com\": a\n\".jp\": b\n"), 0644))
	table, err := LoadPrices(yamlPath)
	require.Nil(t, err)
	require.Equal(t, "a", table.Lookup("google.com"))

	jsonPath := filepath.Join(dir, "prices.json")
	require.Nil(t, WritePriceSnapshot(jsonPath))
	table, err = LoadPrices(jsonPath)
	require.Nil(t, err)
	require.Equal(t, DefaultPrices, table.Prices())

	badPath := filepath.Join(dir, "bad.json")
	require.Nil(t, os.WriteFile(badPath, []byte("{"), 0644))
	_, err = LoadPrices(badPath)
	require.NotNil(t, err)
}

func TestTLDRegistry(t *testing.T) {
	registry := NewTLDRegistry()
	require.True(t, registry.IsValid("ntt.co.jp"))
	require.True(t, registry.IsValid("google.COM"))
	require.False(t, registry.IsValid("google.cmo"))
	require.False(t, registry.IsValid("localhost"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "# Version 2024010100\nCMO\nTOKYO\n\n")
	}))
	defer server.Close()

	before := registry.Len()
	registry.URL = server.URL
	require.Nil(t, registry.Refresh(context.Background()))
	require.True(t, registry.IsValid("google.cmo"))
	require.Equal(t, before+2, registry.Len())
}

func TestTLDRegistryRefreshFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	registry := NewTLDRegistry()
	before := registry.Len()
	registry.URL = server.URL
	require.NotNil(t, registry.Refresh(context.Background()))
	require.Equal(t, before, registry.Len())
	require.True(t, registry.IsValid("ntt.jp"))
}

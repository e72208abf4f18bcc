package typox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInput(t *testing.T) {
	testcases := []string{"ntt.co.jp", "https://ntt.co.jp", "ntt.co.jp:443", "https://ntt.co.jp:443/path", "user@ntt.co.jp"}
	expected := &Input{
		Domain: "ntt.co.jp",
		Base:   "ntt",
		Suffix: "co.jp",
		TLD:    "jp",
		ETLD:   "co.jp",
		Root:   "ntt.co.jp",
	}
	for _, v := range testcases {
		got, err := NewInput(v)
		require.Nilf(t, err, "failed to parse input %v", v)
		require.Equal(t, expected, got)
	}
}

func TestInputSingleLabelSuffix(t *testing.T) {
	testcases := []struct {
		raw      string
		expected *Input
	}{
		{raw: "google.com", expected: &Input{Domain: "google.com", Base: "google", Suffix: "com", TLD: "com", Root: "google.com"}},
		{raw: "mail.google.com", expected: &Input{Domain: "mail.google.com", Base: "mail", Suffix: "google.com", TLD: "com", Root: "google.com"}},
		{raw: "example.jp.", expected: &Input{Domain: "example.jp", Base: "example", Suffix: "jp", TLD: "jp", Root: "example.jp"}},
	}
	for _, v := range testcases {
		got, err := NewInput(v.raw)
		require.Nilf(t, err, "failed to parse input %v", v.raw)
		require.Equal(t, v.expected, got)
	}
}

func TestInputInvalid(t *testing.T) {
	for _, v := range []string{"", "   ", "user@", "a,b.com"} {
		_, err := NewInput(v)
		require.NotNilf(t, err, "expected error for %q", v)
	}
}

package typox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, GenerateSample(path))
	cfg, err := NewConfig(path)
	require.Nil(t, err)
	require.Equal(t, DefaultConfig, *cfg)

	require.Nil(t, os.WriteFile(path, []byte("top-n: 5\n"), 0644))
	cfg, err = NewConfig(path)
	require.Nil(t, err)
	require.Equal(t, 5, cfg.TopN)
	require.Equal(t, DefaultConfig.Template, cfg.Template)

	_, err = NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NotNil(t, err)
}

package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/typox"
	fileutil "github.com/projectdiscovery/utils/file"
)

// defaultConfigDir holds the typox yaml config
var defaultConfigDir = filepath.Join(getUserHomeDir(), ".config", "typox")

// DefaultConfigFile is created on first run and loaded on every later run
var DefaultConfigFile = filepath.Join(defaultConfigDir, "config.yaml")

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return homeDir
}

// loadDefaultConfig replaces typox.DefaultConfig with the saved config or
// saves the built-in one when none exists
func loadDefaultConfig() {
	if fileutil.FileExists(DefaultConfigFile) {
		cfg, err := typox.NewConfig(DefaultConfigFile)
		if err == nil {
			typox.DefaultConfig = *cfg
			return
		}
		gologger.Warning().Msgf("failed to read default config %v got: %v", DefaultConfigFile, err)
		return
	}
	if err := os.MkdirAll(defaultConfigDir, 0700); err != nil {
		gologger.Verbose().Msgf("failed to create config dir %v got: %v", defaultConfigDir, err)
		return
	}
	if err := typox.GenerateSample(DefaultConfigFile); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", DefaultConfigFile, err)
	}
}

package typox

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTemplate renders one ranked candidate per line
const DefaultTemplate = "{{rank}}. {{typo}} (score: {{score}}, distance: {{distance}}, price: {{price}}, causes: {{causes}})"

// Config holds ranking defaults that can be kept in a yaml file
type Config struct {
	TopN        int               `yaml:"top-n"`
	MaxDistance int               `yaml:"max-distance"`
	Threshold   int               `yaml:"threshold"`
	Workers     int               `yaml:"workers"`
	Template    string            `yaml:"template"`
	RegistryURL string            `yaml:"registry-url"`
	Prices      map[string]string `yaml:"prices"`
}

// DefaultConfig is used when no config file overrides it
var DefaultConfig = Config{
	TopN:        20,
	MaxDistance: 4,
	Threshold:   4,
	Template:    DefaultTemplate,
	RegistryURL: IANATLDListURL,
	Prices:      DefaultPrices,
}

// NewConfig reads config from file, unset fields keep DefaultConfig values
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig
	cfg.Prices = nil
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	if cfg.Prices == nil {
		cfg.Prices = DefaultConfig.Prices
	}
	return &cfg, nil
}

// GenerateSample writes DefaultConfig as yaml to filePath
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

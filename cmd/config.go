package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/etnz/mortgage"
	"go.uber.org/zap"
)

// Config is the content of the assumptions file.
//
//	[assumptions]
//	currency = "USD"
//	front_end_ratio = 0.28
//	back_end_ratio = 0.36
//	tax_bracket = 0.22
//
//	[fred]
//	api_key = "${FRED_API_KEY}"
type Config struct {
	Assumptions mortgage.Assumptions `toml:"assumptions"`
	FRED        FREDConfig           `toml:"fred"`
}

// FREDConfig configures the market rate feed.
type FREDConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// DefaultConfig returns the configuration used without a file.
func DefaultConfig() *Config {
	return &Config{
		Assumptions: mortgage.DefaultAssumptions(),
		FRED:        FREDConfig{BaseURL: mortgage.DefaultFREDURL},
	}
}

// LoadConfig reads a configuration file over the defaults. A missing file
// yields the defaults, unless required is set.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := DefaultConfig()
	path = os.ExpandEnv(path)

	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) && !required {
		Logger().Debug("no config file, using defaults", zap.String("path", path))
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in config %q: %s", path, strings.Join(keys, ", "))
	}

	// secrets are better kept out of the file.
	cfg.FRED.APIKey = os.ExpandEnv(cfg.FRED.APIKey)
	if cfg.FRED.BaseURL == "" {
		cfg.FRED.BaseURL = mortgage.DefaultFREDURL
	}
	if err := cfg.Assumptions.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// loadConfig loads the configuration from the global flags.
func loadConfig() (*Config, error) {
	required := *configFile != "mcs.toml"
	cfg, err := LoadConfig(*configFile, required)
	if err != nil {
		return nil, err
	}
	if *currency != "" {
		cfg.Assumptions.Currency = strings.ToUpper(*currency)
	}
	return cfg, nil
}

// rateFeed returns the market rate feed configured by cfg.
func rateFeed(cfg *Config) *mortgage.RateFeed {
	key := cfg.FRED.APIKey
	if key == "" {
		key = os.Getenv(EnvFREDKey)
	}
	feed := mortgage.NewRateFeed(key, Logger())
	feed.BaseURL = cfg.FRED.BaseURL
	return feed
}

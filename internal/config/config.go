// Package config loads application configuration from file and environment.
package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Serper    SerperConfig    `yaml:"serper" mapstructure:"serper"`
	Firecrawl FirecrawlConfig `yaml:"firecrawl" mapstructure:"firecrawl"`
	Discovery DiscoveryConfig `yaml:"discovery" mapstructure:"discovery"`
	Names     NamesConfig     `yaml:"names" mapstructure:"names"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// SerperConfig holds Serper search API settings.
type SerperConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// FirecrawlConfig holds Firecrawl page-content API settings.
type FirecrawlConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// DiscoveryConfig tunes the contact discovery engine. The dedup priority
// and early-stop policies are fixed; the knobs here are the cost levers.
type DiscoveryConfig struct {
	// MaxContacts caps the merged contact list per lead.
	MaxContacts int `yaml:"max_contacts" mapstructure:"max_contacts"`
	// QueryInterval paces consecutive search queries.
	QueryInterval time.Duration `yaml:"query_interval" mapstructure:"query_interval"`
	// PathInterval paces consecutive page-path scrapes.
	PathInterval time.Duration `yaml:"path_interval" mapstructure:"path_interval"`
	// LeadInterval paces leads during bulk discovery.
	LeadInterval time.Duration `yaml:"lead_interval" mapstructure:"lead_interval"`
	// PageTimeoutSecs bounds each page scrape.
	PageTimeoutSecs int `yaml:"page_timeout_secs" mapstructure:"page_timeout_secs"`
	// PagePaths overrides the conventional team-page path suffixes.
	PagePaths []string `yaml:"page_paths" mapstructure:"page_paths"`
	// SearchRetries is the number of retries per search query on
	// transient failures.
	SearchRetries int `yaml:"search_retries" mapstructure:"search_retries"`
}

// NamesConfig configures the first-name plausibility set.
type NamesConfig struct {
	// File points to a newline-delimited name list; empty uses the
	// embedded list.
	File string `yaml:"file" mapstructure:"file"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("serper.key", "")
	v.SetDefault("serper.base_url", "https://google.serper.dev")
	v.SetDefault("firecrawl.key", "")
	v.SetDefault("firecrawl.base_url", "https://api.firecrawl.dev/v1")
	v.SetDefault("discovery.max_contacts", 15)
	v.SetDefault("discovery.query_interval", "2s")
	v.SetDefault("discovery.path_interval", "1s")
	v.SetDefault("discovery.lead_interval", "3s")
	v.SetDefault("discovery.page_timeout_secs", 20)
	v.SetDefault("discovery.search_retries", 1)
	v.SetDefault("names.file", "")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the credentials a command depends on are present.
func (c *Config) Validate(needs ...string) error {
	for _, n := range needs {
		switch n {
		case "serper":
			if c.Serper.Key == "" {
				return eris.New("config: serper.key is required (LEADGEN_SERPER_KEY)")
			}
		case "firecrawl":
			if c.Firecrawl.Key == "" {
				return eris.New("config: firecrawl.key is required (LEADGEN_FIRECRAWL_KEY)")
			}
		}
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

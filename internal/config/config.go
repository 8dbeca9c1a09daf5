package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = "mfrgen.yaml"

// SourceURL is the upstream registry page the HTML snapshot comes from.
const SourceURL = "https://www.midi.org/specifications-old/item/manufacturer-id-numbers"

var ErrNoConfig = errors.New("no config file")

type Config struct {
	SourceURL      string `yaml:"source_url"`
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Retries        int    `yaml:"retries"`
	SkipRescinded  bool   `yaml:"skip_rescinded"`
	Debug          bool   `yaml:"debug"`
}

type Options struct {
	ConfigPath    string
	IgnoreConfig  bool
	Debug         bool
	SkipRescinded bool
	SourceURL     string
	UserAgent     string
}

func DefaultConfig() *Config {
	return &Config{
		SourceURL:      SourceURL,
		UserAgent:      "",
		TimeoutSeconds: 30,
		Retries:        3,
		SkipRescinded:  false,
		Debug:          false,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// resolvePath returns the explicit path, or DefaultFile when it exists.
func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, nil
	}

	return "", ErrNoConfig
}

// LoadMerged loads the config file, if any, and applies CLI overrides on
// top. The returned string describes where the values came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	path, err := resolvePath(opts.ConfigPath)
	if errors.Is(err, ErrNoConfig) {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)", nil
	}

	cfg, err := loadYAML(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", path, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, path, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
	if o.SkipRescinded {
		c.SkipRescinded = true
	}
	if o.SourceURL != "" {
		c.SourceURL = o.SourceURL
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
}

func normalizeDefaults(c *Config) {
	if c.SourceURL == "" {
		c.SourceURL = SourceURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.Retries <= 0 {
		c.Retries = 3
	}
}

func (c *Config) Print() {
	fmt.Printf(" -source_url: %s\n", c.SourceURL)
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	fmt.Printf(" -timeout_seconds: %d\n", c.TimeoutSeconds)
	fmt.Printf(" -retries: %d\n", c.Retries)
	if c.SkipRescinded {
		fmt.Printf(" -skip_rescinded: %t\n", c.SkipRescinded)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
}

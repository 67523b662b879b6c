package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application's configuration model. It captures where
// collected dumps live, where derived state is stored, and the knobs of
// the analysis and matching stages.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Storage  StorageConfig  `yaml:"storage"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Match    MatchConfig    `yaml:"match"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type DataConfig struct {
	// Directory holding collector dumps and the filename prefix used to
	// pick the latest one.
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

type StorageConfig struct {
	DBPath string `yaml:"dbPath"`
}

type AnalysisConfig struct {
	// Bounded TF-IDF vocabulary size
	MaxVocabulary int `yaml:"maxVocabulary"`
	// Neighbor count for similarity lookups
	Neighbors int `yaml:"neighbors"`
}

type MatchConfig struct {
	// Default number of matches returned
	TopN int `yaml:"topN"`
}

type MetricsConfig struct {
	// Listen address for /metrics, empty disables. METRICS_ADDR overrides.
	Addr string `yaml:"addr"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Data:     DataConfig{Dir: "./data/raw", Prefix: "dating_posts"},
		Storage:  StorageConfig{DBPath: "./kindred.db"},
		Analysis: AnalysisConfig{MaxVocabulary: 1000, Neighbors: 5},
		Match:    MatchConfig{TopN: 5},
		Metrics:  MetricsConfig{Addr: ""},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if v := os.Getenv("KINDRED_DATA_DIR"); v != "" && c.Data.Dir == "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("KINDRED_DB_PATH"); v != "" && c.Storage.DBPath == "" {
		c.Storage.DBPath = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" && c.Metrics.Addr == "" {
		c.Metrics.Addr = v
	}
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

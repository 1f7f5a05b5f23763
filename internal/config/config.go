// Package config resolves tool settings from defaults, an optional TOML
// file, a .env file, and the process environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultFile is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFile = "filesum.toml"

// Config holds resolved settings. Later sources win: defaults, then the
// TOML file, then .env, then the process environment.
type Config struct {
	Host        string   `toml:"host"`
	Model       string   `toml:"model"`
	OutputDir   string   `toml:"output_dir"`
	DBPath      string   `toml:"db_path"`
	MaxFileSize int64    `toml:"max_file_size"`
	ExcludeDirs []string `toml:"exclude_dirs"`
	Extensions  []string `toml:"extensions"`
	Style       string   `toml:"style"`
}

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:        "http://localhost:11434",
		Model:       "llama3",
		OutputDir:   "docs",
		DBPath:      filepath.Join(".filesum", "history.db"),
		MaxFileSize: 16 << 20,
		Style:       "explain",
	}
}

// Load resolves the configuration. path may be empty, in which case
// $FILESUM_CONFIG and then ./filesum.toml are tried. A missing file is
// not an error; the remaining layers still apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	path = strings.TrimSpace(path)
	if path == "" {
		path = strings.TrimSpace(os.Getenv("FILESUM_CONFIG"))
	}
	if path == "" {
		path = DefaultFile
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("parsing config file %q: %w", path, err)
		}
	}

	// .env never overrides variables already present in the
	// environment, so the process environment stays the top layer.
	_ = godotenv.Load()
	applyEnv(cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("OLLAMA_HOST")); v != "" {
		cfg.Host = normalizeHost(v)
	}
	if v := strings.TrimSpace(os.Getenv("OLLAMA_MODEL")); v != "" {
		cfg.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("FILESUM_DB")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("FILESUM_OUTPUT")); v != "" {
		cfg.OutputDir = v
	}
}

// normalizeHost accepts the bare host:port form OLLAMA_HOST is commonly
// set to.
func normalizeHost(v string) string {
	if strings.Contains(v, "://") {
		return v
	}
	return "http://" + v
}

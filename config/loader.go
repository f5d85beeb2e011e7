package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path on top of Default, rejects unknown keys,
// resolves relative board paths against the file's directory and validates
// the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Dir(path)
	for i := range cfg.Batch.Jobs {
		if b := cfg.Batch.Jobs[i].Board; b != "" && !filepath.IsAbs(b) {
			cfg.Batch.Jobs[i].Board = filepath.Join(base, b)
		}
	}
	if cfg.Batch.MetricsOut != "" && !filepath.IsAbs(cfg.Batch.MetricsOut) {
		cfg.Batch.MetricsOut = filepath.Join(base, cfg.Batch.MetricsOut)
	}

	return cfg, nil
}

// Parse decodes YAML bytes on top of Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WriteDefault writes Default to path, creating parent directories.
// It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxura/luxura/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".luxura.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .luxura.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .luxura.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.AppConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.AppConfig{}, err
	}

	var cfg domain.AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.AppConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Omitted keys take defaults.
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return domain.AppConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	// A relative catalog path is relative to the config file.
	if cfg.Catalog != "" && !filepath.IsAbs(cfg.Catalog) {
		cfg.Catalog = filepath.Join(dir, cfg.Catalog)
	}

	return cfg, nil
}

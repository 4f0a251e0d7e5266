// Package catalog loads the option catalog from YAML, either the built-in
// one or a user-supplied file.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/luxura/luxura/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtin []byte

// YAMLLoader implements domain.CatalogLoader.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the catalog at path. An empty path loads the built-in catalog.
// The result has passed Validate.
func (l *YAMLLoader) Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return Parse(builtin, "built-in catalog")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data, path)
}

// Default returns the built-in catalog. It panics if the embedded file is
// broken, which only a bad build can cause.
func Default() *domain.Catalog {
	cat, err := Parse(builtin, "built-in catalog")
	if err != nil {
		panic(err)
	}
	return cat
}

// Parse decodes and validates catalog YAML. Unknown keys are rejected.
func Parse(data []byte, source string) (*domain.Catalog, error) {
	var cat domain.Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", source, err)
	}
	return &cat, nil
}

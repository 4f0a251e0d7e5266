package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luxura/luxura/internal/adapters/outbound/catalog"
	"github.com/luxura/luxura/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BuiltinCatalog(t *testing.T) {
	cat, err := catalog.New().Load("")
	require.NoError(t, err)

	assert.Len(t, cat.Models, 8)
	assert.Len(t, cat.Colors, 12)
	assert.Len(t, cat.Wheels, 5)
	assert.Len(t, cat.Interiors, 6)
	assert.Len(t, cat.Accessories, 12)
	require.Len(t, cat.Steps, 6)

	assert.Equal(t, "lamborghini-aventador", cat.Models[0].ID)
	assert.Equal(t, 573966, cat.Models[0].BasePrice)
	assert.Equal(t, "black-diamond", cat.Colors[0].ID)
	assert.Equal(t, "standard-22", cat.Wheels[0].ID)
	assert.Equal(t, "obsidian", cat.Interiors[0].ID)
	assert.Equal(t, `22"`, cat.Wheels[0].Size)
	assert.Equal(t, "Bespoke", cat.Steps[4].Label)
	assert.Equal(t, domain.StepSummary, cat.Steps[5].ID)
}

func TestLoad_BuiltinOptionalRange(t *testing.T) {
	cat := catalog.Default()

	sf90, ok := cat.Model("ferrari-sf90")
	require.True(t, ok)
	assert.Equal(t, "16 miles EV", sf90.Specs.Range)

	aventador, _ := cat.Model("lamborghini-aventador")
	assert.Empty(t, aventador.Specs.Range)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
models: [{id: m1, name: One, series: S, base_price: 100}]
colors: [{id: c1, name: Red, hex: "#ff0000", finish: solid}]
wheels: [{id: w1, name: W, size: '20"', color: "#999999"}]
interiors: [{id: i1, name: I, color: "#111111", accent: "#222222"}]
steps: [{id: model, label: Model}]
`), 0644))

	cat, err := catalog.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "m1", cat.Models[0].ID)
	assert.Empty(t, cat.Accessories)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.New().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog")
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := catalog.Parse([]byte(`modles: []`), "test.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing test.yaml")
}

func TestParse_InvalidCatalogRejected(t *testing.T) {
	_, err := catalog.Parse([]byte(`
models: [{id: m1, name: One, base_price: 100}]
colors: [{id: c1, name: Red, hex: "red", finish: solid}]
wheels: [{id: w1, name: W, color: "#999999"}]
interiors: [{id: i1, name: I, color: "#111111", accent: "#222222"}]
steps: [{id: model, label: Model}]
`), "test.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid test.yaml")
	assert.Contains(t, err.Error(), `color "c1"`)
}

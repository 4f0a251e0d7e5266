package application_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/luxura/luxura/internal/adapters/outbound/catalog"
	"github.com/luxura/luxura/internal/application"
	"github.com/luxura/luxura/internal/domain"
	"github.com/luxura/luxura/internal/domain/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newService(t *testing.T) *application.ConfiguratorService {
	t.Helper()
	return application.NewConfiguratorService(catalog.Default(), nil)
}

func TestConfiguratorService_Defaults(t *testing.T) {
	svc := newService(t)

	_, err := uuid.Parse(svc.ID())
	require.NoError(t, err)
	assert.Equal(t, domain.StepModel, svc.Step().ID)
	assert.Equal(t, 573966, svc.Total())
}

func TestConfiguratorService_SessionsHaveDistinctIDs(t *testing.T) {
	assert.NotEqual(t, newService(t).ID(), newService(t).ID())
}

func TestConfiguratorService_SelectByID(t *testing.T) {
	svc := newService(t)

	require.NoError(t, svc.Select(application.CategoryModel, "porsche-911-gt3"))
	require.NoError(t, svc.Select(application.CategoryColor, "burnt-orange"))
	require.NoError(t, svc.Select(application.CategoryWheel, "sport-22"))
	require.NoError(t, svc.Select(application.CategoryInterior, "navy"))

	sel := svc.Selection()
	assert.Equal(t, "porsche-911-gt3", sel.Model.ID)
	assert.Equal(t, "burnt-orange", sel.Color.ID)
	assert.Equal(t, "sport-22", sel.Wheel.ID)
	assert.Equal(t, "navy", sel.Interior.ID)
	assert.Equal(t, 223800+5500+4500+9500, svc.Total())
}

func TestConfiguratorService_UnknownIDRejected(t *testing.T) {
	svc := newService(t)

	err := svc.Select(application.CategoryColor, "hot-pink")
	require.ErrorIs(t, err, domain.ErrUnknownOption)
	assert.Contains(t, err.Error(), `color "hot-pink"`)
	assert.Equal(t, "black-diamond", svc.Selection().Color.ID)

	_, err = svc.ToggleAccessory("jetpack")
	require.ErrorIs(t, err, domain.ErrUnknownOption)
	assert.Empty(t, svc.Selection().Accessories)
}

func TestConfiguratorService_UnknownCategory(t *testing.T) {
	err := newService(t).Select("spoiler", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnknownOption)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestConfiguratorService_ToggleAccessory(t *testing.T) {
	svc := newService(t)

	on, err := svc.ToggleAccessory("racing-harness")
	require.NoError(t, err)
	assert.True(t, on)
	_, err = svc.ToggleAccessory("fire-system")
	require.NoError(t, err)
	assert.Equal(t, 591966, svc.Total())

	on, err = svc.ToggleAccessory("racing-harness")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Equal(t, 583466, svc.Total())
	assert.Equal(t, svc.Total(), svc.Quote().Total)
}

func TestConfiguratorService_Navigation(t *testing.T) {
	svc := newService(t)

	assert.False(t, svc.Back())
	assert.True(t, svc.Next())
	assert.Equal(t, domain.StepExterior, svc.Step().ID)

	assert.True(t, svc.Jump("summary"))
	assert.False(t, svc.Next())
	assert.False(t, svc.Jump("payment"))
	assert.Equal(t, domain.StepSummary, svc.Step().ID)
	assert.Equal(t, 5, svc.Progress().Index)
}

func TestConfiguratorService_RenderFollowsSelection(t *testing.T) {
	svc := newService(t)
	require.NoError(t, svc.Select(application.CategoryModel, "aston-martin-valkyrie"))
	require.NoError(t, svc.Select(application.CategoryColor, "english-green"))

	scene := svc.Render(90)
	assert.Equal(t, render.VariantValkyrie, scene.Variant)
	assert.Equal(t, "#1b4332", scene.Palette.Body)
	assert.Equal(t, 90.0, scene.Rotation)
}

func TestConfiguratorService_LogsMutations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := application.NewConfiguratorService(catalog.Default(), zap.New(core))

	_, err := svc.ToggleAccessory("fire-system")
	require.NoError(t, err)

	entries := logs.FilterMessage("toggle accessory").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "fire-system", fields["accessory"])
	assert.Equal(t, svc.ID(), fields["session"])
	assert.EqualValues(t, 573966+9500, fields["total"])
}

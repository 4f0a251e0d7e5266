package application

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/luxura/luxura/internal/domain"
	"github.com/luxura/luxura/internal/domain/render"
	"go.uber.org/zap"
)

// Option categories accepted by Select.
const (
	CategoryModel    = "model"
	CategoryColor    = "color"
	CategoryWheel    = "wheel"
	CategoryInterior = "interior"
)

// ConfiguratorService is one configurator session: the selection state,
// the catalog it draws from and id-based operations for adapters. Ids from
// users are checked here; the domain below assumes they are valid.
// Not safe for concurrent use.
type ConfiguratorService struct {
	id      string
	catalog *domain.Catalog
	config  *domain.Configuration
	logger  *zap.Logger
}

// NewConfiguratorService starts a session with catalog defaults.
func NewConfiguratorService(cat *domain.Catalog, logger *zap.Logger) *ConfiguratorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	s := &ConfiguratorService{
		id:      id,
		catalog: cat,
		config:  domain.NewConfiguration(cat),
		logger:  logger.With(zap.String("session", id)),
	}
	s.logger.Debug("session started", zap.String("model", s.config.Selection().Model.ID))
	return s
}

func (s *ConfiguratorService) ID() string                { return s.id }
func (s *ConfiguratorService) Catalog() *domain.Catalog  { return s.catalog }
func (s *ConfiguratorService) Step() domain.Step         { return s.config.Step() }
func (s *ConfiguratorService) Progress() domain.Progress { return s.config.Progress() }

// Selection returns a snapshot of the current choices.
func (s *ConfiguratorService) Selection() domain.Selection {
	return s.config.Selection()
}

// Next advances one step. It reports false at the last step.
func (s *ConfiguratorService) Next() bool {
	moved := s.config.Advance()
	s.logStep("next", moved)
	return moved
}

// Back retreats one step. It reports false at the first step.
func (s *ConfiguratorService) Back() bool {
	moved := s.config.Retreat()
	s.logStep("back", moved)
	return moved
}

// Jump moves to the named step. Unknown step ids report false.
func (s *ConfiguratorService) Jump(step string) bool {
	moved := s.config.JumpTo(domain.StepID(step))
	s.logStep("jump", moved)
	return moved
}

func (s *ConfiguratorService) logStep(action string, moved bool) {
	s.logger.Debug("navigate",
		zap.String("action", action),
		zap.Bool("moved", moved),
		zap.String("step", string(s.config.Step().ID)),
	)
}

// Select replaces the option of one category by id.
func (s *ConfiguratorService) Select(category, id string) error {
	switch category {
	case CategoryModel:
		m, ok := s.catalog.Model(id)
		if !ok {
			return unknown(category, id)
		}
		s.config.SelectModel(m)
	case CategoryColor:
		o, ok := s.catalog.Color(id)
		if !ok {
			return unknown(category, id)
		}
		s.config.SelectColor(o)
	case CategoryWheel:
		o, ok := s.catalog.Wheel(id)
		if !ok {
			return unknown(category, id)
		}
		s.config.SelectWheel(o)
	case CategoryInterior:
		o, ok := s.catalog.Interior(id)
		if !ok {
			return unknown(category, id)
		}
		s.config.SelectInterior(o)
	default:
		return fmt.Errorf("unknown category %q (valid: model, color, wheel, interior)", category)
	}

	s.logger.Debug("select",
		zap.String("category", category),
		zap.String("id", id),
		zap.Int("total", s.Total()),
	)
	return nil
}

// ToggleAccessory flips an accessory and reports whether it is now
// selected. Ids missing from the catalog are rejected.
func (s *ConfiguratorService) ToggleAccessory(id string) (bool, error) {
	if _, ok := s.catalog.Accessory(id); !ok {
		return false, unknown("accessory", id)
	}
	s.config.ToggleAccessory(id)
	on := s.config.HasAccessory(id)
	s.logger.Debug("toggle accessory",
		zap.String("accessory", id),
		zap.Bool("selected", on),
		zap.Int("total", s.Total()),
	)
	return on, nil
}

// Total returns the price of the current selection.
func (s *ConfiguratorService) Total() int {
	return domain.TotalPrice(s.catalog, s.config.Selection())
}

// Quote itemises the price of the current selection.
func (s *ConfiguratorService) Quote() domain.PriceBreakdown {
	return domain.Quote(s.catalog, s.config.Selection())
}

// Render draws the current model, color and wheel at angle degrees.
func (s *ConfiguratorService) Render(angle float64) render.Scene {
	sel := s.config.Selection()
	return render.RenderVehicle(s.catalog, sel.Model.ID, sel.Color.ID, sel.Wheel.ID, angle)
}

func unknown(category, id string) error {
	return fmt.Errorf("%s %q: %w", category, id, domain.ErrUnknownOption)
}

package mcp

import (
	"sync"

	"github.com/luxura/luxura/internal/application"
	"github.com/luxura/luxura/internal/domain"
)

// session serialises tool calls on the shared configurator; the transport
// may dispatch requests concurrently.
type session struct {
	mu       sync.Mutex
	svc      *application.ConfiguratorService
	currency string
}

func newSession(svc *application.ConfiguratorService, currency string) *session {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &session{svc: svc, currency: currency}
}

// stateView is the JSON shape of the session returned by most tools.
type stateView struct {
	Session        string           `json:"session"`
	Step           domain.Step      `json:"step"`
	Progress       domain.Progress  `json:"progress"`
	Selection      domain.Selection `json:"selection"`
	Total          int              `json:"total"`
	FormattedTotal string           `json:"formatted_total"`
}

// state must be called with mu held.
func (s *session) state() stateView {
	total := s.svc.Total()
	return stateView{
		Session:        s.svc.ID(),
		Step:           s.svc.Step(),
		Progress:       s.svc.Progress(),
		Selection:      s.svc.Selection(),
		Total:          total,
		FormattedTotal: domain.FormatPrice(total, s.currency),
	}
}

func (s *session) with(fn func(svc *application.ConfiguratorService)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.svc)
}

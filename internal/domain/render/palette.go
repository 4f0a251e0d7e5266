package render

import "github.com/luxura/luxura/internal/domain"

// Tone offsets applied to the catalog colors.
const (
	ShadowDelta    = -30
	HighlightDelta = 40

	wheelHighlightDelta = 20
	wheelShadowDelta    = -30
	capDelta            = 15
)

// Palette is the three-tone body palette plus the wheel color, all "#rrggbb".
type Palette struct {
	Body      string `json:"body"`
	Shadow    string `json:"shadow"`
	Highlight string `json:"highlight"`
	Wheel     string `json:"wheel"`
}

// NewPalette derives shadow and highlight tones from one body color.
func NewPalette(body, wheel string) Palette {
	return Palette{
		Body:      body,
		Shadow:    domain.AdjustColor(body, ShadowDelta),
		Highlight: domain.AdjustColor(body, HighlightDelta),
		Wheel:     wheel,
	}
}

func (p Palette) body() Paint   { return Solid(p.Body) }
func (p Palette) shadow() Paint { return Solid(p.Shadow) }

// Gradients returns the paint servers referenced by the shape builders.
func (p Palette) Gradients() []Gradient {
	return []Gradient{
		{ID: "bodyGradient", X2: 0, Y2: 100, Stops: []Stop{
			{0, p.Highlight}, {30, p.Body}, {70, p.Body}, {100, p.Shadow},
		}},
		{ID: "metallicSheen", X2: 100, Y2: 100, Stops: []Stop{
			{0, "rgba(255,255,255,0.4)"}, {50, "rgba(255,255,255,0)"}, {100, "rgba(255,255,255,0.2)"},
		}},
		{ID: "windowGradient", Y2: 100, Stops: []Stop{
			{0, "#1a2a3a"}, {100, "#0a1520"},
		}},
		{ID: "chromeGradient", Y2: 100, Stops: []Stop{
			{0, "#f5f5f5"}, {50, "#c0c0c0"}, {100, "#808080"},
		}},
		{ID: "wheelGradient", Radial: true, Stops: []Stop{
			{0, domain.AdjustColor(p.Wheel, wheelHighlightDelta)},
			{60, p.Wheel},
			{100, domain.AdjustColor(p.Wheel, wheelShadowDelta)},
		}},
		{ID: "groundShadow", Radial: true, Stops: []Stop{
			{0, "rgba(0,0,0,0.7)"}, {100, "rgba(0,0,0,0)"},
		}},
		{ID: "carbonFiber", X2: 100, Y2: 100, Stops: []Stop{
			{0, "#2a2a2a"}, {50, "#1a1a1a"}, {100, "#2a2a2a"},
		}},
	}
}

package render

import (
	"math"

	"github.com/luxura/luxura/internal/domain"
)

// spokeInset is the radius at which every spoke starts.
const spokeInset = 12

// Spoke is one radial spoke and the angle, in degrees, it points at.
type Spoke struct {
	Angle float64 `json:"angle"`
	Line  Shape   `json:"line"`
}

// Wheel is a wheel assembly drawn around its own origin. CX and CY place
// that origin in the scene.
type Wheel struct {
	CX         float64 `json:"cx"`
	CY         float64 `json:"cy"`
	Radius     float64 `json:"radius"`
	CenterLock bool    `json:"center_lock"`
	Rings      []Shape `json:"rings"`
	Spokes     []Spoke `json:"spokes"`
	Cap        []Shape `json:"cap"`
}

// BuildWheel draws concentric tire, rim and hub rings, spokeCount spokes at
// 360/spokeCount degree increments starting at 0°, and a center cap. With
// centerLock the cap carries a hexagonal lock nut; otherwise a plain dot.
func BuildWheel(cx, cy float64, wheelColor string, radius float64, spokeCount int, centerLock bool) Wheel {
	w := Wheel{CX: cx, CY: cy, Radius: radius, CenterLock: centerLock}

	w.Rings = []Shape{
		Circle(0, 0, radius, Solid("#1a1a1a")),
		Circle(0, 0, radius-3, Solid("#0a0a0a")).Stroked(Solid("#2a2a2a"), 1),
		Circle(0, 0, radius-8, PaintWheel),
		Circle(0, 0, radius-14, Solid("#1f1f1f")),
	}

	for i := 0; i < spokeCount; i++ {
		angle := 360 / float64(spokeCount) * float64(i)
		rad := angle * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		line := Line(cos*spokeInset, sin*spokeInset, cos*(radius-14), sin*(radius-14), Solid(wheelColor), 6)
		line.RoundCap = true
		w.Spokes = append(w.Spokes, Spoke{Angle: angle, Line: line})
	}

	capColor := Solid(domain.AdjustColor(wheelColor, capDelta))
	if centerLock {
		w.Cap = []Shape{
			Circle(0, 0, 10, capColor),
			Polygon(Solid(wheelColor),
				Point{0, -7}, Point{6, -3.5}, Point{6, 3.5},
				Point{0, 7}, Point{-6, 3.5}, Point{-6, -3.5},
			).Stroked(Solid("#1a1a1a"), 1),
		}
	} else {
		w.Cap = []Shape{
			Circle(0, 0, 8, capColor),
			Circle(0, 0, 4, Solid("#1a1a1a")),
		}
	}
	return w
}

// SpokeAngles returns the spoke directions in drawing order.
func (w Wheel) SpokeAngles() []float64 {
	angles := make([]float64, len(w.Spokes))
	for i, s := range w.Spokes {
		angles[i] = s.Angle
	}
	return angles
}

// Layer flattens the assembly into a wheel layer translated to its center.
func (w Wheel) Layer(name string) Layer {
	shapes := make([]Shape, 0, len(w.Rings)+len(w.Spokes)+len(w.Cap))
	shapes = append(shapes, w.Rings...)
	for _, s := range w.Spokes {
		shapes = append(shapes, s.Line)
	}
	shapes = append(shapes, w.Cap...)
	return Layer{Role: RoleWheel, Name: name, Offset: &Point{w.CX, w.CY}, Shapes: shapes}
}

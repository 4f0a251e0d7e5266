// Package render derives a schematic vector illustration of a vehicle from
// the current selection. Everything here is a pure function of its inputs.
package render

import (
	"fmt"
	"strconv"
)

// Role classifies a layer so consumers can treat every model alike.
type Role string

const (
	RoleGround    Role = "ground"
	RoleBody      Role = "body"
	RoleCabin     Role = "cabin"
	RoleGlass     Role = "glass"
	RoleHeadlight Role = "headlight"
	RoleTaillight Role = "taillight"
	RoleAero      Role = "aero"
	RoleTrim      Role = "trim"
	RoleWheel     Role = "wheel"
)

// RequiredRoles lists the categories every rendered scene contains.
var RequiredRoles = []Role{
	RoleGround, RoleBody, RoleCabin, RoleGlass,
	RoleHeadlight, RoleTaillight, RoleWheel,
}

// ShapeKind names the primitive a Shape describes.
type ShapeKind string

const (
	KindPath    ShapeKind = "path"
	KindRect    ShapeKind = "rect"
	KindCircle  ShapeKind = "circle"
	KindEllipse ShapeKind = "ellipse"
	KindLine    ShapeKind = "line"
	KindPolygon ShapeKind = "polygon"
)

// Paint is an SVG paint value: a color, "none" or a gradient reference.
type Paint string

const (
	PaintNone   Paint = "none"
	PaintBody   Paint = "url(#bodyGradient)"
	PaintSheen  Paint = "url(#metallicSheen)"
	PaintWindow Paint = "url(#windowGradient)"
	PaintChrome Paint = "url(#chromeGradient)"
	PaintWheel  Paint = "url(#wheelGradient)"
	PaintGround Paint = "url(#groundShadow)"
	PaintCarbon Paint = "url(#carbonFiber)"
)

// Solid wraps a literal color.
func Solid(color string) Paint { return Paint(color) }

// Point is a 2-D coordinate in scene units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shape is one drawable primitive. Only the fields relevant to Kind are set.
// A zero Opacity means fully opaque.
type Shape struct {
	Kind ShapeKind `json:"kind"`

	D      string  `json:"d,omitempty"`
	Points []Point `json:"points,omitempty"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	CX float64 `json:"cx,omitempty"`
	CY float64 `json:"cy,omitempty"`
	R  float64 `json:"r,omitempty"`
	RX float64 `json:"rx,omitempty"`
	RY float64 `json:"ry,omitempty"`

	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	Fill        Paint   `json:"fill,omitempty"`
	Stroke      Paint   `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Opacity     float64 `json:"opacity,omitempty"`
	RoundCap    bool    `json:"round_cap,omitempty"`
}

func Path(d string, fill Paint) Shape {
	return Shape{Kind: KindPath, D: d, Fill: fill}
}

// Rect builds a rectangle; rx rounds its corners.
func Rect(x, y, w, h, rx float64, fill Paint) Shape {
	return Shape{Kind: KindRect, X: x, Y: y, Width: w, Height: h, RX: rx, Fill: fill}
}

func Circle(cx, cy, r float64, fill Paint) Shape {
	return Shape{Kind: KindCircle, CX: cx, CY: cy, R: r, Fill: fill}
}

func Ellipse(cx, cy, rx, ry float64, fill Paint) Shape {
	return Shape{Kind: KindEllipse, CX: cx, CY: cy, RX: rx, RY: ry, Fill: fill}
}

func Line(x1, y1, x2, y2 float64, stroke Paint, width float64) Shape {
	return Shape{Kind: KindLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: stroke, StrokeWidth: width}
}

func Polygon(fill Paint, points ...Point) Shape {
	return Shape{Kind: KindPolygon, Points: points, Fill: fill}
}

// Stroked returns a copy of s outlined with p.
func (s Shape) Stroked(p Paint, width float64) Shape {
	s.Stroke = p
	s.StrokeWidth = width
	return s
}

// Faded returns a copy of s drawn at the given opacity.
func (s Shape) Faded(opacity float64) Shape {
	s.Opacity = opacity
	return s
}

// Layer is a named group of shapes with one role. Offset translates the
// whole group; wheels are drawn around their own origin.
type Layer struct {
	Role   Role    `json:"role"`
	Name   string  `json:"name"`
	Glow   bool    `json:"glow,omitempty"`
	Offset *Point  `json:"offset,omitempty"`
	Shapes []Shape `json:"shapes"`
}

// Stop is one color stop of a gradient; Offset is a percentage.
type Stop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// Gradient is a named paint server. Linear gradients run from (X1,Y1) to
// (X2,Y2) in percent; radial ones are centred with a 50% radius.
type Gradient struct {
	ID     string  `json:"id"`
	Radial bool    `json:"radial,omitempty"`
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Stops  []Stop  `json:"stops"`
}

// Scene is the renderer output. It is recomputed on every render and never
// stored.
type Scene struct {
	ModelID   string     `json:"model_id"`
	Variant   Variant    `json:"variant"`
	ColorID   string     `json:"color_id"`
	WheelID   string     `json:"wheel_id"`
	Rotation  float64    `json:"rotation"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Palette   Palette    `json:"palette"`
	Gradients []Gradient `json:"gradients"`
	GlowBlur  float64    `json:"glow_blur"`
	Layers    []Layer    `json:"layers"`
}

// Perspective is the viewer distance of the rotation transform, in pixels.
const Perspective = 1000

// Transform is the single rotation applied around the vertical axis.
func (s Scene) Transform() string {
	return fmt.Sprintf("perspective(%dpx) rotateY(%sdeg)", Perspective, strconv.FormatFloat(s.Rotation, 'f', -1, 64))
}

// RoleCounts counts layers per role.
func (s Scene) RoleCounts() map[Role]int {
	counts := make(map[Role]int)
	for _, l := range s.Layers {
		counts[l.Role]++
	}
	return counts
}

// LayersWithRole returns the layers of one role in drawing order.
func (s Scene) LayersWithRole(role Role) []Layer {
	var out []Layer
	for _, l := range s.Layers {
		if l.Role == role {
			out = append(out, l)
		}
	}
	return out
}

// ShapeCount returns the total number of primitives in the scene.
func (s Scene) ShapeCount() int {
	n := 0
	for _, l := range s.Layers {
		n += len(l.Shapes)
	}
	return n
}

// Wheels returns the two wheel layers, front first.
func (s Scene) Wheels() []Layer {
	return s.LayersWithRole(RoleWheel)
}

package render

import "github.com/luxura/luxura/internal/domain"

// Canvas size of every scene, in scene units.
const (
	CanvasWidth  = 600
	CanvasHeight = 280
	glowBlur     = 3
)

// Variant tags one of the fixed vehicle silhouettes. Tags equal the catalog
// model ids they draw.
type Variant string

const (
	VariantChiron    Variant = "bugatti-chiron"
	VariantAventador Variant = "lamborghini-aventador"
	VariantSF90      Variant = "ferrari-sf90"
	Variant720S      Variant = "mclaren-720s"
	VariantGT3RS     Variant = "porsche-911-gt3"
	VariantAMGOne    Variant = "mercedes-amg-one"
	VariantValkyrie  Variant = "aston-martin-valkyrie"
	VariantJesko     Variant = "koenigsegg-jesko"
)

// DefaultVariant is drawn for model ids without a builder of their own.
const DefaultVariant = VariantAventador

// ShapeBuilder draws one silhouette from a palette. Builders return body,
// cabin, glass, light, aero, trim and exactly two wheel layers.
type ShapeBuilder func(p Palette) []Layer

var builders = map[Variant]ShapeBuilder{
	VariantChiron:    chironShape,
	VariantAventador: aventadorShape,
	VariantSF90:      sf90Shape,
	Variant720S:      mclaren720SShape,
	VariantGT3RS:     gt3RSShape,
	VariantAMGOne:    amgOneShape,
	VariantValkyrie:  valkyrieShape,
	VariantJesko:     jeskoShape,
}

// Variants lists every variant with a dedicated builder.
func Variants() []Variant {
	return []Variant{
		VariantChiron, VariantAventador, VariantSF90, Variant720S,
		VariantGT3RS, VariantAMGOne, VariantValkyrie, VariantJesko,
	}
}

// Resolve maps a model id to the variant that draws it.
func Resolve(modelID string) Variant {
	if _, ok := builders[Variant(modelID)]; ok {
		return Variant(modelID)
	}
	return DefaultVariant
}

// RenderVehicle builds the scene for a model, color and wheel at the given
// rotation in degrees. Unknown color and wheel ids fall back to the first
// catalog entry and unknown model ids to DefaultVariant, so it never fails.
// Identical arguments always produce identical scenes.
func RenderVehicle(cat *domain.Catalog, modelID, colorID, wheelID string, rotation float64) Scene {
	color := cat.ColorOrDefault(colorID)
	wheel := cat.WheelOrDefault(wheelID)
	palette := NewPalette(color.Hex, wheel.Color)

	variant := Resolve(modelID)
	layers := []Layer{groundShadow()}
	layers = append(layers, builders[variant](palette)...)

	return Scene{
		ModelID:   modelID,
		Variant:   variant,
		ColorID:   color.ID,
		WheelID:   wheel.ID,
		Rotation:  rotation,
		Width:     CanvasWidth,
		Height:    CanvasHeight,
		Palette:   palette,
		Gradients: palette.Gradients(),
		GlowBlur:  glowBlur,
		Layers:    layers,
	}
}

func groundShadow() Layer {
	return layer(RoleGround, "GroundShadow", Ellipse(300, 250, 230, 28, PaintGround))
}

func layer(role Role, name string, shapes ...Shape) Layer {
	return Layer{Role: role, Name: name, Shapes: shapes}
}

func glowing(role Role, name string, shapes ...Shape) Layer {
	return Layer{Role: role, Name: name, Glow: true, Shapes: shapes}
}

// wheelPair places the front and rear wheel on a shared baseline.
func wheelPair(p Palette, frontX, rearX, baseline, radius float64, spokes int, centerLock bool) []Layer {
	return []Layer{
		BuildWheel(frontX, baseline, p.Wheel, radius, spokes, centerLock).Layer("FrontWheel"),
		BuildWheel(rearX, baseline, p.Wheel, radius, spokes, centerLock).Layer("RearWheel"),
	}
}

package render_test

import (
	"math"
	"testing"

	"github.com/luxura/luxura/internal/domain/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWheel_SpokeAngles(t *testing.T) {
	tests := []struct {
		spokes int
		want   []float64
	}{
		{5, []float64{0, 72, 144, 216, 288}},
		{7, nil},
		{10, []float64{0, 36, 72, 108, 144, 180, 216, 252, 288, 324}},
	}
	for _, tt := range tests {
		w := render.BuildWheel(145, 212, "#9ca3af", 46, tt.spokes, false)
		require.Len(t, w.Spokes, tt.spokes)
		if tt.want != nil {
			assert.InDeltaSlice(t, tt.want, w.SpokeAngles(), 1e-9)
		}
	}
}

func TestBuildWheel_SevenSpokesEvenlySpaced(t *testing.T) {
	angles := render.BuildWheel(0, 0, "#9ca3af", 44, 7, false).SpokeAngles()
	for i, a := range angles {
		assert.InDelta(t, 360.0/7*float64(i), a, 1e-9)
	}
}

func TestBuildWheel_SpokeGeometry(t *testing.T) {
	w := render.BuildWheel(0, 0, "#1f2937", 46, 4, false)

	// 90° spoke points straight down in screen coordinates
	s := w.Spokes[1].Line
	assert.InDelta(t, 0, s.X1, 1e-9)
	assert.InDelta(t, 12, s.Y1, 1e-9)
	assert.InDelta(t, 0, s.X2, 1e-9)
	assert.InDelta(t, 32, s.Y2, 1e-9)
	assert.Equal(t, render.Paint("#1f2937"), s.Stroke)
	assert.Equal(t, 6.0, s.StrokeWidth)
	assert.True(t, s.RoundCap)

	length := math.Hypot(w.Spokes[0].Line.X2, w.Spokes[0].Line.Y2)
	assert.InDelta(t, 46-14, length, 1e-9)
}

func TestBuildWheel_Rings(t *testing.T) {
	w := render.BuildWheel(0, 0, "#9ca3af", 46, 5, false)
	require.Len(t, w.Rings, 4)

	radii := []float64{46, 43, 38, 32}
	for i, r := range radii {
		assert.Equal(t, r, w.Rings[i].R)
	}
	assert.Equal(t, render.PaintWheel, w.Rings[2].Fill)
}

func TestBuildWheel_CenterLockCap(t *testing.T) {
	plain := render.BuildWheel(0, 0, "#9ca3af", 46, 5, false)
	locked := render.BuildWheel(0, 0, "#9ca3af", 46, 5, true)

	require.Len(t, plain.Cap, 2)
	assert.Equal(t, render.KindCircle, plain.Cap[1].Kind)
	assert.Equal(t, render.Paint("#abb2be"), plain.Cap[0].Fill)

	require.Len(t, locked.Cap, 2)
	assert.Equal(t, 10.0, locked.Cap[0].R)
	assert.Equal(t, render.KindPolygon, locked.Cap[1].Kind)
	assert.Len(t, locked.Cap[1].Points, 6)
}

func TestWheel_LayerIsOffsetToCenter(t *testing.T) {
	l := render.BuildWheel(145, 212, "#9ca3af", 46, 5, true).Layer("FrontWheel")

	assert.Equal(t, render.RoleWheel, l.Role)
	require.NotNil(t, l.Offset)
	assert.Equal(t, render.Point{X: 145, Y: 212}, *l.Offset)
	assert.Len(t, l.Shapes, 4+5+2)
}

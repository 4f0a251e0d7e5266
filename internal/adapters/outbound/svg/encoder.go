// Package svg encodes a render.Scene as a standalone SVG document.
package svg

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/luxura/luxura/internal/domain/render"
)

const glowFilterID = "glow"

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

// Encode returns the SVG document for scene.
func Encode(scene render.Scene) []byte {
	var b strings.Builder
	writeScene(&b, scene)
	return []byte(b.String())
}

// Write encodes scene to w.
func Write(w io.Writer, scene render.Scene) error {
	_, err := w.Write(Encode(scene))
	return err
}

func writeScene(b *strings.Builder, s render.Scene) {
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" data-model="%s">`,
		num(s.Width), num(s.Height), num(s.Width), num(s.Height), attr(s.ModelID))
	b.WriteString("\n")

	writeDefs(b, s)

	fmt.Fprintf(b, `<g style="transform: %s; transform-origin: 50%% 50%%; transform-box: fill-box">`, s.Transform())
	b.WriteString("\n")
	for _, l := range s.Layers {
		writeLayer(b, l)
	}
	b.WriteString("</g>\n</svg>\n")
}

func writeDefs(b *strings.Builder, s render.Scene) {
	b.WriteString("<defs>\n")
	for _, g := range s.Gradients {
		if g.Radial {
			fmt.Fprintf(b, `<radialGradient id="%s" cx="50%%" cy="50%%" r="50%%">`, attr(g.ID))
		} else {
			fmt.Fprintf(b, `<linearGradient id="%s" x1="%s%%" y1="%s%%" x2="%s%%" y2="%s%%">`,
				attr(g.ID), num(g.X1), num(g.Y1), num(g.X2), num(g.Y2))
		}
		for _, st := range g.Stops {
			fmt.Fprintf(b, `<stop offset="%s%%" stop-color="%s"/>`, num(st.Offset), attr(st.Color))
		}
		if g.Radial {
			b.WriteString("</radialGradient>\n")
		} else {
			b.WriteString("</linearGradient>\n")
		}
	}
	fmt.Fprintf(b, `<filter id="%s"><feGaussianBlur stdDeviation="%s" result="coloredBlur"/>`, glowFilterID, num(s.GlowBlur))
	b.WriteString(`<feMerge><feMergeNode in="coloredBlur"/><feMergeNode in="SourceGraphic"/></feMerge></filter>`)
	b.WriteString("\n</defs>\n")
}

func writeLayer(b *strings.Builder, l render.Layer) {
	fmt.Fprintf(b, `<g data-role="%s" data-name="%s"`, l.Role, attr(l.Name))
	if l.Glow {
		fmt.Fprintf(b, ` filter="url(#%s)"`, glowFilterID)
	}
	if l.Offset != nil {
		fmt.Fprintf(b, ` transform="translate(%s %s)"`, num(l.Offset.X), num(l.Offset.Y))
	}
	b.WriteString(">\n")
	for _, sh := range l.Shapes {
		writeShape(b, sh)
	}
	b.WriteString("</g>\n")
}

func writeShape(b *strings.Builder, sh render.Shape) {
	switch sh.Kind {
	case render.KindPath:
		fmt.Fprintf(b, `<path d="%s"`, attr(sh.D))
	case render.KindRect:
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s"`, num(sh.X), num(sh.Y), num(sh.Width), num(sh.Height))
		if sh.RX != 0 {
			fmt.Fprintf(b, ` rx="%s"`, num(sh.RX))
		}
	case render.KindCircle:
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s"`, num(sh.CX), num(sh.CY), num(sh.R))
	case render.KindEllipse:
		fmt.Fprintf(b, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s"`, num(sh.CX), num(sh.CY), num(sh.RX), num(sh.RY))
	case render.KindLine:
		fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s"`, num(sh.X1), num(sh.Y1), num(sh.X2), num(sh.Y2))
	case render.KindPolygon:
		pts := make([]string, len(sh.Points))
		for i, p := range sh.Points {
			pts[i] = num(p.X) + "," + num(p.Y)
		}
		fmt.Fprintf(b, `<polygon points="%s"`, strings.Join(pts, " "))
	default:
		return
	}

	if sh.Fill != "" {
		fmt.Fprintf(b, ` fill="%s"`, attr(string(sh.Fill)))
	}
	if sh.Stroke != "" {
		fmt.Fprintf(b, ` stroke="%s" stroke-width="%s"`, attr(string(sh.Stroke)), num(sh.StrokeWidth))
	}
	if sh.RoundCap {
		b.WriteString(` stroke-linecap="round"`)
	}
	if sh.Opacity != 0 {
		fmt.Fprintf(b, ` opacity="%s"`, num(sh.Opacity))
	}
	b.WriteString("/>\n")
}

// num prints at most three decimals. Spoke endpoints carry trigonometric
// noise and -0.
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func attr(s string) string {
	return attrEscaper.Replace(s)
}

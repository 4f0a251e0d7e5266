package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"
	"github.com/luxura/luxura/internal/domain"
	"github.com/luxura/luxura/internal/domain/render"
)

// ── Warm showroom palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	gold    = lipgloss.Color("#FBBF24")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	priceStyle    = lipgloss.NewStyle().Foreground(gold)
	totalStyle    = lipgloss.NewStyle().Bold(true).Foreground(gold)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	currentStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

const labelWidth = 44

// RenderSummary draws the build sheet: the chosen model, every price line
// and the total.
func RenderSummary(sel domain.Selection, quote domain.PriceBreakdown, currency string) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render(strings.ToUpper(sel.Model.Series))
	name := titleStyle.Render(sel.Model.Name)
	tagline := dimStyle.Render(sel.Model.Tagline)
	total := totalStyle.Render(domain.FormatPrice(quote.Total, currency))
	b.WriteString(boxStyle.Render(title + "\n" + name + "\n" + tagline + "\n\n" + total))
	b.WriteString("\n\n")

	// ── Lines ──
	b.WriteString("  " + titleStyle.Render("Your Configuration") + "\n\n")
	for _, l := range quote.Lines {
		if l.Kind == domain.LineAccessory {
			continue
		}
		writePriceLine(&b, string(l.Kind), l, currency)
	}

	var accessories []domain.PriceLine
	for _, l := range quote.Lines {
		if l.Kind == domain.LineAccessory {
			accessories = append(accessories, l)
		}
	}
	if len(accessories) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Bespoke Additions") + "\n\n")
		for _, l := range accessories {
			writePriceLine(&b, "", l, currency)
		}
	}

	b.WriteString("\n  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s %s\n\n", padRight(titleStyle.Render("Total"), labelWidth), totalStyle.Render(domain.FormatPrice(quote.Total, currency)))
	return b.String()
}

func writePriceLine(b *strings.Builder, kind string, l domain.PriceLine, currency string) {
	amount := priceStyle.Render(domain.FormatPrice(l.Amount, currency))
	if l.Included && l.Kind != domain.LineBase {
		amount = passStyle.Render("Included")
	}
	label := l.Label
	if kind != "" {
		label = dimStyle.Render(fmt.Sprintf("%-9s", kind)) + " " + l.Label
	}
	fmt.Fprintf(b, "  %s %s\n", padRight(label, labelWidth), amount)
}

// RenderCatalog lists every option with its price.
func RenderCatalog(cat *domain.Catalog, currency string) string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(headerStyle.Render("luxura") + "\n" + dimStyle.Render("Bespoke Vehicle Configurator")))
	b.WriteString("\n\n")

	section(&b, "Models")
	for _, m := range cat.Models {
		fmt.Fprintf(&b, "  %s %s\n", padRight(m.Series+" "+m.Name, labelWidth), priceStyle.Render(domain.FormatPrice(m.BasePrice, currency)))
		specs := []string{m.Specs.Power, m.Specs.Acceleration, m.Specs.TopSpeed}
		if m.Specs.Range != "" {
			specs = append(specs, m.Specs.Range)
		}
		b.WriteString("    " + dimStyle.Render(m.ID+"  ·  "+strings.Join(specs, "  ·  ")) + "\n")
	}

	section(&b, "Exterior")
	for _, g := range cat.ColorsByFinish() {
		b.WriteString("  " + dimStyle.Render(strings.ToUpper(string(g.Finish))) + "\n")
		for _, c := range g.Colors {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex)).Render("■")
			optionRow(&b, swatch+" "+c.Name, c.ID, c.Price, currency)
		}
	}

	section(&b, "Wheels")
	for _, w := range cat.Wheels {
		optionRow(&b, w.Size+" "+w.Name+" "+dimStyle.Render(w.Style), w.ID, w.Price, currency)
	}

	section(&b, "Interior")
	for _, i := range cat.Interiors {
		optionRow(&b, i.Name+" "+dimStyle.Render(i.Material), i.ID, i.Price, currency)
	}

	if len(cat.Accessories) > 0 {
		section(&b, "Bespoke")
		for _, g := range cat.AccessoriesByCategory() {
			b.WriteString("  " + dimStyle.Render(strings.ToUpper(g.Category)) + "\n")
			for _, a := range g.Accessories {
				optionRow(&b, a.Name, a.ID, a.Price, currency)
			}
		}
	}

	b.WriteString("\n")
	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n  " + titleStyle.Render(title) + "\n  " + separatorLine + "\n")
}

func optionRow(b *strings.Builder, label, id string, price int, currency string) {
	amount := passStyle.Render("Included")
	if price > 0 {
		amount = priceStyle.Render("+" + domain.FormatPrice(price, currency))
	}
	fmt.Fprintf(b, "    %s %s  %s\n", padRight(label, labelWidth-2), amount, faintStyle.Render(id))
}

// RenderProgress draws the step indicator on one line.
func RenderProgress(p domain.Progress) string {
	parts := make([]string, 0, len(p.Steps))
	for _, s := range p.Steps {
		switch {
		case s.Current:
			parts = append(parts, currentStyle.Render("● "+s.Label))
		case s.Completed:
			parts = append(parts, passStyle.Render("✓ "+s.Label))
		default:
			parts = append(parts, dimStyle.Render("○ "+s.Label))
		}
	}
	counter := dimStyle.Render(fmt.Sprintf("Step %d of %d", p.Index+1, p.Count))
	return "  " + strings.Join(parts, faintStyle.Render(" ─ ")) + "\n  " + counter + "\n"
}

// RenderInventory lists the layers of a scene with readable names.
func RenderInventory(scene render.Scene) string {
	var b strings.Builder

	title := headerStyle.Render(scene.ModelID)
	if scene.ModelID != string(scene.Variant) {
		title += dimStyle.Render(" (drawn as " + string(scene.Variant) + ")")
	}
	b.WriteString("  " + title + "\n")
	b.WriteString("  " + dimStyle.Render(scene.Transform()) + "\n")
	fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("body %s  ·  shadow %s  ·  highlight %s  ·  wheel %s",
		scene.Palette.Body, scene.Palette.Shadow, scene.Palette.Highlight, scene.Palette.Wheel)))
	b.WriteString("  " + separatorLine + "\n")

	for _, l := range scene.Layers {
		glow := ""
		if l.Glow {
			glow = priceStyle.Render(" ✦")
		}
		fmt.Fprintf(&b, "  %s %s %s%s\n",
			dimStyle.Render(fmt.Sprintf("%-10s", l.Role)),
			padRight(LayerLabel(l.Name), 32),
			dimStyle.Render(fmt.Sprintf("%2d shapes", len(l.Shapes))),
			glow,
		)
	}

	b.WriteString("  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("%d layers  ·  %d shapes", len(scene.Layers), scene.ShapeCount())))
	return b.String()
}

// LayerLabel turns a CamelCase layer name into words: "YHeadlights" reads
// "Y Headlights", "NACADucts" reads "NACA Ducts".
func LayerLabel(name string) string {
	return strings.Join(camelcase.Split(name), " ")
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

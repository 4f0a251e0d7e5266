package domain

import (
	"strconv"
	"strings"
)

// LineKind classifies a price line.
type LineKind string

const (
	LineBase      LineKind = "base"
	LineExterior  LineKind = "exterior"
	LineWheels    LineKind = "wheels"
	LineInterior  LineKind = "interior"
	LineAccessory LineKind = "accessory"
)

// PriceLine is one row of a quote.
type PriceLine struct {
	Kind     LineKind `json:"kind"`
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Amount   int      `json:"amount"`
	Included bool     `json:"included"`
}

// PriceBreakdown is an itemised quote. Total always equals TotalPrice for the
// same catalog and selection.
type PriceBreakdown struct {
	Lines          []PriceLine `json:"lines"`
	AccessoryTotal int         `json:"accessory_total"`
	Total          int         `json:"total"`
}

// TotalPrice sums the model base price, the color, wheel and interior
// prices, and the price of every selected accessory found in the catalog.
// Unknown accessory ids contribute nothing; repeated ids count once.
func TotalPrice(cat *Catalog, sel Selection) int {
	total := sel.Model.BasePrice + sel.Color.Price + sel.Wheel.Price + sel.Interior.Price
	seen := make(AccessorySet, len(sel.Accessories))
	for _, id := range sel.Accessories {
		if seen.Has(id) {
			continue
		}
		seen[id] = struct{}{}
		if a, ok := cat.Accessory(id); ok {
			total += a.Price
		}
	}
	return total
}

// Quote itemises the price of a selection. Accessory lines follow catalog
// order; unknown accessory ids are left out.
func Quote(cat *Catalog, sel Selection) PriceBreakdown {
	var q PriceBreakdown
	q.Lines = []PriceLine{
		{Kind: LineBase, ID: sel.Model.ID, Label: sel.Model.Series + " " + sel.Model.Name, Amount: sel.Model.BasePrice},
		optionLine(LineExterior, sel.Color.ID, sel.Color.Name, sel.Color.Price),
		optionLine(LineWheels, sel.Wheel.ID, sel.Wheel.Size+" "+sel.Wheel.Name, sel.Wheel.Price),
		optionLine(LineInterior, sel.Interior.ID, sel.Interior.Name, sel.Interior.Price),
	}

	selected := make(AccessorySet, len(sel.Accessories))
	for _, id := range sel.Accessories {
		selected[id] = struct{}{}
	}
	for _, a := range cat.Accessories {
		if !selected.Has(a.ID) {
			continue
		}
		q.Lines = append(q.Lines, optionLine(LineAccessory, a.ID, a.Name, a.Price))
		q.AccessoryTotal += a.Price
	}

	for _, l := range q.Lines {
		q.Total += l.Amount
	}
	return q
}

func optionLine(kind LineKind, id, label string, amount int) PriceLine {
	return PriceLine{Kind: kind, ID: id, Label: label, Amount: amount, Included: amount == 0}
}

// FormatPrice renders amount with comma thousands separators behind the
// currency symbol, e.g. "$591,966".
func FormatPrice(amount int, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.Itoa(amount)

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(currency)
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownOption is returned at input boundaries when a user-supplied id
// does not exist in the catalog. The core itself never returns it.
var ErrUnknownOption = errors.New("unknown option")

// Finish is the paint finish of an exterior color.
type Finish string

const (
	FinishSolid    Finish = "solid"
	FinishMetallic Finish = "metallic"
	FinishSpecial  Finish = "special"
)

// ValidFinishes enumerates all recognized paint finishes in display order.
var ValidFinishes = []Finish{FinishSolid, FinishMetallic, FinishSpecial}

// Specs is the performance block shown on a model card.
type Specs struct {
	Power        string `yaml:"power"        json:"power"`
	Acceleration string `yaml:"acceleration" json:"acceleration"`
	TopSpeed     string `yaml:"top_speed"    json:"top_speed"`
	Range        string `yaml:"range,omitempty" json:"range,omitempty"`
}

// Model is a vehicle model. BasePrice is in whole currency units.
type Model struct {
	ID          string `yaml:"id"          json:"id"`
	Name        string `yaml:"name"        json:"name"`
	Series      string `yaml:"series"      json:"series"`
	BasePrice   int    `yaml:"base_price"  json:"base_price"`
	Description string `yaml:"description" json:"description"`
	Tagline     string `yaml:"tagline"     json:"tagline"`
	Specs       Specs  `yaml:"specs"       json:"specs"`
}

// ColorOption is an exterior paint.
type ColorOption struct {
	ID     string `yaml:"id"     json:"id"`
	Name   string `yaml:"name"   json:"name"`
	Hex    string `yaml:"hex"    json:"hex"`
	Finish Finish `yaml:"finish" json:"finish"`
	Price  int    `yaml:"price"  json:"price"`
}

// WheelOption is a wheel design. Color is the base rim color.
type WheelOption struct {
	ID    string `yaml:"id"    json:"id"`
	Name  string `yaml:"name"  json:"name"`
	Size  string `yaml:"size"  json:"size"`
	Style string `yaml:"style" json:"style"`
	Price int    `yaml:"price" json:"price"`
	Color string `yaml:"color" json:"color"`
}

// InteriorOption is an interior trim with a primary and an accent color.
type InteriorOption struct {
	ID       string `yaml:"id"       json:"id"`
	Name     string `yaml:"name"     json:"name"`
	Material string `yaml:"material" json:"material"`
	Color    string `yaml:"color"    json:"color"`
	Accent   string `yaml:"accent"   json:"accent"`
	Price    int    `yaml:"price"    json:"price"`
}

// AccessoryOption is an add-on that can be toggled on or off.
type AccessoryOption struct {
	ID          string `yaml:"id"          json:"id"`
	Name        string `yaml:"name"        json:"name"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category"    json:"category"`
	Price       int    `yaml:"price"       json:"price"`
}

// Catalog is the immutable set of selectable options plus the ordered step
// sequence of the configurator. Order matters: the first entry of each list
// is the default selection.
type Catalog struct {
	Models      []Model           `yaml:"models"      json:"models"`
	Colors      []ColorOption     `yaml:"colors"      json:"colors"`
	Wheels      []WheelOption     `yaml:"wheels"      json:"wheels"`
	Interiors   []InteriorOption  `yaml:"interiors"   json:"interiors"`
	Accessories []AccessoryOption `yaml:"accessories" json:"accessories"`
	Steps       []Step            `yaml:"steps"       json:"steps"`
}

// Model returns the model with the given id.
func (c *Catalog) Model(id string) (Model, bool) {
	for _, m := range c.Models {
		if m.ID == id {
			return m, true
		}
	}
	return Model{}, false
}

// Color returns the color with the given id.
func (c *Catalog) Color(id string) (ColorOption, bool) {
	for _, o := range c.Colors {
		if o.ID == id {
			return o, true
		}
	}
	return ColorOption{}, false
}

// Wheel returns the wheel with the given id.
func (c *Catalog) Wheel(id string) (WheelOption, bool) {
	for _, o := range c.Wheels {
		if o.ID == id {
			return o, true
		}
	}
	return WheelOption{}, false
}

// Interior returns the interior with the given id.
func (c *Catalog) Interior(id string) (InteriorOption, bool) {
	for _, o := range c.Interiors {
		if o.ID == id {
			return o, true
		}
	}
	return InteriorOption{}, false
}

// Accessory returns the accessory with the given id.
func (c *Catalog) Accessory(id string) (AccessoryOption, bool) {
	for _, o := range c.Accessories {
		if o.ID == id {
			return o, true
		}
	}
	return AccessoryOption{}, false
}

// ColorOrDefault resolves id, falling back to the first color.
func (c *Catalog) ColorOrDefault(id string) ColorOption {
	if o, ok := c.Color(id); ok {
		return o
	}
	return c.Colors[0]
}

// WheelOrDefault resolves id, falling back to the first wheel.
func (c *Catalog) WheelOrDefault(id string) WheelOption {
	if o, ok := c.Wheel(id); ok {
		return o
	}
	return c.Wheels[0]
}

// ColorsByFinish groups colors by finish, keeping catalog order inside each
// group. Finishes without colors are omitted.
func (c *Catalog) ColorsByFinish() []ColorGroup {
	var groups []ColorGroup
	for _, f := range ValidFinishes {
		g := ColorGroup{Finish: f}
		for _, o := range c.Colors {
			if o.Finish == f {
				g.Colors = append(g.Colors, o)
			}
		}
		if len(g.Colors) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// ColorGroup is one finish section of the exterior screen.
type ColorGroup struct {
	Finish Finish        `json:"finish"`
	Colors []ColorOption `json:"colors"`
}

// AccessoryGroup is one category section of the accessories screen.
type AccessoryGroup struct {
	Category    string            `json:"category"`
	Accessories []AccessoryOption `json:"accessories"`
}

// AccessoriesByCategory groups accessories by category. Categories appear in
// the order of their first accessory.
func (c *Catalog) AccessoriesByCategory() []AccessoryGroup {
	var groups []AccessoryGroup
	index := make(map[string]int)
	for _, a := range c.Accessories {
		i, ok := index[a.Category]
		if !ok {
			i = len(groups)
			index[a.Category] = i
			groups = append(groups, AccessoryGroup{Category: a.Category})
		}
		groups[i].Accessories = append(groups[i].Accessories, a)
	}
	return groups
}

// Validate checks the catalog for structural problems and returns a
// descriptive error for the first one found.
func (c *Catalog) Validate() error {
	// 1. every list must have a default entry
	switch {
	case len(c.Models) == 0:
		return fmt.Errorf("catalog has no models")
	case len(c.Colors) == 0:
		return fmt.Errorf("catalog has no colors")
	case len(c.Wheels) == 0:
		return fmt.Errorf("catalog has no wheels")
	case len(c.Interiors) == 0:
		return fmt.Errorf("catalog has no interiors")
	case len(c.Steps) == 0:
		return fmt.Errorf("catalog has no steps")
	}

	// 2. ids unique per list, prices non-negative
	seen := newIDSet("models")
	for _, m := range c.Models {
		if err := seen.add(m.ID); err != nil {
			return err
		}
		if m.BasePrice < 0 {
			return fmt.Errorf("model %q has negative base_price %d", m.ID, m.BasePrice)
		}
	}

	seen = newIDSet("colors")
	for _, o := range c.Colors {
		if err := seen.add(o.ID); err != nil {
			return err
		}
		if err := checkPrice("color", o.ID, o.Price); err != nil {
			return err
		}
		if _, err := ParseHex(o.Hex); err != nil {
			return fmt.Errorf("color %q: %w", o.ID, err)
		}
		if !isValidFinish(o.Finish) {
			return fmt.Errorf("color %q has unknown finish %q (valid: solid, metallic, special)", o.ID, o.Finish)
		}
	}

	seen = newIDSet("wheels")
	for _, o := range c.Wheels {
		if err := seen.add(o.ID); err != nil {
			return err
		}
		if err := checkPrice("wheel", o.ID, o.Price); err != nil {
			return err
		}
		if _, err := ParseHex(o.Color); err != nil {
			return fmt.Errorf("wheel %q: %w", o.ID, err)
		}
	}

	seen = newIDSet("interiors")
	for _, o := range c.Interiors {
		if err := seen.add(o.ID); err != nil {
			return err
		}
		if err := checkPrice("interior", o.ID, o.Price); err != nil {
			return err
		}
		if _, err := ParseHex(o.Color); err != nil {
			return fmt.Errorf("interior %q: %w", o.ID, err)
		}
		if _, err := ParseHex(o.Accent); err != nil {
			return fmt.Errorf("interior %q accent: %w", o.ID, err)
		}
	}

	seen = newIDSet("accessories")
	for _, o := range c.Accessories {
		if err := seen.add(o.ID); err != nil {
			return err
		}
		if err := checkPrice("accessory", o.ID, o.Price); err != nil {
			return err
		}
	}

	// 3. step ids unique
	seen = newIDSet("steps")
	for _, s := range c.Steps {
		if err := seen.add(string(s.ID)); err != nil {
			return err
		}
	}

	return nil
}

type idSet struct {
	list string
	ids  map[string]bool
}

func newIDSet(list string) *idSet {
	return &idSet{list: list, ids: make(map[string]bool)}
}

func (s *idSet) add(id string) error {
	if id == "" {
		return fmt.Errorf("%s: entry with empty id", s.list)
	}
	if s.ids[id] {
		return fmt.Errorf("%s: duplicate id %q", s.list, id)
	}
	s.ids[id] = true
	return nil
}

func checkPrice(kind, id string, price int) error {
	if price < 0 {
		return fmt.Errorf("%s %q has negative price %d", kind, id, price)
	}
	return nil
}

func isValidFinish(f Finish) bool {
	for _, v := range ValidFinishes {
		if f == v {
			return true
		}
	}
	return false
}

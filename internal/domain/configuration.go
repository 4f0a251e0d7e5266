package domain

import "sort"

// StepID identifies one screen of the configurator.
type StepID string

const (
	StepModel       StepID = "model"
	StepExterior    StepID = "exterior"
	StepWheels      StepID = "wheels"
	StepInterior    StepID = "interior"
	StepAccessories StepID = "accessories"
	StepSummary     StepID = "summary"
)

// Step describes one entry of the step indicator.
type Step struct {
	ID          StepID `yaml:"id"          json:"id"`
	Label       string `yaml:"label"       json:"label"`
	Description string `yaml:"description" json:"description"`
}

// AccessorySet is a set of accessory ids. Membership is the only meaning;
// insertion order is not kept.
type AccessorySet map[string]struct{}

// Has reports whether id is in the set.
func (s AccessorySet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle removes id if present, otherwise adds it.
func (s AccessorySet) Toggle(id string) {
	if s.Has(id) {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// IDs returns the members sorted, so equal sets produce equal slices.
func (s AccessorySet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Selection is an immutable snapshot of one configuration.
type Selection struct {
	Model       Model          `json:"model"`
	Color       ColorOption    `json:"color"`
	Wheel       WheelOption    `json:"wheel"`
	Interior    InteriorOption `json:"interior"`
	Accessories []string       `json:"accessories"`
}

// StepState is one step as the progress indicator draws it.
type StepState struct {
	Step
	Index     int  `json:"index"`
	Current   bool `json:"current"`
	Completed bool `json:"completed"`
}

// Progress reports where the pointer sits in the step sequence.
type Progress struct {
	Index int         `json:"index"`
	Count int         `json:"count"`
	Steps []StepState `json:"steps"`
}

// Configuration is the mutable selection state of one session. It is not
// safe for concurrent use; callers that share it must serialise access.
type Configuration struct {
	steps       []Step
	current     int
	model       Model
	color       ColorOption
	wheel       WheelOption
	interior    InteriorOption
	accessories AccessorySet
}

// NewConfiguration starts a session on the catalog's first step with every
// selection set to the first catalog entry and no accessories. The catalog
// must have passed Validate.
func NewConfiguration(cat *Catalog) *Configuration {
	steps := make([]Step, len(cat.Steps))
	copy(steps, cat.Steps)
	return &Configuration{
		steps:       steps,
		model:       cat.Models[0],
		color:       cat.Colors[0],
		wheel:       cat.Wheels[0],
		interior:    cat.Interiors[0],
		accessories: make(AccessorySet),
	}
}

// Step returns the current step.
func (c *Configuration) Step() Step { return c.steps[c.current] }

// StepIndex returns the zero-based position of the current step.
func (c *Configuration) StepIndex() int { return c.current }

// Steps returns the step sequence.
func (c *Configuration) Steps() []Step {
	out := make([]Step, len(c.steps))
	copy(out, c.steps)
	return out
}

func (c *Configuration) IsFirst() bool { return c.current == 0 }
func (c *Configuration) IsLast() bool  { return c.current == len(c.steps)-1 }

// Advance moves to the next step. At the last step it does nothing and
// returns false.
func (c *Configuration) Advance() bool {
	if c.IsLast() {
		return false
	}
	c.current++
	return true
}

// Retreat moves to the previous step. At the first step it does nothing and
// returns false.
func (c *Configuration) Retreat() bool {
	if c.IsFirst() {
		return false
	}
	c.current--
	return true
}

// JumpTo moves directly to the step with the given id regardless of the
// current position; earlier steps need not be visited. Unknown ids leave
// the state unchanged and return false.
func (c *Configuration) JumpTo(id StepID) bool {
	for i, s := range c.steps {
		if s.ID == id {
			c.current = i
			return true
		}
	}
	return false
}

func (c *Configuration) SelectModel(m Model)             { c.model = m }
func (c *Configuration) SelectColor(o ColorOption)       { c.color = o }
func (c *Configuration) SelectWheel(o WheelOption)       { c.wheel = o }
func (c *Configuration) SelectInterior(o InteriorOption) { c.interior = o }

// ToggleAccessory flips membership of id. Ids missing from the catalog are
// accepted; they never contribute to price.
func (c *Configuration) ToggleAccessory(id string) {
	c.accessories.Toggle(id)
}

// HasAccessory reports whether id is currently selected.
func (c *Configuration) HasAccessory(id string) bool {
	return c.accessories.Has(id)
}

// Selection returns a snapshot of the current choices.
func (c *Configuration) Selection() Selection {
	return Selection{
		Model:       c.model,
		Color:       c.color,
		Wheel:       c.wheel,
		Interior:    c.interior,
		Accessories: c.accessories.IDs(),
	}
}

// Progress returns the step indicator state. Steps before the current one
// count as completed, matching a wizard that does not gate jumps.
func (c *Configuration) Progress() Progress {
	p := Progress{Index: c.current, Count: len(c.steps)}
	for i, s := range c.steps {
		p.Steps = append(p.Steps, StepState{
			Step:      s,
			Index:     i,
			Current:   i == c.current,
			Completed: i < c.current,
		})
	}
	return p
}

package experiment

import "sync"

// Button is a snapshot of one control for display
type Button struct {
	Label  string
	Active bool
	Toggle bool // member of an exclusive group
}

type control struct {
	label   string
	group   int // -1 for momentary buttons
	index   int // position within the group
	active  bool
	onClick func(index int)
}

// Controls is the experiment's button bar. Experiments add buttons during
// Setup; the host reads snapshots and forwards clicks
type Controls struct {
	mu       sync.Mutex
	controls []*control
	groups   int
}

// NewControls creates an empty bar
func NewControls() *Controls {
	return &Controls{}
}

// AddButton appends a momentary button
func (c *Controls) AddButton(label string, onClick func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cb := func(int) {
		if onClick != nil {
			onClick()
		}
	}
	c.controls = append(c.controls, &control{label: label, group: -1, onClick: cb})
}

// AddGroup appends mutually exclusive toggle buttons. Clicking one makes it
// the only active member and calls onSelect with its index in labels
func (c *Controls) AddGroup(labels []string, onSelect func(index int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g := c.groups
	c.groups++
	for i, l := range labels {
		c.controls = append(c.controls, &control{
			label:   l,
			group:   g,
			index:   i,
			onClick: onSelect,
		})
	}
}

// Click activates the i-th button and runs its callback outside the lock
// Returns false for an out-of-range index
func (c *Controls) Click(i int) bool {
	c.mu.Lock()
	if i < 0 || i >= len(c.controls) {
		c.mu.Unlock()
		return false
	}
	target := c.controls[i]
	if target.group >= 0 {
		for _, ctl := range c.controls {
			if ctl.group == target.group {
				ctl.active = ctl == target
			}
		}
	}
	cb, idx := target.onClick, target.index
	c.mu.Unlock()

	if cb != nil {
		cb(idx)
	}
	return true
}

// Buttons returns a snapshot in display order
func (c *Controls) Buttons() []Button {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Button, len(c.controls))
	for i, ctl := range c.controls {
		out[i] = Button{Label: ctl.label, Active: ctl.active, Toggle: ctl.group >= 0}
	}
	return out
}

// Len returns the number of buttons
func (c *Controls) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.controls)
}

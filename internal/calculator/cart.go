package calculator

import (
	"github.com/google/uuid"

	"precinct/internal/penalcode"
)

// AddMode decides what "add the same charge twice" means. The two modes
// come from the two historical front-ends: one merged into a single line
// per charge, the other kept independent lines so the same offense can be
// recorded per context.
type AddMode int

const (
	// AddModeDuplicate: every Add appends a fresh line. Default.
	AddModeDuplicate AddMode = iota
	// AddModeMerge: Add increments the existing line for the same charge.
	AddModeMerge
)

// Line is one entry in the officer's working selection.
type Line struct {
	LineID   string         `json:"line_id"`
	Item     penalcode.Item `json:"item"`
	Quantity int            `json:"quantity"`
}

// Cart holds the selected charges. Not safe for concurrent use; each
// request builds its own.
type Cart struct {
	mode  AddMode
	lines []Line
}

func NewCart(mode AddMode) *Cart {
	return &Cart{mode: mode}
}

func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a copy so aggregation inputs stay immutable.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Add records one occurrence of a charge and returns the affected line.
func (c *Cart) Add(item penalcode.Item) Line {
	if c.mode == AddModeMerge {
		for i := range c.lines {
			if c.lines[i].Item.ID == item.ID {
				c.lines[i].Quantity++
				return c.lines[i]
			}
		}
	}

	line := Line{
		LineID:   uuid.New().String(),
		Item:     item,
		Quantity: 1,
	}
	c.lines = append(c.lines, line)
	return line
}

// AddLine appends a line with an explicit quantity (template apply,
// history restore). Quantity below 1 is ignored.
func (c *Cart) AddLine(item penalcode.Item, quantity int) {
	if quantity < 1 {
		return
	}

	if c.mode == AddModeMerge {
		for i := range c.lines {
			if c.lines[i].Item.ID == item.ID {
				c.lines[i].Quantity += quantity
				return
			}
		}
	}

	c.lines = append(c.lines, Line{
		LineID:   uuid.New().String(),
		Item:     item,
		Quantity: quantity,
	})
}

// UpdateQuantity adjusts how many times a charge appears. Increments
// mirror "add again"; decrements always eat into the most-recently-added
// matching line first, so repeated clicks undo in reverse order.
func (c *Cart) UpdateQuantity(itemID int, delta int) {
	switch {
	case delta > 0:
		last := c.lastIndex(itemID)
		if last < 0 {
			return
		}
		if c.mode == AddModeMerge {
			c.lines[last].Quantity += delta
			return
		}
		for i := 0; i < delta; i++ {
			clone := c.lines[last]
			clone.LineID = uuid.New().String()
			clone.Quantity = 1
			c.lines = append(c.lines, clone)
		}

	case delta < 0:
		for n := -delta; n > 0; n-- {
			last := c.lastIndex(itemID)
			if last < 0 {
				return
			}
			c.lines[last].Quantity--
			if c.lines[last].Quantity <= 0 {
				c.lines = append(c.lines[:last], c.lines[last+1:]...)
			}
		}
	}
}

// Remove deletes exactly one line by its line id.
func (c *Cart) Remove(lineID string) bool {
	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) lastIndex(itemID int) int {
	for i := len(c.lines) - 1; i >= 0; i-- {
		if c.lines[i].Item.ID == itemID {
			return i
		}
	}
	return -1
}

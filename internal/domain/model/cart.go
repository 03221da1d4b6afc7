package model

import (
	"github.com/shopspring/decimal"
)

// CartLine is one row of the cart: a product and how many of it.
//
// @Description Cart line
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity" example:"2"`
}

// Total returns quantity * unit price.
func (l CartLine) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ChangeKind describes what a cart mutation did to the ordered lines.
type ChangeKind int

const (
	// ChangeNone means the cart was left untouched.
	ChangeNone ChangeKind = iota
	// ChangeInserted means a line was appended at Row.
	ChangeInserted
	// ChangeUpdated means the quantity of the line at Row changed.
	ChangeUpdated
	// ChangeDeleted means the line previously at Row was removed.
	ChangeDeleted
	// ChangeCleared means every line was removed.
	ChangeCleared
)

// String returns the string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeNone:
		return "none"
	case ChangeInserted:
		return "inserted"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	case ChangeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Change is the effect of a single cart mutation.
type Change struct {
	Kind ChangeKind
	Row  int
}

var noChange = Change{Kind: ChangeNone, Row: -1}

// Cart aggregates products into lines, at most one per product name, in insertion order.
// Lines never carry a quantity below 1; the subtotal is derived on every read.
// Cart is not safe for concurrent use; the owning register serialises access.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// indexOf returns the row of the line for name, or -1.
func (c *Cart) indexOf(name string) int {
	for i := range c.lines {
		if c.lines[i].Product.Name == name {
			return i
		}
	}
	return -1
}

// AddProduct increments the line for p.Name or appends a new line with quantity 1.
func (c *Cart) AddProduct(p Product) Change {
	if i := c.indexOf(p.Name); i >= 0 {
		c.lines[i].Quantity++
		return Change{Kind: ChangeUpdated, Row: i}
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
	return Change{Kind: ChangeInserted, Row: len(c.lines) - 1}
}

// RemoveProduct deletes the line matching p.Name. Absent lines are a no-op.
func (c *Cart) RemoveProduct(p Product) Change {
	return c.RemoveByName(p.Name)
}

// RemoveByName deletes the line for name. Absent lines are a no-op.
func (c *Cart) RemoveByName(name string) Change {
	i := c.indexOf(name)
	if i < 0 {
		return noChange
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return Change{Kind: ChangeDeleted, Row: i}
}

// SetLineQuantity sets the quantity of the line for name.
// A quantity of zero or less removes the line.
func (c *Cart) SetLineQuantity(name string, quantity int) Change {
	if quantity <= 0 {
		return c.RemoveByName(name)
	}
	i := c.indexOf(name)
	if i < 0 {
		return noChange
	}
	if c.lines[i].Quantity == quantity {
		return noChange
	}
	c.lines[i].Quantity = quantity
	return Change{Kind: ChangeUpdated, Row: i}
}

// IncrementQuantity adds one to an existing line. Absent lines are a no-op.
func (c *Cart) IncrementQuantity(name string) Change {
	i := c.indexOf(name)
	if i < 0 {
		return noChange
	}
	c.lines[i].Quantity++
	return Change{Kind: ChangeUpdated, Row: i}
}

// DecrementQuantity removes one unit from the line for name, dropping the line at zero.
func (c *Cart) DecrementQuantity(name string) Change {
	i := c.indexOf(name)
	if i < 0 {
		return noChange
	}
	return c.SetLineQuantity(name, c.lines[i].Quantity-1)
}

// Clear removes all lines.
func (c *Cart) Clear() Change {
	if len(c.lines) == 0 {
		return noChange
	}
	c.lines = nil
	return Change{Kind: ChangeCleared, Row: -1}
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the line at row.
func (c *Cart) Line(row int) (CartLine, bool) {
	if row < 0 || row >= len(c.lines) {
		return CartLine{}, false
	}
	return c.lines[row], true
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal returns the exact sum of every line total.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

package cartview

import (
	"errors"

	"github.com/guttosm/pos-service/internal/domain/model"
)

var (
	// ErrRowOutOfRange is returned when a row index does not address a cart line.
	ErrRowOutOfRange = errors.New("row out of range")
	// ErrUnknownColumn is returned for column indexes outside the table.
	ErrUnknownColumn = errors.New("unknown column")
)

// Observer is notified after each effective table change.
type Observer interface {
	RowInserted(row int)
	RowUpdated(row int)
	RowDeleted(row int)
	TableChanged()
}

// Table is a read/write adapter over a cart. It never caches rows: every read
// re-queries the cart, and every write goes through the cart's own mutators.
type Table struct {
	cart      *model.Cart
	observers []Observer
}

// NewTable wraps cart.
func NewTable(cart *model.Cart, observers ...Observer) *Table {
	return &Table{cart: cart, observers: observers}
}

// AddObserver registers o for change notifications.
func (t *Table) AddObserver(o Observer) {
	t.observers = append(t.observers, o)
}

// RowCount returns the number of cart lines.
func (t *Table) RowCount() int {
	return t.cart.Len()
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return ColumnCount
}

// ValueAt returns the cell at row and column.
func (t *Table) ValueAt(row int, column Column) (CellValue, error) {
	if !column.Valid() {
		return CellValue{}, ErrUnknownColumn
	}
	line, ok := t.cart.Line(row)
	if !ok {
		return CellValue{}, ErrRowOutOfRange
	}
	return Cell(line, column), nil
}

// IsCellEditable reports whether the cell at row and column accepts edits.
func (t *Table) IsCellEditable(row int, column Column) bool {
	return row >= 0 && row < t.cart.Len() && column.Editable()
}

// Rows returns every row as a slice of cells in column order.
func (t *Table) Rows() [][]CellValue {
	lines := t.cart.Lines()
	rows := make([][]CellValue, len(lines))
	for i, line := range lines {
		cells := make([]CellValue, ColumnCount)
		for _, c := range Columns() {
			cells[c] = Cell(line, c)
		}
		rows[i] = cells
	}
	return rows
}

// SetValueAt applies an edit of the cell at row and column.
// Malformed quantities are rejected silently: the returned mutation is MutationNone
// and the cart is unchanged.
func (t *Table) SetValueAt(row int, column Column, input string) (Mutation, error) {
	if !column.Valid() {
		return Mutation{}, ErrUnknownColumn
	}
	line, ok := t.cart.Line(row)
	if !ok {
		return Mutation{}, ErrRowOutOfRange
	}
	m := Reduce(line, column, input)
	t.Apply(m)
	return m, nil
}

// Apply performs m on the cart and notifies observers of the actual effect.
func (t *Table) Apply(m Mutation) model.Change {
	var change model.Change
	switch m.Kind {
	case MutationSetQuantity:
		change = t.cart.SetLineQuantity(m.Name, m.Quantity)
	case MutationRemove:
		change = t.cart.RemoveByName(m.Name)
	default:
		return model.Change{Kind: model.ChangeNone, Row: -1}
	}
	t.notify(change)
	return change
}

// AddProduct adds one unit of p.
func (t *Table) AddProduct(p model.Product) model.Change {
	change := t.cart.AddProduct(p)
	t.notify(change)
	return change
}

// Remove deletes the line for name.
func (t *Table) Remove(name string) model.Change {
	change := t.cart.RemoveByName(name)
	t.notify(change)
	return change
}

// Decrement removes one unit of name.
func (t *Table) Decrement(name string) model.Change {
	change := t.cart.DecrementQuantity(name)
	t.notify(change)
	return change
}

// Clear empties the cart.
func (t *Table) Clear() model.Change {
	change := t.cart.Clear()
	t.notify(change)
	return change
}

func (t *Table) notify(change model.Change) {
	for _, o := range t.observers {
		switch change.Kind {
		case model.ChangeInserted:
			o.RowInserted(change.Row)
		case model.ChangeUpdated:
			o.RowUpdated(change.Row)
		case model.ChangeDeleted:
			o.RowDeleted(change.Row)
		case model.ChangeCleared:
			o.TableChanged()
		}
	}
}

// Notification is a recorded table event.
//
// @Description Table change notification
// @Example {"type": "row_deleted", "row": 0}
type Notification struct {
	Type string `json:"type" example:"row_updated"`
	Row  int    `json:"row" example:"0"`
}

// Notification types.
const (
	NotifyRowInserted  = "row_inserted"
	NotifyRowUpdated   = "row_updated"
	NotifyRowDeleted   = "row_deleted"
	NotifyTableChanged = "table_changed"
)

// Recorder is an Observer that buffers notifications until drained.
type Recorder struct {
	events []Notification
}

// RowInserted records a row insertion.
func (r *Recorder) RowInserted(row int) {
	r.events = append(r.events, Notification{Type: NotifyRowInserted, Row: row})
}

// RowUpdated records a row update.
func (r *Recorder) RowUpdated(row int) {
	r.events = append(r.events, Notification{Type: NotifyRowUpdated, Row: row})
}

// RowDeleted records a row deletion.
func (r *Recorder) RowDeleted(row int) {
	r.events = append(r.events, Notification{Type: NotifyRowDeleted, Row: row})
}

// TableChanged records a full refresh.
func (r *Recorder) TableChanged() {
	r.events = append(r.events, Notification{Type: NotifyTableChanged, Row: -1})
}

// Drain returns the buffered notifications and resets the buffer.
func (r *Recorder) Drain() []Notification {
	out := r.events
	r.events = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

// Package cartview projects a cart onto a five-column table and turns cell
// edits back into cart mutations.
package cartview

import (
	"strconv"
	"strings"

	"github.com/guttosm/pos-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Column identifies a table column.
type Column int

const (
	// ColumnName is the product name, read-only.
	ColumnName Column = iota
	// ColumnQuantity is the editable line quantity.
	ColumnQuantity
	// ColumnUnitPrice is the product price, read-only.
	ColumnUnitPrice
	// ColumnLineTotal is quantity * unit price, read-only.
	ColumnLineTotal
	// ColumnAction triggers removal of the row.
	ColumnAction
)

// ColumnCount is the number of table columns.
const ColumnCount = 5

// RemoveLabel is the value shown in the action column.
const RemoveLabel = "Remove"

var columnTitles = [ColumnCount]string{"Item", "Qty", "Price", "Total", "Action"}

// Columns returns every column in display order.
func Columns() []Column {
	return []Column{ColumnName, ColumnQuantity, ColumnUnitPrice, ColumnLineTotal, ColumnAction}
}

// Valid reports whether c is a known column.
func (c Column) Valid() bool {
	return c >= ColumnName && c <= ColumnAction
}

// Title returns the column header.
func (c Column) Title() string {
	if !c.Valid() {
		return ""
	}
	return columnTitles[c]
}

// Editable reports whether edits on the column may mutate the cart.
func (c Column) Editable() bool {
	return c == ColumnQuantity || c == ColumnAction
}

// ParseColumn accepts a column index ("1") or a case-insensitive title ("qty").
func ParseColumn(s string) (Column, bool) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		c := Column(i)
		return c, c.Valid()
	}
	for i, title := range columnTitles {
		if strings.EqualFold(title, s) {
			return Column(i), true
		}
	}
	return 0, false
}

// CellKind tags the variant held by a CellValue.
type CellKind int

const (
	// CellText holds Text.
	CellText CellKind = iota
	// CellInteger holds Int.
	CellInteger
	// CellMoney holds Money, formatted by the presentation layer.
	CellMoney
	// CellAction holds an action label in Text.
	CellAction
)

// String returns the string representation of the cell kind.
func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellInteger:
		return "integer"
	case CellMoney:
		return "money"
	case CellAction:
		return "action"
	default:
		return "unknown"
	}
}

// CellValue is the value of one table cell.
type CellValue struct {
	Kind  CellKind
	Text  string
	Int   int
	Money decimal.Decimal
}

// Cell returns the value of column for line.
func Cell(line model.CartLine, column Column) CellValue {
	switch column {
	case ColumnName:
		return CellValue{Kind: CellText, Text: line.Product.Name}
	case ColumnQuantity:
		return CellValue{Kind: CellInteger, Int: line.Quantity}
	case ColumnUnitPrice:
		return CellValue{Kind: CellMoney, Money: line.Product.Price}
	case ColumnLineTotal:
		return CellValue{Kind: CellMoney, Money: line.Total()}
	case ColumnAction:
		return CellValue{Kind: CellAction, Text: RemoveLabel}
	default:
		return CellValue{Kind: CellText}
	}
}

// MutationKind tags a Mutation.
type MutationKind int

const (
	// MutationNone leaves the cart unchanged.
	MutationNone MutationKind = iota
	// MutationSetQuantity sets the line quantity.
	MutationSetQuantity
	// MutationRemove deletes the line.
	MutationRemove
)

// String returns the string representation of the mutation kind.
func (k MutationKind) String() string {
	switch k {
	case MutationNone:
		return "none"
	case MutationSetQuantity:
		return "set_quantity"
	case MutationRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Mutation is a cart change derived from a cell edit.
type Mutation struct {
	Kind     MutationKind
	Name     string
	Quantity int
}

// Reduce maps an edit of column on line to a mutation.
// Unparseable quantities, including padded ones, yield MutationNone; quantities of
// zero or less yield MutationRemove.
func Reduce(line model.CartLine, column Column, input string) Mutation {
	name := line.Product.Name
	switch column {
	case ColumnQuantity:
		q, err := strconv.Atoi(input)
		if err != nil {
			return Mutation{Kind: MutationNone, Name: name}
		}
		if q <= 0 {
			return Mutation{Kind: MutationRemove, Name: name}
		}
		return Mutation{Kind: MutationSetQuantity, Name: name, Quantity: q}
	case ColumnAction:
		return Mutation{Kind: MutationRemove, Name: name}
	default:
		return Mutation{Kind: MutationNone, Name: name}
	}
}

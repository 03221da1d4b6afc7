package cartview

import (
	"testing"

	"github.com/guttosm/pos-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestColumn_Title(t *testing.T) {
	assert.Equal(t, "Item", ColumnName.Title())
	assert.Equal(t, "Qty", ColumnQuantity.Title())
	assert.Equal(t, "Price", ColumnUnitPrice.Title())
	assert.Equal(t, "Total", ColumnLineTotal.Title())
	assert.Equal(t, "Action", ColumnAction.Title())
	assert.Equal(t, "", Column(9).Title())
	assert.Len(t, Columns(), ColumnCount)
}

func TestColumn_Editable(t *testing.T) {
	editable := map[Column]bool{
		ColumnName:      false,
		ColumnQuantity:  true,
		ColumnUnitPrice: false,
		ColumnLineTotal: false,
		ColumnAction:    true,
	}
	for c, want := range editable {
		assert.Equal(t, want, c.Editable(), c.Title())
	}
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		input string
		want  Column
		ok    bool
	}{
		{input: "0", want: ColumnName, ok: true},
		{input: "1", want: ColumnQuantity, ok: true},
		{input: "4", want: ColumnAction, ok: true},
		{input: "qty", want: ColumnQuantity, ok: true},
		{input: " Action ", want: ColumnAction, ok: true},
		{input: "5", ok: false},
		{input: "-1", ok: false},
		{input: "discount", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseColumn(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCell(t *testing.T) {
	line := model.CartLine{Product: model.NewProduct("Coke", 1.50, model.CategoryDrink), Quantity: 3}

	name := Cell(line, ColumnName)
	assert.Equal(t, CellText, name.Kind)
	assert.Equal(t, "Coke", name.Text)

	qty := Cell(line, ColumnQuantity)
	assert.Equal(t, CellInteger, qty.Kind)
	assert.Equal(t, 3, qty.Int)

	price := Cell(line, ColumnUnitPrice)
	assert.Equal(t, CellMoney, price.Kind)
	assert.Equal(t, "1.5", price.Money.String())

	total := Cell(line, ColumnLineTotal)
	assert.Equal(t, CellMoney, total.Kind)
	assert.Equal(t, "4.5", total.Money.String())

	action := Cell(line, ColumnAction)
	assert.Equal(t, CellAction, action.Kind)
	assert.Equal(t, RemoveLabel, action.Text)
}

func TestReduce(t *testing.T) {
	line := model.CartLine{Product: model.NewProduct("Fries", 2.49, model.CategoryFood), Quantity: 2}

	tests := []struct {
		name   string
		column Column
		input  string
		want   Mutation
	}{
		{name: "valid quantity", column: ColumnQuantity, input: "5", want: Mutation{Kind: MutationSetQuantity, Name: "Fries", Quantity: 5}},
		{name: "padded quantity ignored", column: ColumnQuantity, input: " 3 ", want: Mutation{Kind: MutationNone, Name: "Fries"}},
		{name: "signed quantity", column: ColumnQuantity, input: "+3", want: Mutation{Kind: MutationSetQuantity, Name: "Fries", Quantity: 3}},
		{name: "overflowing quantity ignored", column: ColumnQuantity, input: "99999999999999999999", want: Mutation{Kind: MutationNone, Name: "Fries"}},
		{name: "zero removes", column: ColumnQuantity, input: "0", want: Mutation{Kind: MutationRemove, Name: "Fries"}},
		{name: "negative removes", column: ColumnQuantity, input: "-5", want: Mutation{Kind: MutationRemove, Name: "Fries"}},
		{name: "non numeric ignored", column: ColumnQuantity, input: "abc", want: Mutation{Kind: MutationNone, Name: "Fries"}},
		{name: "decimal ignored", column: ColumnQuantity, input: "1.5", want: Mutation{Kind: MutationNone, Name: "Fries"}},
		{name: "empty ignored", column: ColumnQuantity, input: "", want: Mutation{Kind: MutationNone, Name: "Fries"}},
		{name: "action removes", column: ColumnAction, input: RemoveLabel, want: Mutation{Kind: MutationRemove, Name: "Fries"}},
		{name: "read-only name", column: ColumnName, input: "Burger", want: Mutation{Kind: MutationNone, Name: "Fries"}},
		{name: "read-only total", column: ColumnLineTotal, input: "1", want: Mutation{Kind: MutationNone, Name: "Fries"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(line, tt.column, tt.input))
		})
	}
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "money", CellMoney.String())
	assert.Equal(t, "action", CellAction.String())
	assert.Equal(t, "unknown", CellKind(7).String())
	assert.Equal(t, "set_quantity", MutationSetQuantity.String())
	assert.Equal(t, "remove", MutationRemove.String())
	assert.Equal(t, "unknown", MutationKind(7).String())
}

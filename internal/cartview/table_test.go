package cartview

import (
	"testing"

	"github.com/guttosm/pos-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	burger = model.NewProduct("Burger", 5.99, model.CategoryFood)
	coke   = model.NewProduct("Coke", 1.50, model.CategoryDrink)
)

func newTestTable(products ...model.Product) (*Table, *model.Cart, *Recorder) {
	cart := model.NewCart()
	for _, p := range products {
		cart.AddProduct(p)
	}
	rec := &Recorder{}
	return NewTable(cart, rec), cart, rec
}

func TestTable_RowCountTracksCart(t *testing.T) {
	table, cart, _ := newTestTable()
	assert.Equal(t, 0, table.RowCount())
	assert.Equal(t, ColumnCount, table.ColumnCount())

	table.AddProduct(burger)
	assert.Equal(t, 1, table.RowCount())

	cart.AddProduct(coke)
	assert.Equal(t, 2, table.RowCount(), "row count is re-queried, never cached")

	table.Clear()
	assert.Equal(t, 0, table.RowCount())
}

func TestTable_ValueAt(t *testing.T) {
	table, _, _ := newTestTable(coke, coke, coke)

	v, err := table.ValueAt(0, ColumnLineTotal)
	require.NoError(t, err)
	assert.Equal(t, "4.5", v.Money.String())

	_, err = table.ValueAt(1, ColumnName)
	assert.ErrorIs(t, err, ErrRowOutOfRange)

	_, err = table.ValueAt(0, Column(7))
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestTable_IsCellEditable(t *testing.T) {
	table, _, _ := newTestTable(burger)

	assert.True(t, table.IsCellEditable(0, ColumnQuantity))
	assert.True(t, table.IsCellEditable(0, ColumnAction))
	assert.False(t, table.IsCellEditable(0, ColumnName))
	assert.False(t, table.IsCellEditable(1, ColumnQuantity))
}

func TestTable_SetValueAt(t *testing.T) {
	t.Run("valid quantity updates the row", func(t *testing.T) {
		table, cart, rec := newTestTable(burger, coke)

		m, err := table.SetValueAt(1, ColumnQuantity, "4")

		require.NoError(t, err)
		assert.Equal(t, MutationSetQuantity, m.Kind)
		assert.Equal(t, 4, cart.Lines()[1].Quantity)
		assert.Equal(t, []Notification{{Type: NotifyRowUpdated, Row: 1}}, rec.Drain())
	})

	t.Run("negative quantity removes the row once", func(t *testing.T) {
		table, cart, rec := newTestTable(burger, coke)

		m, err := table.SetValueAt(0, ColumnQuantity, "-5")

		require.NoError(t, err)
		assert.Equal(t, MutationRemove, m.Kind)
		assert.Equal(t, 1, cart.Len())
		assert.Equal(t, "Coke", cart.Lines()[0].Product.Name)
		assert.Equal(t, []Notification{{Type: NotifyRowDeleted, Row: 0}}, rec.Drain())
	})

	t.Run("non numeric input leaves the cart unchanged", func(t *testing.T) {
		table, cart, rec := newTestTable(burger, coke)
		before := cart.Lines()

		m, err := table.SetValueAt(0, ColumnQuantity, "abc")

		require.NoError(t, err)
		assert.Equal(t, MutationNone, m.Kind)
		assert.Equal(t, before, cart.Lines())
		assert.Equal(t, 2, table.RowCount())
		assert.Empty(t, rec.Drain())
	})

	t.Run("unchanged quantity emits nothing", func(t *testing.T) {
		table, _, rec := newTestTable(burger)

		_, err := table.SetValueAt(0, ColumnQuantity, "1")

		require.NoError(t, err)
		assert.Empty(t, rec.Drain())
	})

	t.Run("action column removes the row", func(t *testing.T) {
		table, cart, rec := newTestTable(burger)

		_, err := table.SetValueAt(0, ColumnAction, RemoveLabel)

		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
		assert.Equal(t, []Notification{{Type: NotifyRowDeleted, Row: 0}}, rec.Drain())
	})

	t.Run("out of range row", func(t *testing.T) {
		table, _, rec := newTestTable(burger)

		_, err := table.SetValueAt(3, ColumnQuantity, "2")

		assert.ErrorIs(t, err, ErrRowOutOfRange)
		assert.Empty(t, rec.Drain())
	})

	t.Run("unknown column", func(t *testing.T) {
		table, _, _ := newTestTable(burger)

		_, err := table.SetValueAt(0, Column(-1), "2")

		assert.ErrorIs(t, err, ErrUnknownColumn)
	})
}

func TestTable_Mutators(t *testing.T) {
	table, cart, rec := newTestTable()

	table.AddProduct(burger)
	table.AddProduct(coke)
	table.AddProduct(burger)
	table.Decrement("Coke")
	table.Remove("Burger")
	table.Remove("Burger")
	table.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, []Notification{
		{Type: NotifyRowInserted, Row: 0},
		{Type: NotifyRowInserted, Row: 1},
		{Type: NotifyRowUpdated, Row: 0},
		{Type: NotifyRowDeleted, Row: 1},
		{Type: NotifyRowDeleted, Row: 0},
	}, rec.Drain())

	table.AddProduct(coke)
	table.Clear()
	assert.Equal(t, []Notification{
		{Type: NotifyRowInserted, Row: 0},
		{Type: NotifyTableChanged, Row: -1},
	}, rec.Drain())
}

func TestTable_Rows(t *testing.T) {
	table, _, _ := newTestTable(burger, burger, coke)

	rows := table.Rows()

	require.Len(t, rows, 2)
	assert.Equal(t, "Burger", rows[0][ColumnName].Text)
	assert.Equal(t, 2, rows[0][ColumnQuantity].Int)
	assert.Equal(t, "11.98", rows[0][ColumnLineTotal].Money.String())
	assert.Equal(t, RemoveLabel, rows[1][ColumnAction].Text)
}

func TestRecorder_DrainEmpty(t *testing.T) {
	rec := &Recorder{}
	assert.NotNil(t, rec.Drain())
}

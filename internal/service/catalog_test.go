package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pos-service/internal/domain/model"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	products := c.Products()
	require.Len(t, products, 6)

	tests := []struct {
		name     string
		price    string
		category model.Category
	}{
		{"Burger", "5.99", model.CategoryFood},
		{"Fries", "2.49", model.CategoryFood},
		{"Hotdog", "3.25", model.CategoryFood},
		{"Coke", "1.5", model.CategoryDrink},
		{"Coffee", "2.25", model.CategoryDrink},
		{"Water", "1", model.CategoryDrink},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, products[i].Name)
			assert.Equal(t, tt.price, products[i].Price.String())
			assert.Equal(t, tt.category, products[i].Category)

			found, ok := c.Find(tt.name)
			assert.True(t, ok)
			assert.Equal(t, products[i], found)
		})
	}
}

func TestActorContext(t *testing.T) {
	assert.Equal(t, Actor{}, ActorFrom(context.Background()))

	ctx := WithActor(context.Background(), Actor{RequestID: "req-9", Cashier: "till-2"})
	assert.Equal(t, Actor{RequestID: "req-9", Cashier: "till-2"}, ActorFrom(ctx))
}

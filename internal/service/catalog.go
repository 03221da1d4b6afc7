package service

import (
	"github.com/guttosm/pos-service/internal/domain/model"
)

// DefaultCatalog returns the fixed menu sold by the register.
func DefaultCatalog() *model.Catalog {
	c, err := model.NewCatalog(
		model.NewProduct("Burger", 5.99, model.CategoryFood),
		model.NewProduct("Fries", 2.49, model.CategoryFood),
		model.NewProduct("Hotdog", 3.25, model.CategoryFood),
		model.NewProduct("Coke", 1.50, model.CategoryDrink),
		model.NewProduct("Coffee", 2.25, model.CategoryDrink),
		model.NewProduct("Water", 1.00, model.CategoryDrink),
	)
	if err != nil {
		panic(err)
	}
	return c
}

package dto

import (
	"time"

	"github.com/guttosm/pos-service/internal/cartview"
)

// ProductResponse is a catalog entry.
//
// @Description Catalog product
type ProductResponse struct {
	Name     string `json:"name" example:"Burger"`
	Category string `json:"category" example:"food"`
	Price    string `json:"price" example:"5.99"`
	Display  string `json:"display" example:"₱5.99"`
} // @name ProductResponse

// CellResponse is one cart table cell.
//
// @Description Cart table cell
type CellResponse struct {
	Column   string      `json:"column" example:"Qty"`
	Kind     string      `json:"kind" example:"integer"`
	Value    interface{} `json:"value" swaggertype:"string" example:"2"`
	Display  string      `json:"display" example:"2"`
	Editable bool        `json:"editable" example:"true"`
} // @name CellResponse

// CartRowResponse is one cart table row.
//
// @Description Cart table row
type CartRowResponse struct {
	Row   int            `json:"row" example:"0"`
	Cells []CellResponse `json:"cells"`
} // @name CartRowResponse

// TotalsResponse carries exact amounts and their display strings.
//
// @Description Subtotal, tax and total
type TotalsResponse struct {
	Subtotal        string `json:"subtotal" example:"4.5"`
	TaxRate         string `json:"tax_rate" example:"0.12"`
	Tax             string `json:"tax" example:"0.54"`
	Total           string `json:"total" example:"5.04"`
	SubtotalDisplay string `json:"subtotal_display" example:"₱4.50"`
	TaxDisplay      string `json:"tax_display" example:"₱0.54"`
	TotalDisplay    string `json:"total_display" example:"₱5.04"`
} // @name TotalsResponse

// FlashResponse is the highlighted row.
//
// @Description Row highlight
type FlashResponse struct {
	Row   int     `json:"row" example:"0"`
	Phase float64 `json:"phase" example:"0.25"`
} // @name FlashResponse

// CartResponse is the cart table with its totals.
//
// @Description Cart table and totals
type CartResponse struct {
	Columns []string          `json:"columns" example:"Item,Qty,Price,Total,Action"`
	Rows    []CartRowResponse `json:"rows"`
	Totals  TotalsResponse    `json:"totals"`
	Flash   *FlashResponse    `json:"flash,omitempty"`
	Empty   bool              `json:"empty" example:"false"`
} // @name CartResponse

// CartUpdateResponse is returned by cart mutations.
//
// @Description Cart after a mutation with the table notifications it emitted
type CartUpdateResponse struct {
	Cart          CartResponse             `json:"cart"`
	Mutation      string                   `json:"mutation,omitempty" example:"set_quantity"`
	Notifications []cartview.Notification `json:"notifications"`
} // @name CartUpdateResponse

// CheckoutItemResponse is one line of the checkout listing.
//
// @Description Checkout line
type CheckoutItemResponse struct {
	Name      string `json:"name" example:"Burger"`
	Quantity  int    `json:"quantity" example:"2"`
	UnitPrice string `json:"unit_price" example:"5.99"`
	Total     string `json:"total" example:"11.98"`
	Display   string `json:"display" example:"Burger x2 = ₱11.98"`
} // @name CheckoutItemResponse

// CheckoutResponse is the checkout dialog.
//
// @Description Checkout dialog state
type CheckoutResponse struct {
	ID             string                 `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	State          string                 `json:"state" example:"idle"`
	Items          []CheckoutItemResponse `json:"items"`
	Lines          []string               `json:"lines" example:"Burger x2 = ₱11.98"`
	Totals         TotalsResponse         `json:"totals"`
	Message        string                 `json:"message,omitempty" example:"Payment complete"`
	ConfirmEnabled bool                   `json:"confirm_enabled" example:"true"`
	CloseEnabled   bool                   `json:"close_enabled" example:"true"`
	OpenedAt       time.Time              `json:"opened_at" example:"2025-01-28T10:00:00Z"`
} // @name CheckoutResponse

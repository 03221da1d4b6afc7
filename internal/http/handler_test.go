package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pos-service/internal/cartview"
	"github.com/guttosm/pos-service/internal/domain/dto"
	"github.com/guttosm/pos-service/internal/i18n"
)

func TestHandler_GetCatalog(t *testing.T) {
	s := newTestServer(t, testRouterConfig())

	w := s.do(t, http.MethodGet, "/api/catalog", nil)

	statusIs(t, w, http.StatusOK)
	products := decodeData[[]dto.ProductResponse](t, w)
	require.Len(t, products, 6)
	assert.Equal(t, dto.ProductResponse{Name: "Burger", Category: "food", Price: "5.99", Display: "₱5.99"}, products[0])
	assert.Equal(t, "₱1.00", products[5].Display)
}

func TestHandler_AddItem(t *testing.T) {
	s := newTestServer(t, testRouterConfig())

	w := s.do(t, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Name: "Burger"})
	statusIs(t, w, http.StatusOK)
	first := decodeData[dto.CartUpdateResponse](t, w)
	assert.Equal(t, []cartview.Notification{{Type: cartview.NotifyRowInserted, Row: 0}}, first.Notifications)

	w = s.do(t, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Name: "Burger"})
	statusIs(t, w, http.StatusOK)
	second := decodeData[dto.CartUpdateResponse](t, w)
	assert.Equal(t, []cartview.Notification{{Type: cartview.NotifyRowUpdated, Row: 0}}, second.Notifications)

	cart := second.Cart
	assert.Equal(t, []string{"Item", "Qty", "Price", "Total", "Action"}, cart.Columns)
	require.Len(t, cart.Rows, 1)
	cells := cart.Rows[0].Cells
	require.Len(t, cells, 5)
	assert.Equal(t, "Burger", cells[0].Display)
	assert.Equal(t, "2", cells[1].Display)
	assert.True(t, cells[1].Editable)
	assert.Equal(t, "₱5.99", cells[2].Display)
	assert.Equal(t, "₱11.98", cells[3].Display)
	assert.Equal(t, "₱11.98", cart.Totals.SubtotalDisplay)
	assert.Equal(t, "₱1.44", cart.Totals.TaxDisplay)
	assert.Equal(t, "₱13.42", cart.Totals.TotalDisplay)
	assert.Equal(t, "0.12", cart.Totals.TaxRate)
	require.NotNil(t, cart.Flash)
	assert.Equal(t, 0, cart.Flash.Row)
	assert.False(t, cart.Empty)
}

func TestHandler_AddItemErrors(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedKey    string
	}{
		{
			name:           "unknown product",
			body:           dto.AddItemRequest{Name: "Pizza"},
			expectedStatus: http.StatusNotFound,
			expectedKey:    i18n.ErrKeyProductNotFound,
		},
		{
			name:           "blank name",
			body:           dto.AddItemRequest{Name: "   "},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    i18n.ErrKeyProductName,
		},
		{
			name:           "missing name",
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    i18n.ErrKeyInvalidRequestBody,
		},
		{
			name:           "malformed json",
			body:           "{",
			expectedStatus: http.StatusBadRequest,
			expectedKey:    i18n.ErrKeyInvalidRequestBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, testRouterConfig())

			w := s.do(t, http.MethodPost, "/api/cart/items", tt.body)

			statusIs(t, w, tt.expectedStatus)
			resp := decodeError(t, w)
			assert.Equal(t, i18n.GetTranslator().Translate(tt.expectedKey, i18n.DefaultLocale), resp.Message)
			assert.Empty(t, s.pos.Cart().Lines)
		})
	}
}

func TestHandler_RemoveAndDecrement(t *testing.T) {
	s := newTestServer(t, testRouterConfig())
	for _, name := range []string{"Burger", "Burger", "Fries"} {
		statusIs(t, s.do(t, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Name: name}), http.StatusOK)
	}

	w := s.do(t, http.MethodPost, "/api/cart/items/Burger/decrement", nil)
	statusIs(t, w, http.StatusOK)
	update := decodeData[dto.CartUpdateResponse](t, w)
	assert.Equal(t, "1", update.Cart.Rows[0].Cells[1].Display)

	w = s.do(t, http.MethodDelete, "/api/cart/items/Burger", nil)
	statusIs(t, w, http.StatusOK)
	update = decodeData[dto.CartUpdateResponse](t, w)
	assert.Equal(t, []cartview.Notification{{Type: cartview.NotifyRowDeleted, Row: 0}}, update.Notifications)
	require.Len(t, update.Cart.Rows, 1)
	assert.Equal(t, "Fries", update.Cart.Rows[0].Cells[0].Display)

	w = s.do(t, http.MethodDelete, "/api/cart/items/Coke", nil)
	statusIs(t, w, http.StatusOK)
	assert.Empty(t, decodeData[dto.CartUpdateResponse](t, w).Notifications)

	w = s.do(t, http.MethodDelete, "/api/cart/items/Pizza", nil)
	statusIs(t, w, http.StatusNotFound)
}

func TestHandler_EditCell(t *testing.T) {
	tests := []struct {
		name             string
		path             string
		body             interface{}
		expectedStatus   int
		expectedMutation string
		expectedRows     int
		expectedQty      string
	}{
		{
			name:             "set quantity by column index",
			path:             "/api/cart/rows/0/cells/1",
			body:             dto.EditCellRequest{Value: "4"},
			expectedStatus:   http.StatusOK,
			expectedMutation: "set_quantity",
			expectedRows:     1,
			expectedQty:      "4",
		},
		{
			name:             "set quantity by column title",
			path:             "/api/cart/rows/0/cells/qty",
			body:             dto.EditCellRequest{Value: "3"},
			expectedStatus:   http.StatusOK,
			expectedMutation: "set_quantity",
			expectedRows:     1,
			expectedQty:      "3",
		},
		{
			name:             "zero quantity removes the row",
			path:             "/api/cart/rows/0/cells/Qty",
			body:             dto.EditCellRequest{Value: "0"},
			expectedStatus:   http.StatusOK,
			expectedMutation: "remove",
			expectedRows:     0,
		},
		{
			name:             "non-numeric quantity leaves the cart unchanged",
			path:             "/api/cart/rows/0/cells/Qty",
			body:             dto.EditCellRequest{Value: "abc"},
			expectedStatus:   http.StatusOK,
			expectedMutation: "none",
			expectedRows:     1,
			expectedQty:      "1",
		},
		{
			name:             "long non-numeric quantity leaves the cart unchanged",
			path:             "/api/cart/rows/0/cells/Qty",
			body:             dto.EditCellRequest{Value: strings.Repeat("a", 40)},
			expectedStatus:   http.StatusOK,
			expectedMutation: "none",
			expectedRows:     1,
			expectedQty:      "1",
		},
		{
			name:             "padded quantity leaves the cart unchanged",
			path:             "/api/cart/rows/0/cells/Qty",
			body:             dto.EditCellRequest{Value: " 3 "},
			expectedStatus:   http.StatusOK,
			expectedMutation: "none",
			expectedRows:     1,
			expectedQty:      "1",
		},
		{
			name:             "action column removes the row",
			path:             "/api/cart/rows/0/cells/Action",
			body:             dto.EditCellRequest{},
			expectedStatus:   http.StatusOK,
			expectedMutation: "remove",
			expectedRows:     0,
		},
		{
			name:           "row out of range",
			path:           "/api/cart/rows/5/cells/Qty",
			body:           dto.EditCellRequest{Value: "2"},
			expectedStatus: http.StatusNotFound,
			expectedRows:   1,
		},
		{
			name:           "malformed row",
			path:           "/api/cart/rows/x/cells/Qty",
			body:           dto.EditCellRequest{Value: "2"},
			expectedStatus: http.StatusBadRequest,
			expectedRows:   1,
		},
		{
			name:           "unknown column",
			path:           "/api/cart/rows/0/cells/Discount",
			body:           dto.EditCellRequest{Value: "2"},
			expectedStatus: http.StatusBadRequest,
			expectedRows:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, testRouterConfig())
			statusIs(t, s.do(t, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Name: "Coffee"}), http.StatusOK)

			w := s.do(t, http.MethodPut, tt.path, tt.body)

			statusIs(t, w, tt.expectedStatus)
			assert.Len(t, s.pos.Cart().Lines, tt.expectedRows)
			if tt.expectedStatus != http.StatusOK {
				return
			}
			update := decodeData[dto.CartUpdateResponse](t, w)
			assert.Equal(t, tt.expectedMutation, update.Mutation)
			require.Len(t, update.Cart.Rows, tt.expectedRows)
			if tt.expectedRows > 0 {
				assert.Equal(t, tt.expectedQty, update.Cart.Rows[0].Cells[1].Display)
			}
		})
	}
}

func TestHandler_ClearCart(t *testing.T) {
	s := newTestServer(t, testRouterConfig())
	statusIs(t, s.do(t, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Name: "Water"}), http.StatusOK)

	w := s.do(t, http.MethodDelete, "/api/cart", nil)

	statusIs(t, w, http.StatusOK)
	update := decodeData[dto.CartUpdateResponse](t, w)
	assert.True(t, update.Cart.Empty)
	assert.Empty(t, update.Cart.Rows)
	assert.Equal(t, "₱0.00", update.Cart.Totals.TotalDisplay)

	w = s.do(t, http.MethodGet, "/api/cart", nil)
	statusIs(t, w, http.StatusOK)
	assert.True(t, decodeData[dto.CartResponse](t, w).Empty)
}

func TestHandler_CheckoutPaymentFlow(t *testing.T) {
	s := newTestServer(t, testRouterConfig())
	statusIs(t, s.do(t, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Name: "Burger"}), http.StatusOK)
	statusIs(t, s.do(t, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Name: "Coke"}), http.StatusOK)

	w := s.do(t, http.MethodPost, "/api/checkout", nil)
	statusIs(t, w, http.StatusCreated)
	opened := decodeData[dto.CheckoutResponse](t, w)
	assert.Equal(t, "idle", opened.State)
	assert.NotEmpty(t, opened.ID)
	assert.True(t, opened.ConfirmEnabled)
	assert.True(t, opened.CloseEnabled)
	require.Len(t, opened.Items, 2)
	assert.Equal(t, "Burger", opened.Items[0].Name)
	assert.Equal(t, opened.Lines[0], opened.Items[0].Display)
	assert.Equal(t, "₱8.39", opened.Totals.TotalDisplay)

	w = s.do(t, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Name: "Fries"})
	statusIs(t, w, http.StatusConflict)
	assert.Equal(t, i18n.GetTranslator().Translate(i18n.ErrKeyCheckoutOpen, i18n.DefaultLocale), decodeError(t, w).Message)

	w = s.do(t, http.MethodPost, "/api/checkout", nil)
	statusIs(t, w, http.StatusConflict)

	w = s.do(t, http.MethodPost, "/api/checkout/confirm", nil)
	statusIs(t, w, http.StatusOK)
	processing := decodeData[dto.CheckoutResponse](t, w)
	assert.Equal(t, "processing", processing.State)
	assert.False(t, processing.ConfirmEnabled)
	assert.False(t, processing.CloseEnabled)

	w = s.do(t, http.MethodPost, "/api/checkout/close", nil)
	statusIs(t, w, http.StatusConflict)

	s.sched.Advance(testProcessingDelay)

	w = s.do(t, http.MethodGet, "/api/checkout", nil)
	statusIs(t, w, http.StatusOK)
	complete := decodeData[dto.CheckoutResponse](t, w)
	assert.Equal(t, "complete", complete.State)
	assert.Equal(t, "Payment complete", complete.Message)
	assert.True(t, complete.CloseEnabled)

	w = s.do(t, http.MethodPost, "/api/checkout/close", nil)
	statusIs(t, w, http.StatusOK)

	w = s.do(t, http.MethodPost, "/api/cart/items", dto.AddItemRequest{Name: "Fries"})
	statusIs(t, w, http.StatusOK)
}

func TestHandler_CheckoutEmptyCartWarning(t *testing.T) {
	s := newTestServer(t, testRouterConfig())

	w := s.do(t, http.MethodPost, "/api/checkout", nil)
	statusIs(t, w, http.StatusCreated)
	opened := decodeData[dto.CheckoutResponse](t, w)
	assert.Equal(t, []string{"Your cart is empty."}, opened.Lines)
	assert.Empty(t, opened.Items)

	w = s.do(t, http.MethodPost, "/api/checkout/confirm", nil)
	statusIs(t, w, http.StatusOK)
	warning := decodeData[dto.CheckoutResponse](t, w)
	assert.Equal(t, "empty_cart_warning", warning.State)
	assert.Equal(t, "You did not select any product to buy", warning.Message)

	w = s.do(t, http.MethodPost, "/api/checkout/acknowledge", nil)
	statusIs(t, w, http.StatusOK)
	assert.Equal(t, "idle", decodeData[dto.CheckoutResponse](t, w).State)

	w = s.do(t, http.MethodPost, "/api/checkout/acknowledge", nil)
	statusIs(t, w, http.StatusConflict)
}

func TestHandler_CheckoutWithoutDialog(t *testing.T) {
	s := newTestServer(t, testRouterConfig())

	for _, path := range []string{"/api/checkout/confirm", "/api/checkout/acknowledge", "/api/checkout/close"} {
		t.Run(path, func(t *testing.T) {
			w := s.do(t, http.MethodPost, path, nil)
			statusIs(t, w, http.StatusNotFound)
		})
	}

	w := s.do(t, http.MethodGet, "/api/checkout", nil)
	statusIs(t, w, http.StatusNotFound)
}

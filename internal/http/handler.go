package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pos-service/internal/cartview"
	"github.com/guttosm/pos-service/internal/domain/dto"
	"github.com/guttosm/pos-service/internal/i18n"
	"github.com/guttosm/pos-service/internal/middleware"
	"github.com/guttosm/pos-service/internal/service"
)

// Handler provides HTTP handlers for the catalog, cart and checkout routes.
type Handler struct {
	pos service.PointOfSale
}

// NewHandler creates a new Handler instance.
func NewHandler(pos service.PointOfSale) *Handler {
	return &Handler{pos: pos}
}

func (h *Handler) presenter() presenter {
	return presenter{f: h.pos.Formatter()}
}

// GetCatalog handles GET /api/catalog requests.
//
// @Summary      List catalog
// @Description  Returns the products on sale with their formatted prices.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ProductResponse} "Catalog"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Security     BearerAuth
// @Router       /api/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.presenter().products(h.pos.Catalog()))
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get cart
// @Description  Returns the cart table (Item, Qty, Price, Total, Action), subtotal, 12% tax, total and the highlighted row.
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     BearerAuth
// @Router       /api/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.presenter().cart(h.pos.Cart()))
}

// AddItem handles POST /api/cart/items requests.
//
// @Summary      Add product
// @Description  Adds one unit of a catalog product. An existing line for the product is incremented instead of duplicated. Supports idempotency via Idempotency-Key header.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddItemRequest true "Product"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartUpdateResponse} "Cart after the change"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      409 {object} dto.ErrorResponse "Checkout is open"
// @Security     BearerAuth
// @Router       /api/cart/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddItemRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyProductName, err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.respondUpdate(c, func() (service.CartUpdate, error) {
		return h.pos.AddProduct(middleware.ActorContext(c), req.Name)
	})
}

// RemoveItem handles DELETE /api/cart/items/:name requests.
//
// @Summary      Remove product line
// @Description  Deletes the cart line of a product. Removing a product that is not in the cart is a no-op.
// @Tags         Cart
// @Produce      json
// @Param        name path string true "Product name"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartUpdateResponse} "Cart after the change"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      409 {object} dto.ErrorResponse "Checkout is open"
// @Security     BearerAuth
// @Router       /api/cart/items/{name} [delete]
func (h *Handler) RemoveItem(c *gin.Context) {
	name := c.Param("name")
	h.respondUpdate(c, func() (service.CartUpdate, error) {
		return h.pos.RemoveProduct(middleware.ActorContext(c), name)
	})
}

// DecrementItem handles POST /api/cart/items/:name/decrement requests.
//
// @Summary      Decrement product
// @Description  Removes one unit of a product; the line disappears when its quantity reaches zero.
// @Tags         Cart
// @Produce      json
// @Param        name path string true "Product name"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartUpdateResponse} "Cart after the change"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      409 {object} dto.ErrorResponse "Checkout is open"
// @Security     BearerAuth
// @Router       /api/cart/items/{name}/decrement [post]
func (h *Handler) DecrementItem(c *gin.Context) {
	name := c.Param("name")
	h.respondUpdate(c, func() (service.CartUpdate, error) {
		return h.pos.DecrementProduct(middleware.ActorContext(c), name)
	})
}

// EditCell handles PUT /api/cart/rows/:row/cells/:column requests.
//
// @Summary      Edit cart cell
// @Description  Applies a table cell edit. A quantity of zero or less removes the row; a non-numeric quantity leaves the cart unchanged. Editing the Action column removes the row. Column is an index (0-4) or a title (Item, Qty, Price, Total, Action).
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        row path int true "Row index"
// @Param        column path string true "Column index or title"
// @Param        request body dto.EditCellRequest true "Cell input"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartUpdateResponse} "Cart after the edit"
// @Failure      400 {object} dto.ErrorResponse "Invalid row or column"
// @Failure      404 {object} dto.ErrorResponse "Row out of range"
// @Failure      409 {object} dto.ErrorResponse "Checkout is open"
// @Security     BearerAuth
// @Router       /api/cart/rows/{row}/cells/{column} [put]
func (h *Handler) EditCell(c *gin.Context) {
	builder := NewResponseBuilder(c)

	row, err := strconv.Atoi(c.Param("row"))
	if err != nil || row < 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRow, err)
		return
	}
	column, ok := cartview.ParseColumn(c.Param("column"))
	if !ok {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownColumn, service.ErrUnknownColumn)
		return
	}

	req, err := BuildRequestAndValidate[dto.EditCellRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	h.respondUpdate(c, func() (service.CartUpdate, error) {
		return h.pos.EditCell(middleware.ActorContext(c), row, column, req.Value)
	})
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear cart
// @Description  Removes every line from the cart.
// @Tags         Cart
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CartUpdateResponse} "Empty cart"
// @Failure      409 {object} dto.ErrorResponse "Checkout is open"
// @Security     BearerAuth
// @Router       /api/cart [delete]
func (h *Handler) ClearCart(c *gin.Context) {
	h.respondUpdate(c, func() (service.CartUpdate, error) {
		return h.pos.ClearCart(middleware.ActorContext(c))
	})
}

func (h *Handler) respondUpdate(c *gin.Context, fn func() (service.CartUpdate, error)) {
	builder := NewResponseBuilder(c)
	update, err := fn()
	if err != nil {
		builder.DomainError(err)
		return
	}
	builder.SuccessOK(h.presenter().cartUpdate(update))
}

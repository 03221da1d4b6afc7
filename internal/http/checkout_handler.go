package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pos-service/internal/middleware"
	"github.com/guttosm/pos-service/internal/service"
)

// OpenCheckout handles POST /api/checkout requests.
//
// @Summary      Open checkout
// @Description  Snapshots the cart into a checkout dialog in the idle state. The cart is locked until the checkout is closed.
// @Tags         Checkout
// @Produce      json
// @Success      201 {object} dto.SuccessResponse{data=dto.CheckoutResponse} "Checkout opened"
// @Failure      409 {object} dto.ErrorResponse "A checkout is already open"
// @Security     BearerAuth
// @Router       /api/checkout [post]
func (h *Handler) OpenCheckout(c *gin.Context) {
	builder := NewResponseBuilder(c)
	view, err := h.pos.OpenCheckout(middleware.ActorContext(c))
	if err != nil {
		builder.DomainError(err)
		return
	}
	builder.SuccessCreated(h.presenter().checkout(view))
}

// GetCheckout handles GET /api/checkout requests.
//
// @Summary      Get checkout
// @Description  Returns the open checkout, or the last one once it has been closed.
// @Tags         Checkout
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutResponse} "Checkout"
// @Failure      404 {object} dto.ErrorResponse "No checkout"
// @Security     BearerAuth
// @Router       /api/checkout [get]
func (h *Handler) GetCheckout(c *gin.Context) {
	builder := NewResponseBuilder(c)
	view, err := h.pos.Checkout()
	if err != nil {
		builder.DomainError(err)
		return
	}
	builder.SuccessOK(h.presenter().checkout(view))
}

// ConfirmCheckout handles POST /api/checkout/confirm requests.
//
// @Summary      Confirm payment
// @Description  Starts the simulated payment (processing, then complete), or shows the empty-cart warning when the cart is empty.
// @Tags         Checkout
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutResponse} "Checkout"
// @Failure      404 {object} dto.ErrorResponse "No checkout open"
// @Failure      409 {object} dto.ErrorResponse "Action not allowed in the current state"
// @Security     BearerAuth
// @Router       /api/checkout/confirm [post]
func (h *Handler) ConfirmCheckout(c *gin.Context) {
	h.checkoutAction(c, h.pos.ConfirmCheckout)
}

// AcknowledgeCheckout handles POST /api/checkout/acknowledge requests.
//
// @Summary      Dismiss empty-cart warning
// @Description  Returns the checkout from the empty-cart warning to idle.
// @Tags         Checkout
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutResponse} "Checkout"
// @Failure      404 {object} dto.ErrorResponse "No checkout open"
// @Failure      409 {object} dto.ErrorResponse "Action not allowed in the current state"
// @Security     BearerAuth
// @Router       /api/checkout/acknowledge [post]
func (h *Handler) AcknowledgeCheckout(c *gin.Context) {
	h.checkoutAction(c, h.pos.AcknowledgeCheckout)
}

// CloseCheckout handles POST /api/checkout/close requests.
//
// @Summary      Close checkout
// @Description  Dismisses the checkout dialog and unlocks the cart. Not allowed while the payment is processing.
// @Tags         Checkout
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutResponse} "Checkout"
// @Failure      404 {object} dto.ErrorResponse "No checkout open"
// @Failure      409 {object} dto.ErrorResponse "Payment is processing"
// @Security     BearerAuth
// @Router       /api/checkout/close [post]
func (h *Handler) CloseCheckout(c *gin.Context) {
	h.checkoutAction(c, h.pos.CloseCheckout)
}

func (h *Handler) checkoutAction(c *gin.Context, fn func(context.Context) (service.CheckoutView, error)) {
	builder := NewResponseBuilder(c)
	view, err := fn(middleware.ActorContext(c))
	if err != nil {
		builder.DomainError(err)
		return
	}
	builder.SuccessOK(h.presenter().checkout(view))
}

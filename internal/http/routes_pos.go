package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/pos-service/internal/service"
)

// POSRoutes registers the catalog, cart and checkout routes.
type POSRoutes struct {
	handler *Handler
}

// NewPOSRoutes creates a new POSRoutes instance.
func NewPOSRoutes(handler *Handler) *POSRoutes {
	return &POSRoutes{handler: handler}
}

// RegisterRoutes registers the register routes.
func (r *POSRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	h := r.handler

	rg.GET("/catalog", h.GetCatalog)

	cart := rg.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddItem)
		cart.DELETE("/items/:name", h.RemoveItem)
		cart.POST("/items/:name/decrement", h.DecrementItem)
		cart.PUT("/rows/:row/cells/:column", h.EditCell)
	}

	checkout := rg.Group("/checkout")
	{
		checkout.POST("", h.OpenCheckout)
		checkout.GET("", h.GetCheckout)
		checkout.POST("/confirm", h.ConfirmCheckout)
		checkout.POST("/acknowledge", h.AcknowledgeCheckout)
		checkout.POST("/close", h.CloseCheckout)
	}
}

// AuditRoutes registers the audit trail query route.
type AuditRoutes struct {
	handler *AuditHandler
}

// NewAuditRoutes creates a new AuditRoutes instance.
func NewAuditRoutes(audit service.AuditService) *AuditRoutes {
	return &AuditRoutes{handler: NewAuditHandler(audit)}
}

// RegisterRoutes registers the audit routes.
func (r *AuditRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/audit", r.handler.List)
}

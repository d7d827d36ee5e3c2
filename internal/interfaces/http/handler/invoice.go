package handler

import (
	"github.com/acme/dashboard/internal/application/actions"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler exposes the invoice form actions over HTTP
type InvoiceHandler struct {
	actions *actions.InvoiceActions
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceActions *actions.InvoiceActions) *InvoiceHandler {
	return &InvoiceHandler{actions: invoiceActions}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	invoices.POST("", h.Create)
	invoices.POST("/:id", h.Update)
	invoices.DELETE("/:id", h.Delete)
}

// Create handles the create-invoice form submission
func (h *InvoiceHandler) Create(c *gin.Context) {
	if !parseForm(c) {
		return
	}
	state := h.actions.Create(c.Request.Context(), actions.ActionState{}, c.Request.PostForm, &ginNavigator{c: c})
	writeActionState(c, state)
}

// Update handles the edit-invoice form submission
func (h *InvoiceHandler) Update(c *gin.Context) {
	if !parseForm(c) {
		return
	}
	state := h.actions.Update(c.Request.Context(), c.Param("id"), actions.ActionState{}, c.Request.PostForm, &ginNavigator{c: c})
	writeActionState(c, state)
}

// Delete handles invoice deletion
func (h *InvoiceHandler) Delete(c *gin.Context) {
	state := h.actions.Delete(c.Request.Context(), c.Param("id"))
	writeActionState(c, state)
}

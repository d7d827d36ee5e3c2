package handler

import (
	"github.com/acme/dashboard/internal/application/actions"
	"github.com/gin-gonic/gin"
)

// CustomerHandler exposes the customer form actions over HTTP
type CustomerHandler struct {
	actions *actions.CustomerActions
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerActions *actions.CustomerActions) *CustomerHandler {
	return &CustomerHandler{actions: customerActions}
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.POST("", h.Create)
	customers.POST("/:id", h.Update)
	customers.DELETE("/:id", h.Delete)
}

// Create handles the create-customer form submission
func (h *CustomerHandler) Create(c *gin.Context) {
	if !parseForm(c) {
		return
	}
	state := h.actions.Create(c.Request.Context(), actions.ActionState{}, c.Request.PostForm, &ginNavigator{c: c})
	writeActionState(c, state)
}

// Update handles the edit-customer form submission
func (h *CustomerHandler) Update(c *gin.Context) {
	if !parseForm(c) {
		return
	}
	state := h.actions.Update(c.Request.Context(), c.Param("id"), actions.ActionState{}, c.Request.PostForm, &ginNavigator{c: c})
	writeActionState(c, state)
}

// Delete handles customer deletion
func (h *CustomerHandler) Delete(c *gin.Context) {
	state := h.actions.Delete(c.Request.Context(), c.Param("id"))
	writeActionState(c, state)
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/acme/dashboard/internal/domain/invoicing"
	"github.com/acme/dashboard/internal/domain/partner"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubInvoiceRepo is a programmable in-memory invoicing.InvoiceRepository
type stubInvoiceRepo struct {
	createErr error
	updateErr error
	deleteErr error
	created   *invoicing.Invoice
	updated   *invoicing.Invoice
	deletedID string
}

func (s *stubInvoiceRepo) Create(_ context.Context, invoice *invoicing.Invoice) error {
	s.created = invoice
	return s.createErr
}

func (s *stubInvoiceRepo) Update(_ context.Context, invoice *invoicing.Invoice) error {
	s.updated = invoice
	return s.updateErr
}

func (s *stubInvoiceRepo) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.deleteErr
}

// stubCustomerRepo is a programmable in-memory partner.CustomerRepository
type stubCustomerRepo struct {
	createErr error
	updateErr error
	deleteErr error
	created   *partner.Customer
	updated   *partner.Customer
	deletedID string
}

func (s *stubCustomerRepo) Create(_ context.Context, customer *partner.Customer) error {
	s.created = customer
	return s.createErr
}

func (s *stubCustomerRepo) Update(_ context.Context, customer *partner.Customer) error {
	s.updated = customer
	return s.updateErr
}

func (s *stubCustomerRepo) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.deleteErr
}

// stubListCache records invalidated paths
type stubListCache struct {
	invalidated []string
}

func (s *stubListCache) NotifyListChanged(_ context.Context, path string) {
	s.invalidated = append(s.invalidated, path)
}

// postForm performs a form-encoded POST against the engine
func postForm(engine *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

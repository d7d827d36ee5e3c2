package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/acme/dashboard/internal/application/actions"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newInvoiceEngine(repo *stubInvoiceRepo, cache *stubListCache) *gin.Engine {
	engine := gin.New()
	api := engine.Group("/api")
	NewInvoiceHandler(actions.NewInvoiceActions(repo, cache, zap.NewNop())).RegisterRoutes(api)
	return engine
}

func validInvoiceForm() url.Values {
	return url.Values{
		"customerId": {"cust-1"},
		"amount":     {"15.50"},
		"status":     {"pending"},
	}
}

func TestInvoiceHandlerCreateRedirects(t *testing.T) {
	repo := &stubInvoiceRepo{}
	cache := &stubListCache{}
	engine := newInvoiceEngine(repo, cache)

	w := postForm(engine, "/api/invoices", validInvoiceForm())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/invoices", w.Header().Get("Location"))
	require.NotNil(t, repo.created)
	assert.Equal(t, int64(1550), repo.created.AmountCents)
	assert.Equal(t, []string{"/dashboard/invoices"}, cache.invalidated)
}

func TestInvoiceHandlerCreateAcceptsMultipartForm(t *testing.T) {
	repo := &stubInvoiceRepo{}
	cache := &stubListCache{}
	engine := newInvoiceEngine(repo, cache)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for field, values := range validInvoiceForm() {
		require.NoError(t, writer.WriteField(field, values[0]))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/invoices", w.Header().Get("Location"))
	require.NotNil(t, repo.created)
	assert.Equal(t, int64(1550), repo.created.AmountCents)
	assert.Equal(t, "cust-1", repo.created.CustomerID)
	assert.Equal(t, []string{"/dashboard/invoices"}, cache.invalidated)
}

func TestInvoiceHandlerCreateValidationFailure(t *testing.T) {
	repo := &stubInvoiceRepo{}
	engine := newInvoiceEngine(repo, &stubListCache{})

	w := postForm(engine, "/api/invoices", url.Values{})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Nil(t, repo.created)

	var state actions.ActionState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", state.Message)
	assert.Equal(t, []string{"Please select a customer."}, state.Errors["customerId"])
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, state.Errors["amount"])
	assert.Equal(t, []string{"Please select an invoice status."}, state.Errors["status"])
}

func TestInvoiceHandlerCreateStoreFailure(t *testing.T) {
	repo := &stubInvoiceRepo{createErr: errors.New("connection reset")}
	cache := &stubListCache{}
	engine := newInvoiceEngine(repo, cache)

	w := postForm(engine, "/api/invoices", validInvoiceForm())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, cache.invalidated)

	var state actions.ActionState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "Database error: Failed to create invoice.", state.Message)
	assert.Empty(t, state.Errors)
}

func TestInvoiceHandlerUpdateRedirects(t *testing.T) {
	repo := &stubInvoiceRepo{}
	engine := newInvoiceEngine(repo, &stubListCache{})

	w := postForm(engine, "/api/invoices/inv-7", validInvoiceForm())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/invoices", w.Header().Get("Location"))
	require.NotNil(t, repo.updated)
	assert.Equal(t, "inv-7", repo.updated.ID)
}

func TestInvoiceHandlerUpdateStoreFailure(t *testing.T) {
	repo := &stubInvoiceRepo{updateErr: errors.New("deadlock")}
	engine := newInvoiceEngine(repo, &stubListCache{})

	w := postForm(engine, "/api/invoices/inv-7", validInvoiceForm())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var state actions.ActionState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "Database Error. Failed to Update Invoice.", state.Message)
}

func TestInvoiceHandlerDeleteNoContent(t *testing.T) {
	repo := &stubInvoiceRepo{}
	cache := &stubListCache{}
	engine := newInvoiceEngine(repo, cache)

	req := httptest.NewRequest(http.MethodDelete, "/api/invoices/inv-9", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Equal(t, "inv-9", repo.deletedID)
	assert.Equal(t, []string{"/dashboard/invoices"}, cache.invalidated)
}

func TestInvoiceHandlerDeleteStoreFailure(t *testing.T) {
	repo := &stubInvoiceRepo{deleteErr: errors.New("timeout")}
	cache := &stubListCache{}
	engine := newInvoiceEngine(repo, cache)

	req := httptest.NewRequest(http.MethodDelete, "/api/invoices/inv-9", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, cache.invalidated)

	var state actions.ActionState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "Database Error. Failed to Delete Invoice.", state.Message)
}

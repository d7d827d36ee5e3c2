package actions

import (
	"context"
	"net/url"
	"time"

	"github.com/acme/dashboard/internal/domain/invoicing"
	"go.uber.org/zap"
)

// InvoiceActions orchestrates the create, update and delete form actions
// for invoices. One instance serves all requests; every call is stateless.
type InvoiceActions struct {
	repo   invoicing.InvoiceRepository
	cache  ListCache
	logger *zap.Logger
	now    func() time.Time
}

// NewInvoiceActions creates the invoice action orchestrator
func NewInvoiceActions(repo invoicing.InvoiceRepository, cache ListCache, logger *zap.Logger) *InvoiceActions {
	return &InvoiceActions{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates the submitted fields and inserts a new invoice dated
// today. On success it invalidates the invoice list and navigates there,
// returning nil; any failure is terminal and returned as state.
func (a *InvoiceActions) Create(ctx context.Context, _ ActionState, form url.Values, nav Navigator) *ActionState {
	data, errs := validateInvoiceForm(form)
	if errs != nil {
		return &ActionState{
			Errors:  errs,
			Message: "Missing Fields. Failed to Create Invoice.",
		}
	}

	invoice, err := invoicing.NewInvoice(data.CustomerID, data.Amount, data.Status, a.now())
	if err == nil {
		err = a.repo.Create(ctx, invoice)
	}
	if err != nil {
		a.logger.Error("Failed to create invoice", zap.Error(err))
		return &ActionState{Message: "Database error: Failed to create invoice."}
	}

	a.cache.NotifyListChanged(ctx, InvoicesPath)
	nav.NavigateTo(InvoicesPath)
	return nil
}

// Update validates the submitted fields and rewrites the full field set for
// the given invoice id. The id is bound out-of-band and never validated as
// a form field.
func (a *InvoiceActions) Update(ctx context.Context, id string, _ ActionState, form url.Values, nav Navigator) *ActionState {
	data, errs := validateInvoiceForm(form)
	if errs != nil {
		return &ActionState{
			Errors:  errs,
			Message: "Missing Fields. Failed to Update Invoice.",
		}
	}

	invoice, err := invoicing.UpdatedInvoice(id, data.CustomerID, data.Amount, data.Status)
	if err == nil {
		err = a.repo.Update(ctx, invoice)
	}
	if err != nil {
		a.logger.Error("Failed to update invoice", zap.String("invoice_id", id), zap.Error(err))
		return &ActionState{Message: "Database Error. Failed to Update Invoice."}
	}

	a.cache.NotifyListChanged(ctx, InvoicesPath)
	nav.NavigateTo(InvoicesPath)
	return nil
}

// Delete removes the invoice with the given id. There is nothing to
// validate and no navigation: delete is invoked from the list view, which
// only needs its cache dropped. Deleting a missing id is a no-op success.
func (a *InvoiceActions) Delete(ctx context.Context, id string) *ActionState {
	if err := a.repo.Delete(ctx, id); err != nil {
		a.logger.Error("Failed to delete invoice", zap.String("invoice_id", id), zap.Error(err))
		return &ActionState{Message: "Database Error. Failed to Delete Invoice."}
	}

	a.cache.NotifyListChanged(ctx, InvoicesPath)
	return nil
}

package actions

import (
	"context"
	"net/url"

	"github.com/acme/dashboard/internal/domain/partner"
	"go.uber.org/zap"
)

// CustomerActions orchestrates the create, update and delete form actions
// for customers. It mirrors InvoiceActions shape for shape.
type CustomerActions struct {
	repo   partner.CustomerRepository
	cache  ListCache
	logger *zap.Logger
}

// NewCustomerActions creates the customer action orchestrator
func NewCustomerActions(repo partner.CustomerRepository, cache ListCache, logger *zap.Logger) *CustomerActions {
	return &CustomerActions{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Create validates the submitted fields and inserts a new customer. The
// image path is always the placeholder on creation, regardless of what the
// form carries; uploads replace it through the update flow.
func (a *CustomerActions) Create(ctx context.Context, _ ActionState, form url.Values, nav Navigator) *ActionState {
	data, errs := validateCustomerForm(form, true)
	if errs != nil {
		return &ActionState{
			Errors:  errs,
			Message: "Missing Fields. Failed to Create Customer.",
		}
	}

	customer, err := partner.NewCustomer(data.Name, data.Email, data.ImageURL)
	if err == nil {
		err = a.repo.Create(ctx, customer)
	}
	if err != nil {
		a.logger.Error("Failed to create customer", zap.Error(err))
		return &ActionState{Message: "Database error: Failed to create customer."}
	}

	a.cache.NotifyListChanged(ctx, CustomersPath)
	nav.NavigateTo(CustomersPath)
	return nil
}

// Update validates the submitted fields, including the image path prefix
// rule, and rewrites the full field set for the given customer id.
func (a *CustomerActions) Update(ctx context.Context, id string, _ ActionState, form url.Values, nav Navigator) *ActionState {
	data, errs := validateCustomerForm(form, false)
	if errs != nil {
		return &ActionState{
			Errors:  errs,
			Message: "Missing Fields. Failed to Update Customer.",
		}
	}

	customer, err := partner.UpdatedCustomer(id, data.Name, data.Email, data.ImageURL)
	if err == nil {
		err = a.repo.Update(ctx, customer)
	}
	if err != nil {
		a.logger.Error("Failed to update customer", zap.String("customer_id", id), zap.Error(err))
		return &ActionState{Message: "Database Error. Failed to Update Customer."}
	}

	a.cache.NotifyListChanged(ctx, CustomersPath)
	nav.NavigateTo(CustomersPath)
	return nil
}

// Delete removes the customer with the given id and drops the cached list.
// Deleting a missing id is a no-op success.
func (a *CustomerActions) Delete(ctx context.Context, id string) *ActionState {
	if err := a.repo.Delete(ctx, id); err != nil {
		a.logger.Error("Failed to delete customer", zap.String("customer_id", id), zap.Error(err))
		return &ActionState{Message: "Database Error. Failed to Delete Customer."}
	}

	a.cache.NotifyListChanged(ctx, CustomersPath)
	return nil
}

package persistence

import (
	"context"
	"time"

	"github.com/acme/dashboard/internal/domain/invoicing"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements invoicing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Create inserts a new invoice
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *invoicing.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

// Update rewrites the customer, amount and status of an existing invoice.
// The issue date is never rewritten. Updating an invoice that does not
// exist is not an error.
func (r *GormInvoiceRepository) Update(ctx context.Context, invoice *invoicing.Invoice) error {
	return r.db.WithContext(ctx).
		Model(&invoicing.Invoice{}).
		Where("id = ?", invoice.ID).
		Updates(map[string]any{
			"customer_id": invoice.CustomerID,
			"amount":      invoice.AmountCents,
			"status":      invoice.Status,
			"updated_at":  time.Now(),
		}).Error
}

// Delete removes an invoice. Deleting an invoice that does not exist is
// not an error.
func (r *GormInvoiceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&invoicing.Invoice{}).Error
}

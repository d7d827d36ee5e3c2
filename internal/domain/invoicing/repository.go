package invoicing

import "context"

// InvoiceRepository defines persistence operations for invoices.
// Each method issues a single statement; there is no cross-call transaction.
type InvoiceRepository interface {
	// Create inserts a new invoice row.
	Create(ctx context.Context, invoice *Invoice) error

	// Update writes customer, amount and status for the invoice's id.
	// The issue date is never rewritten. Updating a missing id affects
	// zero rows and is not an error.
	Update(ctx context.Context, invoice *Invoice) error

	// Delete removes the invoice with the given id.
	// Deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error
}

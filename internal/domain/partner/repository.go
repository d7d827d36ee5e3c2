package partner

import "context"

// CustomerRepository defines persistence operations for customers.
// Each method issues a single statement; there is no cross-call transaction.
type CustomerRepository interface {
	// Create inserts a new customer row.
	Create(ctx context.Context, customer *Customer) error

	// Update writes the full field set for the customer's id.
	// Updating a missing id affects zero rows and is not an error.
	Update(ctx context.Context, customer *Customer) error

	// Delete removes the customer with the given id.
	// Deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error
}

// Package actions implements the validated-mutation pipeline behind the
// dashboard's form submissions: raw form fields are validated against a
// per-entity schema, persisted through a single-statement repository write,
// and followed by cache invalidation and navigation on success.
package actions

// FieldErrors maps a form field name to its ordered list of validation
// failure messages. Fields that pass validation have no entry.
type FieldErrors map[string][]string

// ActionState is the result returned to the UI after a form submission.
// Its shape is stable across submissions of the same form: the UI feeds the
// previous state back in on resubmit, but handlers never read it.
type ActionState struct {
	Errors  FieldErrors `json:"errors,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Dashboard list paths used for cache invalidation and navigation.
const (
	InvoicesPath  = "/dashboard/invoices"
	CustomersPath = "/dashboard/customers"
)

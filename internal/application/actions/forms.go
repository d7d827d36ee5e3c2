package actions

import (
	"net/url"
	"reflect"
	"strings"

	"github.com/acme/dashboard/internal/domain/invoicing"
	"github.com/acme/dashboard/internal/domain/partner"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// invoiceForm is the declarative schema for invoice submissions.
// All values arrive as strings; coercion happens after validation.
type invoiceForm struct {
	CustomerID string `form:"customerId" validate:"required"`
	Amount     string `form:"amount" validate:"required,amount"`
	Status     string `form:"status" validate:"required,oneof=pending paid"`
}

// customerForm is the declarative schema for customer submissions.
type customerForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	ImageURL string `form:"imageURL" validate:"required,startswith=/customers/"`
}

// InvoiceData is the validated, coerced field set for an invoice write.
type InvoiceData struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     invoicing.InvoiceStatus
}

// CustomerData is the validated field set for a customer write.
type CustomerData struct {
	Name     string
	Email    string
	ImageURL string
}

// User-facing messages per form field. Every rule failure on a field
// surfaces the same message, matching the form's guidance text.
var fieldMessages = map[string]string{
	"customerId": "Please select a customer.",
	"amount":     "Please enter an amount greater than $0.",
	"status":     "Please select an invoice status.",
	"name":       "Please enter a customer name.",
	"email":      "Please enter a valid email.",
	"imageURL":   "Please provide an image under " + partner.ImagePathPrefix + ".",
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// amount: a decimal string strictly greater than zero
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && d.IsPositive()
	})

	return v
}

// validateInvoiceForm validates raw invoice fields. It returns either the
// coerced data or the per-field error messages, never both. Every field is
// evaluated independently so all failures surface in one round trip.
func validateInvoiceForm(form url.Values) (*InvoiceData, FieldErrors) {
	f := invoiceForm{
		CustomerID: form.Get("customerId"),
		Amount:     form.Get("amount"),
		Status:     form.Get("status"),
	}
	if errs := collectFieldErrors(formValidator.Struct(f)); errs != nil {
		return nil, errs
	}

	amount, _ := decimal.NewFromString(strings.TrimSpace(f.Amount))
	return &InvoiceData{
		CustomerID: f.CustomerID,
		Amount:     amount,
		Status:     invoicing.InvoiceStatus(f.Status),
	}, nil
}

// validateCustomerForm validates raw customer fields. Creation never trusts
// a submitted image path: the placeholder is forced before validation, so
// the prefix rule only bites on update.
func validateCustomerForm(form url.Values, forcePlaceholderImage bool) (*CustomerData, FieldErrors) {
	f := customerForm{
		Name:     form.Get("name"),
		Email:    form.Get("email"),
		ImageURL: form.Get("imageURL"),
	}
	if forcePlaceholderImage {
		f.ImageURL = partner.PlaceholderImagePath
	}
	if errs := collectFieldErrors(formValidator.Struct(f)); errs != nil {
		return nil, errs
	}

	return &CustomerData{
		Name:     f.Name,
		Email:    f.Email,
		ImageURL: f.ImageURL,
	}, nil
}

// collectFieldErrors converts validator failures into the field-error
// mapping the UI consumes. A nil return means the form passed.
func collectFieldErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// The static schemas above can only fail rule-by-rule; anything
		// else is a programming error in the schema itself.
		panic(err)
	}

	errs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := fieldMessages[field]
		if !ok {
			msg = "Invalid value."
		}
		errs[field] = append(errs[field], msg)
	}
	return errs
}

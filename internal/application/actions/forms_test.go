package actions

import (
	"errors"
	"net/url"
	"testing"

	"github.com/acme/dashboard/internal/domain/invoicing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceFormValues(customerID, amount, status string) url.Values {
	return url.Values{
		"customerId": {customerID},
		"amount":     {amount},
		"status":     {status},
	}
}

func customerFormValues(name, email, imageURL string) url.Values {
	return url.Values{
		"name":     {name},
		"email":    {email},
		"imageURL": {imageURL},
	}
}

func TestValidateInvoiceForm(t *testing.T) {
	t.Run("coerces a valid submission", func(t *testing.T) {
		data, errs := validateInvoiceForm(invoiceFormValues("c1", "15.50", "pending"))

		require.Nil(t, errs)
		assert.Equal(t, "c1", data.CustomerID)
		assert.True(t, decimal.RequireFromString("15.50").Equal(data.Amount))
		assert.Equal(t, invoicing.InvoiceStatusPending, data.Status)
	})

	t.Run("missing customer", func(t *testing.T) {
		data, errs := validateInvoiceForm(invoiceFormValues("", "15.50", "pending"))

		assert.Nil(t, data)
		assert.Equal(t, []string{"Please select a customer."}, errs["customerId"])
		assert.NotContains(t, errs, "amount")
		assert.NotContains(t, errs, "status")
	})

	t.Run("amount must be a positive number", func(t *testing.T) {
		for _, amount := range []string{"", "abc", "0", "-5", "0.00"} {
			_, errs := validateInvoiceForm(invoiceFormValues("c1", amount, "paid"))
			require.NotNil(t, errs, "amount %q accepted", amount)
			assert.Equal(t, []string{"Please enter an amount greater than $0."}, errs["amount"])
		}
	})

	t.Run("status outside the enum", func(t *testing.T) {
		for _, status := range []string{"", "overdue", "PAID"} {
			_, errs := validateInvoiceForm(invoiceFormValues("c1", "1", status))
			require.NotNil(t, errs, "status %q accepted", status)
			assert.Equal(t, []string{"Please select an invoice status."}, errs["status"])
		}
	})

	t.Run("reports every failing field in one pass", func(t *testing.T) {
		data, errs := validateInvoiceForm(url.Values{})

		assert.Nil(t, data)
		assert.Len(t, errs, 3)
		assert.Contains(t, errs, "customerId")
		assert.Contains(t, errs, "amount")
		assert.Contains(t, errs, "status")
	})
}

func TestValidateCustomerForm(t *testing.T) {
	t.Run("accepts a valid submission", func(t *testing.T) {
		data, errs := validateCustomerForm(customerFormValues("Amy Burns", "amy@burns.com", "/customers/amy.png"), false)

		require.Nil(t, errs)
		assert.Equal(t, "Amy Burns", data.Name)
		assert.Equal(t, "amy@burns.com", data.Email)
		assert.Equal(t, "/customers/amy.png", data.ImageURL)
	})

	t.Run("forces the placeholder image on create", func(t *testing.T) {
		form := customerFormValues("Amy Burns", "amy@burns.com", "https://evil.example/avatar.png")
		data, errs := validateCustomerForm(form, true)

		require.Nil(t, errs)
		assert.Equal(t, "/customers/default.png", data.ImageURL)
	})

	t.Run("missing name", func(t *testing.T) {
		_, errs := validateCustomerForm(customerFormValues("", "amy@burns.com", ""), true)
		assert.Equal(t, []string{"Please enter a customer name."}, errs["name"])
	})

	t.Run("malformed email", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "amy@"} {
			_, errs := validateCustomerForm(customerFormValues("Amy Burns", email, ""), true)
			require.NotNil(t, errs, "email %q accepted", email)
			assert.Equal(t, []string{"Please enter a valid email."}, errs["email"])
		}
	})

	t.Run("update rejects image outside the namespace", func(t *testing.T) {
		form := customerFormValues("Amy Burns", "amy@burns.com", "https://evil.example/avatar.png")
		data, errs := validateCustomerForm(form, false)

		assert.Nil(t, data)
		assert.Contains(t, errs, "imageURL")
	})

	t.Run("collects all failures together", func(t *testing.T) {
		_, errs := validateCustomerForm(url.Values{}, false)
		assert.Len(t, errs, 3)
	})
}

func TestCollectFieldErrors(t *testing.T) {
	t.Run("nil error means the form passed", func(t *testing.T) {
		assert.Nil(t, collectFieldErrors(nil))
	})

	t.Run("panics on a non-validation error", func(t *testing.T) {
		assert.Panics(t, func() {
			collectFieldErrors(errors.New("broken schema"))
		})
	})
}

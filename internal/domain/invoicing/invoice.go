package invoicing

import (
	"time"

	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice represents an invoice issued to a customer.
// The amount is stored in minor units (cents) so the persisted value is
// always an exact integer.
type Invoice struct {
	shared.BaseEntity
	CustomerID  string        `gorm:"type:uuid;not null;index"`
	AmountCents int64         `gorm:"column:amount;not null"`
	Status      InvoiceStatus `gorm:"type:varchar(10);not null"`
	Date        time.Time     `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates an invoice dated now with a generated ID.
// The amount is the user-facing decimal value; it is converted to cents.
func NewInvoice(customerID string, amount decimal.Decimal, status InvoiceStatus, now time.Time) (*Invoice, error) {
	if err := validateCustomerID(customerID); err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	return &Invoice{
		BaseEntity:  shared.NewBaseEntity(),
		CustomerID:  customerID,
		AmountCents: Cents(amount),
		Status:      status,
		Date:        now.Truncate(24 * time.Hour),
	}, nil
}

// UpdatedInvoice builds an invoice carrying the full field set to write for
// an existing id. The issue date is never touched on update.
func UpdatedInvoice(id, customerID string, amount decimal.Decimal, status InvoiceStatus) (*Invoice, error) {
	if err := validateCustomerID(customerID); err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	return &Invoice{
		BaseEntity:  shared.BaseEntity{ID: id, UpdatedAt: time.Now()},
		CustomerID:  customerID,
		AmountCents: Cents(amount),
		Status:      status,
	}, nil
}

// Amount returns the invoice amount as a decimal, the exact inverse of the
// cents conversion applied at write time.
func (i *Invoice) Amount() decimal.Decimal {
	return FromCents(i.AmountCents)
}

// Cents converts a decimal currency amount to integer minor units.
// Amounts with at most two decimal places convert exactly.
func Cents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// FromCents converts integer minor units back to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Shift(-2)
}

func validateCustomerID(customerID string) error {
	if customerID == "" {
		return shared.NewDomainError("INVALID_CUSTOMER", "Customer reference cannot be empty")
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be greater than zero")
	}
	return nil
}

func validateStatus(status InvoiceStatus) error {
	switch status {
	case InvoiceStatusPending, InvoiceStatusPaid:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invoice status must be 'pending' or 'paid'")
	}
}

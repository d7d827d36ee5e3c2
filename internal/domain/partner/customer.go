package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/acme/dashboard/internal/domain/shared"
)

const (
	// ImagePathPrefix is the reserved namespace for customer images.
	// Every stored image path must live under it.
	ImagePathPrefix = "/customers/"

	// PlaceholderImagePath is the image assigned to newly created customers
	// until a real picture is uploaded.
	PlaceholderImagePath = "/customers/default.png"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Customer represents a customer of the business.
// It is the aggregate root for customer-related operations.
type Customer struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(255);not null"`
	Email    string `gorm:"type:varchar(255);not null"`
	ImageURL string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with a generated ID.
// An empty imageURL falls back to the placeholder image.
func NewCustomer(name, email, imageURL string) (*Customer, error) {
	if imageURL == "" {
		imageURL = PlaceholderImagePath
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateImagePath(imageURL); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		ImageURL:   imageURL,
	}, nil
}

// UpdatedCustomer builds a customer carrying the full field set to write
// for an existing id. The id itself is never validated here; a missing row
// is a store-level concern.
func UpdatedCustomer(id, name, email, imageURL string) (*Customer, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateImagePath(imageURL); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.BaseEntity{ID: id, UpdatedAt: time.Now()},
		Name:       name,
		Email:      email,
		ImageURL:   imageURL,
	}, nil
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 255 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 255 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validateImagePath(imageURL string) error {
	if !strings.HasPrefix(imageURL, ImagePathPrefix) {
		return shared.NewDomainError("INVALID_IMAGE_PATH", "Image path must be under "+ImagePathPrefix)
	}
	return nil
}

package persistence

import (
	"context"
	"time"

	"github.com/acme/dashboard/internal/domain/partner"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Create inserts a new customer
func (r *GormCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// Update rewrites the full field set of an existing customer. Updating a
// customer that does not exist is not an error.
func (r *GormCustomerRepository) Update(ctx context.Context, customer *partner.Customer) error {
	return r.db.WithContext(ctx).
		Model(&partner.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":       customer.Name,
			"email":      customer.Email,
			"image_url":  customer.ImageURL,
			"updated_at": time.Now(),
		}).Error
}

// Delete removes a customer. Deleting a customer that does not exist is
// not an error.
func (r *GormCustomerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&partner.Customer{}).Error
}

package repository

import (
	"gorm.io/gorm"

	"github.com/aaronwittchen/Invoicipedia/internal/models"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) DB() *gorm.DB {
	return r.db
}

// Create persists a customer, optionally inside a caller-supplied
// transaction.
func (r *CustomerRepository) Create(tx *gorm.DB, customer *models.Customer) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(customer).Error
}

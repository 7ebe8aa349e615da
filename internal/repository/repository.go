package repository

import (
	"errors"

	"customer-service/internal/domain"
)

// ErrNotFound is returned when an operation targets a row that does not exist.
var ErrNotFound = errors.New("record not found")

type CustomerRepository interface {
	FindAll() ([]domain.Customer, error)
	FindByID(id uint64) (*domain.Customer, error)
	Save(customer *domain.Customer) error
	Update(id uint64, fields *domain.Customer) (*domain.Customer, error)
	Delete(id uint64) error
}

type OrderRepository interface {
	FindByID(id uint64) (*domain.Order, error)
	FindByCustomerID(customerID uint64) ([]domain.Order, error)
	CreateWithLog(order *domain.Order) error
	DeleteWithLog(id uint64) error
}

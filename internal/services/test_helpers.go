package services

import (
	"time"

	"customer-service/internal/domain"
)

func CreateMockCustomer(id uint64, name, email string, age *float64) *domain.Customer {
	return &domain.Customer{
		ID:        id,
		Name:      name,
		Email:     email,
		Age:       age,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func CreateMockOrder(id, customerID uint64, quantity int64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:         id,
		CustomerID: customerID,
		Quantity:   quantity,
		Status:     status,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

const (
	TestCustomerID    = uint64(1)
	TestOrderID       = uint64(1)
	TestQuantity      = int64(3)
	TestCustomerName  = "Test Customer"
	TestCustomerEmail = "test@example.com"
)

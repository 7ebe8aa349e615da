package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
)

type Order struct {
	ID         uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID uint64      `json:"customerId" gorm:"not null;index"`
	Quantity   int64       `json:"quantity" gorm:"not null"`
	Status     OrderStatus `json:"status" gorm:"type:enum('pending','shipped','delivered');default:'pending'"`
	CreatedAt  time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

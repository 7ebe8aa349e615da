package domain

import "time"

type OrderAction string

const (
	ActionCreated OrderAction = "created"
	ActionDeleted OrderAction = "deleted"
)

// OrderLog rows are append-only. OrderID is deliberately not a foreign key:
// a "deleted" entry outlives the order it refers to.
type OrderLog struct {
	ID        uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64      `json:"orderId" gorm:"not null;index"`
	Action    OrderAction `json:"action" gorm:"size:16;not null"`
	Timestamp time.Time   `json:"timestamp" gorm:"autoCreateTime"`
}

package domain

import "time"

// OrderEvent mirrors an OrderLog entry on the message bus.
type OrderEvent struct {
	OrderID    uint64      `json:"orderId"`
	CustomerID uint64      `json:"customerId"`
	Quantity   int64       `json:"quantity"`
	Action     OrderAction `json:"action"`
	OccurredAt time.Time   `json:"occurredAt"`
}

package http

// CustomerRequest covers both create and update; on update the path id is
// authoritative and any body id is ignored.
type CustomerRequest struct {
	Name  string   `json:"name" binding:"required,min=2"`
	Email string   `json:"email" binding:"required,email"`
	Age   *float64 `json:"age" binding:"omitempty,gte=0"`
}

type CreateOrderRequest struct {
	CustomerID uint64 `json:"customerId" binding:"required"`
	Quantity   int64  `json:"quantity" binding:"required,gt=0"`
}

type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

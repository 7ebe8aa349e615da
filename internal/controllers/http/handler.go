package http

import (
	"errors"
	"net/http"
	"strconv"

	"customer-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	customers *services.CustomerService
	orders    *services.OrderService
}

func NewHandler(customers *services.CustomerService, orders *services.OrderService) *Handler {
	return &Handler{customers: customers, orders: orders}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/customers", h.ListCustomers)
	api.POST("/customers", h.CreateCustomer)
	api.PUT("/customers/:id", h.UpdateCustomer)
	api.DELETE("/customers/:id", h.DeleteCustomer)
	api.GET("/customers/:id/orders", h.ListCustomerOrders)
	api.POST("/orders", h.CreateOrder)
	api.DELETE("/orders/:id", h.DeleteOrder)
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidData(c, "Invalid customer data", err)
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), req.Name, req.Email, req.Age)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer data"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidData(c, "Invalid customer data", err)
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), id, req.Name, req.Email, req.Age)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update customer",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ListCustomerOrders(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	orders, err := h.orders.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidData(c, "Invalid order data", err)
		return
	}

	order, err := h.orders.Create(c.Request.Context(), req.CustomerID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, services.ErrOrderShipped):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete shipped orders"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// invalidData writes a 400 with per-field violations when the bind failure
// came from the validator; malformed JSON gets the bare message.
func invalidData(c *gin.Context, message string, err error) {
	body := gin.H{"error": message}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldViolation{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: fe.Error(),
			})
		}
		body["details"] = details
	}
	c.JSON(http.StatusBadRequest, body)
}

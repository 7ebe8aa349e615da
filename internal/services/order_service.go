package services

import (
	"context"
	"errors"
	"log"
	"time"

	"customer-service/internal/domain"
	rabbit "customer-service/internal/infra/rabbitmq"
	"customer-service/internal/repository"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderShipped  = errors.New("cannot delete shipped orders")
)

type OrderService struct {
	repo      repository.OrderRepository
	customers repository.CustomerRepository
	publisher rabbit.PublisherInterface
}

func NewOrderService(r repository.OrderRepository, customers repository.CustomerRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		customers: customers,
		publisher: pub,
	}
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error) {
	orders, err := s.repo.FindByCustomerID(customerID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// Create checks the referenced customer exists before writing; orders are
// never accepted against a customer id the store has no row for.
func (s *OrderService) Create(ctx context.Context, customerID uint64, quantity int64) (*domain.Order, error) {
	customer, err := s.customers.FindByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	order := &domain.Order{
		CustomerID: customerID,
		Quantity:   quantity,
		Status:     domain.StatusPending,
	}

	if err := s.repo.CreateWithLog(order); err != nil {
		return nil, err
	}

	go s.publishOrderEvent(context.Background(), order, domain.ActionCreated)

	return order, nil
}

// Delete enforces the shipped guard before any mutation: a shipped order is
// never deleted and never produces an audit entry.
func (s *OrderService) Delete(ctx context.Context, id uint64) error {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.Status == domain.StatusShipped {
		return ErrOrderShipped
	}

	if err := s.repo.DeleteWithLog(id); err != nil {
		// The order can vanish between the status check above and the
		// transactional delete; the repository reports that as not found.
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	go s.publishOrderEvent(context.Background(), order, domain.ActionDeleted)

	return nil
}

func (s *OrderService) publishOrderEvent(ctx context.Context, order *domain.Order, action domain.OrderAction) {
	if s.publisher == nil {
		return
	}

	evt := domain.OrderEvent{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Quantity:   order.Quantity,
		Action:     action,
		OccurredAt: time.Now(),
	}

	routingKey := "order." + string(action)
	if err := s.publisher.Publish(ctx, routingKey, evt); err != nil {
		log.Printf("Failed to publish %s event for order %d: %v", routingKey, order.ID, err)
	}
}

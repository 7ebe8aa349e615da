package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"customer-service/internal/domain"
	"customer-service/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"
)

var ErrCustomerNotFound = errors.New("customer not found")

const (
	customerListCacheKey = "customers:all"
	customerListCacheTTL = time.Minute
)

type CustomerService struct {
	repo        repository.CustomerRepository
	redisClient *redis.Client
	listGroup   singleflight.Group
}

func NewCustomerService(r repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: r}
}

func (s *CustomerService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, customerListCacheKey).Result()
		if err == nil {
			var customers []domain.Customer
			if err := json.Unmarshal([]byte(cached), &customers); err == nil {
				return customers, nil
			}
		}
	}

	// Collapse concurrent cache misses into a single store read.
	v, err, _ := s.listGroup.Do(customerListCacheKey, func() (any, error) {
		customers, err := s.repo.FindAll()
		if err != nil {
			return nil, err
		}
		if customers == nil {
			customers = []domain.Customer{}
		}
		if s.redisClient != nil {
			if data, err := json.Marshal(customers); err == nil {
				s.redisClient.Set(ctx, customerListCacheKey, data, customerListCacheTTL)
			}
		}
		return customers, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Customer), nil
}

func (s *CustomerService) Create(ctx context.Context, name, email string, age *float64) (*domain.Customer, error) {
	customer := &domain.Customer{
		Name:  name,
		Email: email,
		Age:   age,
	}

	if err := s.repo.Save(customer); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id uint64, name, email string, age *float64) (*domain.Customer, error) {
	fields := &domain.Customer{
		Name:  name,
		Email: email,
		Age:   age,
	}

	customer, err := s.repo.Update(id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	s.invalidateListCache(ctx)
	return customer, nil
}

// Delete reports success whether or not the row existed. Orders referencing
// the customer are left in place.
func (s *CustomerService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *CustomerService) invalidateListCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, customerListCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate customer cache: %v", err)
	}
}

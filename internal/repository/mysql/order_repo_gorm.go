package mysql

import (
	"errors"
	"log"

	"customer-service/internal/domain"
	"customer-service/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByCustomerID(customerID uint64) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("FindByCustomerID error: %v", err)
		return nil, err
	}
	return out, nil
}

// CreateWithLog inserts the order and its "created" audit entry in one
// transaction; neither is visible unless both commit.
func (r *orderRepo) CreateWithLog(order *domain.Order) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if order.ID == 0 {
			return errors.New("failed to assign order ID")
		}
		entry := domain.OrderLog{
			OrderID: order.ID,
			Action:  domain.ActionCreated,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		log.Printf("CreateWithLog error: %v", err)
	}
	return err
}

// DeleteWithLog removes the order and appends the "deleted" audit entry in
// one transaction. The audit row keeps the id of the row just removed.
// When no row matches (the order vanished between the caller's status check
// and this call) the transaction rolls back with ErrNotFound so no audit
// entry is written for a delete that did nothing.
func (r *orderRepo) DeleteWithLog(id uint64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		entry := domain.OrderLog{
			OrderID: id,
			Action:  domain.ActionDeleted,
		}
		return tx.Create(&entry).Error
	})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Printf("DeleteWithLog error: %v", err)
	}
	return err
}

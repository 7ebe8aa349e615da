package mysql

import (
	"errors"
	"log"

	"customer-service/internal/domain"
	"customer-service/internal/repository"

	"gorm.io/gorm"
)

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) FindAll() ([]domain.Customer, error) {
	var out []domain.Customer
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		log.Printf("FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *customerRepo) FindByID(id uint64) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByID error: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) Save(customer *domain.Customer) error {
	result := r.db.Create(customer)
	if result.Error != nil {
		log.Printf("Database save error: %v", result.Error)
		return result.Error
	}

	if customer.ID == 0 {
		log.Printf("WARNING: Customer saved but ID is still 0. Rows affected: %d", result.RowsAffected)
		return errors.New("failed to assign customer ID")
	}

	return nil
}

func (r *customerRepo) Update(id uint64, fields *domain.Customer) (*domain.Customer, error) {
	var current domain.Customer
	if err := r.db.First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		log.Printf("Update lookup error: %v", err)
		return nil, err
	}

	if err := r.db.Model(&current).Updates(customerUpdateColumns(fields)).Error; err != nil {
		log.Printf("Update error: %v", err)
		return nil, err
	}
	return &current, nil
}

// customerUpdateColumns builds the column map for an update. A request that
// omits age leaves the stored value alone; there is no way to clear it
// through the API.
func customerUpdateColumns(fields *domain.Customer) map[string]any {
	updates := map[string]any{
		"name":  fields.Name,
		"email": fields.Email,
	}
	if fields.Age != nil {
		updates["age"] = *fields.Age
	}
	return updates
}

// Delete succeeds even when no row matches; callers treat it as idempotent.
func (r *customerRepo) Delete(id uint64) error {
	if err := r.db.Delete(&domain.Customer{}, id).Error; err != nil {
		log.Printf("Delete error: %v", err)
		return err
	}
	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/models"
)

// customerRecord is the gorm mapping of the customer table.
type customerRecord struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name"`
	Email        string `gorm:"column:email"`
	Age          int    `gorm:"column:age"`
	Gender       string `gorm:"column:gender"`
	PasswordHash string `gorm:"column:password_hash"`
}

func (customerRecord) TableName() string {
	return customerTable
}

func newCustomerRecord(c models.Customer) customerRecord {
	return customerRecord{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Age:          c.Age,
		Gender:       string(c.Gender),
		PasswordHash: c.PasswordHash,
	}
}

func (r customerRecord) toModel() models.Customer {
	return models.Customer{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Age:          r.Age,
		Gender:       models.Gender(r.Gender),
		PasswordHash: r.PasswordHash,
	}
}

type gormCustomerRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewGormCustomerRepository returns a [CustomerRepository] backed by gorm.
// db must be opened with TranslateError enabled.
func NewGormCustomerRepository(db *gorm.DB, log *logger.Logger) CustomerRepository {
	log.Debug().Msg("creating gorm customer repository")
	return &gormCustomerRepository{db: db, logger: log}
}

func (r *gormCustomerRepository) SelectAll(ctx context.Context) ([]models.Customer, error) {
	var records []customerRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormCustomerRepository.SelectAll").Msg("error selecting customers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	customers := make([]models.Customer, 0, len(records))
	for _, rec := range records {
		customers = append(customers, rec.toModel())
	}

	return customers, nil
}

func (r *gormCustomerRepository) SelectByID(ctx context.Context, id int64) (models.Customer, error) {
	return r.take(ctx, "id = ?", id)
}

func (r *gormCustomerRepository) SelectByEmail(ctx context.Context, email string) (models.Customer, error) {
	return r.take(ctx, "email = ?", email)
}

func (r *gormCustomerRepository) take(ctx context.Context, cond string, value any) (models.Customer, error) {
	var rec customerRecord
	err := r.db.WithContext(ctx).Where(cond, value).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Customer{}, ErrCustomerNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormCustomerRepository.take").Str("cond", cond).Msg("error selecting customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rec.toModel(), nil
}

func (r *gormCustomerRepository) Insert(ctx context.Context, customer models.Customer) (models.Customer, error) {
	rec := newCustomerRecord(customer)
	rec.ID = 0

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormCustomerRepository.Insert").Msg("error inserting customer")
		return models.Customer{}, translateGormError(err)
	}

	return rec.toModel(), nil
}

func (r *gormCustomerRepository) Update(ctx context.Context, customer models.Customer) error {
	err := r.db.WithContext(ctx).
		Model(&customerRecord{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":   customer.Name,
			"email":  customer.Email,
			"age":    customer.Age,
			"gender": string(customer.Gender),
		}).Error
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormCustomerRepository.Update").Int64("id", customer.ID).Msg("error updating customer")
		return translateGormError(err)
	}

	return nil
}

func (r *gormCustomerRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&customerRecord{}).Error; err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormCustomerRepository.DeleteByID").Int64("id", id).Msg("error deleting customer")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *gormCustomerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "id = ?", id)
}

func (r *gormCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *gormCustomerRepository) exists(ctx context.Context, cond string, value any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&customerRecord{}).Where(cond, value).Count(&count).Error; err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gormCustomerRepository.exists").Str("cond", cond).Msg("error counting customers")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func translateGormError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

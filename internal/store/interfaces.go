package store

import (
	"context"

	"github.com/MKhiriev/go-customer-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/customer_repository_mock.go -package=mock

// CustomerRepository persists customers. The SQL and GORM engines and the
// redis decorator all satisfy the same contract:
//   - SelectByID and SelectByEmail return [ErrCustomerNotFound] when absent.
//   - Insert ignores customer.ID and returns the customer with its new ID.
//   - Update overwrites name, email, age and gender by ID; a missing ID is a no-op.
//   - DeleteByID on a missing ID is a no-op.
//   - Insert and Update return [ErrEmailAlreadyExists] on a duplicate email.
type CustomerRepository interface {
	SelectAll(ctx context.Context) ([]models.Customer, error)
	SelectByID(ctx context.Context, id int64) (models.Customer, error)
	SelectByEmail(ctx context.Context, email string) (models.Customer, error)
	Insert(ctx context.Context, customer models.Customer) (models.Customer, error)
	Update(ctx context.Context, customer models.Customer) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ErrorClassificator translates driver specific errors into store sentinels.
// Errors it does not recognise are returned unchanged.
type ErrorClassificator interface {
	Classify(err error) error
}

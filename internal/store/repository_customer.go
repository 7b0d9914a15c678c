package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/models"
)

// customerRepository is the database/sql implementation of
// [CustomerRepository]. Statements are built with squirrel so the same code
// serves postgres and sqlite.
type customerRepository struct {
	db      *DB
	queries customerQueries
	logger  *logger.Logger
}

// NewCustomerRepository returns a [CustomerRepository] backed by db.
func NewCustomerRepository(db *DB, log *logger.Logger) CustomerRepository {
	log.Debug().Str("dialect", db.dialect).Msg("creating customer repository")
	return &customerRepository{
		db:      db,
		queries: customerQueries{builder: db.builder()},
		logger:  log,
	}
}

func (r *customerRepository) SelectAll(ctx context.Context) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.SelectAll").Msg("error selecting customers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			log.Err(err).Str("func", "*customerRepository.SelectAll").Msg("error scanning customer")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return customers, nil
}

func (r *customerRepository) SelectByID(ctx context.Context, id int64) (models.Customer, error) {
	return r.selectOne(ctx, "id", id, "*customerRepository.SelectByID")
}

func (r *customerRepository) SelectByEmail(ctx context.Context, email string) (models.Customer, error) {
	return r.selectOne(ctx, "email", email, "*customerRepository.SelectByEmail")
}

func (r *customerRepository) selectOne(ctx context.Context, column string, value any, funcName string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectBy(column, value)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, ErrCustomerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

func (r *customerRepository) Insert(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.insert(customer)
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&customer.ID); err != nil {
		log.Err(err).Str("func", "*customerRepository.Insert").Msg("error inserting customer")
		if classified := r.db.classify(err); errors.Is(classified, ErrEmailAlreadyExists) {
			return models.Customer{}, classified
		}
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return customer, nil
}

func (r *customerRepository) Update(ctx context.Context, customer models.Customer) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.update(customer)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*customerRepository.Update").Int64("id", customer.ID).Msg("error updating customer")
		if classified := r.db.classify(err); errors.Is(classified, ErrEmailAlreadyExists) {
			return classified
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *customerRepository) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.deleteByID(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteByID").Int64("id", id).Msg("error deleting customer")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *customerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "id", id)
}

func (r *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

func (r *customerRepository) exists(ctx context.Context, column string, value any) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.countBy(column, value)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*customerRepository.exists").Str("column", column).Msg("error counting customers")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

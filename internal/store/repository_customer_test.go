package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/models"
)

var customerRowColumns = []string{"id", "name", "email", "age", "gender", "password_hash"}

func newTestCustomerRepo(t *testing.T) (CustomerRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewCustomerRepository(&DB{
		DB:                 db,
		dialect:            "postgres",
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, logger.Nop())

	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func vova() models.Customer {
	return models.Customer{
		ID:           1,
		Name:         "Vova",
		Email:        "vova@test.com",
		Age:          22,
		Gender:       models.GenderMale,
		PasswordHash: "$2a$10$hash",
	}
}

func TestCustomerRepository_SelectAll(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	rows := sqlmock.NewRows(customerRowColumns).
		AddRow(1, "Vova", "vova@test.com", 22, "MALE", "$2a$10$hash").
		AddRow(2, "Olga", "olga@test.com", 30, "FEMALE", "$2a$10$other")
	mock.ExpectQuery(`^SELECT id, name, email, age, gender, password_hash FROM customer ORDER BY id$`).
		WillReturnRows(rows)

	customers, err := repo.SelectAll(context.Background())

	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, vova(), customers[0])
	assert.Equal(t, models.GenderFemale, customers[1].Gender)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_SelectAll_Empty(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM customer`).WillReturnRows(sqlmock.NewRows(customerRowColumns))

	customers, err := repo.SelectAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestCustomerRepository_SelectAll_QueryError(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM customer`).WillReturnError(errors.New("connection reset"))

	_, err := repo.SelectAll(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCustomerRepository_SelectAll_ScanError(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM customer`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.SelectAll(context.Background())

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestCustomerRepository_SelectByID(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery(`^SELECT (.+) FROM customer WHERE id = \$1$`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(customerRowColumns).AddRow(1, "Vova", "vova@test.com", 22, "MALE", "$2a$10$hash"))

	c, err := repo.SelectByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, vova(), c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_SelectByID_NotFound(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery(`FROM customer WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(customerRowColumns))

	_, err := repo.SelectByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerRepository_SelectByEmail(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery(`^SELECT (.+) FROM customer WHERE email = \$1$`).
		WithArgs("vova@test.com").
		WillReturnRows(sqlmock.NewRows(customerRowColumns).AddRow(1, "Vova", "vova@test.com", 22, "MALE", "$2a$10$hash"))

	c, err := repo.SelectByEmail(context.Background(), "vova@test.com")

	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", c.PasswordHash)
}

func TestCustomerRepository_SelectByEmail_DriverError(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery(`FROM customer WHERE email = \$1`).WillReturnError(sql.ErrConnDone)

	_, err := repo.SelectByEmail(context.Background(), "vova@test.com")

	assert.ErrorIs(t, err, ErrScanningRow)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestCustomerRepository_Insert(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)
	c := vova()
	c.ID = 0

	mock.ExpectQuery(`^INSERT INTO customer \(name,email,age,gender,password_hash\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id$`).
		WithArgs("Vova", "vova@test.com", 22, "MALE", "$2a$10$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.Insert(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "vova@test.com", created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Insert_UniqueViolation(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery(`INSERT INTO customer`).WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Insert(context.Background(), vova())

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCustomerRepository_Insert_OtherError(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery(`INSERT INTO customer`).WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.Insert(context.Background(), vova())

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCustomerRepository_Update(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectExec(`^UPDATE customer SET age = \$1, email = \$2, gender = \$3, name = \$4 WHERE id = \$5$`).
		WithArgs(22, "vova@test.com", "MALE", "Vova", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), vova()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Update_MissingIDIsNoop(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectExec(`UPDATE customer`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Update(context.Background(), vova()))
}

func TestCustomerRepository_Update_UniqueViolation(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectExec(`UPDATE customer`).WillReturnError(pgError(pgerrcode.UniqueViolation))

	assert.ErrorIs(t, repo.Update(context.Background(), vova()), ErrEmailAlreadyExists)
}

func TestCustomerRepository_DeleteByID(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectExec(`^DELETE FROM customer WHERE id = \$1$`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteByID(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_DeleteByID_Error(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectExec(`DELETE FROM customer`).WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, repo.DeleteByID(context.Background(), 1), ErrExecutingStatement)
}

func TestCustomerRepository_Exists(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "present", count: 1, want: true},
		{name: "absent", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCustomerRepo(t)

			mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM customer WHERE id = \$1$`).
				WithArgs(int64(1)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))
			mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM customer WHERE email = \$1$`).
				WithArgs("vova@test.com").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			byID, err := repo.ExistsByID(context.Background(), 1)
			require.NoError(t, err)
			byEmail, err := repo.ExistsByEmail(context.Background(), "vova@test.com")
			require.NoError(t, err)

			assert.Equal(t, tt.want, byID)
			assert.Equal(t, tt.want, byEmail)
		})
	}
}

func TestCustomerRepository_Exists_Error(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery(`SELECT COUNT`).WillReturnError(errors.New("boom"))

	_, err := repo.ExistsByEmail(context.Background(), "vova@test.com")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

package store

import "errors"

// Sentinel errors returned by repositories. Callers match them with [errors.Is].
var (
	// ErrCustomerNotFound is returned when a lookup by id or email matches no row.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrEmailAlreadyExists is returned when an insert or update violates
	// the unique constraint on customer.email.
	ErrEmailAlreadyExists = errors.New("customer email already exists")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan customer row")
	ErrScanningRows       = errors.New("failed to scan customer rows")

	ErrUnsupportedDialect = errors.New("unsupported database dialect")
	ErrUnsupportedEngine  = errors.New("unsupported storage engine")
)

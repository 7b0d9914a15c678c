package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-customer-service/models"
)

const customerTable = "customer"

var customerColumns = []string{"id", "name", "email", "age", "gender", "password_hash"}

// customerQueries renders the statements of the SQL repository for one
// placeholder format.
type customerQueries struct {
	builder sq.StatementBuilderType
}

func (q customerQueries) selectAll() (string, []any, error) {
	return q.builder.
		Select(customerColumns...).
		From(customerTable).
		OrderBy("id").
		ToSql()
}

func (q customerQueries) selectBy(column string, value any) (string, []any, error) {
	return q.builder.
		Select(customerColumns...).
		From(customerTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func (q customerQueries) countBy(column string, value any) (string, []any, error) {
	return q.builder.
		Select("COUNT(*)").
		From(customerTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func (q customerQueries) insert(c models.Customer) (string, []any, error) {
	return q.builder.
		Insert(customerTable).
		Columns("name", "email", "age", "gender", "password_hash").
		Values(c.Name, c.Email, c.Age, string(c.Gender), c.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
}

// update sets every mutable column; squirrel orders SetMap keys
// alphabetically: age, email, gender, name.
func (q customerQueries) update(c models.Customer) (string, []any, error) {
	return q.builder.
		Update(customerTable).
		SetMap(map[string]any{
			"name":   c.Name,
			"email":  c.Email,
			"age":    c.Age,
			"gender": string(c.Gender),
		}).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
}

func (q customerQueries) deleteByID(id int64) (string, []any, error) {
	return q.builder.
		Delete(customerTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (models.Customer, error) {
	var (
		c      models.Customer
		gender string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Age, &gender, &c.PasswordHash); err != nil {
		return models.Customer{}, err
	}
	c.Gender = models.Gender(gender)

	return c, nil
}

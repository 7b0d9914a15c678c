package models

// RoleUser is the only role granted to customers.
const RoleUser = "ROLE_USER"

// CustomerView is the read-facing projection of a Customer returned to
// API callers. It never carries the password hash.
type CustomerView struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Gender   Gender   `json:"gender"`
	Age      int      `json:"age"`
	Roles    []string `json:"roles"`
	Username string   `json:"username"`
}

// NewCustomerView builds the view of c. Username is the email.
func NewCustomerView(c Customer) CustomerView {
	return CustomerView{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Gender:   c.Gender,
		Age:      c.Age,
		Roles:    []string{RoleUser},
		Username: c.Email,
	}
}

package domain

import "time"

// PersonRole distinguishes renters from back-office operators.
// A document number is unique per role.
type PersonRole string

const (
	RoleUser     PersonRole = "user"
	RoleOperator PersonRole = "operator"
)

// Person represents a renter or an operator identified by a document number
type Person struct {
	ID       int64
	Name     string
	Document string
	Role     PersonRole

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOperator returns true if the person is a back-office operator
func (p *Person) IsOperator() bool {
	return p.Role == RoleOperator
}

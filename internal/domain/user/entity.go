package user

import "github.com/google/uuid"

// User represents a user account within a business.
type User struct {
	ID        uuid.UUID // ID is the unique identifier for the user
	FirstName string    // FirstName is the first name of the user
	LastName  string    // LastName is the last name of the user
	Email     string    // Email is the email address of the user
	Enabled   bool      // Enabled reports whether the account is enabled
	Activated bool      // Activated reports whether the account is activated
}

// NewAccount synthesizes the account record for the given identifier.
// Every identifier maps to the same fixed profile until a real lookup
// backs this service.
func NewAccount(id uuid.UUID) *User {
	return &User{
		ID:        id,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
		Enabled:   true,
		Activated: true,
	}
}

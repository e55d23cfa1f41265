package user

import "github.com/google/uuid"

// GetUserRequest is the input for retrieving a user account
type GetUserRequest struct {
	ID uuid.UUID
}

// GetUserResponse carries the user account returned by GetUser
type GetUserResponse struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Enabled   bool
	Activated bool
}

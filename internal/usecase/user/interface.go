package user

import "context"

// UserUsecase defines the business operations exposed to transport adapters.
// Handlers depend on this interface so tests can substitute a mock.
type UserUsecase interface {
	GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error)
}

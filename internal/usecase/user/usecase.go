package user

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "user-account-service/internal/domain/user"
	pkgerrors "user-account-service/pkg/errors"
)

// Usecase implements the business logic for user account lookups.
// It provides a clean separation between the transport layer and the
// account synthesis; there is no data layer behind it.
type Usecase struct {
	log *zap.Logger
}

// New creates a new instance of Usecase with the provided logger.
func New(log *zap.Logger) *Usecase {
	return &Usecase{log: log}
}

// GetUser retrieves the account record for the requested identifier.
// The all-zero identifier is reserved and never resolves to an account.
func (uc *Usecase) GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error) {
	if in.ID == uuid.Nil {
		uc.log.Warn("user lookup for reserved identifier", zap.String("id", in.ID.String()))
		return nil, pkgerrors.NewNotFoundError("user", "User not found")
	}

	uc.log.Debug("synthesizing user account", zap.String("id", in.ID.String()))

	u := domain.NewAccount(in.ID)
	return &GetUserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Enabled:   u.Enabled,
		Activated: u.Activated,
	}, nil
}

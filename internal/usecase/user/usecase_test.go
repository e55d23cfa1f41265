package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	pkgerrors "user-account-service/pkg/errors"
)

func setupTestUsecase(t *testing.T) *Usecase {
	return New(zaptest.NewLogger(t))
}

func TestGetUser(t *testing.T) {
	t.Run("Reserved Identifier", func(t *testing.T) {
		uc := setupTestUsecase(t)

		resp, err := uc.GetUser(context.Background(), GetUserRequest{ID: uuid.Nil})

		assert.Nil(t, resp)
		assert.Error(t, err)

		var notFound *pkgerrors.NotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.Equal(t, "User not found", err.Error())
	})

	t.Run("Synthesized Account", func(t *testing.T) {
		uc := setupTestUsecase(t)
		id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

		resp, err := uc.GetUser(context.Background(), GetUserRequest{ID: id})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "Jane", resp.FirstName)
		assert.Equal(t, "Doe", resp.LastName)
		assert.Equal(t, "jane.doe@example.com", resp.Email)
		assert.True(t, resp.Enabled)
		assert.True(t, resp.Activated)
	})

	t.Run("Response Carries Requested Identifier", func(t *testing.T) {
		uc := setupTestUsecase(t)

		for i := 0; i < 10; i++ {
			id := uuid.New()
			resp, err := uc.GetUser(context.Background(), GetUserRequest{ID: id})

			assert.NoError(t, err)
			assert.Equal(t, id, resp.ID)
		}
	})
}

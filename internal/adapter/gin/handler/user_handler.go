package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	usecase "user-account-service/internal/usecase/user"
	pkgerrors "user-account-service/pkg/errors"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  usecase.UserUsecase
	log *zap.Logger

	// marshal is swappable so the serialization failure path is testable
	marshal func(v any) ([]byte, error)
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc usecase.UserUsecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:      uc,
		log:     log,
		marshal: json.Marshal,
	}
}

// GetUserURI binds the path parameters of GET /users/:userId
type GetUserURI struct {
	UserID string `uri:"userId" binding:"required,uuid"`
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	UUID      string `json:"uuid"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Enabled   bool   `json:"enabled"`
	Activated bool   `json:"activated"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// GetUser handles GET /users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	var uri GetUserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.log.Warn("invalid user id", zap.String("id", c.Param("userId")), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: bindErrorMessage(err),
		})
		return
	}

	id, err := uuid.Parse(uri.UserID)
	if err != nil {
		h.log.Warn("invalid user id", zap.String("id", uri.UserID), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "userId must be a valid UUID",
		})
		return
	}

	resp, err := h.uc.GetUser(c.Request.Context(), usecase.GetUserRequest{ID: id})
	if err != nil {
		h.handleError(c, err)
		return
	}

	body, err := h.marshal(UserResponse{
		UUID:      resp.ID.String(),
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Email:     resp.Email,
		Enabled:   resp.Enabled,
		Activated: resp.Activated,
	})
	if err != nil {
		h.log.Error("failed to serialize user", zap.String("id", resp.ID.String()), zap.Error(err))
		c.String(http.StatusInternalServerError, "Unknown error")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// handleError converts usecase errors to appropriate HTTP responses
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var notFound *pkgerrors.NotFoundError
	if errors.As(err, &notFound) {
		c.String(notFound.HTTPStatus(), notFound.Error())
		return
	}

	var statuser pkgerrors.HTTPStatuser
	if errors.As(err, &statuser) {
		c.JSON(statuser.HTTPStatus(), ErrorResponse{
			Error:   "request_failed",
			Message: err.Error(),
		})
		return
	}

	h.log.Error("unhandled usecase error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}

// bindErrorMessage converts URI binding failures into a human-readable message
func bindErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "uuid":
				messages = append(messages, fmt.Sprintf("%s must be a valid UUID", e.Field()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return strings.Join(messages, ", ")
	}
	return err.Error()
}

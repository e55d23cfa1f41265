package di

import (
	"net/http"

	ginhandler "user-account-service/internal/adapter/gin/handler"
	"user-account-service/internal/docs"
)

// userSchema describes the User wire shape and the example values shown
// in the generated documentation.
func userSchema() docs.ObjectSchema {
	return docs.ObjectSchema{
		Name:        "User",
		Description: "Represents a user account within the business.",
		Fields: []docs.FieldSchema{
			{
				Name:        "uuid",
				Type:        "string",
				Format:      "uuid",
				Example:     "550e8400-e29b-41d4-a716-446655440000",
				Description: "Unique identifier for the user.",
			},
			{
				Name:        "firstName",
				Type:        "string",
				Example:     "Jane",
				Description: "First name of the user.",
			},
			{
				Name:        "lastName",
				Type:        "string",
				Example:     "Doe",
				Description: "Last name of the user.",
			},
			{
				Name:        "email",
				Type:        "string",
				Example:     "jane.doe@example.com",
				Description: "Email address of the user.",
			},
			{
				Name:        "enabled",
				Type:        "boolean",
				Example:     true,
				Description: "Whether the user's account is enabled.",
			},
			{
				Name:        "activated",
				Type:        "boolean",
				Example:     true,
				Description: "Whether the user's account is activated.",
			},
		},
	}
}

// userRoutes builds the route-metadata table for the user API.
//
// The lookup operation is documented under the business scope while the
// served route is the unscoped /users/{userId}; the scoped form is the
// published contract and the unscoped route its current binding.
func userRoutes(userHandler *ginhandler.UserHandler) []docs.RouteDescriptor {
	return []docs.RouteDescriptor{
		{
			Method:      http.MethodGet,
			Path:        "/business/{businessId}/users/{userId}",
			BindPath:    "/users/{userId}",
			OperationID: "get_user_by_id",
			Summary:     "Get user account by user id",
			Params: []docs.ParamDescriptor{
				{
					Name:        "businessId",
					In:          "path",
					Type:        "string",
					Format:      "uuid",
					Required:    true,
					Description: "Business id of the user",
				},
				{
					Name:        "userId",
					In:          "path",
					Type:        "string",
					Required:    true,
					Description: "User id to get user",
				},
			},
			Responses: []docs.ResponseDescriptor{
				{
					Status:      http.StatusOK,
					Description: "User",
					ContentType: "application/json",
					SchemaName:  "User",
				},
				{
					Status:      http.StatusNotFound,
					Description: "User not found",
					ContentType: "text/plain",
				},
			},
			Handler: userHandler.GetUser,
		},
	}
}

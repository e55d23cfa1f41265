package di

import (
	"fmt"

	"go.uber.org/zap"

	ginhandler "user-account-service/internal/adapter/gin/handler"
	"user-account-service/internal/config"
	"user-account-service/internal/docs"
	"user-account-service/internal/usecase/user"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	UserUC      user.UserUsecase
	UserHandler *ginhandler.UserHandler
	DocsHandler *ginhandler.DocsHandler
	Routes      []docs.RouteDescriptor
}

// NewContainer creates and initializes all application dependencies.
// The route-metadata table is built here, once, and handed to both the
// router and the documentation renderer.
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	userUC := user.New(l)
	userHandler := ginhandler.NewUserHandler(userUC, l)

	routes := userRoutes(userHandler)

	document := docs.BuildDocument(
		docs.Info{Title: cfg.Docs.Title, Version: cfg.Docs.Version},
		routes,
		[]docs.ObjectSchema{userSchema()},
	)

	docsHandler, err := ginhandler.NewDocsHandler(
		document,
		docs.ScalarConfig{Theme: cfg.Docs.Theme},
		l,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize docs handler: %w", err)
	}

	return &Container{
		Config:      cfg,
		Logger:      l,
		UserUC:      userUC,
		UserHandler: userHandler,
		DocsHandler: docsHandler,
		Routes:      routes,
	}, nil
}

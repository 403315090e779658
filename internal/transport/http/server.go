package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"

	"eblog_backend/internal/config"
	"eblog_backend/internal/database"
	"eblog_backend/internal/handler"
	"eblog_backend/internal/repository"
	"eblog_backend/internal/service"
)

// Run loads config, connects the store, wires the dependency graph and
// serves the API.
func Run() error {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	// Services
	userService := service.NewUserService(userRepo)
	tokenService := service.NewTokenService(cfg)
	postService := service.NewPostService(blogRepo)

	verifier, err := service.NewFirebaseVerifier(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize google auth: %w", err)
	}
	googleService := service.NewGoogleAuthService(verifier, userService, userRepo)

	mediaService, err := service.NewMediaService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize media service: %w", err)
	}

	// Handlers
	authHandler := handler.NewAuthHandler(userService, tokenService, googleService)
	postHandler := handler.NewPostHandler(postService, mediaService)

	router := NewRouter(RouterConfig{
		AuthHandler: authHandler,
		PostHandler: postHandler,
		JWTSecret:   cfg.JWTSecret,
	})

	log.Printf("Server is running on port %s", cfg.ServerPort)
	return stdhttp.ListenAndServe(":"+cfg.ServerPort, router)
}

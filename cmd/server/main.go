// @title         careerpilot API
// @version       1.0
// @description   Career guidance backend: signup/login, per-user learning progress and role recommendations computed from a static knowledge base.
// @BasePath      /api
// @schemes       http
// @host          localhost:5000
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token in the form "Bearer <JWT>".
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/careerpilot/backend/docs"

	// internal imports
	"github.com/careerpilot/backend/api/http"
	"github.com/careerpilot/backend/api/http/handlers"
	"github.com/careerpilot/backend/pkg/auth"
	"github.com/careerpilot/backend/pkg/catalog"
	"github.com/careerpilot/backend/pkg/config"
	"github.com/careerpilot/backend/pkg/health"
	"github.com/careerpilot/backend/pkg/health/checkers"
	"github.com/careerpilot/backend/pkg/recommend"
	filerepo "github.com/careerpilot/backend/pkg/repository/jsonfile"
	"github.com/careerpilot/backend/pkg/security/jwt"
	"github.com/careerpilot/backend/pkg/storage/jsonfile"
	"github.com/careerpilot/backend/pkg/user"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()

	// Open the JSON file store (bootstraps an empty document on first run)
	store, err := jsonfile.Open(cfg.DataFile)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	// Wire dependencies (Clean Architecture)
	userRepo := filerepo.NewUserRepository(store)
	cat := catalog.New()

	// Token generator
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)

	authUC := auth.NewAuthService(userRepo, jwtGen)
	authHandler := handlers.NewAuthHandler(authUC)

	profileUC := user.NewProfileService(userRepo, cat)
	profileHandler := handlers.NewProfileHandler(profileUC)

	engine := recommend.NewService(cat)
	recommendationHandler := handlers.NewRecommendationHandler(profileUC, engine)

	catalogHandler := handlers.NewCatalogHandler(cat)
	demoHandler := handlers.NewDemoHandler(userRepo)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewStoreChecker(store))
	healthHandler := handlers.NewHealthHandler(readiness)

	// JWT auth middleware for protected routes; tokens for users that no
	// longer exist in the store are rejected
	authMW := jwt.NewAuthMiddleware(jwtGen, jwt.SubjectCheckerFunc(func(ctx context.Context, email string) (bool, error) {
		_, err := userRepo.GetByEmail(ctx, email)
		if errors.Is(err, user.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}))

	// Register routes
	http.Register(app, authHandler, catalogHandler, profileHandler, recommendationHandler, demoHandler, healthHandler, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

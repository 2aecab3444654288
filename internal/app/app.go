// Package app provides application-level wiring for the feeding tracker:
// it assembles repositories, services, and the HTTP handler from the
// external dependencies that main() provides.
package app

import (
	"database/sql"

	"github.com/CodigoDemente/lactance-tracker-back/internal/api"
	"github.com/CodigoDemente/lactance-tracker-back/internal/auth"
	"github.com/CodigoDemente/lactance-tracker-back/internal/config"
	"github.com/CodigoDemente/lactance-tracker-back/internal/db/repository"
	"github.com/CodigoDemente/lactance-tracker-back/internal/service"
)

// Deps holds the external dependencies that main() must provide: config and
// database handles. The app package does not open or close any of them.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
}

// Services groups the service pointers the API handler needs.
type Services struct {
	User        *service.UserService
	Child       *service.ChildService
	Meal        *service.MealService
	Ownership   *service.OwnershipResolver
	Credentials *auth.CredentialValidator
	Tokens      *auth.TokenManager
}

// App holds the fully-wired application.
type App struct {
	Services Services
	Handler  *api.Handler
}

// New wires repositories, services, and the API handler from the provided
// deps.
func New(deps Deps) *App {
	userRepo := repository.NewUserRepo(deps.WriteDB, deps.ReadDB)
	childRepo := repository.NewChildRepo(deps.WriteDB, deps.ReadDB)
	mealRepo := repository.NewMealRepo(deps.WriteDB, deps.ReadDB)

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager([]byte(deps.Cfg.JWTSecret), deps.Cfg.TokenTTL)
	credentials := auth.NewCredentialValidator(userRepo, hasher)

	userSvc := service.NewUserService(userRepo, hasher)
	childSvc := service.NewChildService(childRepo, userRepo)
	mealSvc := service.NewMealService(mealRepo, childRepo)
	ownership := service.NewOwnershipResolver(childRepo, mealRepo)

	handler := api.NewHandler(userSvc, childSvc, mealSvc, ownership, credentials, tokens)

	return &App{
		Services: Services{
			User:        userSvc,
			Child:       childSvc,
			Meal:        mealSvc,
			Ownership:   ownership,
			Credentials: credentials,
			Tokens:      tokens,
		},
		Handler: handler,
	}
}

// Package api provides the HTTP handlers and route tree for the feeding
// tracker REST API.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CodigoDemente/lactance-tracker-back/internal/auth"
	"github.com/CodigoDemente/lactance-tracker-back/internal/middleware"
	"github.com/CodigoDemente/lactance-tracker-back/internal/service"
)

// Handler holds the services the HTTP layer dispatches to.
type Handler struct {
	users       *service.UserService
	children    *service.ChildService
	meals       *service.MealService
	ownership   *service.OwnershipResolver
	credentials *auth.CredentialValidator
	tokens      *auth.TokenManager
}

// NewHandler creates a Handler with all required service dependencies.
func NewHandler(
	users *service.UserService,
	children *service.ChildService,
	meals *service.MealService,
	ownership *service.OwnershipResolver,
	credentials *auth.CredentialValidator,
	tokens *auth.TokenManager,
) *Handler {
	return &Handler{
		users:       users,
		children:    children,
		meals:       meals,
		ownership:   ownership,
		credentials: credentials,
		tokens:      tokens,
	}
}

// Routes builds the /api/v1 route tree. Registration, login, and the
// existence probes are mounted outside the authentication middleware; every
// other route passes identity extraction first and the ownership guards
// second, before any business handler runs.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Public routes, exempt from identity extraction.
	r.Post("/auth/login", h.login)
	r.Post("/users", h.createUser)
	r.Get("/users/username/{username}", h.usernameExists)
	r.Get("/users/email/{email}", h.emailExists)

	// Authenticated routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(h.tokens))

		r.Get("/profile", h.profile)

		r.Route("/parents/{parentID}/children", func(r chi.Router) {
			r.Use(h.requireParentMatch)
			r.Get("/", h.listChildren)
			r.Post("/", h.createChild)
			r.Route("/{childID}", func(r chi.Router) {
				r.Use(h.requireChildOwnership)
				r.Get("/", h.getChild)
				r.Patch("/", h.editChild)
				r.Delete("/", h.deleteChild)
			})
		})

		r.Route("/children/{childID}/meals", func(r chi.Router) {
			r.Use(h.requireChildOwnership)
			r.Get("/", h.listMeals)
			r.Post("/", h.addMeal)
			r.Route("/{mealID}", func(r chi.Router) {
				r.Use(h.requireMealUnderChild)
				r.Get("/", h.getMeal)
				r.Patch("/", h.editMeal)
				r.Delete("/", h.deleteMeal)
			})
		})
	})

	return r
}

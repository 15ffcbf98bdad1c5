package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"velvetden-backend/internal/config"
	"velvetden-backend/internal/repository"
	"velvetden-backend/internal/security"
	"velvetden-backend/internal/service"
	"velvetden-backend/internal/storage"
)

// Services bundles everything the router needs.
type Services struct {
	Auth      service.AuthService
	Users     service.UserService
	Events    service.EventService
	Spaces    service.SpaceService
	Templates service.SpaceTemplateService
	Admin     service.AdminService
}

// NewRouter builds the full /api route tree. Three tiers: public
// (login, registration, event reads), authenticated (profile, booking) and
// admin (review queue, event and template management, file access).
func NewRouter(cfg *config.Config, svcs Services, tokens security.TokenManager, users repository.UserRepository, files storage.FileStorage) *mux.Router {
	m := &middleware{
		tokens:         tokens,
		users:          users,
		allowedOrigins: cfg.Server.AllowedOrigins,
	}

	root := mux.NewRouter()
	root.Use(requestLogging)
	root.Use(m.cors)

	api := root.PathPrefix("/api").Subrouter()

	authed := api.NewRoute().Subrouter()
	authed.Use(m.authenticate)

	admin := api.NewRoute().Subrouter()
	admin.Use(m.authenticate, m.requireAdmin)

	NewAuthHandler(svcs.Auth).Register(api)
	NewRegistrationHandler(svcs.Users, files).Register(api)
	NewUserHandler(svcs.Users, files).Register(authed)
	NewEventHandler(svcs.Events).Register(api, admin)
	NewSpaceHandler(svcs.Spaces).Register(authed)
	NewAdminHandler(svcs.Admin, svcs.Spaces, files).Register(admin)
	NewTemplateHandler(svcs.Templates).Register(authed, admin)
	NewFileHandler(files).Register(admin)

	// Preflight requests match no method-bound route; give them one so the
	// CORS middleware gets to answer.
	root.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	return root
}

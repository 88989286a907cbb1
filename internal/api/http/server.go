package http

import (
	"net/http"

	"equiprent-backend/internal/config"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Admin        *AdminHandler
	Request      *RequestHandler
	Order        *OrderHandler
	Notification *NotificationHandler
	Middleware   *AuthMiddleware
}

// NewRouter builds the full route table. Role-gated route groups declare
// their allow-lists from the static security config; the messages are
// group-specific so a refused caller sees exactly which gate stopped them.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(Recover)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public surface.
	api.HandleFunc("/health", healthCheck).Methods(http.MethodGet)
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/requests", h.Request.Submit).Methods(http.MethodPost)

	// Any authenticated staff member.
	authed := api.NewRoute().Subrouter()
	authed.Use(h.Middleware.Authenticate)
	authed.HandleFunc("/me", h.User.Me).Methods(http.MethodGet)
	authed.HandleFunc("/me", h.User.UpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/requests/{id:[0-9]+}", h.Request.Get).Methods(http.MethodGet)
	authed.HandleFunc("/notifications", h.Notification.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", h.Notification.MarkAsRead).Methods(http.MethodPost)

	// Equipment review surface.
	review := api.NewRoute().Subrouter()
	review.Use(h.Middleware.RequireRoles(
		"You must be logged in to review rental requests",
		"Only equipment inspectors can review rental requests",
		config.EquipmentReviewRoles...,
	))
	review.HandleFunc("/requests", h.Request.List).Methods(http.MethodGet)
	review.HandleFunc("/requests/{id:[0-9]+}/approve", h.Request.Approve).Methods(http.MethodPost)
	review.HandleFunc("/requests/{id:[0-9]+}/reject", h.Request.Reject).Methods(http.MethodPost)
	review.HandleFunc("/requests/{id:[0-9]+}/complete", h.Request.Complete).Methods(http.MethodPost)
	review.HandleFunc("/requests/{id:[0-9]+}/documents", h.Request.AttachDocuments).Methods(http.MethodPost)

	// Financial surface.
	financial := api.NewRoute().Subrouter()
	financial.Use(h.Middleware.RequireRoles(
		"You must be logged in to view rent orders",
		"Only financial inspectors can view rent orders",
		config.FinancialRoles...,
	))
	financial.HandleFunc("/orders", h.Order.List).Methods(http.MethodGet)

	// Administration surface.
	admin := api.PathPrefix("/admin").Subrouter()
	adminUsers := admin.NewRoute().Subrouter()
	adminUsers.Use(h.Middleware.RequireRoles(
		"You must be logged in to manage users",
		"Only managers can manage users",
		config.AdminRoles...,
	))
	adminUsers.HandleFunc("/users", h.Admin.ListMembers).Methods(http.MethodGet)

	roleUpdate := admin.NewRoute().Subrouter()
	roleUpdate.Use(h.Middleware.RequireRoles(
		"You must be logged in to update user roles",
		"Only managers can update user roles",
		config.AdminRoles...,
	))
	roleUpdate.HandleFunc("/users/role", h.Admin.UpdateUserRole).Methods(http.MethodPost)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	Success(w, map[string]string{"status": "ok"}, "Service healthy")
}

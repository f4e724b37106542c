package web

import (
	"context"
	"net/http"

	"binder/internal/app"
	"binder/internal/core"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// Handler holds the ApplicationService, the navigation catalog, and the
// per-user navigator store.
type Handler struct {
	svc       app.ApplicationService
	catalog   *core.Catalog
	navs      *navStore
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, catalog *core.Catalog, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{
		svc:       svc,
		catalog:   catalog,
		navs:      newNavStore(catalog),
		jwtSecret: jwtSecret,
	}

	// Start background maintenance goroutines.
	h.navs.startPurge(context.Background())

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(maxBodyBytes))

	// ── Health (public) ───────────────────────────────────────────────────
	r.Get("/api/health", h.health)

	// ── Auth (public) ─────────────────────────────────────────────────────
	r.Post("/api/auth/login", h.login)
	r.Post("/api/auth/login/{role}", h.loginRole)
	r.Post("/api/auth/logout", h.logout)
	r.Get("/api/auth/credentials", h.credentials)

	// ── Protected API ─────────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)

		r.Get("/api/auth/me", h.me)

		r.Get("/api/navigation", h.getNavigation)
		r.Post("/api/navigation", h.postNavigation)

		r.Post("/api/codes/buyers", h.createBuyerCode)
		r.Get("/api/codes/buyers", h.listBuyerCodes)
		r.Post("/api/codes/vendors", h.createVendorCode)
		r.Get("/api/codes/vendors/options", h.vendorFormOptions)

		r.Get("/api/vendors/sheet", h.vendorSheet)
		r.Get("/api/vendors/{code}", h.getVendor)
		r.Put("/api/vendors/{code}", notImplemented) // editing is a documented gap
		r.Delete("/api/vendors/{code}", h.deleteVendor)

		r.Get("/api/faqs", h.listFAQs)

		r.Post("/api/chat", h.chat)
	})

	h.routerNotFound(r)
	return r
}

// health handles GET /api/health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// routerNotFound installs JSON 404/405 responses so API clients never see
// the chi plain-text defaults.
func (h *Handler) routerNotFound(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, "not found", "NOT_FOUND", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, "method not allowed", "METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed)
	})
}

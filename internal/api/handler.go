// Package api wires the HTTP surface: routing, the session auth gate, flash
// notifications, and the handlers behind each page. Handlers return JSON for
// page data; state-changing flows answer with 303 redirects the way the
// browser app expects.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"lamphouse/m/internal/session"
	"lamphouse/m/internal/store"
)

type ctxKey string

const ctxIdentity ctxKey = "identity"

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	users     *store.UserStore
	clients   *store.ClientStore
	analytics *store.AnalyticsStore
	sessions  *session.Manager
	logger    *zap.Logger
}

// New constructs a Handler with stores built over db.
func New(db *sqlx.DB, sessions *session.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		users:     store.NewUserStore(db),
		clients:   store.NewClientStore(db),
		analytics: store.NewAnalyticsStore(db),
		sessions:  sessions,
		logger:    logger,
	}
}

// Router wires up the HTTP surface.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.logger))

	r.Get("/health", h.health)
	r.Get("/", h.home)
	r.Get("/login", h.loginForm)
	r.Post("/login", h.login)
	r.Get("/logout", h.logout)

	r.Group(func(pr chi.Router) {
		pr.Use(h.requireSession)

		pr.Get("/dashboard", h.dashboard)

		pr.Route("/clients", func(r chi.Router) {
			r.Get("/", h.listClients)
			r.Get("/new", h.newClientForm)
			r.Post("/new", h.createClient)
			r.Get("/{clientID}/edit", h.editClientForm)
			r.Post("/{clientID}/edit", h.updateClient)
			r.Post("/{clientID}/delete", h.deleteClient)
		})

		pr.Get("/analytics", h.revenueAnalytics)
	})

	return r
}

// requireSession is the auth gate. A request without a verifiable session is
// redirected to the login flow before the wrapped handler can run, so no
// side effect happens for unauthenticated callers. On success the identity
// travels in the request context.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := h.sessions.Read(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), ctxIdentity, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFrom(r *http.Request) session.Identity {
	ident, _ := r.Context().Value(ctxIdentity).(session.Identity)
	return ident
}

// requestLogger logs method, path, status, and duration for every request.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Helpers

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

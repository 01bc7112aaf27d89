package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sportclub/club-ui/internal/backend"
	domainauth "github.com/sportclub/club-ui/internal/domain/auth"
	"github.com/sportclub/club-ui/internal/service"
)

// UIHandlers serves the browser-facing routes: login, registration forms, and
// the role dashboards.
type UIHandlers struct {
	T            *TemplateRenderer
	Auth         *service.AuthService
	Backend      *backend.Client
	CookieDomain string
	Logger       *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// renderPage renders a page, logging and degrading to a plain 500 when the
// template fails.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	if err := h.T.RenderPage(w, page, data); err != nil {
		h.logger().ErrorContext(r.Context(), "page render failed",
			"page", page,
			"path", r.URL.Path,
			"error", err)
	}
}

// authedBackend returns a backend client bound to the session's bearer token.
// The token never leaves the session: two admins submitting forms at the same
// time each get their own transport.
func (h *UIHandlers) authedBackend(ctx context.Context, sess domainauth.Session) *backend.Client {
	return h.Backend.WithHTTPClient(h.Auth.HTTPClient(ctx, sess))
}

// NotFound renders the error page with a 404 status.
func (h *UIHandlers) NotFound(w http.ResponseWriter, _ *http.Request) {
	h.T.RenderError(w, http.StatusNotFound, map[string]any{
		"Title":        "Page Not Found",
		"ErrorTitle":   "Page not found",
		"ErrorMessage": "The page you are looking for does not exist.",
	})
}

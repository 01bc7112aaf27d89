package httpx

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sportclub/club-ui/internal/backend"
	domainauth "github.com/sportclub/club-ui/internal/domain/auth"
	"github.com/sportclub/club-ui/internal/service"
)

// RouterServices holds the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Backend      *backend.Client
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router: public auth and
// registration pages, role-gated dashboards, and the admin enrollment forms.
func NewRouter(services RouterServices) (http.Handler, error) {
	tr, err := NewTemplateRenderer(services.Logger)
	if err != nil {
		return nil, fmt.Errorf("template renderer: %w", err)
	}

	h := &UIHandlers{
		T:            tr,
		Auth:         services.Auth,
		Backend:      services.Backend,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}

	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	registerAuthRoutes(mux, h)
	registerRegistrationRoutes(mux, h)
	registerDashboardRoutes(mux, h, services.Auth)
	registerAdminFormRoutes(mux, h, services.Auth)

	// The mux's fallback 404 is plain text; render the error page instead.
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			h.Root(w, r)
			return
		}
		h.NotFound(w, r)
	}))

	return mux, nil
}

func registerAuthRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /login", h.LoginPage)
	mux.HandleFunc("POST /login", h.LoginSubmit)
	mux.HandleFunc("GET /superadmin/login", h.SuperadminLoginPage)
	mux.HandleFunc("POST /superadmin/login", h.SuperadminLoginSubmit)
	mux.HandleFunc("POST /logout", h.Logout)
}

func registerRegistrationRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /register", h.RegisterPage)
	mux.HandleFunc("POST /register", h.RegisterSubmit)
	mux.HandleFunc("GET /superadmin/register", h.SuperadminRegisterPage)
	mux.HandleFunc("POST /superadmin/register", h.SuperadminRegisterSubmit)
}

// registerDashboardRoutes gates each dashboard on its exact role.
func registerDashboardRoutes(mux *http.ServeMux, h *UIHandlers, auth *service.AuthService) {
	roleWrap := func(role domainauth.Role) func(http.Handler) http.Handler {
		return RequireRoleBrowser(auth, role)
	}

	mux.Handle("GET /admin/dashboard", roleWrap(domainauth.RoleAdmin)(http.HandlerFunc(h.AdminDashboard)))
	mux.Handle("GET /coach/dashboard", roleWrap(domainauth.RoleCoach)(http.HandlerFunc(h.CoachDashboard)))
	mux.Handle("GET /assistant/dashboard", roleWrap(domainauth.RoleAssistant)(http.HandlerFunc(h.AssistantDashboard)))
	mux.Handle("GET /parent/dashboard", roleWrap(domainauth.RoleParent)(http.HandlerFunc(h.ParentDashboard)))
	mux.Handle("GET /superadmin/dashboard", roleWrap(domainauth.RoleSuperadmin)(http.HandlerFunc(h.SuperadminDashboard)))
}

// registerAdminFormRoutes wires the admin-only enrollment forms.
func registerAdminFormRoutes(mux *http.ServeMux, h *UIHandlers, auth *service.AuthService) {
	wrapAdmin := RequireRoleBrowser(auth, domainauth.RoleAdmin)

	mux.Handle("GET /admin/coaches/new", wrapAdmin(http.HandlerFunc(h.NewCoachPage)))
	mux.Handle("POST /admin/coaches/new", wrapAdmin(http.HandlerFunc(h.NewCoachSubmit)))
	mux.Handle("GET /admin/assistants/new", wrapAdmin(http.HandlerFunc(h.NewAssistantPage)))
	mux.Handle("POST /admin/assistants/new", wrapAdmin(http.HandlerFunc(h.NewAssistantSubmit)))
	mux.Handle("GET /admin/players/new", wrapAdmin(http.HandlerFunc(h.NewParentPlayerPage)))
	mux.Handle("POST /admin/players/new", wrapAdmin(http.HandlerFunc(h.NewParentPlayerSubmit)))
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

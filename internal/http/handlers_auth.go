package httpx

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sportclub/club-ui/internal/backend"
	domainauth "github.com/sportclub/club-ui/internal/domain/auth"
	apperrors "github.com/sportclub/club-ui/internal/errors"
	"github.com/sportclub/club-ui/internal/http/validation"
)

// loginForm carries a username/password submission.
type loginForm struct {
	Username string
	Password string
}

// superadminLoginForm carries an email/password submission. Superadmins sign
// in with their email address, not a username.
type superadminLoginForm struct {
	Email    string
	Password string
}

// Root sends authenticated users to their dashboard and everyone else to the
// login page.
// GET /.
func (h *UIHandlers) Root(w http.ResponseWriter, r *http.Request) {
	if session := getSessionFromRequest(r, h.Auth); session != nil {
		if dest, ok := h.Auth.Dashboard(session.User.Role); ok {
			http.Redirect(w, r, dest, http.StatusSeeOther)
			return
		}
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginPage renders the login form. Users who already hold a session with a
// routable role are sent straight to their dashboard.
// GET /login.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if session := getSessionFromRequest(r, h.Auth); session != nil {
		if dest, ok := h.Auth.Dashboard(session.User.Role); ok {
			http.Redirect(w, r, dest, http.StatusSeeOther)
			return
		}
	}

	data := NewTemplateData(r, loginPageMeta()).Build()
	h.renderPage(w, r, PageLogin, data)
}

// LoginSubmit authenticates against the club API and establishes a session.
// POST /login.
func (h *UIHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[loginForm]{
		W: w,
		R: r,
		Parser: func(r *http.Request) (loginForm, map[string]string) {
			form := loginForm{
				Username: strings.TrimSpace(r.PostFormValue("username")),
				Password: r.PostFormValue("password"),
			}
			errs := validation.New().
				Validate("username", form.Username, validation.Required("Username", 255)).
				Validate("password", form.Password, validation.Required("Password", 255)).
				Errors()
			return form, errs
		},
		Submit: func(ctx context.Context, form loginForm) (string, error) {
			auth, err := h.Backend.Login(ctx, form.Username, form.Password)
			if err != nil {
				return "", err
			}
			return h.establishSession(ctx, w, r, *auth)
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			h.renderPage(w, r, PageLogin, data)
		},
		PageMeta: loginPageMeta(),
	})
}

// SuperadminLoginPage renders the superadmin login form.
// GET /superadmin/login.
func (h *UIHandlers) SuperadminLoginPage(w http.ResponseWriter, r *http.Request) {
	if session := getSessionFromRequest(r, h.Auth); session != nil {
		if dest, ok := h.Auth.Dashboard(session.User.Role); ok {
			http.Redirect(w, r, dest, http.StatusSeeOther)
			return
		}
	}

	data := NewTemplateData(r, superadminLoginPageMeta()).Build()
	h.renderPage(w, r, PageSuperadminLogin, data)
}

// SuperadminLoginSubmit authenticates a superadmin and establishes a session.
// POST /superadmin/login.
func (h *UIHandlers) SuperadminLoginSubmit(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[superadminLoginForm]{
		W: w,
		R: r,
		Parser: func(r *http.Request) (superadminLoginForm, map[string]string) {
			form := superadminLoginForm{
				Email:    strings.TrimSpace(r.PostFormValue("email")),
				Password: r.PostFormValue("password"),
			}
			errs := validation.New().
				Validate("email", form.Email,
					validation.Required("Email", 255),
					validation.Email("Email")).
				Validate("password", form.Password, validation.Required("Password", 255)).
				Errors()
			return form, errs
		},
		Submit: func(ctx context.Context, form superadminLoginForm) (string, error) {
			auth, err := h.Backend.SuperadminLogin(ctx, form.Email, form.Password)
			if err != nil {
				return "", err
			}
			return h.establishSession(ctx, w, r, *auth)
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			h.renderPage(w, r, PageSuperadminLogin, data)
		},
		PageMeta: superadminLoginPageMeta(),
	})
}

// Logout invalidates the server-side session and clears the cookie. The
// cookie is cleared even when the store delete fails so the browser does not
// keep presenting a dead session ID.
// POST /logout.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie(sessionCookieName); err == nil {
		if logoutErr := h.Auth.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	h.clearSessionCookie(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// establishSession persists a session for the authenticated user, sets the
// browser cookie, and returns the dashboard to redirect to.
//
// A login that comes back with an unroutable role still gets a session and a
// cookie. The user re-renders on the login page with an explanation instead
// of being bounced into a dashboard that does not exist for them.
func (h *UIHandlers) establishSession(ctx context.Context, w http.ResponseWriter, r *http.Request, auth backend.AuthResult) (string, error) {
	result, err := h.Auth.Login(ctx, auth.User, auth.Token)
	if err != nil {
		return "", err
	}

	h.setSessionCookie(w, r, result.Session)

	if !result.KnownRole {
		return "", apperrors.UnknownRole(string(auth.User.Role))
	}
	return result.Dashboard, nil
}

// setSessionCookie writes the session cookie with the same lifetime as the
// server-side session.
func (h *UIHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   sessionCookieMaxAge,
	})
}

// clearSessionCookie expires the session cookie, mirroring the attributes used
// when setting it so browsers actually drop it.
func (h *UIHandlers) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

func loginPageMeta() PageMeta {
	return PageMeta{
		Title:       "Sign In",
		PageTitle:   "Sign in to your club",
		CurrentPage: PageLogin,
	}
}

func superadminLoginPageMeta() PageMeta {
	return PageMeta{
		Title:       "Superadmin Sign In",
		PageTitle:   "Superadmin sign in",
		CurrentPage: PageSuperadminLogin,
	}
}

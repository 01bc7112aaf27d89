package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportclub/club-ui/config"
	"github.com/sportclub/club-ui/internal/backend"
	domainauth "github.com/sportclub/club-ui/internal/domain/auth"
	mocksauth "github.com/sportclub/club-ui/internal/mocks/auth"
	"github.com/sportclub/club-ui/internal/service"
)

// uiEnv wires a real router against an in-memory session store and a stubbed
// club API.
type uiEnv struct {
	store  *mocksauth.MemorySessionStore
	auth   *service.AuthService
	router http.Handler
}

func newUIEnv(t *testing.T, backendHandler http.Handler) *uiEnv {
	t.Helper()

	store := mocksauth.NewMemorySessionStore()
	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Sessions: store,
		Roles:    mocksauth.DefaultRoleMapper(),
	})

	if backendHandler == nil {
		backendHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
	}
	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	client, err := backend.New(backend.Options{
		Config: config.BackendConfig{BaseURL: srv.URL, Timeout: 5 * time.Second},
	})
	require.NoError(t, err)

	router, err := NewRouter(RouterServices{
		Auth:    authSvc,
		Backend: client,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return &uiEnv{store: store, auth: authSvc, router: router}
}

// loginAs creates a session directly in the store and returns its cookie.
func (e *uiEnv) loginAs(t *testing.T, role domainauth.Role) *http.Cookie {
	t.Helper()
	res, err := e.auth.Login(context.Background(), domainauth.User{
		ID:    "7",
		Name:  "Sam Keita",
		Email: "sam@club.test",
		Role:  role,
	}, "tok-"+string(role))
	require.NoError(t, err)
	return &http.Cookie{Name: "session_id", Value: res.Session.ID}
}

// authJSON writes a login-shaped response with the given role.
func authJSON(w http.ResponseWriter, role string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"user": map[string]any{
			"id":    7,
			"name":  "Sam Keita",
			"email": "sam@club.test",
			"role":  role,
		},
		"token": "tok-abc",
	})
}

func postForm(env *uiEnv, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	return nil
}

func TestLoginPage_Renders(t *testing.T) {
	env := newUIEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="username"`)
	assert.Contains(t, rec.Body.String(), `name="password"`)
}

func TestLoginSubmit_Success(t *testing.T) {
	env := newUIEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sam", body["username"])
		assert.Equal(t, "hunter22", body["password"])
		authJSON(w, "coach")
	}))

	rec := postForm(env, "/login", url.Values{
		"username": {"sam"},
		"password": {"hunter22"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/coach/dashboard", rec.Header().Get("Location"))

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 1, env.store.Len())
}

func TestLoginSubmit_InvalidCredentials(t *testing.T) {
	env := newUIEnv(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	}))

	rec := postForm(env, "/login", url.Values{
		"username": {"sam"},
		"password": {"wrong"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
	assert.Nil(t, sessionCookie(t, rec))
	assert.Equal(t, 0, env.store.Len())
}

func TestLoginSubmit_LocalValidationSkipsBackend(t *testing.T) {
	backendCalled := false
	env := newUIEnv(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		backendCalled = true
		authJSON(w, "coach")
	}))

	rec := postForm(env, "/login", url.Values{"username": {"sam"}})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password is required.")
	assert.False(t, backendCalled)
}

func TestLoginSubmit_UnknownRoleKeepsSession(t *testing.T) {
	env := newUIEnv(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		authJSON(w, "janitor")
	}))

	rec := postForm(env, "/login", url.Values{
		"username": {"sam"},
		"password": {"hunter22"},
	})

	// No dashboard to land on, so the login page re-renders with an
	// explanation. The session survives for when the role gets fixed.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "unrecognized role")
	assert.NotNil(t, sessionCookie(t, rec))
	assert.Equal(t, 1, env.store.Len())
}

func TestSuperadminLoginSubmit_Success(t *testing.T) {
	env := newUIEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/superadmin/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "root@club.test", body["email"])
		authJSON(w, "superadmin")
	}))

	rec := postForm(env, "/superadmin/login", url.Values{
		"email":    {"root@club.test"},
		"password": {"hunter22"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/superadmin/dashboard", rec.Header().Get("Location"))
	assert.NotNil(t, sessionCookie(t, rec))
}

func TestLogout_ClearsCookieEvenWhenStoreFails(t *testing.T) {
	env := newUIEnv(t, nil)
	cookie := env.loginAs(t, domainauth.RoleCoach)
	env.store.DeleteFunc = func(context.Context, string) error {
		return assert.AnError
	}

	rec := postForm(env, "/logout", url.Values{}, cookie)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cleared := sessionCookie(t, rec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestLogout_RemovesSession(t *testing.T) {
	env := newUIEnv(t, nil)
	cookie := env.loginAs(t, domainauth.RoleParent)
	require.Equal(t, 1, env.store.Len())

	rec := postForm(env, "/logout", url.Values{}, cookie)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 0, env.store.Len())
}

func TestRoot_RedirectsByRole(t *testing.T) {
	env := newUIEnv(t, nil)
	cookie := env.loginAs(t, domainauth.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))
}

func TestRoot_AnonymousGoesToLogin(t *testing.T) {
	env := newUIEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestLoginPage_AuthenticatedUserSkipsForm(t *testing.T) {
	env := newUIEnv(t, nil)
	cookie := env.loginAs(t, domainauth.RoleAssistant)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/assistant/dashboard", rec.Header().Get("Location"))
}

func TestNotFound_RendersErrorPage(t *testing.T) {
	env := newUIEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

// writeMultipart builds a multipart/form-data body from plain fields.
func writeMultipart(t *testing.T, fields map[string]string) (string, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return mw.FormDataContentType(), &buf
}

func postMultipart(env *uiEnv, target, contentType string, body io.Reader, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

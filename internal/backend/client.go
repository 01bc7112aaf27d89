// Package backend is the HTTP client for the remote club management API.
// It owns the wire formats (JSON logins, multipart registrations) and maps
// transport and status failures onto the application error taxonomy, so
// handlers never see a raw *http.Response.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/sportclub/club-ui/config"
	domainauth "github.com/sportclub/club-ui/internal/domain/auth"
	apperrors "github.com/sportclub/club-ui/internal/errors"
)

// Club API endpoints. Login and the self-service registrations live on the
// main API; the superadmin flows live on a separately deployable service
// that usually shares the same host.
const (
	pathLogin              = "/api/users/login"
	pathRegister           = "/api/register"
	pathCoachRegister      = "/api/coach/register"
	pathAssistants         = "/api/assistant_admins"
	pathParentPlayer       = "/api/admin/register-parent-joueur"
	pathSuperadminLogin    = "/api/superadmin/login"
	pathSuperadminRegister = "/api/superadmin/register"
)

// messageExpr pulls a human-readable message out of the API's error payloads,
// which are not consistent about where they put it.
const messageExpr = "message || error || data.message"

// maxResponseBodyBytes caps how much of an error response is read for message
// extraction.
const maxResponseBodyBytes = 64 << 10

// Options groups dependencies for Client.
type Options struct {
	Config     config.BackendConfig
	HTTPClient *http.Client // Optional: defaults to a plain client
	Logger     *slog.Logger // Optional: structured logger
}

// Client talks to the club management API.
//
// The zero client carries no credentials. Authenticated operations go through
// WithHTTPClient, which binds a copy of the client to a session-scoped
// http.Client whose transport injects that session's bearer token.
type Client struct {
	base      *url.URL
	superBase *url.URL
	hc        *http.Client
	timeout   time.Duration
	logger    *slog.Logger
}

// New constructs a Client from configuration.
func New(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.Config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("backend base URL: %w", err)
	}

	superRaw := opts.Config.SuperadminBaseURL
	if superRaw == "" {
		superRaw = opts.Config.BaseURL
	}
	superBase, err := parseBaseURL(superRaw)
	if err != nil {
		return nil, fmt.Errorf("superadmin base URL: %w", err)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "backend_client")
	}

	timeout := opts.Config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		base:      base,
		superBase: superBase,
		hc:        hc,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL scheme: %q", u.Scheme)
	}
	if strings.TrimSpace(u.Host) == "" {
		return nil, errors.New("missing host")
	}
	return u, nil
}

// WithHTTPClient returns a copy of the client that performs requests through
// hc. Used to bind operations to a session's bearer-token transport.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	clone := *c
	clone.hc = hc
	return &clone
}

// Login authenticates a user against the club API and returns the user
// record plus the issued token.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	payload := map[string]string{"username": username, "password": password}
	body, err := c.doJSON(ctx, c.base, pathLogin, payload)
	if err != nil {
		return nil, err
	}
	return decodeAuthResult(body)
}

// SuperadminLogin authenticates against the superadmin API, which keys on
// email rather than username.
func (c *Client) SuperadminLogin(ctx context.Context, email, password string) (*AuthResult, error) {
	payload := map[string]string{"email": email, "password": password}
	body, err := c.doJSON(ctx, c.superBase, pathSuperadminLogin, payload)
	if err != nil {
		return nil, err
	}
	return decodeAuthResult(body)
}

// RegisterClubAdmin creates a club admin account. The API logs the new
// account in as part of the same call.
func (c *Client) RegisterClubAdmin(ctx context.Context, reg ClubAdminRegistration) (*AuthResult, error) {
	body, err := c.doMultipart(ctx, c.base, pathRegister, reg.encode)
	if err != nil {
		return nil, err
	}
	return decodeAuthResult(body)
}

// RegisterCoach creates a coach account. Requires an authenticated client.
func (c *Client) RegisterCoach(ctx context.Context, reg CoachRegistration) error {
	_, err := c.doMultipart(ctx, c.base, pathCoachRegister, reg.encode)
	return err
}

// RegisterAssistant creates an assistant admin account. Requires an
// authenticated client.
func (c *Client) RegisterAssistant(ctx context.Context, reg AssistantRegistration) error {
	_, err := c.doMultipart(ctx, c.base, pathAssistants, reg.encode)
	return err
}

// RegisterParentPlayer enrolls a parent and player pair. Requires an
// authenticated client.
func (c *Client) RegisterParentPlayer(ctx context.Context, reg ParentPlayerRegistration) error {
	_, err := c.doMultipart(ctx, c.base, pathParentPlayer, reg.encode)
	return err
}

// SuperadminRegister creates a superadmin account. The API logs the new
// account in as part of the same call.
func (c *Client) SuperadminRegister(ctx context.Context, reg SuperadminRegistration) (*AuthResult, error) {
	body, err := c.doMultipart(ctx, c.superBase, pathSuperadminRegister, reg.encode)
	if err != nil {
		return nil, err
	}
	return decodeAuthResult(body)
}

func (c *Client) doJSON(ctx context.Context, base *url.URL, path string, payload any) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request")
	}
	return c.do(ctx, base, path, "application/json", bytes.NewReader(b))
}

func (c *Client) doMultipart(ctx context.Context, base *url.URL, path string, encode func(*form)) ([]byte, error) {
	var f form
	encode(&f)
	contentType, body, err := f.encode()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode form")
	}
	return c.do(ctx, base, path, contentType, body)
}

func (c *Client) do(ctx context.Context, base *url.URL, path, contentType string, body io.Reader) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := base.JoinPath(path).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, mapTransportError(ctx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "read response")
	}

	if c.logger != nil {
		c.logger.DebugContext(ctx, "club API request",
			"path", path,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mapStatusError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// mapTransportError converts a failed round trip into an application error.
// Deadline and cancellation keep their identity so handlers can distinguish
// "slow backend" from "user navigated away".
func mapTransportError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, "club API timed out")
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return apperrors.Wrap(err, apperrors.ErrCodeCanceled, "request canceled")
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "club API unreachable")
	}
}

// mapStatusError converts a non-2xx status plus body into an application
// error, preserving the API's per-field validation messages on 422.
func mapStatusError(status int, body []byte) error {
	msg := extractMessage(body)

	switch {
	case status == http.StatusUnprocessableEntity:
		var payload struct {
			Errors map[string][]string `json:"errors"`
		}
		_ = json.Unmarshal(body, &payload) // best effort; an empty map still renders
		if msg == "" {
			msg = "the submitted data was rejected"
		}
		return apperrors.RemoteValidation(msg, payload.Errors)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if msg == "" {
			msg = "invalid credentials"
		}
		return apperrors.Unauthorized(msg)
	case status == http.StatusNotFound:
		if msg == "" {
			msg = "resource not found"
		}
		return apperrors.NotFound(msg)
	default:
		if msg == "" {
			msg = fmt.Sprintf("club API returned status %d", status)
		}
		return apperrors.Unavailable(msg)
	}
}

// extractMessage pulls the human-readable message out of an error body.
// Non-JSON bodies yield "".
func extractMessage(body []byte) string {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return ""
	}
	res, err := jmespath.Search(messageExpr, data)
	if err != nil {
		return ""
	}
	if s, ok := res.(string); ok {
		return s
	}
	return ""
}

// decodeAuthResult parses a successful login/auto-login payload. A 200 that
// does not carry both a user and a token is treated as a backend fault, not
// as a logged-in state.
func decodeAuthResult(body []byte) (*AuthResult, error) {
	var payload struct {
		User *struct {
			ID       json.Number `json:"id"`
			Email    string      `json:"email"`
			Name     string      `json:"name"`
			FullName string      `json:"full_name"`
			Avatar   string      `json:"avatar"`
			Role     string      `json:"role"`
		} `json:"user"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "malformed login response")
	}
	if payload.User == nil || payload.Token == "" {
		return nil, apperrors.Unavailable("login response missing user or token")
	}

	name := payload.User.Name
	if name == "" {
		name = payload.User.FullName
	}

	return &AuthResult{
		User: domainauth.User{
			ID:     payload.User.ID.String(),
			Email:  payload.User.Email,
			Name:   name,
			Avatar: payload.User.Avatar,
			Role:   domainauth.ParseRole(payload.User.Role),
		},
		Token: payload.Token,
	}, nil
}

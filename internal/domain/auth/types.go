package auth

// Package auth contains domain-level types for users and sessions.
// It is pure and free of framework/adapter concerns.

import "strings"

// Role represents the role tag the backend attaches to a user record.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleCoach      Role = "coach"
	RoleAssistant  Role = "assistant"
	RoleParent     Role = "parent"
	// RoleUnknown is the explicit variant for anything else the backend may
	// send; it has no dashboard destination.
	RoleUnknown Role = "unknown"
)

// ParseRole maps a raw role string from a login response onto the closed role
// set. Anything unrecognized (including the empty string) becomes RoleUnknown
// rather than a panic or a silently-passed-through string.
func ParseRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleSuperadmin:
		return RoleSuperadmin
	case RoleAdmin:
		return RoleAdmin
	case RoleCoach:
		return RoleCoach
	case RoleAssistant:
		return RoleAssistant
	case RoleParent:
		return RoleParent
	default:
		return RoleUnknown
	}
}

// Known reports whether the role has a dashboard destination.
func (r Role) Known() bool { return r != RoleUnknown && r != "" }

// User is the identity record the backend returns on login or registration.
// The backend is inconsistent about optional fields; ID and Email are the
// canonical minimum.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	Role   Role   `json:"role"`
}

// Session pairs the authenticated user with the opaque bearer token the
// backend issued. The two are set together or not at all; a Session with one
// of them empty is invalid and must never be persisted or handed out.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID    string `json:"id"`
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Valid reports whether the session holds both a user identity and a token.
func (s Session) Valid() bool {
	return s.ID != "" && s.User.ID != "" && s.Token != ""
}

// ErrSessionNotFound is returned by session stores when no session exists for
// the given ID. It lives here so stores and their test doubles share one
// sentinel.
var ErrSessionNotFound error = sessionNotFoundError{}

type sessionNotFoundError struct{}

func (sessionNotFoundError) Error() string { return "session not found" }

package authroles

import (
	domainauth "github.com/sportclub/club-ui/internal/domain/auth"
)

// StaticDashboardMapper maps a user's role to its dashboard route.
// The mapping is a pure function of the role: it is fixed at startup and total
// over the five known roles, with unknown roles yielding no destination.
type StaticDashboardMapper struct{}

// dashboardRoutes is the fixed role→destination table.
//
//nolint:gochecknoglobals // static read-only lookup; avoids per-call allocations
var dashboardRoutes = map[domainauth.Role]string{
	domainauth.RoleParent:     "/parent/dashboard",
	domainauth.RoleAdmin:      "/admin/dashboard",
	domainauth.RoleCoach:      "/coach/dashboard",
	domainauth.RoleAssistant:  "/assistant/dashboard",
	domainauth.RoleSuperadmin: "/superadmin/dashboard",
}

// Map returns the dashboard path for the role and whether one exists.
// An unknown or empty role returns ("", false); callers surface that as a
// user-visible error instead of navigating.
func (m StaticDashboardMapper) Map(role domainauth.Role) (string, bool) {
	path, ok := dashboardRoutes[role]
	return path, ok
}

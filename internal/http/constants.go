package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
const (
	PageLogin           = "login"
	PageSuperadminLogin = "superadmin-login"

	// Registration forms.
	PageRegister           = "register"
	PageSuperadminRegister = "superadmin-register"
	PageCoachForm          = "coach-form"
	PageAssistantForm      = "assistant-form"
	PageParentPlayerForm   = "parent-player-form"

	// Role dashboards.
	PageAdminDashboard      = "admin-dashboard"
	PageCoachDashboard      = "coach-dashboard"
	PageAssistantDashboard  = "assistant-dashboard"
	PageParentDashboard     = "parent-dashboard"
	PageSuperadminDashboard = "superadmin-dashboard"
)

// sessionCookieName is the browser cookie that carries the session ID. The
// session itself (user + token) lives server-side in Redis.
const sessionCookieName = "session_id"

// sessionCookieMaxAge matches the Redis session TTL so the cookie and the
// server-side session expire together.
const sessionCookieMaxAge = 30 * 24 * 60 * 60

// maxFormMemory bounds in-memory buffering when parsing multipart submissions;
// larger avatar uploads spill to temp files.
const maxFormMemory = 10 << 20

// maxAvatarBytes rejects avatar uploads above this size before they are
// forwarded to the club API.
const maxAvatarBytes = 5 << 20

// pageTemplates maps CurrentPage identifiers to their template files under
// templates/pages. The renderer pairs each with the shared layout.
//
//nolint:gochecknoglobals // static read-only lookup; avoids per-call allocations
var pageTemplates = map[string]string{
	PageLogin:               "login.tmpl",
	PageSuperadminLogin:     "superadmin_login.tmpl",
	PageRegister:            "register.tmpl",
	PageSuperadminRegister:  "superadmin_register.tmpl",
	PageCoachForm:           "coach_form.tmpl",
	PageAssistantForm:       "assistant_form.tmpl",
	PageParentPlayerForm:    "parent_player_form.tmpl",
	PageAdminDashboard:      "dashboard.tmpl",
	PageCoachDashboard:      "dashboard.tmpl",
	PageAssistantDashboard:  "dashboard.tmpl",
	PageParentDashboard:     "dashboard.tmpl",
	PageSuperadminDashboard: "dashboard.tmpl",
}

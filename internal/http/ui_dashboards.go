package httpx

import "net/http"

// MenuItem is a dashboard navigation entry.
type MenuItem struct {
	Label string
	Href  string
}

// AdminDashboard shows the club admin home with links to the enrollment forms.
// GET /admin/dashboard.
func (h *UIHandlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{
		Title:       "Admin Dashboard",
		PageTitle:   "Club administration",
		CurrentPage: PageAdminDashboard,
	}).
		With("MenuItems", []MenuItem{
			{Label: "Enroll a coach", Href: "/admin/coaches/new"},
			{Label: "Enroll an assistant admin", Href: "/admin/assistants/new"},
			{Label: "Enroll a parent and player", Href: "/admin/players/new"},
		}).
		Build()
	h.renderPage(w, r, PageAdminDashboard, data)
}

// CoachDashboard shows the coach home.
// GET /coach/dashboard.
func (h *UIHandlers) CoachDashboard(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{
		Title:       "Coach Dashboard",
		PageTitle:   "Coach home",
		CurrentPage: PageCoachDashboard,
	}).Build()
	h.renderPage(w, r, PageCoachDashboard, data)
}

// AssistantDashboard shows the assistant admin home.
// GET /assistant/dashboard.
func (h *UIHandlers) AssistantDashboard(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{
		Title:       "Assistant Dashboard",
		PageTitle:   "Assistant admin home",
		CurrentPage: PageAssistantDashboard,
	}).Build()
	h.renderPage(w, r, PageAssistantDashboard, data)
}

// ParentDashboard shows the parent home.
// GET /parent/dashboard.
func (h *UIHandlers) ParentDashboard(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{
		Title:       "Parent Dashboard",
		PageTitle:   "Parent home",
		CurrentPage: PageParentDashboard,
	}).Build()
	h.renderPage(w, r, PageParentDashboard, data)
}

// SuperadminDashboard shows the superadmin home.
// GET /superadmin/dashboard.
func (h *UIHandlers) SuperadminDashboard(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{
		Title:       "Superadmin Dashboard",
		PageTitle:   "Platform administration",
		CurrentPage: PageSuperadminDashboard,
	}).Build()
	h.renderPage(w, r, PageSuperadminDashboard, data)
}

package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/sportclub/club-ui/internal/backend"
	"github.com/sportclub/club-ui/internal/http/validation"
)

// The enrollment forms below are admin-only: the club API authenticates them
// with the admin's bearer token, so submissions go through authedBackend.

const adminDashboardPath = "/admin/dashboard"

// NewCoachPage renders the coach enrollment form.
// GET /admin/coaches/new.
func (h *UIHandlers) NewCoachPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, coachFormPageMeta()).Build()
	h.renderPage(w, r, PageCoachForm, data)
}

// NewCoachSubmit enrolls a coach on behalf of the signed-in admin.
// POST /admin/coaches/new.
func (h *UIHandlers) NewCoachSubmit(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirectToLogin(w, r)
		return
	}

	HandleForm(FormHandlerOpts[backend.CoachRegistration]{
		W:      w,
		R:      r,
		Parser: parseCoachRegistration,
		Submit: func(ctx context.Context, reg backend.CoachRegistration) (string, error) {
			if err := h.authedBackend(ctx, *session).RegisterCoach(ctx, reg); err != nil {
				return "", err
			}
			return adminDashboardPath, nil
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			h.renderPage(w, r, PageCoachForm, data)
		},
		PageMeta: coachFormPageMeta(),
	})
}

// NewAssistantPage renders the assistant admin enrollment form.
// GET /admin/assistants/new.
func (h *UIHandlers) NewAssistantPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, assistantFormPageMeta()).Build()
	h.renderPage(w, r, PageAssistantForm, data)
}

// NewAssistantSubmit enrolls an assistant admin.
// POST /admin/assistants/new.
func (h *UIHandlers) NewAssistantSubmit(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirectToLogin(w, r)
		return
	}

	HandleForm(FormHandlerOpts[backend.AssistantRegistration]{
		W:      w,
		R:      r,
		Parser: parseAssistantRegistration,
		Submit: func(ctx context.Context, reg backend.AssistantRegistration) (string, error) {
			if err := h.authedBackend(ctx, *session).RegisterAssistant(ctx, reg); err != nil {
				return "", err
			}
			return adminDashboardPath, nil
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			h.renderPage(w, r, PageAssistantForm, data)
		},
		PageMeta: assistantFormPageMeta(),
	})
}

// NewParentPlayerPage renders the combined parent/player enrollment form.
// GET /admin/players/new.
func (h *UIHandlers) NewParentPlayerPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, parentPlayerFormPageMeta()).Build()
	h.renderPage(w, r, PageParentPlayerForm, data)
}

// NewParentPlayerSubmit enrolls a parent and their player in one request.
// POST /admin/players/new.
func (h *UIHandlers) NewParentPlayerSubmit(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		redirectToLogin(w, r)
		return
	}

	HandleForm(FormHandlerOpts[backend.ParentPlayerRegistration]{
		W:      w,
		R:      r,
		Parser: parseParentPlayerRegistration,
		Submit: func(ctx context.Context, reg backend.ParentPlayerRegistration) (string, error) {
			if err := h.authedBackend(ctx, *session).RegisterParentPlayer(ctx, reg); err != nil {
				return "", err
			}
			return adminDashboardPath, nil
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			h.renderPage(w, r, PageParentPlayerForm, data)
		},
		PageMeta: parentPlayerFormPageMeta(),
	})
}

func parseCoachRegistration(r *http.Request) (backend.CoachRegistration, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return backend.CoachRegistration{}, map[string]string{"form": "Could not read the submitted form."}
	}

	reg := backend.CoachRegistration{
		FullName:        strings.TrimSpace(r.PostFormValue("full_name")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Phone:           strings.TrimSpace(r.PostFormValue("phone")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
		Sex:             r.PostFormValue("sexe"),
		Specialty:       strings.TrimSpace(r.PostFormValue("specialite")),
		YearsExperience: strings.TrimSpace(r.PostFormValue("annee_experience")),
		TermsAccepted:   isCheckboxOn(r.PostFormValue("terms")),
	}

	errs := validation.New().
		Validate("full_name", reg.FullName, validation.Required("Full name", 255)).
		Validate("email", reg.Email,
			validation.Required("Email", 255),
			validation.Email("Email")).
		Validate("phone", reg.Phone,
			validation.Required("Phone", 32),
			validation.Phone("Phone", 10, 15)).
		Validate("password", reg.Password,
			validation.Required("Password", 255),
			validation.MinLen("Password", 6)).
		Validate("confirm_password", reg.ConfirmPassword,
			validation.Matches("Password", reg.Password)).
		Validate("sexe", reg.Sex,
			validation.Required("Sex", 16),
			validation.OneOf("Sex", []string{"homme", "femme"})).
		Validate("specialite", reg.Specialty, validation.Required("Specialty", 255)).
		Validate("annee_experience", reg.YearsExperience,
			validation.Required("Years of experience", 3),
			validation.Integer("Years of experience", 0, 80)).
		Validate("terms", r.PostFormValue("terms"),
			validation.Checked("You must accept the terms.")).
		Errors()

	avatar, avatarErr := parseAvatar(r, "avatar")
	if avatarErr != "" {
		if errs == nil {
			errs = map[string]string{}
		}
		errs["avatar"] = avatarErr
	}
	reg.Avatar = avatar

	return reg, errs
}

func parseAssistantRegistration(r *http.Request) (backend.AssistantRegistration, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return backend.AssistantRegistration{}, map[string]string{"form": "Could not read the submitted form."}
	}

	reg := backend.AssistantRegistration{
		FullName:        strings.TrimSpace(r.PostFormValue("full_name")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Phone:           strings.TrimSpace(r.PostFormValue("phone")),
		Password:        r.PostFormValue("password"),
		Sex:             r.PostFormValue("sexe"),
		Diploma:         strings.TrimSpace(r.PostFormValue("diplome")),
		YearsExperience: strings.TrimSpace(r.PostFormValue("annee_experience")),
		TermsAccepted:   isCheckboxOn(r.PostFormValue("terms")),
	}

	errs := validation.New().
		Validate("full_name", reg.FullName, validation.Required("Full name", 255)).
		Validate("email", reg.Email,
			validation.Required("Email", 255),
			validation.Email("Email")).
		Validate("phone", reg.Phone,
			validation.Required("Phone", 32),
			validation.Phone("Phone", 10, 15)).
		Validate("password", reg.Password,
			validation.Required("Password", 255),
			validation.MinLen("Password", 6)).
		Validate("sexe", reg.Sex,
			validation.Required("Sex", 16),
			validation.OneOf("Sex", []string{"homme", "femme"})).
		Validate("diplome", reg.Diploma, validation.Required("Diploma", 255)).
		Validate("annee_experience", reg.YearsExperience,
			validation.Required("Years of experience", 3),
			validation.Integer("Years of experience", 0, 80)).
		Validate("terms", r.PostFormValue("terms"),
			validation.Checked("You must accept the terms.")).
		Errors()

	avatar, avatarErr := parseAvatar(r, "avatar")
	if avatarErr != "" {
		if errs == nil {
			errs = map[string]string{}
		}
		errs["avatar"] = avatarErr
	}
	reg.Avatar = avatar

	return reg, errs
}

func parseParentPlayerRegistration(r *http.Request) (backend.ParentPlayerRegistration, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return backend.ParentPlayerRegistration{}, map[string]string{"form": "Could not read the submitted form."}
	}

	reg := backend.ParentPlayerRegistration{
		Parent: backend.ParentRegistration{
			FullName:      strings.TrimSpace(r.PostFormValue("parent_full_name")),
			Email:         strings.TrimSpace(r.PostFormValue("parent_email")),
			Phone:         strings.TrimSpace(r.PostFormValue("parent_phone")),
			Password:      r.PostFormValue("parent_password"),
			Sex:           r.PostFormValue("parent_sexe"),
			TermsAccepted: isCheckboxOn(r.PostFormValue("parent_terms")),
		},
		Player: backend.PlayerRegistration{
			FullName:      strings.TrimSpace(r.PostFormValue("joueur_full_name")),
			Email:         strings.TrimSpace(r.PostFormValue("joueur_email")),
			Phone:         strings.TrimSpace(r.PostFormValue("joueur_phone")),
			Sex:           r.PostFormValue("joueur_sexe"),
			BirthDate:     strings.TrimSpace(r.PostFormValue("joueur_date_de_naissance")),
			Class:         strings.TrimSpace(r.PostFormValue("joueur_classe")),
			MedicalNotes:  strings.TrimSpace(r.PostFormValue("joueur_antecedent")),
			Category:      strings.TrimSpace(r.PostFormValue("joueur_categorie")),
			Height:        strings.TrimSpace(r.PostFormValue("joueur_taille")),
			Weight:        strings.TrimSpace(r.PostFormValue("joueur_poids")),
			Position:      strings.TrimSpace(r.PostFormValue("joueur_position")),
			TermsAccepted: isCheckboxOn(r.PostFormValue("joueur_terms")),
		},
	}

	errs := validation.New().
		Validate("parent_full_name", reg.Parent.FullName, validation.Required("Parent full name", 255)).
		Validate("parent_email", reg.Parent.Email,
			validation.Required("Parent email", 255),
			validation.Email("Parent email")).
		Validate("parent_phone", reg.Parent.Phone,
			validation.Required("Parent phone", 32),
			validation.Phone("Parent phone", 10, 15)).
		Validate("parent_password", reg.Parent.Password,
			validation.Required("Parent password", 255),
			validation.MinLen("Parent password", 6)).
		Validate("parent_sexe", reg.Parent.Sex,
			validation.Required("Parent sex", 16),
			validation.OneOf("Parent sex", []string{"homme", "femme"})).
		Validate("parent_terms", r.PostFormValue("parent_terms"),
			validation.Checked("The parent must accept the terms.")).
		Validate("joueur_full_name", reg.Player.FullName, validation.Required("Player full name", 255)).
		Validate("joueur_email", reg.Player.Email,
			validation.Optional("Player email", 255),
			validation.Email("Player email")).
		Validate("joueur_sexe", reg.Player.Sex,
			validation.Required("Player sex", 16),
			validation.OneOf("Player sex", []string{"homme", "femme"})).
		Validate("joueur_date_de_naissance", reg.Player.BirthDate,
			validation.Required("Player birth date", 10),
			validation.Date("Player birth date")).
		Validate("joueur_terms", r.PostFormValue("joueur_terms"),
			validation.Checked("The player must accept the terms.")).
		Errors()

	parentAvatar, parentErr := parseAvatar(r, "parent_avatar")
	if parentErr != "" {
		if errs == nil {
			errs = map[string]string{}
		}
		errs["parent_avatar"] = parentErr
	}
	reg.Parent.Avatar = parentAvatar

	playerAvatar, playerErr := parseAvatar(r, "joueur_avatar")
	if playerErr != "" {
		if errs == nil {
			errs = map[string]string{}
		}
		errs["joueur_avatar"] = playerErr
	}
	reg.Player.Avatar = playerAvatar

	return reg, errs
}

func coachFormPageMeta() PageMeta {
	return PageMeta{
		Title:       "Enroll a Coach",
		PageTitle:   "Enroll a coach",
		CurrentPage: PageCoachForm,
	}
}

func assistantFormPageMeta() PageMeta {
	return PageMeta{
		Title:       "Enroll an Assistant",
		PageTitle:   "Enroll an assistant admin",
		CurrentPage: PageAssistantForm,
	}
}

func parentPlayerFormPageMeta() PageMeta {
	return PageMeta{
		Title:       "Enroll a Parent and Player",
		PageTitle:   "Enroll a parent and player",
		CurrentPage: PageParentPlayerForm,
	}
}

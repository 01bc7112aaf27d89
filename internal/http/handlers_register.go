package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sportclub/club-ui/internal/backend"
	"github.com/sportclub/club-ui/internal/http/validation"
)

// RegisterPage renders the club admin self-registration form.
// GET /register.
func (h *UIHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, registerPageMeta()).Build()
	h.renderPage(w, r, PageRegister, data)
}

// RegisterSubmit creates a club admin account. The club API issues a token on
// success, so the new admin lands on their dashboard already signed in.
// POST /register.
func (h *UIHandlers) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[backend.ClubAdminRegistration]{
		W:      w,
		R:      r,
		Parser: parseClubAdminRegistration,
		Submit: func(ctx context.Context, reg backend.ClubAdminRegistration) (string, error) {
			auth, err := h.Backend.RegisterClubAdmin(ctx, reg)
			if err != nil {
				return "", err
			}
			return h.establishSession(ctx, w, r, *auth)
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			h.renderPage(w, r, PageRegister, data)
		},
		PageMeta: registerPageMeta(),
	})
}

// SuperadminRegisterPage renders the superadmin registration form.
// GET /superadmin/register.
func (h *UIHandlers) SuperadminRegisterPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, superadminRegisterPageMeta()).Build()
	h.renderPage(w, r, PageSuperadminRegister, data)
}

// SuperadminRegisterSubmit creates a superadmin account with auto-login.
// POST /superadmin/register.
func (h *UIHandlers) SuperadminRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[backend.SuperadminRegistration]{
		W:      w,
		R:      r,
		Parser: parseSuperadminRegistration,
		Submit: func(ctx context.Context, reg backend.SuperadminRegistration) (string, error) {
			auth, err := h.Backend.SuperadminRegister(ctx, reg)
			if err != nil {
				return "", err
			}
			return h.establishSession(ctx, w, r, *auth)
		},
		Renderer: func(w http.ResponseWriter, r *http.Request, data map[string]any) {
			h.renderPage(w, r, PageSuperadminRegister, data)
		},
		PageMeta: superadminRegisterPageMeta(),
	})
}

func parseClubAdminRegistration(r *http.Request) (backend.ClubAdminRegistration, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return backend.ClubAdminRegistration{}, map[string]string{"form": "Could not read the submitted form."}
	}

	reg := backend.ClubAdminRegistration{
		Name:            strings.TrimSpace(r.PostFormValue("name")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Phone:           strings.TrimSpace(r.PostFormValue("phone")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
		TermsAccepted:   isCheckboxOn(r.PostFormValue("terms")),
	}

	fv := validation.New().
		Validate("name", reg.Name, validation.Required("Name", 255)).
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
		Validate("terms", r.PostFormValue("terms"),
			validation.Checked("You must accept the terms to register."))
	errs := fv.Errors()

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

func parseSuperadminRegistration(r *http.Request) (backend.SuperadminRegistration, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return backend.SuperadminRegistration{}, map[string]string{"form": "Could not read the submitted form."}
	}

	reg := backend.SuperadminRegistration{
		FullName:      strings.TrimSpace(r.PostFormValue("full_name")),
		Email:         strings.TrimSpace(r.PostFormValue("email")),
		Phone:         strings.TrimSpace(r.PostFormValue("phone")),
		Password:      r.PostFormValue("password"),
		Sex:           r.PostFormValue("sexe"),
		TermsAccepted: isCheckboxOn(r.PostFormValue("terms")),
	}

	// Password confirmation is a purely local check.
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
		Validate("confirm_password", r.PostFormValue("confirm_password"),
			validation.Matches("Password", reg.Password)).
		Validate("sexe", reg.Sex,
			validation.Required("Sex", 16),
			validation.OneOf("Sex", []string{"homme", "femme"})).
		Validate("terms", r.PostFormValue("terms"),
			validation.Checked("You must accept the terms to register.")).
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

// parseAvatar extracts an optional avatar upload. A missing file is not an
// error; an oversized one is rejected before it leaves this process.
func parseAvatar(r *http.Request, field string) (*backend.Avatar, string) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ""
		}
		return nil, "Could not read the uploaded image."
	}

	if header.Size > maxAvatarBytes {
		file.Close()
		return nil, fmt.Sprintf("Image must be smaller than %d MB.", maxAvatarBytes>>20)
	}

	// The file handle is owned by the request's multipart form and is closed
	// with it after the handler returns.
	return &backend.Avatar{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	}, ""
}

// isCheckboxOn reports whether a checkbox form value counts as checked.
func isCheckboxOn(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func registerPageMeta() PageMeta {
	return PageMeta{
		Title:       "Create Your Club",
		PageTitle:   "Register as a club admin",
		CurrentPage: PageRegister,
	}
}

func superadminRegisterPageMeta() PageMeta {
	return PageMeta{
		Title:       "Create Superadmin Account",
		PageTitle:   "Register as a superadmin",
		CurrentPage: PageSuperadminRegister,
	}
}

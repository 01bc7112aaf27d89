package backend

import (
	"io"
	"strconv"

	domainauth "github.com/sportclub/club-ui/internal/domain/auth"
)

// AuthResult is the outcome of a login or an auto-login registration: the
// user record the club API returned and the opaque bearer token it issued.
type AuthResult struct {
	User  domainauth.User
	Token string
}

// Avatar is an optional profile image attached to a registration.
type Avatar struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// roleIDAdmin is the numeric role identifier the club API expects in the
// is_role field when registering a club admin.
const roleIDAdmin = 1

// ClubAdminRegistration creates a club admin account via POST /api/register.
// On success the API returns the new user and a token (auto-login).
type ClubAdminRegistration struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	TermsAccepted   bool
	Avatar          *Avatar
}

func (r ClubAdminRegistration) encode(f *form) {
	f.Set("name", r.Name)
	f.Set("email", r.Email)
	f.Set("phone", r.Phone)
	f.Set("password", r.Password)
	f.Set("confirm_password", r.ConfirmPassword)
	f.SetBool("terms", r.TermsAccepted)
	f.Set("is_role", strconv.Itoa(roleIDAdmin))
	f.File("avatar", r.Avatar)
}

// CoachRegistration creates a coach account via POST /api/coach/register.
// The wire field names follow the club API's French schema.
type CoachRegistration struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Sex             string
	Specialty       string
	YearsExperience string
	TermsAccepted   bool
	Avatar          *Avatar
}

func (r CoachRegistration) encode(f *form) {
	f.Set("full_name", r.FullName)
	f.Set("email", r.Email)
	f.Set("phone", r.Phone)
	f.Set("password", r.Password)
	f.Set("confirm_password", r.ConfirmPassword)
	f.Set("role", string(domainauth.RoleCoach))
	f.Set("sexe", r.Sex)
	f.Set("specialite", r.Specialty)
	f.Set("annee_experience", r.YearsExperience)
	f.SetBool("terms", r.TermsAccepted)
	f.File("avatar", r.Avatar)
}

// AssistantRegistration creates an assistant admin account via
// POST /api/assistant_admins.
type AssistantRegistration struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	Sex             string
	Diploma         string
	YearsExperience string
	TermsAccepted   bool
	Avatar          *Avatar
}

func (r AssistantRegistration) encode(f *form) {
	f.Set("full_name", r.FullName)
	f.Set("email", r.Email)
	f.Set("phone", r.Phone)
	f.Set("password", r.Password)
	f.Set("role", string(domainauth.RoleAssistant))
	f.Set("sexe", r.Sex)
	f.Set("diplome", r.Diploma)
	f.Set("annee_experience", r.YearsExperience)
	f.SetBool("terms", r.TermsAccepted)
	f.File("avatar", r.Avatar)
}

// ParentRegistration is the parent half of a parent/player enrollment.
type ParentRegistration struct {
	FullName      string
	Email         string
	Phone         string
	Password      string
	Sex           string
	TermsAccepted bool
	Avatar        *Avatar
}

// PlayerRegistration is the player half of a parent/player enrollment.
type PlayerRegistration struct {
	FullName      string
	Email         string
	Phone         string
	Sex           string
	BirthDate     string
	Class         string
	MedicalNotes  string
	Category      string
	Height        string
	Weight        string
	Position      string
	TermsAccepted bool
	Avatar        *Avatar
}

// ParentPlayerRegistration enrolls a parent and their player in one request
// via POST /api/admin/register-parent-joueur. Both halves travel together;
// the API validates them as a unit and answers 422 with per-field errors.
type ParentPlayerRegistration struct {
	Parent ParentRegistration
	Player PlayerRegistration
}

func (r ParentPlayerRegistration) encode(f *form) {
	f.Set("parent_full_name", r.Parent.FullName)
	f.Set("parent_email", r.Parent.Email)
	f.Set("parent_phone", r.Parent.Phone)
	f.Set("parent_password", r.Parent.Password)
	f.Set("parent_role", string(domainauth.RoleParent))
	f.Set("parent_sexe", r.Parent.Sex)
	f.SetBool("parent_terms", r.Parent.TermsAccepted)
	f.File("parent_avatar", r.Parent.Avatar)

	f.Set("joueur_full_name", r.Player.FullName)
	f.Set("joueur_email", r.Player.Email)
	f.Set("joueur_phone", r.Player.Phone)
	f.Set("joueur_sexe", r.Player.Sex)
	f.Set("joueur_date_de_naissance", r.Player.BirthDate)
	f.Set("joueur_classe", r.Player.Class)
	f.Set("joueur_antecedent", r.Player.MedicalNotes)
	f.Set("joueur_categorie", r.Player.Category)
	f.Set("joueur_taille", r.Player.Height)
	f.Set("joueur_poids", r.Player.Weight)
	f.Set("joueur_position", r.Player.Position)
	f.SetBool("joueur_terms", r.Player.TermsAccepted)
	f.File("joueur_avatar", r.Player.Avatar)
}

// SuperadminRegistration creates a superadmin account via
// POST /api/superadmin/register on the superadmin API. On success the API
// returns the new user and a token (auto-login). Password confirmation is
// checked locally and never travels on the wire.
type SuperadminRegistration struct {
	FullName      string
	Email         string
	Phone         string
	Password      string
	Sex           string
	TermsAccepted bool
	Avatar        *Avatar
}

func (r SuperadminRegistration) encode(f *form) {
	f.Set("full_name", r.FullName)
	f.Set("email", r.Email)
	f.Set("phone", r.Phone)
	f.Set("password", r.Password)
	f.SetBool("terms", r.TermsAccepted)
	f.Set("role", string(domainauth.RoleSuperadmin))
	f.Set("sexe", r.Sex)
	f.File("avatar", r.Avatar)
}

package types

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the devfolio custom rules registered.
// Field errors are reported under their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("skillcategory", func(fl validator.FieldLevel) bool {
		category := SkillCategory(fl.Field().String())
		for _, c := range SkillCategories() {
			if c == category {
				return true
			}
		}
		return false
	})
	return v
}

// MinPasswordLength is the shortest admin password, in characters.
const MinPasswordLength = 4

// LoginRequest represents the admin login form.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Validate validates the LoginRequest.
func (r *LoginRequest) Validate() error {
	return NewValidator().Struct(r)
}

// RecoveryRequest represents the password recovery form.
type RecoveryRequest struct {
	Answer      string `json:"answer" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// Validate validates the RecoveryRequest.
func (r *RecoveryRequest) Validate() error {
	return NewValidator().Struct(r)
}

// ChangePasswordRequest represents a password change from the dashboard.
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

// Validate validates the ChangePasswordRequest.
func (r *ChangePasswordRequest) Validate() error {
	return NewValidator().Struct(r)
}

// SecuritySettingsRequest replaces the recovery question and answer.
type SecuritySettingsRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// Validate validates the SecuritySettingsRequest.
func (r *SecuritySettingsRequest) Validate() error {
	return NewValidator().Struct(r)
}

// ProjectInput is the editable part of a project.
type ProjectInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"imageUrl"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Featured     bool     `json:"featured"`
}

// Validate validates the ProjectInput.
func (in *ProjectInput) Validate() error {
	return NewValidator().Struct(in)
}

// ToProject builds a project with the given id.
func (in *ProjectInput) ToProject(id string) Project {
	techs := make([]string, 0, len(in.Technologies))
	for _, t := range in.Technologies {
		if t = strings.TrimSpace(t); t != "" {
			techs = append(techs, t)
		}
	}
	return Project{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		Technologies: techs,
		ImageURL:     in.ImageURL,
		Link:         in.Link,
		GitHub:       in.GitHub,
		Featured:     in.Featured,
	}
}

// SkillInput is the editable part of a skill.
type SkillInput struct {
	Name     string        `json:"name" validate:"required"`
	Category SkillCategory `json:"category" validate:"required,skillcategory"`
	Level    int           `json:"level"`
}

// Validate validates the SkillInput.
func (in *SkillInput) Validate() error {
	return NewValidator().Struct(in)
}

// ToSkill builds a skill with the given id, clamping the level to 1-100
// the way the editor slider does.
func (in *SkillInput) ToSkill(id string) Skill {
	return Skill{
		ID:       id,
		Name:     in.Name,
		Category: in.Category,
		Level:    ClampLevel(in.Level),
	}
}

// ClampLevel clamps a skill level to the editor range.
func ClampLevel(level int) int {
	switch {
	case level < 1:
		return 1
	case level > 100:
		return 100
	default:
		return level
	}
}

// MessageInput is a contact form submission.
type MessageInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Validate validates the MessageInput.
func (in *MessageInput) Validate() error {
	return NewValidator().Struct(in)
}

// ToMessage builds an unread message with the given id, dated now in RFC 3339 UTC.
// Name and body are stored exactly as submitted.
func (in *MessageInput) ToMessage(id string, now time.Time) ContactMessage {
	return ContactMessage{
		ID:      id,
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
		Date:    now.UTC().Format(time.RFC3339),
		Read:    false,
	}
}

// ThemeInput replaces the whole theme.
type ThemeInput struct {
	PrimaryColor    string `json:"primaryColor" validate:"required,hexcolor"`
	BackgroundColor string `json:"backgroundColor" validate:"required,hexcolor"`
	CardColor       string `json:"cardColor" validate:"required,hexcolor"`
	TextColor       string `json:"textColor" validate:"required,hexcolor"`
}

// Validate validates the ThemeInput.
func (in *ThemeInput) Validate() error {
	return NewValidator().Struct(in)
}

// ToTheme converts the input to a Theme.
func (in *ThemeInput) ToTheme() Theme {
	return Theme{
		PrimaryColor:    in.PrimaryColor,
		BackgroundColor: in.BackgroundColor,
		CardColor:       in.CardColor,
		TextColor:       in.TextColor,
	}
}

// ProfilePatch is a partial profile update. Nil fields are left untouched;
// Experience and Education replace the whole list when present.
type ProfilePatch struct {
	Name         *string       `json:"name,omitempty"`
	Title        *string       `json:"title,omitempty"`
	Bio          *string       `json:"bio,omitempty"`
	Email        *string       `json:"email,omitempty"`
	Location     *string       `json:"location,omitempty"`
	GitHub       *string       `json:"github,omitempty"`
	LinkedIn     *string       `json:"linkedin,omitempty"`
	Twitter      *string       `json:"twitter,omitempty"`
	ResumeURL    *string       `json:"resumeUrl,omitempty"`
	ContactIntro *string       `json:"contactIntro,omitempty"`
	Education    *[]Education  `json:"education,omitempty"`
	Experience   *[]Experience `json:"experience,omitempty"`
}

// Apply performs a shallow merge of the patch onto p and returns the result.
func (patch ProfilePatch) Apply(p Profile) Profile {
	out := p.Clone()
	setString(&out.Name, patch.Name)
	setString(&out.Title, patch.Title)
	setString(&out.Bio, patch.Bio)
	setString(&out.Email, patch.Email)
	setString(&out.Location, patch.Location)
	setString(&out.GitHub, patch.GitHub)
	setString(&out.LinkedIn, patch.LinkedIn)
	setString(&out.Twitter, patch.Twitter)
	setString(&out.ResumeURL, patch.ResumeURL)
	setString(&out.ContactIntro, patch.ContactIntro)
	if patch.Education != nil {
		out.Education = cloneSlice(*patch.Education)
	}
	if patch.Experience != nil {
		out.Experience = cloneSlice(*patch.Experience)
	}
	return out
}

// StringPtr returns a pointer to s. Handy for building patches.
func StringPtr(s string) *string {
	return &s
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

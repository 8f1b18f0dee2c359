// Package types provides type definitions for structured data used throughout devfolio.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillCategory groups skills on the about page.
type SkillCategory string

// Skill categories accepted by the editor.
const (
	CategoryTechnical SkillCategory = "Technical"
	CategoryTools     SkillCategory = "Tools"
	CategorySoft      SkillCategory = "Soft Skills"
)

// SkillCategories lists the categories in display order.
func SkillCategories() []SkillCategory {
	return []SkillCategory{CategoryTechnical, CategoryTools, CategorySoft}
}

// Experience is a single role in the work history.
type Experience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Education is a single degree entry.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Grade       string `json:"grade,omitempty"`
}

// Profile holds the owner's personal details shown across the public pages.
type Profile struct {
	Name         string       `json:"name"`
	Title        string       `json:"title"`
	Bio          string       `json:"bio"`
	Email        string       `json:"email"`
	Location     string       `json:"location"`
	GitHub       string       `json:"github,omitempty"`
	LinkedIn     string       `json:"linkedin,omitempty"`
	Twitter      string       `json:"twitter,omitempty"`
	ResumeURL    string       `json:"resumeUrl,omitempty"` // data URI of the uploaded PDF
	ContactIntro string       `json:"contactIntro,omitempty"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
}

// Project is a portfolio entry.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"imageUrl"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Featured     bool     `json:"featured"`
}

// Skill is a named proficiency. Level is 1-100; the model does not clamp it.
type Skill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
	Level    int           `json:"level"`
}

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}

// Theme holds the four site colors as hex strings.
type Theme struct {
	PrimaryColor    string `json:"primaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	CardColor       string `json:"cardColor"`
	TextColor       string `json:"textColor"`
}

// IsZero reports whether no theme color is set.
func (t Theme) IsZero() bool {
	return t == Theme{}
}

// Document is the single persisted aggregate holding all application state.
//
// AdminPassword and SecurityAnswer are stored in plaintext. The admin gate is
// a display gate only and provides no confidentiality.
type Document struct {
	Profile          Profile          `json:"profile"`
	Projects         []Project        `json:"projects"`
	Skills           []Skill          `json:"skills"`
	Messages         []ContactMessage `json:"messages"` // newest first
	IsAuthenticated  bool             `json:"isAuthenticated"`
	AdminPassword    string           `json:"adminPassword"`
	SecurityQuestion string           `json:"securityQuestion"`
	SecurityAnswer   string           `json:"securityAnswer"`
	Theme            Theme            `json:"theme"`
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := *d
	out.Profile = d.Profile.Clone()
	out.Projects = cloneProjects(d.Projects)
	out.Skills = cloneSlice(d.Skills)
	out.Messages = cloneSlice(d.Messages)
	return &out
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	out := p
	out.Education = cloneSlice(p.Education)
	out.Experience = cloneSlice(p.Experience)
	return out
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := p
	out.Technologies = cloneSlice(p.Technologies)
	return out
}

// FindProject returns the project with the given id.
func (d *Document) FindProject(id string) (Project, bool) {
	for _, p := range d.Projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Project{}, false
}

// FindSkill returns the skill with the given id.
func (d *Document) FindSkill(id string) (Skill, bool) {
	for _, s := range d.Skills {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}

// UnreadCount returns the number of unread contact messages.
func (d *Document) UnreadCount() int {
	n := 0
	for _, m := range d.Messages {
		if !m.Read {
			n++
		}
	}
	return n
}

func cloneProjects(in []Project) []Project {
	if in == nil {
		return nil
	}
	out := make([]Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

package types

// OptimizationResult is the structured report returned by the portfolio optimizer.
// It is shown to the admin and never persisted.
type OptimizationResult struct {
	ImprovedBio        string              `json:"improvedBio"`
	ProjectSuggestions []ProjectSuggestion `json:"projectSuggestions"`
	GeneralFeedback    string              `json:"generalFeedback"`
}

// ProjectSuggestion is a rewritten description for one project.
type ProjectSuggestion struct {
	ProjectID  string `json:"projectId"`
	Suggestion string `json:"suggestion"`
}

// DashboardStats summarizes the document for the admin dashboard.
type DashboardStats struct {
	Projects          int `json:"projects"`
	Skills            int `json:"skills"`
	ExperienceEntries int `json:"experience_entries"`
	UnreadMessages    int `json:"unread_messages"`
}

// Stats computes the dashboard counters for the document.
func (d *Document) Stats() DashboardStats {
	return DashboardStats{
		Projects:          len(d.Projects),
		Skills:            len(d.Skills),
		ExperienceEntries: len(d.Profile.Experience),
		UnreadMessages:    d.UnreadCount(),
	}
}

// HomeView is the landing page content.
type HomeView struct {
	Profile          Profile   `json:"profile"`
	FeaturedProjects []Project `json:"featured_projects"`
	Skills           []Skill   `json:"skills"`
}

// Home builds the landing page: up to three featured projects and the first ten skills.
func (d *Document) Home() HomeView {
	featured := make([]Project, 0, 3)
	for _, p := range d.Projects {
		if !p.Featured {
			continue
		}
		featured = append(featured, p.Clone())
		if len(featured) == 3 {
			break
		}
	}
	skills := d.Skills
	if len(skills) > 10 {
		skills = skills[:10]
	}
	return HomeView{
		Profile:          publicProfile(d.Profile),
		FeaturedProjects: featured,
		Skills:           cloneSlice(skills),
	}
}

// ProjectsView is the project listing with its technology filter.
type ProjectsView struct {
	Technologies []string  `json:"technologies"`
	Filter       string    `json:"filter,omitempty"`
	Projects     []Project `json:"projects"`
}

// ProjectList returns every distinct technology (first-seen order) and the
// projects tagged with tech. An empty tech matches all projects.
func (d *Document) ProjectList(tech string) ProjectsView {
	seen := make(map[string]bool)
	techs := make([]string, 0)
	projects := make([]Project, 0, len(d.Projects))
	for _, p := range d.Projects {
		for _, t := range p.Technologies {
			if !seen[t] {
				seen[t] = true
				techs = append(techs, t)
			}
		}
		if tech == "" || containsString(p.Technologies, tech) {
			projects = append(projects, p.Clone())
		}
	}
	return ProjectsView{Technologies: techs, Filter: tech, Projects: projects}
}

// SkillGroup is one category of skills on the about page.
type SkillGroup struct {
	Category SkillCategory `json:"category"`
	Skills   []Skill       `json:"skills"`
}

// AboutView is the about page content.
type AboutView struct {
	Profile     Profile      `json:"profile"`
	SkillGroups []SkillGroup `json:"skill_groups"`
}

// About groups skills by category in order of first appearance.
func (d *Document) About() AboutView {
	index := make(map[SkillCategory]int)
	groups := make([]SkillGroup, 0)
	for _, s := range d.Skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return AboutView{Profile: publicProfile(d.Profile), SkillGroups: groups}
}

// ContactView is the contact page content.
type ContactView struct {
	Intro    string `json:"intro"`
	Email    string `json:"email"`
	Location string `json:"location"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

// DefaultContactIntro is shown on the contact page when the profile has no intro.
const DefaultContactIntro = "Have a project in mind or want to discuss a potential collaboration? I'd love to hear from you."

// Contact builds the contact page content.
func (d *Document) Contact() ContactView {
	intro := d.Profile.ContactIntro
	if intro == "" {
		intro = DefaultContactIntro
	}
	return ContactView{
		Intro:    intro,
		Email:    d.Profile.Email,
		Location: d.Profile.Location,
		GitHub:   d.Profile.GitHub,
		LinkedIn: d.Profile.LinkedIn,
		Twitter:  d.Profile.Twitter,
	}
}

// publicProfile drops the inline resume payload; public pages link to /resume instead.
func publicProfile(p Profile) Profile {
	out := p.Clone()
	if out.ResumeURL != "" {
		out.ResumeURL = "/resume"
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

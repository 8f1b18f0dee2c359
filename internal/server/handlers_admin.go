package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jonathan/devfolio/internal/assistant"
	"github.com/jonathan/devfolio/internal/rendering"
	"github.com/jonathan/devfolio/internal/store"
	"github.com/jonathan/devfolio/internal/types"
)

// DashboardResponse is the admin landing page.
type DashboardResponse struct {
	Name      string               `json:"name"`
	Stats     types.DashboardStats `json:"stats"`
	AIEnabled bool                 `json:"ai_enabled"`
}

// SuggestRequest asks the assistant to polish a piece of text. Title, when
// set, is passed along as context for project descriptions.
type SuggestRequest struct {
	Field string `json:"field"`
	Text  string `json:"text"`
	Title string `json:"title,omitempty"`
}

// SuggestResponse carries the suggestion, or the original text when the
// assistant could not help.
type SuggestResponse struct {
	Text string `json:"text"`
}

// ApplyRequest adopts one part of an optimizer report. Exactly one field is set.
type ApplyRequest struct {
	ImprovedBio       *string                  `json:"improvedBio,omitempty"`
	ProjectSuggestion *types.ProjectSuggestion `json:"projectSuggestion,omitempty"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	var resp DashboardResponse
	s.store.Read(func(doc *types.Document) {
		resp = DashboardResponse{Name: doc.Profile.Name, Stats: doc.Stats()}
	})
	resp.AIEnabled = s.assistant.Enabled()
	s.jsonResponse(w, http.StatusOK, resp)
}

// Projects

func (s *Server) handleAdminListProjects(w http.ResponseWriter, _ *http.Request) {
	var projects []types.Project
	s.store.Read(func(doc *types.Document) { projects = doc.ProjectList("").Projects })
	s.jsonResponse(w, http.StatusOK, projects)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var in types.ProjectInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	project := in.ToProject(types.NewID())
	s.dispatch(r, store.AddProject(project))
	s.jsonResponse(w, http.StatusCreated, project)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var in types.ProjectInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		s.writeError(w, err)
		return
	}
	if !s.projectExists(id) {
		s.writeError(w, &ErrNotFound{Kind: "project", ID: id})
		return
	}

	project := in.ToProject(id)
	s.dispatch(r, store.UpdateProject(project))
	s.jsonResponse(w, http.StatusOK, project)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	s.dispatch(r, store.DeleteProject(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSuggestProject(w http.ResponseWriter, r *http.Request) {
	s.suggest(w, r, "project description")
}

func (s *Server) projectExists(id string) bool {
	var ok bool
	s.store.Read(func(doc *types.Document) { _, ok = doc.FindProject(id) })
	return ok
}

// Skills

func (s *Server) handleListSkills(w http.ResponseWriter, _ *http.Request) {
	var skills []types.Skill
	s.store.Read(func(doc *types.Document) {
		skills = append(make([]types.Skill, 0, len(doc.Skills)), doc.Skills...)
	})
	s.jsonResponse(w, http.StatusOK, skills)
}

func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var in types.SkillInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	skill := in.ToSkill(types.NewID())
	s.dispatch(r, store.AddSkill(skill))
	s.jsonResponse(w, http.StatusCreated, skill)
}

func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var in types.SkillInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	var exists bool
	s.store.Read(func(doc *types.Document) { _, exists = doc.FindSkill(id) })
	if !exists {
		s.writeError(w, &ErrNotFound{Kind: "skill", ID: id})
		return
	}

	skill := in.ToSkill(id)
	s.dispatch(r, store.UpdateSkill(skill))
	s.jsonResponse(w, http.StatusOK, skill)
}

func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	s.dispatch(r, store.DeleteSkill(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

// Profile

func (s *Server) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	var profile types.Profile
	s.store.Read(func(doc *types.Document) { profile = doc.Profile.Clone() })
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfile merges a partial profile. New experience and education
// entries without an id are given one.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch types.ProfilePatch
	if !s.decodeJSON(w, r, &patch) {
		return
	}
	if patch.ResumeURL != nil && *patch.ResumeURL != "" && !strings.HasPrefix(*patch.ResumeURL, "data:") {
		s.writeError(w, &ErrValidation{Field: "resumeUrl", Message: "upload the resume through /admin/profile/resume"})
		return
	}
	if patch.Experience != nil {
		for i := range *patch.Experience {
			if (*patch.Experience)[i].ID == "" {
				(*patch.Experience)[i].ID = types.NewID()
			}
		}
	}
	if patch.Education != nil {
		for i := range *patch.Education {
			if (*patch.Education)[i].ID == "" {
				(*patch.Education)[i].ID = types.NewID()
			}
		}
	}

	s.dispatch(r, store.UpdateProfile(patch))
	s.handleGetProfile(w, r)
}

func (s *Server) handleSuggestProfile(w http.ResponseWriter, r *http.Request) {
	s.suggest(w, r, "bio")
}

// suggest runs the best-effort assistant. It never fails on the assistant's
// account; the original text comes back instead.
func (s *Server) suggest(w http.ResponseWriter, r *http.Request, defaultField string) {
	var req SuggestRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	field := req.Field
	if field == "" {
		field = defaultField
	}

	prompt := req.Text
	if req.Title != "" {
		prompt = fmt.Sprintf("Title: %s. Current Desc: %s", req.Title, req.Text)
	}
	text := s.assistant.Suggest(r.Context(), field, prompt)
	if text == prompt {
		// Suggest echoes its input on failure; hand back the caller's own text.
		text = req.Text
	}
	s.jsonResponse(w, http.StatusOK, SuggestResponse{Text: text})
}

// Theme

func (s *Server) handleGetTheme(w http.ResponseWriter, _ *http.Request) {
	var theme types.Theme
	s.store.Read(func(doc *types.Document) { theme = doc.Theme })
	s.jsonResponse(w, http.StatusOK, theme)
}

func (s *Server) handleUpdateTheme(w http.ResponseWriter, r *http.Request) {
	var in types.ThemeInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	theme := in.ToTheme()
	// hexcolor also admits alpha forms the stylesheet cannot shade.
	if _, err := rendering.DeriveThemeVars(theme); err != nil {
		s.writeError(w, err)
		return
	}
	s.dispatch(r, store.UpdateTheme(theme))
	s.jsonResponse(w, http.StatusOK, theme)
}

func (s *Server) handleResetTheme(w http.ResponseWriter, r *http.Request) {
	theme := types.DefaultTheme()
	s.dispatch(r, store.UpdateTheme(theme))
	s.jsonResponse(w, http.StatusOK, theme)
}

// Optimizer

func (s *Server) handleOptimizerStatus(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]bool{"enabled": s.assistant.Enabled()})
}

// handleOptimize runs the portfolio review. The report is returned to the
// caller and never persisted; any failure is a 502 so the admin can retry.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	doc := s.store.State()

	result, err := s.assistant.Optimize(r.Context(), doc.Profile, doc.Projects)
	if err != nil {
		s.logger.Warn("optimization failed", zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, "Failed to generate optimizations. Please try again.")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleApplyOptimization adopts the improved bio or one project suggestion.
func (s *Server) handleApplyOptimization(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	switch {
	case req.ImprovedBio != nil && req.ProjectSuggestion == nil:
		s.dispatch(r, assistant.ApplyBio(&types.OptimizationResult{ImprovedBio: *req.ImprovedBio}))
		s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Bio updated"})

	case req.ProjectSuggestion != nil && req.ImprovedBio == nil:
		action, ok := assistant.ApplyProjectSuggestion(s.store.State(), *req.ProjectSuggestion)
		if !ok {
			s.writeError(w, &ErrNotFound{Kind: "project", ID: req.ProjectSuggestion.ProjectID})
			return
		}
		s.dispatch(r, action)
		s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Project updated"})

	default:
		s.writeError(w, &ErrValidation{Field: "body", Message: "set exactly one of improvedBio or projectSuggestion"})
	}
}

// Messages

// MessagesResponse lists the inbox, newest first.
type MessagesResponse struct {
	Unread   int                    `json:"unread"`
	Messages []types.ContactMessage `json:"messages"`
}

func (s *Server) handleListMessages(w http.ResponseWriter, _ *http.Request) {
	var resp MessagesResponse
	s.store.Read(func(doc *types.Document) {
		resp = MessagesResponse{
			Unread:   doc.UnreadCount(),
			Messages: append(make([]types.ContactMessage, 0, len(doc.Messages)), doc.Messages...),
		}
	})
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleMarkMessageRead(w http.ResponseWriter, r *http.Request) {
	s.dispatch(r, store.MarkMessageRead(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	s.dispatch(r, store.DeleteMessage(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

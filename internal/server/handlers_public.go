package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jonathan/devfolio/internal/rendering"
	"github.com/jonathan/devfolio/internal/store"
	"github.com/jonathan/devfolio/internal/types"
)

// handleHome returns the landing page content.
func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	var view types.HomeView
	s.store.Read(func(doc *types.Document) { view = doc.Home() })
	s.jsonResponse(w, http.StatusOK, view)
}

// handleListProjects returns all projects, optionally filtered by ?tech=.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	tech := r.URL.Query().Get("tech")
	var view types.ProjectsView
	s.store.Read(func(doc *types.Document) { view = doc.ProjectList(tech) })
	s.jsonResponse(w, http.StatusOK, view)
}

// handleGetProject returns a single project.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var (
		project types.Project
		ok      bool
	)
	s.store.Read(func(doc *types.Document) { project, ok = doc.FindProject(id) })
	if !ok {
		s.writeError(w, &ErrNotFound{Kind: "project", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, project)
}

// handleAbout returns the profile with skills grouped by category.
func (s *Server) handleAbout(w http.ResponseWriter, _ *http.Request) {
	var view types.AboutView
	s.store.Read(func(doc *types.Document) { view = doc.About() })
	s.jsonResponse(w, http.StatusOK, view)
}

// handleContact returns the contact page content.
func (s *Server) handleContact(w http.ResponseWriter, _ *http.Request) {
	var view types.ContactView
	s.store.Read(func(doc *types.Document) { view = doc.Contact() })
	s.jsonResponse(w, http.StatusOK, view)
}

// handleSendMessage stores a contact form submission as an unread message.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var in types.MessageInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	msg := in.ToMessage(types.NewID(), time.Now())
	s.dispatch(r, store.AddMessage(msg))
	s.logger.Info("contact message received", zap.String("id", msg.ID))
	s.jsonResponse(w, http.StatusCreated, msg)
}

// handleResume serves the uploaded resume PDF.
func (s *Server) handleResume(w http.ResponseWriter, _ *http.Request) {
	var uri string
	s.store.Read(func(doc *types.Document) { uri = doc.Profile.ResumeURL })

	mediaType, data, err := DecodeDataURI(uri)
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "no resume uploaded")
		return
	}

	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Content-Disposition", `inline; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleThemeCSS serves the stylesheet variables for the stored theme. A
// theme that cannot be rendered falls back to the stock theme.
func (s *Server) handleThemeCSS(w http.ResponseWriter, _ *http.Request) {
	var theme types.Theme
	s.store.Read(func(doc *types.Document) { theme = doc.Theme })

	css, err := rendering.RenderThemeCSS(theme)
	if err != nil {
		s.logger.Warn("stored theme is invalid, serving default", zap.Error(err))
		css, err = rendering.RenderThemeCSS(types.DefaultTheme())
		if err != nil {
			s.writeError(w, err)
			return
		}
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(css))
}

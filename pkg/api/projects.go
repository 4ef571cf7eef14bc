package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/errors"
	"github.com/matzehuels/hydrodraw/pkg/workspace"
)

// StatusCheck is a client heartbeat.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": Banner})
}

func (s *Server) createStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientName string `json:"client_name"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.ClientName == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "client_name is required"))
		return
	}
	check := StatusCheck{ID: drawing.NewID(), ClientName: req.ClientName, Timestamp: time.Now().UTC()}
	s.mu.Lock()
	s.checks = append(s.checks, check)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, check)
}

func (s *Server) listStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	checks := append([]StatusCheck{}, s.checks...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, checks)
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.svc.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if projects == nil {
		projects = []*drawing.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req workspace.NewProjectRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.svc.Create(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Get(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	var u drawing.ProjectUpdate
	if err := decode(r, &u); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.svc.Update(r.Context(), chi.URLParam(r, "projectID"), u)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Delete(r.Context(), chi.URLParam(r, "projectID")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-site/internal/resume"
)

// ---------------------------------------------------------------------
// Experience Handlers
// ---------------------------------------------------------------------

// handleAddExperience prepends a placeholder entry and returns it so the
// editor can focus the new fields.
func (s *Server) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	entry, err := s.store.AddExperience(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, entry)
}

func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	var req resume.Experience
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// The path names the entry; the body cannot reassign the ID.
	req.ID = r.PathValue("id")

	if err := s.store.UpdateExperience(r.Context(), req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleRemoveExperience(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemoveExperience(r.Context(), r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handlePolishExperience rewrites every bullet of one entry through the
// polish service and stores the result. Failed bullets keep their original
// text.
func (s *Server) handlePolishExperience(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	doc := s.store.Document()
	i := doc.ExperienceByID(id)
	if i < 0 {
		s.errorResponse(w, http.StatusNotFound, "entry not found: "+id)
		return
	}

	entry := doc.Experience[i]
	context := "Work experience bullet for " + entry.Title + " at " + entry.Company
	entry.Bullets = s.polisher.PolishBullets(r.Context(), entry.Bullets, context)

	if err := s.store.UpdateExperience(r.Context(), entry); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, entry)
}

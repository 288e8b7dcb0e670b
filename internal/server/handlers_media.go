package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-site/internal/resume"
)

// ---------------------------------------------------------------------
// Project Video Handlers
// ---------------------------------------------------------------------

// handleAddProjectVideo appends a placeholder media item and returns it.
func (s *Server) handleAddProjectVideo(w http.ResponseWriter, r *http.Request) {
	item, err := s.store.AddProjectVideo(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateProjectVideo(w http.ResponseWriter, r *http.Request) {
	var req resume.MediaItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ID = r.PathValue("id")

	if err := s.store.UpdateProjectVideo(r.Context(), req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleRemoveProjectVideo(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemoveProjectVideo(r.Context(), r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

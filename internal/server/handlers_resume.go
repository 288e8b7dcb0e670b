package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-site/internal/resume"
)

// SetFieldRequest carries a replacement value for one scalar field. An empty
// value is allowed: the owner can clear a field while editing.
type SetFieldRequest struct {
	Value string `json:"value"`
}

// handleGetResume returns the whole document.
func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

// handleSetSummary replaces the professional summary.
func (s *Server) handleSetSummary(w http.ResponseWriter, r *http.Request) {
	var req SetFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.store.SetSummary(r.Context(), req.Value); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleSetIntroVideo replaces the introduction video URL.
func (s *Server) handleSetIntroVideo(w http.ResponseWriter, r *http.Request) {
	var req SetFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.store.SetIntroVideoURL(r.Context(), req.Value); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleSetPersonalInfo replaces the contact block.
func (s *Server) handleSetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	var req resume.PersonalInfo
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.store.SetPersonalInfo(r.Context(), req); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

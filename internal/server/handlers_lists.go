package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// ---------------------------------------------------------------------
// Skill and Achievement Handlers
//
// Skills and achievements are plain ordered string lists addressed by
// index. The editor only submits indices it just rendered; the store
// treats a stale index as a no-op.
// ---------------------------------------------------------------------

// skillOps resolves the {list} path segment ("key" or "technical") to the
// matching store operations.
type skillOps struct {
	add    func(context.Context, string) error
	set    func(context.Context, int, string) error
	remove func(context.Context, int) error
}

func (s *Server) skillOpsFor(list string) (skillOps, bool) {
	switch list {
	case "key":
		return skillOps{add: s.store.AddKeySkill, set: s.store.SetKeySkill, remove: s.store.RemoveKeySkill}, true
	case "technical":
		return skillOps{add: s.store.AddTechnicalSkill, set: s.store.SetTechnicalSkill, remove: s.store.RemoveTechnicalSkill}, true
	default:
		return skillOps{}, false
	}
}

func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	ops, ok := s.skillOpsFor(r.PathValue("list"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Unknown skill list")
		return
	}

	var req SetFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Value == "" {
		req.Value = "New Skill"
	}

	if err := ops.add(r.Context(), req.Value); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"status": "added"})
}

func (s *Server) handleSetSkill(w http.ResponseWriter, r *http.Request) {
	ops, ok := s.skillOpsFor(r.PathValue("list"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Unknown skill list")
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}

	var req SetFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := ops.set(r.Context(), index, req.Value); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	ops, ok := s.skillOpsFor(r.PathValue("list"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Unknown skill list")
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}

	if err := ops.remove(r.Context(), index); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleAddAchievement(w http.ResponseWriter, r *http.Request) {
	var req SetFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Value == "" {
		req.Value = "New Achievement"
	}

	if err := s.store.AddAchievement(r.Context(), req.Value); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"status": "added"})
}

func (s *Server) handleSetAchievement(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}

	var req SetFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.store.SetAchievement(r.Context(), index, req.Value); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleRemoveAchievement(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}

	if err := s.store.RemoveAchievement(r.Context(), index); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to save: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

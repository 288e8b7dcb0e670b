package server

import (
	"encoding/json"
	"net/http"
)

// PolishRequest asks for an improved version of one field's text.
type PolishRequest struct {
	Text    string `json:"text" validate:"required"`
	Context string `json:"context"`
}

// PolishResponse carries the improved text, or the original when the service
// is unavailable or failed.
type PolishResponse struct {
	Text string `json:"text"`
}

// handlePolish runs the polish call and returns the result without touching
// the document; the editor applies it through a normal field mutation.
// Concurrent polish requests for the same field are not serialized — the
// mutation that lands last wins, mirroring the editor's last-writer-wins
// behavior.
func (s *Server) handlePolish(w http.ResponseWriter, r *http.Request) {
	var req PolishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Text is required")
		return
	}

	polished := s.polisher.Polish(r.Context(), req.Text, req.Context)
	s.jsonResponse(w, http.StatusOK, PolishResponse{Text: polished})
}

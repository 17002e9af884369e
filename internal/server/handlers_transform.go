package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/message-polisher/internal/buzzword"
	"github.com/jonathan/message-polisher/internal/types"
)

// handleBuzzwordify applies the standalone word-substitution transform.
func (s *Server) handleBuzzwordify(w http.ResponseWriter, r *http.Request) {
	var req types.BuzzwordifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.BuzzwordifyResponse{
		Original:    req.Text,
		Transformed: buzzword.Apply(req.Text, *req.Intensity),
	})
}

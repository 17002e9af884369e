package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/message-polisher/internal/reply"
	"github.com/jonathan/message-polisher/internal/types"
)

// handleReplySuggestions returns canned replies for an incoming message,
// keyed by conversational style.
func (s *Server) handleReplySuggestions(w http.ResponseWriter, r *http.Request) {
	var req types.ReplySuggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ReplySuggestionsResponse{
		Replies: reply.Suggest(s.banks, req.Style, req.Medium, req.Suggestions),
	})
}

package server

import (
	"net/http"
)

// handlePhrases serves the static phrase reference. With a recognized
// context query parameter it returns just that context's list; otherwise it
// returns the full mapping.
func (s *Server) handlePhrases(w http.ResponseWriter, r *http.Request) {
	context := r.URL.Query().Get("context")
	if context != "" {
		if phrases, ok := s.banks.ReferenceContext(context); ok {
			s.jsonResponse(w, http.StatusOK, map[string][]string{context: phrases})
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, s.banks.Reference)
}

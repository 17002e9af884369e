package server

import (
	"encoding/json"
	"math/rand"
	"net/http"

	"github.com/jonathan/message-polisher/internal/compose"
	"github.com/jonathan/message-polisher/internal/types"
)

// handlePolish returns multiple polished variants according to
// tone/medium/length/locale. Randomness is seeded per request from the input
// so repeated identical requests return the same variants, and each request
// owns its generator so concurrent calls cannot race on shared draws.
func (s *Server) handlePolish(w http.ResponseWriter, r *http.Request) {
	var req types.PolishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	rng := rand.New(rand.NewSource(compose.Seed(req.Text, req.Suggestions)))
	variants := s.composer.Variants(req.Params(), req.Suggestions, rng)

	s.jsonResponse(w, http.StatusOK, types.PolishResponse{
		Variants: variants,
		Meta: types.PolishMeta{
			Tone:        req.Tone,
			Medium:      req.Medium,
			Length:      req.Length,
			Locale:      req.Locale,
			Suggestions: req.Suggestions,
		},
	})
}

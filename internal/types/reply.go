package types

import (
	"github.com/go-playground/validator/v10"
)

// Style is the conversational style of a suggested reply.
type Style string

// Supported reply styles.
const (
	StyleNeutral     Style = "neutral"
	StylePositive    Style = "positive"
	StylePushback    Style = "pushback"
	StyleClarify     Style = "clarify"
	StyleAcknowledge Style = "acknowledge"
)

// ReplySuggestionsRequest represents the request body for /reply-suggestions.
type ReplySuggestionsRequest struct {
	Incoming    string `json:"incoming" validate:"required"`
	Style       Style  `json:"style,omitempty" validate:"omitempty,oneof=neutral positive pushback clarify acknowledge"`
	Medium      Medium `json:"medium,omitempty" validate:"omitempty,oneof=email slack teams whatsapp text doc"`
	Suggestions int    `json:"suggestions,omitempty" validate:"omitempty,min=1,max=6"`
}

// ApplyDefaults fills unset fields with the documented defaults.
func (r *ReplySuggestionsRequest) ApplyDefaults() {
	if r.Style == "" {
		r.Style = StyleNeutral
	}
	if r.Medium == "" {
		r.Medium = MediumSlack
	}
	if r.Suggestions == 0 {
		r.Suggestions = 3
	}
}

// Validate validates the ReplySuggestionsRequest using the validator.
func (r *ReplySuggestionsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ReplySuggestionsResponse represents the response for /reply-suggestions.
type ReplySuggestionsResponse struct {
	Replies []string `json:"replies"`
}

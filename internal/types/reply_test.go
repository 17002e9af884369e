package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplySuggestionsRequest_ApplyDefaults(t *testing.T) {
	req := ReplySuggestionsRequest{Incoming: "fyi"}
	req.ApplyDefaults()

	assert.Equal(t, StyleNeutral, req.Style)
	assert.Equal(t, MediumSlack, req.Medium)
	assert.Equal(t, 3, req.Suggestions)
}

func TestReplySuggestionsRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ReplySuggestionsRequest
		wantErr bool
	}{
		{name: "defaults", req: ReplySuggestionsRequest{Incoming: "fyi", Style: StyleNeutral, Medium: MediumSlack, Suggestions: 3}},
		{name: "max suggestions", req: ReplySuggestionsRequest{Incoming: "fyi", Suggestions: 6}},
		{name: "missing incoming", req: ReplySuggestionsRequest{Style: StylePushback}, wantErr: true},
		{name: "unknown style", req: ReplySuggestionsRequest{Incoming: "fyi", Style: "sarcastic"}, wantErr: true},
		{name: "unknown medium", req: ReplySuggestionsRequest{Incoming: "fyi", Medium: "fax"}, wantErr: true},
		{name: "suggestions too high", req: ReplySuggestionsRequest{Incoming: "fyi", Suggestions: 7}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

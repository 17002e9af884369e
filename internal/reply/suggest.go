// Package reply produces canned reply suggestions keyed by conversational style.
package reply

import (
	"strings"

	"github.com/jonathan/message-polisher/internal/phrasebank"
	"github.com/jonathan/message-polisher/internal/types"
)

// Suggest returns up to n replies for the given style, in the bank's defined
// order. An unrecognized style falls back to the neutral bank rather than
// failing. For chat mediums the em-dash is replaced with a plain " - ", which
// renders more reliably there.
func Suggest(banks *phrasebank.Banks, style types.Style, medium types.Medium, n int) []string {
	bank, ok := banks.ReplyStyles[style]
	if !ok {
		bank = banks.ReplyStyles[types.StyleNeutral]
	}

	if n > len(bank) {
		n = len(bank)
	}
	if n < 0 {
		n = 0
	}
	replies := make([]string, n)
	copy(replies, bank[:n])

	if medium == types.MediumSlack || medium == types.MediumTeams {
		for i := range replies {
			replies[i] = strings.ReplaceAll(replies[i], "—", " - ")
		}
	}
	return replies
}

package reply

import (
	"strings"
	"testing"

	"github.com/jonathan/message-polisher/internal/phrasebank"
	"github.com/jonathan/message-polisher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_ReturnsRequestedCountInDefinedOrder(t *testing.T) {
	banks := phrasebank.Defaults()
	replies := Suggest(banks, types.StylePushback, types.MediumEmail, 2)

	require.Len(t, replies, 2)
	assert.Equal(t, banks.ReplyStyles[types.StylePushback][:2], replies)
	// Email keeps the em-dash untouched.
	assert.Contains(t, replies[0], "—")
}

func TestSuggest_ChatMediumsReplaceEmDash(t *testing.T) {
	banks := phrasebank.Defaults()
	for _, medium := range []types.Medium{types.MediumSlack, types.MediumTeams} {
		replies := Suggest(banks, types.StylePushback, medium, 2)
		require.Len(t, replies, 2)
		for _, r := range replies {
			assert.NotContains(t, r, "—", "medium %s", medium)
		}
		assert.Contains(t, replies[0], " - ")
	}
}

func TestSuggest_CountCappedAtBankSize(t *testing.T) {
	banks := phrasebank.Defaults()
	replies := Suggest(banks, types.StyleNeutral, types.MediumEmail, 6)
	assert.Len(t, replies, len(banks.ReplyStyles[types.StyleNeutral]))
}

func TestSuggest_UnknownStyleFallsBackToNeutral(t *testing.T) {
	banks := phrasebank.Defaults()
	replies := Suggest(banks, types.Style("sarcastic"), types.MediumEmail, 3)
	assert.Equal(t, banks.ReplyStyles[types.StyleNeutral], replies)
}

func TestSuggest_DoesNotMutateBank(t *testing.T) {
	banks := phrasebank.Defaults()
	before := strings.Join(banks.ReplyStyles[types.StylePushback], "|")

	Suggest(banks, types.StylePushback, types.MediumSlack, 3)

	assert.Equal(t, before, strings.Join(banks.ReplyStyles[types.StylePushback], "|"))
}

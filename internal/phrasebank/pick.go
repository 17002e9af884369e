package phrasebank

import (
	"math/rand"
)

// Pick returns a uniformly chosen entry from items using the caller's
// generator. An empty or nil bank yields an empty string, never an error.
// The generator is owned by the caller; nothing here holds shared state, so
// concurrent requests each drawing from their own rng cannot race.
func Pick(rng *rand.Rand, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[rng.Intn(len(items))]
}

package compose

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/jonathan/message-polisher/internal/phrasebank"
	"github.com/jonathan/message-polisher/internal/types"
)

// subjectCoreLimit caps the bullet-derived portion of a subject line.
const subjectCoreLimit = 72

var (
	leadingMarkers = regexp.MustCompile(`^[-•\s]+`)
	trailingPeriod = regexp.MustCompile(`\.$`)
)

// subject builds an email subject from a tone-keyed prefix and the first
// bullet (or "Update" when there are none). The core is stripped of leading
// bullet markers and a trailing period, then truncated to subjectCoreLimit
// runes.
func (c *Composer) subject(tone types.Tone, bullets []string, rng *rand.Rand) string {
	prefix := phrasebank.Pick(rng, c.banks.SubjectPrefixes[tone])
	if prefix == "" {
		prefix = "Update:"
	}

	core := "Update"
	if len(bullets) > 0 {
		core = bullets[0]
	}
	core = leadingMarkers.ReplaceAllString(core, "")
	core = trailingPeriod.ReplaceAllString(core, "")
	if runes := []rune(core); len(runes) > subjectCoreLimit {
		core = string(runes[:subjectCoreLimit])
	}

	return strings.TrimSpace(prefix + " " + core)
}

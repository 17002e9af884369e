// Package compose assembles polished message variants from raw text, the
// static phrase banks, and a caller-provided random source.
package compose

import (
	"regexp"
	"strings"
)

// maxBullets caps how many points are kept from one input.
const maxBullets = 8

// bulletSeparators matches the delimiters that split free text into points:
// a newline, a semicolon, or a hyphen surrounded by single spaces.
var bulletSeparators = regexp.MustCompile(`\n|;|\s-\s`)

// ExtractBullets splits free text into a deduplicated, order-preserving list
// of short point strings. Fragments are trimmed of surrounding whitespace and
// bullet markers, empties are dropped, and duplicates are removed
// case-insensitively while keeping the first occurrence's casing. The result
// is capped at maxBullets entries. Pure function; an unsplittable or empty
// input yields an empty list.
func ExtractBullets(text string) []string {
	fragments := bulletSeparators.Split(text, -1)

	seen := make(map[string]struct{}, len(fragments))
	bullets := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		bullet := strings.Trim(fragment, " -*\t")
		if bullet == "" {
			continue
		}
		key := strings.ToLower(bullet)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		bullets = append(bullets, bullet)
		if len(bullets) == maxBullets {
			break
		}
	}
	return bullets
}

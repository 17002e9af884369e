package compose

import (
	"math/rand"
	"strings"

	"github.com/jonathan/message-polisher/internal/buzzword"
	"github.com/jonathan/message-polisher/internal/phrasebank"
	"github.com/jonathan/message-polisher/internal/types"
)

const (
	// maxBlockBullets caps the rendered bullet block.
	maxBlockBullets = 5
	// summaryBullets is how many leading bullets form the one-line summary.
	summaryBullets = 2

	mediumClause    = "Requesting your input on the above so we can proceed without delay."
	nextStepsClause = "Next steps: we'll align on owners & timelines after your feedback."
)

// Composer builds message variants against a fixed set of phrase banks.
// A Composer is safe for concurrent use: the banks are never mutated and all
// randomness comes in through the per-call generator.
type Composer struct {
	banks *phrasebank.Banks
}

// New creates a composer over the given banks.
func New(banks *phrasebank.Banks) *Composer {
	return &Composer{banks: banks}
}

// Compose assembles one message variant. The result is deterministic given
// the parameters and the state of rng. Greeting and sign-off inclusion follow
// the medium, the bullet block follows IncludeBullets (or the executive
// email/doc rule), and the core summary follows Length.
func (c *Composer) Compose(p types.ComposeParams, rng *rand.Rand) types.MessageVariant {
	bullets := ExtractBullets(p.Text)
	opener := phrasebank.Pick(rng, c.banks.Openers[p.Tone])

	flavor := c.banks.LocaleFlavor[p.Locale]
	var greeting string
	if p.Medium == types.MediumEmail || p.Medium == types.MediumDoc {
		greeting = phrasebank.Pick(rng, flavor.Greetings)
	}
	politeness := phrasebank.Pick(rng, flavor.Politeness)

	var parts []string
	if greeting != "" {
		parts = append(parts, greeting)
	}
	if opener != "" {
		parts = append(parts, opener)
	}
	if block := c.bulletBlock(p, bullets); block != "" {
		parts = append(parts, block)
	}
	parts = append(parts, coreSummary(p, bullets))
	if politeness != "" {
		parts = append(parts, politeness)
	}
	if signOff := phrasebank.Pick(rng, c.banks.SignOffs[p.Medium]); signOff != "" {
		parts = append(parts, signOff)
	}

	variant := types.MessageVariant{Message: strings.Join(parts, "\n\n")}
	if p.Medium == types.MediumEmail && p.AddSubject {
		subject := c.subject(p.Tone, bullets, rng)
		variant.Subject = &subject
	}
	return variant
}

// bulletBlock renders the bullet list when requested, or unconditionally for
// executive-tone email/doc messages. Empty when there are no bullets.
func (c *Composer) bulletBlock(p types.ComposeParams, bullets []string) string {
	wantsBullets := p.IncludeBullets ||
		(p.Tone == types.ToneExecutive && (p.Medium == types.MediumEmail || p.Medium == types.MediumDoc))
	if !wantsBullets || len(bullets) == 0 {
		return ""
	}

	shown := bullets
	if len(shown) > maxBlockBullets {
		shown = shown[:maxBlockBullets]
	}
	lines := make([]string, len(shown))
	for i, b := range shown {
		lines[i] = "• " + b
	}
	return strings.Join(lines, "\n")
}

// coreSummary builds the length-keyed core sentence. With no bullets the raw
// text stands in for the summary, so an empty input degrades to a bare
// period rather than an error.
func coreSummary(p types.ComposeParams, bullets []string) string {
	summary := p.Text
	if len(bullets) > 0 {
		n := summaryBullets
		if len(bullets) < n {
			n = len(bullets)
		}
		summary = strings.Join(bullets[:n], " ")
	}

	switch p.Length {
	case types.LengthShort:
		return summary + "."
	case types.LengthMedium:
		return summary + ". " + mediumClause
	default: // long
		context := "see above"
		if len(bullets) > summaryBullets {
			hi := len(bullets)
			if hi > maxBlockBullets {
				hi = maxBlockBullets
			}
			context = strings.Join(bullets[summaryBullets:hi], ", ")
		}
		return summary + ". Here's the context: " + context + ". " + nextStepsClause
	}
}

// Variants generates n variants with identical parameters, relying on the
// shared draw sequence of rng to vary phrase selection between calls. Each
// variant independently has a 50% chance of a light buzzword pass over its
// message and subject.
func (c *Composer) Variants(p types.ComposeParams, n int, rng *rand.Rand) []types.MessageVariant {
	variants := make([]types.MessageVariant, 0, n)
	for i := 0; i < n; i++ {
		v := c.Compose(p, rng)
		if rng.Float64() < 0.5 {
			v.Message = buzzword.Apply(v.Message, 1)
			if v.Subject != nil {
				subject := buzzword.Apply(*v.Subject, 1)
				v.Subject = &subject
			}
		}
		variants = append(variants, v)
	}
	return variants
}

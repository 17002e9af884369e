package compose

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/jonathan/message-polisher/internal/phrasebank"
	"github.com/jonathan/message-polisher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComposer() *Composer {
	return New(phrasebank.Defaults())
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func composeParams(text string) types.ComposeParams {
	return types.ComposeParams{
		Text:   text,
		Tone:   types.ToneFormal,
		Medium: types.MediumSlack,
		Length: types.LengthShort,
		Locale: types.LocaleGeneric,
	}
}

func TestCompose_ShortCoreSentence(t *testing.T) {
	c := newTestComposer()
	v := c.Compose(composeParams("Ship the report"), testRNG())

	assert.Contains(t, v.Message, "Ship the report.")
	assert.Nil(t, v.Subject)
}

func TestCompose_MediumAppendsInputRequest(t *testing.T) {
	c := newTestComposer()
	p := composeParams("Ship the report")
	p.Length = types.LengthMedium
	v := c.Compose(p, testRNG())

	assert.Contains(t, v.Message, "Ship the report. Requesting your input on the above so we can proceed without delay.")
}

func TestCompose_LongListsContextBullets(t *testing.T) {
	c := newTestComposer()
	p := composeParams("a\nb\nc\nd\ne\nf")
	p.Length = types.LengthLong
	v := c.Compose(p, testRNG())

	// Summary is the first two bullets; context lists bullets three to five.
	assert.Contains(t, v.Message, "a b. Here's the context: c, d, e. Next steps: we'll align on owners & timelines after your feedback.")
}

func TestCompose_LongFallsBackToSeeAbove(t *testing.T) {
	c := newTestComposer()
	p := composeParams("a\nb")
	p.Length = types.LengthLong
	v := c.Compose(p, testRNG())

	assert.Contains(t, v.Message, "Here's the context: see above.")
}

func TestCompose_ExecutiveEmailAlwaysGetsBulletBlock(t *testing.T) {
	c := newTestComposer()
	for _, medium := range []types.Medium{types.MediumEmail, types.MediumDoc} {
		p := composeParams("first point\nsecond point")
		p.Tone = types.ToneExecutive
		p.Medium = medium
		p.IncludeBullets = false
		v := c.Compose(p, testRNG())

		assert.Contains(t, v.Message, "• first point\n• second point", "medium %s", medium)
	}
}

func TestCompose_ExecutiveSlackOmitsBulletBlockUnlessAsked(t *testing.T) {
	c := newTestComposer()
	p := composeParams("first point\nsecond point")
	p.Tone = types.ToneExecutive
	v := c.Compose(p, testRNG())
	assert.NotContains(t, v.Message, "•")

	p.IncludeBullets = true
	v = c.Compose(p, testRNG())
	assert.Contains(t, v.Message, "• first point")
}

func TestCompose_BulletBlockCapsAtFive(t *testing.T) {
	c := newTestComposer()
	p := composeParams("a\nb\nc\nd\ne\nf\ng")
	p.IncludeBullets = true
	v := c.Compose(p, testRNG())

	assert.Contains(t, v.Message, "• e")
	assert.NotContains(t, v.Message, "• f")
}

func TestCompose_DocNeverHasSignOff(t *testing.T) {
	c := newTestComposer()
	signOffs := phrasebank.Defaults().SignOffs
	p := composeParams("Ship the report")
	p.Medium = types.MediumDoc

	rng := testRNG()
	for i := 0; i < 20; i++ {
		v := c.Compose(p, rng)
		for _, medium := range []types.Medium{types.MediumEmail, types.MediumSlack} {
			for _, so := range signOffs[medium] {
				assert.NotContains(t, v.Message, so)
			}
		}
		assert.False(t, strings.HasSuffix(v.Message, "\n\n"))
	}
}

func TestCompose_SubjectOnlyForEmailWithAddSubject(t *testing.T) {
	c := newTestComposer()

	p := composeParams("Ship the report")
	p.Medium = types.MediumEmail
	p.AddSubject = true
	v := c.Compose(p, testRNG())
	require.NotNil(t, v.Subject)
	assert.NotEmpty(t, *v.Subject)

	p.AddSubject = false
	assert.Nil(t, c.Compose(p, testRNG()).Subject)

	p.Medium = types.MediumSlack
	p.AddSubject = true
	assert.Nil(t, c.Compose(p, testRNG()).Subject)
}

func TestCompose_EmptyTextStillComposes(t *testing.T) {
	c := newTestComposer()
	v := c.Compose(composeParams(""), testRNG())

	// Degenerate but structurally valid: the core degrades to a bare period.
	assert.Contains(t, v.Message, ".")
	assert.NotEmpty(t, v.Message)
}

func TestCompose_PartsJoinedByBlankLines(t *testing.T) {
	c := newTestComposer()
	p := composeParams("first point\nsecond point")
	p.Medium = types.MediumEmail
	p.Locale = types.LocaleUS
	v := c.Compose(p, testRNG())

	parts := strings.Split(v.Message, "\n\n")
	assert.GreaterOrEqual(t, len(parts), 3)
	for _, part := range parts {
		assert.NotEmpty(t, part)
	}
}

func TestCompose_DeterministicForFixedSeed(t *testing.T) {
	c := newTestComposer()
	p := composeParams("Ship the report\nreview numbers")
	p.Medium = types.MediumEmail
	p.Locale = types.LocaleUK
	p.AddSubject = true

	a := c.Compose(p, rand.New(rand.NewSource(42)))
	b := c.Compose(p, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestVariants_CountAndDeterminism(t *testing.T) {
	c := newTestComposer()
	p := composeParams("Ship the report")

	seed := Seed(p.Text, 5)
	a := c.Variants(p, 5, rand.New(rand.NewSource(seed)))
	b := c.Variants(p, 5, rand.New(rand.NewSource(seed)))

	require.Len(t, a, 5)
	assert.Equal(t, a, b)
}

func TestVariants_SharedSequenceVariesSelections(t *testing.T) {
	c := newTestComposer()
	p := composeParams("Ship the report")
	p.Tone = types.TonePersuasive

	variants := c.Variants(p, 8, testRNG())
	unique := make(map[string]struct{})
	for _, v := range variants {
		unique[v.Message] = struct{}{}
	}
	// Eight draws over four openers with the buzzword coin flip on top;
	// a single repeated message would mean the rng is not advancing.
	assert.Greater(t, len(unique), 1)
}

func TestSeed_PureFunctionOfInputs(t *testing.T) {
	assert.Equal(t, Seed("abc", 3), Seed("abc", 3))
	assert.Equal(t, int64(8), Seed("hello", 3))
	assert.NotEqual(t, Seed("abc", 3), Seed("abcd", 3))
}

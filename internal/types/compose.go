// Package types provides type definitions for structured data used throughout the message-polisher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Tone selects which opener and subject-prefix phrase banks the composer draws from.
type Tone string

// Supported tones.
const (
	ToneFormal     Tone = "formal"
	ToneCasual     Tone = "casual"
	ToneExecutive  Tone = "executive"
	ToneEmpathetic Tone = "empathetic"
	ToneAssertive  Tone = "assertive"
	ToneFriendly   Tone = "friendly"
	TonePersuasive Tone = "persuasive"
)

// Medium is the target channel. It controls greeting/sign-off inclusion and
// punctuation normalization.
type Medium string

// Supported mediums.
const (
	MediumEmail    Medium = "email"
	MediumSlack    Medium = "slack"
	MediumTeams    Medium = "teams"
	MediumWhatsApp Medium = "whatsapp"
	MediumText     Medium = "text"
	MediumDoc      Medium = "doc"
)

// Length controls how much of the extracted content the core summary carries.
type Length string

// Supported lengths.
const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Locale selects the greeting/politeness phrase flavor.
type Locale string

// Supported locales.
const (
	LocaleUS      Locale = "US"
	LocaleIN      Locale = "IN"
	LocaleUK      Locale = "UK"
	LocaleAU      Locale = "AU"
	LocaleSG      Locale = "SG"
	LocaleGeneric Locale = "Generic"
)

// ComposeParams carries one validated set of composition parameters into the
// engine. The engine assumes the enum fields hold well-formed values.
type ComposeParams struct {
	Text           string
	Tone           Tone
	Medium         Medium
	Length         Length
	Locale         Locale
	IncludeBullets bool
	AddSubject     bool
}

// MessageVariant is one independently generated message/subject pair.
// Subject is null unless the variant was composed for an email with subject
// generation requested; it is never an empty string.
type MessageVariant struct {
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

// PolishRequest represents the request body for /polish.
type PolishRequest struct {
	Text           string `json:"text" validate:"required"`
	Tone           Tone   `json:"tone,omitempty" validate:"omitempty,oneof=formal casual executive empathetic assertive friendly persuasive"`
	Medium         Medium `json:"medium,omitempty" validate:"omitempty,oneof=email slack teams whatsapp text doc"`
	Length         Length `json:"length,omitempty" validate:"omitempty,oneof=short medium long"`
	Locale         Locale `json:"locale,omitempty" validate:"omitempty,oneof=US IN UK AU SG Generic"`
	Suggestions    int    `json:"suggestions,omitempty" validate:"omitempty,min=1,max=8"`
	AddSubject     bool   `json:"add_subject,omitempty"`
	IncludeBullets bool   `json:"include_bullets,omitempty"`
}

// ApplyDefaults fills unset fields with the documented defaults. Zero-valued
// booleans are meaningful and left alone.
func (r *PolishRequest) ApplyDefaults() {
	if r.Tone == "" {
		r.Tone = ToneFormal
	}
	if r.Medium == "" {
		r.Medium = MediumSlack
	}
	if r.Length == "" {
		r.Length = LengthShort
	}
	if r.Locale == "" {
		r.Locale = LocaleGeneric
	}
	if r.Suggestions == 0 {
		r.Suggestions = 3
	}
}

// Validate validates the PolishRequest using the validator.
func (r *PolishRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Params converts the request into engine parameters.
func (r *PolishRequest) Params() ComposeParams {
	return ComposeParams{
		Text:           r.Text,
		Tone:           r.Tone,
		Medium:         r.Medium,
		Length:         r.Length,
		Locale:         r.Locale,
		IncludeBullets: r.IncludeBullets,
		AddSubject:     r.AddSubject,
	}
}

// PolishMeta echoes the effective parameters back to the caller.
type PolishMeta struct {
	Tone        Tone   `json:"tone"`
	Medium      Medium `json:"medium"`
	Length      Length `json:"length"`
	Locale      Locale `json:"locale"`
	Suggestions int    `json:"suggestions"`
}

// PolishResponse represents the response for /polish.
type PolishResponse struct {
	Variants []MessageVariant `json:"variants"`
	Meta     PolishMeta       `json:"meta"`
}

// BuzzwordifyRequest represents the request body for /buzzwordify.
// Intensity is a pointer so an explicit 0 can be told apart from an omitted
// field; omitted defaults to 2.
type BuzzwordifyRequest struct {
	Text      string `json:"text" validate:"required"`
	Intensity *int   `json:"intensity,omitempty" validate:"omitempty,min=0,max=3"`
}

// ApplyDefaults fills unset fields with the documented defaults.
func (r *BuzzwordifyRequest) ApplyDefaults() {
	if r.Intensity == nil {
		level := 2
		r.Intensity = &level
	}
}

// Validate validates the BuzzwordifyRequest using the validator.
func (r *BuzzwordifyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BuzzwordifyResponse represents the response for /buzzwordify.
type BuzzwordifyResponse struct {
	Original    string `json:"original"`
	Transformed string `json:"transformed"`
}

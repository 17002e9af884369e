// Package phrasebank holds the static phrase tables the composer draws from
// and supports overriding them from a schema-validated JSON file.
package phrasebank

import (
	"github.com/jonathan/message-polisher/internal/types"
)

// Flavor groups the locale-specific phrase lists.
type Flavor struct {
	Greetings  []string `json:"greetings"`
	Politeness []string `json:"politeness"`
}

// Banks is the full set of phrase tables. A Banks value is built once at
// startup and never mutated afterwards.
type Banks struct {
	SignOffs        map[types.Medium][]string `json:"sign_offs"`
	Openers         map[types.Tone][]string   `json:"openers"`
	SubjectPrefixes map[types.Tone][]string   `json:"subject_prefixes"`
	LocaleFlavor    map[types.Locale]Flavor   `json:"locale_flavor"`
	ReplyStyles     map[types.Style][]string  `json:"reply_styles"`
	Reference       map[string][]string       `json:"reference"`
}

// Defaults returns the built-in phrase banks.
func Defaults() *Banks {
	return &Banks{
		SignOffs: map[types.Medium][]string{
			types.MediumEmail: {
				"Best regards,",
				"Kind regards,",
				"Thanks,",
				"Sincerely,",
				"Warm regards,",
			},
			types.MediumSlack: {
				"Thanks!",
				"Appreciate it!",
				"Cheers!",
				"— thanks",
			},
			types.MediumTeams: {
				"Thanks!",
				"Appreciated.",
				"Cheers!",
			},
			types.MediumWhatsApp: {
				"Thanks!",
				"Much appreciated.",
				"Cheers!",
			},
			types.MediumText: {"Thanks!", "Appreciate it."},
			// A document carries no sign-off line.
			types.MediumDoc: {""},
		},
		Openers: map[types.Tone][]string{
			types.ToneFormal: {
				"Hope you are doing well.",
				"I wanted to reach out regarding the following.",
				"Following up on the item below.",
				"Sharing a quick update.",
			},
			types.ToneCasual: {
				"Quick update:",
				"Heads up—",
				"FYI—",
				"Ping on this:",
			},
			types.ToneExecutive: {
				"Executive summary:",
				"At a glance:",
				"Top line:",
				"Key call-outs:",
			},
			types.ToneEmpathetic: {
				"I understand this is time-sensitive.",
				"Appreciate the effort here.",
				"Thanks for your patience—",
				"Completely understand the context.",
			},
			types.ToneAssertive: {
				"We need a decision to unblock progress.",
				"Action required to stay on track.",
				"To hit our target, we need the following.",
				"Flagging a blocker:",
			},
			types.ToneFriendly: {
				"Quick one 🙂",
				"Hope your day’s going well!",
				"Just checking in—",
				"Sharing a quick note—",
			},
			types.TonePersuasive: {
				"Here’s why this approach works:",
				"The data strongly supports this.",
				"This will help us deliver faster with less risk.",
				"Recommended path forward:",
			},
		},
		SubjectPrefixes: map[types.Tone][]string{
			types.ToneFormal:     {"Update:", "Request:", "Follow-up:", "Action needed:"},
			types.ToneExecutive:  {"Summary:", "Heads-up:", "Decision needed:", "Risks & Next Steps:"},
			types.ToneAssertive:  {"Blocker:", "Decision required:", "Deadline risk:"},
			types.ToneEmpathetic: {"Appreciate your help:", "Thanks & quick ask:", "Thanks for the support:"},
			types.ToneCasual:     {"Quick update:", "Small ask:", "Heads-up:"},
			types.ToneFriendly:   {"Hey—quick one:", "Tiny ask:", "Quick sync?"},
			types.TonePersuasive: {"Proposal:", "Why this works:", "Recommended path:"},
		},
		LocaleFlavor: map[types.Locale]Flavor{
			types.LocaleIN: {
				Politeness: []string{
					"Kindly let me know your thoughts.",
					"Please advise if this works for you.",
					"Requesting your approval to proceed.",
				},
				Greetings: []string{
					"Hope you are doing well.",
					"Hope you’re keeping well.",
				},
			},
			types.LocaleUS: {
				Politeness: []string{
					"Would love your feedback.",
					"Let me know if you have any questions.",
					"If you're good with this, I’ll proceed.",
				},
				Greetings: []string{
					"Hope you're doing well.",
					"Hope your week is going well.",
				},
			},
			types.LocaleUK: {
				Politeness: []string{
					"Would you be happy to proceed?",
					"Grateful for your thoughts.",
					"Do let me know if that suits.",
				},
				Greetings: []string{
					"Trust you're well.",
					"Hope all's well.",
				},
			},
			types.LocaleGeneric: {},
			types.LocaleAU: {
				Politeness: []string{"Keen to hear your thoughts."},
				Greetings:  []string{"Hope you’re well."},
			},
			types.LocaleSG: {
				Politeness: []string{"Appreciate your advice."},
				Greetings:  []string{"Hope you’re well."},
			},
		},
		ReplyStyles: map[types.Style][]string{
			types.StyleNeutral: {
				"Thanks for the update—got it.",
				"Acknowledged. I’ll keep you posted.",
				"Noted, thanks.",
			},
			types.StylePositive: {
				"This looks great—thanks for pushing it forward!",
				"Nice progress—appreciate the momentum.",
				"Awesome—thanks for the clarity!",
			},
			types.StylePushback: {
				"Thanks—timeline is tight. Can we prioritize the critical path and revisit the rest next sprint?",
				"Appreciate it. Given constraints, proposing we de-scope X to hit the target date—thoughts?",
				"Understood. For feasibility, can we align on the must-haves first?",
			},
			types.StyleClarify: {
				"Thanks—could you clarify the owner for the next step?",
				"Helpful. What’s the expected date for the handoff?",
				"Got it—what’s the definition of done here?",
			},
			types.StyleAcknowledge: {
				"Received, thanks.",
				"Acknowledged—will do.",
				"Noted—appreciate it.",
			},
		},
		Reference: map[string][]string{
			"one_on_one": {
				"Agenda: updates, blockers, next sprint priorities.",
				"I’d appreciate feedback on X and growth areas.",
				"What would make the biggest impact if I focused on it this week?",
			},
			"status": {
				"Green on scope; amber on timeline; risk on dependency Y.",
				"On track overall; one risk identified—mitigation in progress.",
				"Blocked on approval; ETA slips by 2 days without decision.",
			},
			"follow_up": {
				"Looping back on the below—any update?",
				"Gentle nudge in case this got buried.",
				"Re-surfacing this for visibility—appreciate a quick look.",
			},
			"wfh": {
				"Requesting WFH on <dates>—deliverables unaffected.",
				"WFH next week due to personal commitment; coverage planned.",
				"Seeking approval for remote work on <date>; meetings unaffected.",
			},
		},
	}
}

// ReferenceContext returns the phrase list for a recognized reference context.
func (b *Banks) ReferenceContext(key string) ([]string, bool) {
	phrases, ok := b.Reference[key]
	return phrases, ok
}

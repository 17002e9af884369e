// Package buzzword applies tiered, whole-word corporate jargon substitution.
package buzzword

import (
	"regexp"
	"strings"
)

// Rule rewrites every whole-word, case-insensitive match of its pattern with
// a fixed replacement string. An optional guard suppresses the rewrite when
// the matched word is immediately followed by a specific other word.
type Rule struct {
	re          *regexp.Regexp
	replacement string
	unlessNext  *regexp.Regexp
}

// word builds a rule for a whole-word pattern.
func word(pattern, replacement string) Rule {
	return Rule{
		re:          regexp.MustCompile(`(?i)\b(?:` + pattern + `)\b`),
		replacement: replacement,
	}
}

// wordUnlessNext builds a rule that skips matches whose next word is
// nextWord. Go's RE2 engine has no negative lookahead, so the exception is
// checked against the text following each match instead.
func wordUnlessNext(pattern, nextWord, replacement string) Rule {
	r := word(pattern, replacement)
	r.unlessNext = regexp.MustCompile(`(?i)^\s+` + nextWord + `\b`)
	return r
}

// apply rewrites all matches in s, honoring the guard when present.
func (r Rule) apply(s string) string {
	if r.unlessNext == nil {
		return r.re.ReplaceAllString(s, r.replacement)
	}

	matches := r.re.FindAllStringIndex(s, -1)
	if matches == nil {
		return s
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		if r.unlessNext.MatchString(s[m[1]:]) {
			continue
		}
		sb.WriteString(s[last:m[0]])
		sb.WriteString(r.replacement)
		last = m[1]
	}
	sb.WriteString(s[last:])
	return sb.String()
}

// tiers holds the substitution tables in escalation order. Tier 0 is the
// identity. Rules within a tier run in slice order, and each tier runs on the
// previous tier's output, so a tier-1 replacement can feed a tier-2 pattern.
var tiers = [MaxIntensity + 1][]Rule{
	1: {
		word("help", "support"),
		word("ask", "request"),
		word("finish", "complete"),
		word("start", "kick off"),
		word("check", "review"),
		word("talk", "sync"),
		word("plan", "roadmap"),
		word("fix", "resolve"),
		word("problem", "issue"),
		word("delay", "slippage"),
		word("fast", "expedited"),
		word("slow", "deprioritized"),
		word("meet", "connect"),
	},
	2: {
		word("do", "execute"),
		word("make", "build"),
		word("try", "explore"),
		word("change", "iterate"),
		word("improve", "optimize"),
		word("decide", "align on a decision"),
		word("team", "cross-functional team"),
		word("work together", "collaborate"),
		word("because", "so that"),
		word("goal", "north star"),
		word("idea", "proposal"),
	},
	3: {
		word("use", "leverage"),
		// Shadowed by the rule above, which has already rewritten every
		// standalone "use" by the time this one runs. Kept in order anyway
		// so the table mirrors its documented two-entry form for the word.
		wordUnlessNext("use", "case", "utilize"),
		word("result", "outcome"),
		word("plan", "strategic roadmap"),
		word("meeting", "working session"),
		word("deadline", "target date"),
		word("notes?", "takeaways"),
		word("OK", "actionable"),
		word("good", "impactful"),
		word("bad", "non-optimal"),
		word("next", "forward-looking"),
	},
}

// Package advisor derives non-blocking suggestion strings from the current
// document. Tips is a pure function of its inputs and is recomputed on
// every call; nothing is cached.
package advisor

import (
	"unicode/utf8"

	"github.com/ekosiswoyo/cv-generator/internal/i18n"
	"github.com/ekosiswoyo/cv-generator/internal/model"
)

const (
	minSummaryLength = 50
	minSkillCount    = 3
)

// Tips evaluates every rule independently, in fixed order, and returns the
// messages for all that fire. An empty result means the profile clears
// every rule; the consumer shows its own positive fallback in that case.
func Tips(doc model.Document, labels i18n.Labels) []string {
	var tips []string
	if utf8.RuneCountInString(doc.PersonalInfo.Summary) < minSummaryLength {
		tips = append(tips, labels.TipShortSummary)
	}
	if len(doc.Experience) == 0 && !doc.IsFreshGraduate {
		tips = append(tips, labels.TipNoExperience)
	}
	if doc.PersonalInfo.LinkedIn == "" {
		tips = append(tips, labels.TipNoLinkedIn)
	}
	if len(doc.Skills) < minSkillCount {
		tips = append(tips, labels.TipFewSkills)
	}
	return tips
}

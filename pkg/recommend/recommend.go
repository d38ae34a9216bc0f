// Package recommend turns a scan's matches into short human-readable guidance.
package recommend

import (
	"fmt"

	"github.com/arthur-debert/skillguard/pkg/matcher"
	"github.com/arthur-debert/skillguard/pkg/rules"
	"github.com/arthur-debert/skillguard/pkg/scoring"
)

// BlockedBanner opens the recommendations of a blocked scan
const BlockedBanner = "⛔ Critical security risk detected, installation blocked!"

var tierSentences = map[scoring.Level]string{
	scoring.LevelSafe:     "✅ No significant security risks found in this skill",
	scoring.LevelLow:      "ℹ️  This skill has minor security risks, review it before installing",
	scoring.LevelMedium:   "⚠️  This skill has moderate security risks, install with caution",
	scoring.LevelHigh:     "⚠️  This skill has serious security risks, installing it is strongly discouraged",
	scoring.LevelCritical: "⛔ This skill has critical security risks, do not install it",
}

type advisory struct {
	category rules.Category
	text     string
}

// advisories are emitted in this order, once per category present
var advisories = []advisory{
	{rules.CategoryDestructive, "⚠️  Contains destructive operations that may delete or modify important files"},
	{rules.CategoryRemoteExec, "⚠️  Contains remote code execution that may download and run unknown scripts"},
	{rules.CategoryCmdInjection, "⚠️  Uses dynamic code execution, which may allow code injection"},
	{rules.CategoryNetwork, "ℹ️  Makes network requests, confirm the destinations are trusted"},
	{rules.CategorySecrets, "⚠️  Contains hardcoded sensitive data such as keys or passwords"},
	{rules.CategoryPrivilege, "⚠️  May attempt privilege escalation, proceed with caution"},
	{rules.CategoryPersistence, "⚠️  Contains persistence mechanisms such as scheduled tasks or autostart entries"},
	{rules.CategorySensitiveFileAccess, "ℹ️  Accesses sensitive files, confirm this is necessary"},
}

// TierSentence returns the summary sentence for a level
func TierSentence(level scoring.Level) string {
	return tierSentences[level]
}

// HardTriggerLine formats one blocked finding
func HardTriggerLine(m matcher.Match) string {
	return fmt.Sprintf("  • %s (%s:%d)", m.Rule.Description, m.File, m.Line)
}

// Recommend builds the recommendation list. Hard-trigger matches produce the
// blocked banner and one line per match and nothing else. Otherwise the list
// is the tier sentence for score followed by one advisory per category seen.
func Recommend(matches []matcher.Match, score int) []string {
	out := make([]string, 0)

	for _, m := range matches {
		if m.Rule.HardTrigger {
			if len(out) == 0 {
				out = append(out, BlockedBanner)
			}
			out = append(out, HardTriggerLine(m))
		}
	}
	if len(out) > 0 {
		return out
	}

	out = append(out, TierSentence(scoring.Classify(score)))

	seen := make(map[rules.Category]bool)
	for _, m := range matches {
		seen[m.Rule.Category] = true
	}
	for _, a := range advisories {
		if seen[a.category] {
			out = append(out, a.text)
		}
	}
	return out
}

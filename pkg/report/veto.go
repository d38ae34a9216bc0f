package report

import "github.com/arthur-debert/skillguard/pkg/matcher"

// Veto reports whether any match comes from a hard-trigger rule, listing
// every such match in order. The result does not depend on the score.
func Veto(matches []matcher.Match) (bool, []HardTriggerIssue) {
	issues := make([]HardTriggerIssue, 0)
	for _, m := range matches {
		if !m.Rule.HardTrigger {
			continue
		}
		issues = append(issues, HardTriggerIssue{
			RuleID:      m.Rule.ID,
			RuleName:    m.Rule.Name,
			File:        m.File,
			Line:        m.Line,
			Description: m.Rule.Description,
			Code:        m.Snippet,
		})
	}
	return len(issues) > 0, issues
}

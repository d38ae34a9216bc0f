// Package report assembles the result of a scan from its matches.
package report

import (
	"github.com/arthur-debert/skillguard/pkg/matcher"
	"github.com/arthur-debert/skillguard/pkg/recommend"
	"github.com/arthur-debert/skillguard/pkg/rules"
	"github.com/arthur-debert/skillguard/pkg/scoring"
)

// Assemble builds a fresh report. matches must already be in file, line,
// rule order; scannedFiles is copied.
func Assemble(skillID string, matches []matcher.Match, scannedFiles []string) *Report {
	score := scoring.Score(matches)
	level := scoring.Classify(score)
	blocked, hardTriggers := Veto(matches)

	issues := make([]Issue, 0, len(matches))
	for _, m := range matches {
		issues = append(issues, NewIssue(m))
	}

	scanned := make([]string, len(scannedFiles))
	copy(scanned, scannedFiles)

	return &Report{
		SkillID:           skillID,
		Score:             score,
		Level:             level,
		Issues:            issues,
		Recommendations:   recommend.Recommend(matches, score),
		Blocked:           blocked,
		HardTriggerIssues: hardTriggers,
		ScannedFiles:      scanned,
		Summary:           summarize(matches, score, blocked, level),
	}
}

// NewIssue converts a match to its report form
func NewIssue(m matcher.Match) Issue {
	return Issue{
		RuleID:      m.Rule.ID,
		Severity:    MapSeverity(m.Rule.Severity),
		Category:    MapCategory(m.Rule.Category),
		Description: m.Rule.Name + ": " + m.Rule.Description,
		LineNumber:  m.Line,
		CodeSnippet: m.Snippet,
		FilePath:    m.File,
		Confidence:  m.Rule.Confidence,
		Remediation: m.Rule.Remediation,
		CWE:         m.Rule.CWE,
	}
}

func summarize(matches []matcher.Match, score int, blocked bool, level scoring.Level) Summary {
	s := Summary{
		TotalIssues: len(matches),
		Score:       score,
		Blocked:     blocked,
		Level:       level,
	}
	for _, m := range matches {
		switch m.Rule.Severity {
		case rules.SeverityCritical:
			s.CriticalCount++
		case rules.SeverityHigh:
			s.HighCount++
		case rules.SeverityMedium:
			s.MediumCount++
		case rules.SeverityLow:
			s.LowCount++
		}
	}
	return s
}

package report

import "github.com/arthur-debert/skillguard/pkg/rules"

var severityMap = map[rules.Severity]IssueSeverity{
	rules.SeverityCritical: IssueCritical,
	rules.SeverityHigh:     IssueError,
	rules.SeverityMedium:   IssueWarning,
	rules.SeverityLow:      IssueInfo,
}

var categoryMap = map[rules.Category]IssueCategory{
	rules.CategoryDestructive:         CategoryFilesystem,
	rules.CategoryRemoteExec:          CategoryProcessExecution,
	rules.CategoryCmdInjection:        CategoryDangerousFunction,
	rules.CategoryNetwork:             CategoryNetwork,
	rules.CategoryPrivilege:           CategoryProcessExecution,
	rules.CategorySecrets:             CategoryDataExfiltration,
	rules.CategoryPersistence:         CategoryProcessExecution,
	rules.CategorySensitiveFileAccess: CategoryFilesystem,
}

// MapSeverity converts a rule severity to an issue severity
func MapSeverity(s rules.Severity) IssueSeverity {
	if mapped, ok := severityMap[s]; ok {
		return mapped
	}
	return IssueInfo
}

// MapCategory converts a rule category to an issue category
func MapCategory(c rules.Category) IssueCategory {
	if mapped, ok := categoryMap[c]; ok {
		return mapped
	}
	return CategoryOther
}

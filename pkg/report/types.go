package report

import (
	"github.com/arthur-debert/skillguard/pkg/rules"
	"github.com/arthur-debert/skillguard/pkg/scoring"
)

// IssueSeverity is the consumer-facing severity of an issue
type IssueSeverity string

const (
	IssueCritical IssueSeverity = "critical"
	IssueError    IssueSeverity = "error"
	IssueWarning  IssueSeverity = "warning"
	IssueInfo     IssueSeverity = "info"
)

// IssueCategory is the consumer-facing category of an issue
type IssueCategory string

const (
	CategoryFilesystem        IssueCategory = "filesystem"
	CategoryProcessExecution  IssueCategory = "process_execution"
	CategoryDangerousFunction IssueCategory = "dangerous_function"
	CategoryNetwork           IssueCategory = "network"
	CategoryDataExfiltration  IssueCategory = "data_exfiltration"
	CategoryOther             IssueCategory = "other"
)

// Issue is a match expressed for report consumers
type Issue struct {
	RuleID      string           `json:"ruleId"`
	Severity    IssueSeverity    `json:"severity"`
	Category    IssueCategory    `json:"category"`
	Description string           `json:"description"`
	LineNumber  int              `json:"lineNumber"`
	CodeSnippet string           `json:"codeSnippet"`
	FilePath    string           `json:"filePath"`
	Confidence  rules.Confidence `json:"confidence"`
	Remediation string           `json:"remediation"`
	CWE         string           `json:"cweId,omitempty"`
}

// HardTriggerIssue is a match of a rule that blocks installation
type HardTriggerIssue struct {
	RuleID      string `json:"ruleId"`
	RuleName    string `json:"ruleName"`
	File        string `json:"file"`
	Line        int    `json:"line"`
	Description string `json:"description"`
	Code        string `json:"code"`
}

// Summary aggregates match counts by rule severity
type Summary struct {
	TotalIssues   int           `json:"totalIssues"`
	CriticalCount int           `json:"criticalCount"`
	HighCount     int           `json:"highCount"`
	MediumCount   int           `json:"mediumCount"`
	LowCount      int           `json:"lowCount"`
	Score         int           `json:"score"`
	Blocked       bool          `json:"blocked"`
	Level         scoring.Level `json:"level"`
}

// Report is the complete result of one scan. Slices are never nil so the
// JSON form always carries arrays.
type Report struct {
	SkillID           string             `json:"skillId"`
	Score             int                `json:"score"`
	Level             scoring.Level      `json:"level"`
	Issues            []Issue            `json:"issues"`
	Recommendations   []string           `json:"recommendations"`
	Blocked           bool               `json:"blocked"`
	HardTriggerIssues []HardTriggerIssue `json:"hardTriggerIssues"`
	ScannedFiles      []string           `json:"scannedFiles"`
	Summary           Summary            `json:"summary"`
}

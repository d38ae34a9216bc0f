package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/skillguard/pkg/logging"
	"github.com/arthur-debert/skillguard/pkg/report"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Markdown formats a report as a markdown document
func Markdown(rep *report.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Security report: %s\n\n", rep.SkillID)
	fmt.Fprintf(&b, "- **Score:** %d/100\n", rep.Score)
	fmt.Fprintf(&b, "- **Level:** %s\n", rep.Level)
	fmt.Fprintf(&b, "- **Blocked:** %t\n", rep.Blocked)
	fmt.Fprintf(&b, "- **Scanned files:** %d\n\n", len(rep.ScannedFiles))

	if len(rep.HardTriggerIssues) > 0 {
		b.WriteString("## Hard triggers\n\n")
		for _, h := range rep.HardTriggerIssues {
			fmt.Fprintf(&b, "- `%s` in `%s:%d`: %s\n", h.RuleID, h.File, h.Line, h.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Issues\n\n")
	if len(rep.Issues) == 0 {
		b.WriteString("No issues found.\n\n")
	} else {
		b.WriteString("| Severity | Location | Rule | Description |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, issue := range rep.Issues {
			fmt.Fprintf(&b, "| %s | `%s:%d` | %s | %s |\n",
				issue.Severity, issue.FilePath, issue.LineNumber, issue.RuleID, escapeCell(issue.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Recommendations\n\n")
	for _, rec := range rep.Recommendations {
		fmt.Fprintf(&b, "- %s\n", strings.TrimSpace(rec))
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderMarkdown writes the markdown report. On a color terminal it is
// rendered with glamour; otherwise the markdown source is written as is.
func RenderMarkdown(w io.Writer, rep *report.Report, color bool) error {
	md := Markdown(rep)
	if !color {
		return writeString(w, md)
	}

	logger := logging.GetLogger("output")
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(pterm.GetTerminalWidth()),
	)
	if err != nil {
		logger.Debug().Err(err).Msg("Falling back to plain markdown")
		return writeString(w, md)
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		logger.Debug().Err(err).Msg("Falling back to plain markdown")
		return writeString(w, md)
	}
	return writeString(w, rendered)
}

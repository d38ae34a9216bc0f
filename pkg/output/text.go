package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/skillguard/pkg/report"
	"github.com/arthur-debert/skillguard/pkg/scoring"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// palette holds the styles of the text renderer, bound to one writer
type palette struct {
	title    lipgloss.Style
	label    lipgloss.Style
	muted    lipgloss.Style
	code     lipgloss.Style
	blocked  lipgloss.Style
	levels   map[scoring.Level]lipgloss.Style
	severity map[report.IssueSeverity]lipgloss.Style
}

var (
	green  = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"}
	blue   = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#58A6FF"}
	yellow = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#D29922"}
	orange = lipgloss.AdaptiveColor{Light: "#BC4C00", Dark: "#DB6D28"}
	red    = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"}
	gray   = lipgloss.AdaptiveColor{Light: "#6E7781", Dark: "#8B949E"}
)

func newPalette(w io.Writer, color bool) palette {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	fg := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return r.NewStyle().Foreground(c)
	}
	return palette{
		title:   r.NewStyle().Bold(true).Underline(true),
		label:   r.NewStyle().Bold(true),
		muted:   fg(gray),
		code:    fg(blue),
		blocked: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(red),
		levels: map[scoring.Level]lipgloss.Style{
			scoring.LevelSafe:     fg(green).Bold(true),
			scoring.LevelLow:      fg(blue).Bold(true),
			scoring.LevelMedium:   fg(yellow).Bold(true),
			scoring.LevelHigh:     fg(orange).Bold(true),
			scoring.LevelCritical: fg(red).Bold(true),
		},
		severity: map[report.IssueSeverity]lipgloss.Style{
			report.IssueCritical: fg(red).Bold(true),
			report.IssueError:    fg(orange),
			report.IssueWarning:  fg(yellow),
			report.IssueInfo:     fg(blue),
		},
	}
}

// RenderText writes a human-readable report
func RenderText(w io.Writer, rep *report.Report, color bool) error {
	p := newPalette(w, color)
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", p.title.Render("Skill"), rep.SkillID)
	fmt.Fprintf(&b, "%s %d/100  %s %s",
		p.label.Render("Score:"), rep.Score,
		p.label.Render("Level:"), p.levels[rep.Level].Render(strings.ToUpper(rep.Level.String())))
	if rep.Blocked {
		b.WriteString("  " + p.blocked.Render(" BLOCKED "))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d\n", p.label.Render("Scanned files:"), len(rep.ScannedFiles))

	if len(rep.HardTriggerIssues) > 0 {
		fmt.Fprintf(&b, "\n%s\n", p.label.Render(fmt.Sprintf("Hard triggers (%d):", len(rep.HardTriggerIssues))))
		for _, h := range rep.HardTriggerIssues {
			fmt.Fprintf(&b, "  %s %s:%d  %s\n", p.severity[report.IssueCritical].Render(h.RuleID), h.File, h.Line, h.Description)
			fmt.Fprintf(&b, "      %s\n", p.code.Render(h.Code))
		}
	}

	if len(rep.Issues) > 0 {
		fmt.Fprintf(&b, "\n%s\n", p.label.Render(fmt.Sprintf("Issues (%d):", len(rep.Issues))))
		for _, issue := range rep.Issues {
			sev := p.severity[issue.Severity].Render(fmt.Sprintf("%-8s", issue.Severity))
			fmt.Fprintf(&b, "  %s %s:%d  %s\n", sev, issue.FilePath, issue.LineNumber, issue.Description)
			fmt.Fprintf(&b, "      %s\n", p.code.Render(issue.CodeSnippet))
			if issue.Remediation != "" {
				fmt.Fprintf(&b, "      %s\n", p.muted.Render("fix: "+issue.Remediation))
			}
		}
	}

	fmt.Fprintf(&b, "\n%s\n", p.label.Render("Recommendations:"))
	for _, rec := range rep.Recommendations {
		fmt.Fprintf(&b, "  %s\n", rec)
	}

	s := rep.Summary
	fmt.Fprintf(&b, "\n%s %d issues (critical %d, high %d, medium %d, low %d)\n",
		p.label.Render("Summary:"), s.TotalIssues, s.CriticalCount, s.HighCount, s.MediumCount, s.LowCount)

	return writeString(w, b.String())
}

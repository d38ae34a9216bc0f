package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/skillguard/pkg/report"
	"github.com/arthur-debert/skillguard/pkg/rules"
	"github.com/arthur-debert/skillguard/pkg/scanner"
	"github.com/pterm/pterm"
)

// Renderer writes reports in one format to one writer
type Renderer struct {
	writer io.Writer
	format Format
	color  bool
}

// NewRenderer creates a renderer. color should come from ResolveColor.
func NewRenderer(w io.Writer, format Format, color bool) *Renderer {
	return &Renderer{writer: w, format: format, color: color}
}

// Render writes a single report
func (r *Renderer) Render(rep *report.Report) error {
	switch r.format {
	case FormatJSON:
		return RenderJSON(r.writer, rep)
	case FormatMarkdown:
		return RenderMarkdown(r.writer, rep, r.color)
	case FormatCheckstyle:
		return RenderCheckstyle(r.writer, rep)
	default:
		return RenderText(r.writer, rep, r.color)
	}
}

// batchEntry is the JSON form of one batch result
type batchEntry struct {
	ID          string         `json:"id"`
	Path        string         `json:"path"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Author      string         `json:"author,omitempty"`
	Version     string         `json:"version,omitempty"`
	Report      *report.Report `json:"securityReport,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// RenderBatch writes batch results. JSON emits every report; the other
// formats print one summary line per skill.
func (r *Renderer) RenderBatch(results []scanner.BatchResult) error {
	if r.format == FormatJSON {
		entries := make([]batchEntry, len(results))
		for i, res := range results {
			t := res.Target
			entries[i] = batchEntry{
				ID:          t.ID,
				Path:        t.Root,
				Name:        t.Name,
				Description: t.Description,
				Author:      t.Author,
				Version:     t.Version,
				Report:      res.Report,
			}
			if res.Err != nil {
				entries[i].Error = res.Err.Error()
			}
		}
		return RenderJSON(r.writer, entries)
	}

	p := newPalette(r.writer, r.color)
	var b strings.Builder
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(&b, "%s  %s\n", p.severity[report.IssueCritical].Render("ERROR   "), res.Target.Label())
			fmt.Fprintf(&b, "          %s\n", p.muted.Render(res.Err.Error()))
			continue
		}
		rep := res.Report
		status := p.levels[rep.Level].Render(fmt.Sprintf("%-8s", strings.ToUpper(rep.Level.String())))
		if rep.Blocked {
			status = p.blocked.Render("BLOCKED ")
		}
		fmt.Fprintf(&b, "%s  %s  score %d, %d issues\n", status, res.Target.Label(), rep.Score, len(rep.Issues))
	}
	return writeString(r.writer, b.String())
}

// RenderRules writes a table of rules
func RenderRules(w io.Writer, list []*rules.Rule) error {
	data := pterm.TableData{{"ID", "SEVERITY", "CATEGORY", "WEIGHT", "HARD", "NAME"}}
	for _, rule := range list {
		hard := ""
		if rule.HardTrigger {
			hard = "yes"
		}
		data = append(data, []string{
			rule.ID,
			rule.Severity.String(),
			rule.Category.String(),
			strconv.Itoa(rule.Weight),
			hard,
			rule.Name,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render rules table: %w", err)
	}
	return writeString(w, table+"\n")
}

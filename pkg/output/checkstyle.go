package output

import (
	"io"
	"strconv"

	"github.com/arthur-debert/skillguard/pkg/report"
	"github.com/beevik/etree"
)

// CheckstyleVersion is the checkstyle format version written to reports
const CheckstyleVersion = "4.3"

var checkstyleSeverity = map[report.IssueSeverity]string{
	report.IssueCritical: "error",
	report.IssueError:    "error",
	report.IssueWarning:  "warning",
	report.IssueInfo:     "info",
}

// Checkstyle builds a checkstyle XML document with one <file> per scanned
// file, in scan order, and one <error> per issue.
func Checkstyle(rep *report.Report) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("checkstyle")
	root.CreateAttr("version", CheckstyleVersion)

	files := make(map[string]*etree.Element)
	fileElement := func(name string) *etree.Element {
		if el, ok := files[name]; ok {
			return el
		}
		el := root.CreateElement("file")
		el.CreateAttr("name", name)
		files[name] = el
		return el
	}

	for _, name := range rep.ScannedFiles {
		fileElement(name)
	}
	for _, issue := range rep.Issues {
		el := fileElement(issue.FilePath).CreateElement("error")
		el.CreateAttr("line", strconv.Itoa(issue.LineNumber))
		el.CreateAttr("severity", checkstyleSeverity[issue.Severity])
		el.CreateAttr("message", issue.Description)
		el.CreateAttr("source", "skillguard."+issue.RuleID)
	}

	doc.Indent(2)
	return doc
}

// RenderCheckstyle writes the checkstyle XML form of a report
func RenderCheckstyle(w io.Writer, rep *report.Report) error {
	_, err := Checkstyle(rep).WriteTo(w)
	return err
}

package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/skillguard/pkg/config"
	"github.com/arthur-debert/skillguard/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects a report renderer
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatMarkdown
	FormatCheckstyle
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "markdown"
	case FormatCheckstyle:
		return "checkstyle"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "checkstyle", "xml":
		return FormatCheckstyle, nil
	default:
		return FormatText, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("format", s)
	}
}

// ResolveColor decides whether output to w should carry ANSI styling. mode
// is one of config.ColorAuto, config.ColorAlways or config.ColorNever. In
// auto mode NO_COLOR, a non-terminal writer or an ASCII-only terminal
// disable color.
func ResolveColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

package config

import (
	"strings"
)

// generatedHeader replaces the leading comment block of the embedded defaults
const generatedHeader = `# skillguard user configuration
#
# Every value below is the built-in default. Uncomment a line to override it;
# SKILLGUARD_* environment variables and command line flags still win.
`

// GenerateConfigContent returns the defaults file with every value commented
// out, suitable as a starting user config.
func GenerateConfigContent() string {
	return generatedHeader + commentOutConfigValues(stripLeadingComments(DefaultsContent()))
}

// stripLeadingComments drops the comment block (and blank lines) before the
// first table header
func stripLeadingComments(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			return "\n" + strings.Join(lines[i:], "\n")
		}
	}
	return ""
}

// commentOutConfigValues comments out assignment lines, including the
// continuation lines of multi-line arrays, leaving blank lines, comments and
// table headers untouched
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))
	depth := 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Inside an array value every line belongs to the assignment
		if depth > 0 {
			depth += strings.Count(trimmed, "[") - strings.Count(trimmed, "]")
			result = append(result, "# "+line)
			continue
		}

		// Keep blank lines and comments as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep table headers so the sections stay visible
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// An assignment opening an array that is not closed on this line
		if _, value, ok := strings.Cut(trimmed, "="); ok {
			value = strings.TrimSpace(value)
			if strings.HasPrefix(value, "[") {
				depth = strings.Count(value, "[") - strings.Count(value, "]")
			}
		}
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Severity is the rule corpus severity axis.
type Severity int

// The zero value is not a valid severity; corpus validation rejects it.
const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = map[Severity]string{
	SeverityLow:      "LOW",
	SeverityMedium:   "MEDIUM",
	SeverityHigh:     "HIGH",
	SeverityCritical: "CRITICAL",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Valid reports whether s is one of the declared severities.
func (s Severity) Valid() bool {
	_, ok := severityNames[s]
	return ok
}

// MarshalText implements encoding.TextMarshaler
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a case-insensitive name to a Severity.
func ParseSeverity(name string) (Severity, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for sev, n := range severityNames {
		if n == upper {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("unknown severity: %q", name)
}

// Category groups rules by the kind of behavior they detect.
type Category int

const (
	CategoryDestructive Category = iota + 1
	CategoryRemoteExec
	CategoryCmdInjection
	CategoryNetwork
	CategoryPrivilege
	CategorySecrets
	CategoryPersistence
	CategorySensitiveFileAccess
)

var categoryNames = map[Category]string{
	CategoryDestructive:         "destructive",
	CategoryRemoteExec:          "remote_exec",
	CategoryCmdInjection:        "cmd_injection",
	CategoryNetwork:             "network",
	CategoryPrivilege:           "privilege",
	CategorySecrets:             "secrets",
	CategoryPersistence:         "persistence",
	CategorySensitiveFileAccess: "sensitive_file_access",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory converts a case-insensitive name to a Category.
func ParseCategory(name string) (Category, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for cat, n := range categoryNames {
		if n == lower {
			return cat, nil
		}
	}
	return 0, fmt.Errorf("unknown category: %q", name)
}

// Confidence expresses how likely a match is a true positive.
type Confidence int

const (
	ConfidenceLow Confidence = iota + 1
	ConfidenceMedium
	ConfidenceHigh
)

var confidenceNames = map[Confidence]string{
	ConfidenceLow:    "LOW",
	ConfidenceMedium: "MEDIUM",
	ConfidenceHigh:   "HIGH",
}

func (c Confidence) String() string {
	if name, ok := confidenceNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Confidence(%d)", int(c))
}

// Valid reports whether c is one of the declared confidence levels.
func (c Confidence) Valid() bool {
	_, ok := confidenceNames[c]
	return ok
}

// MarshalText implements encoding.TextMarshaler
func (c Confidence) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid confidence %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Confidence) UnmarshalText(text []byte) error {
	parsed, err := ParseConfidence(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseConfidence converts a case-insensitive name to a Confidence.
func ParseConfidence(name string) (Confidence, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for conf, n := range confidenceNames {
		if n == upper {
			return conf, nil
		}
	}
	return 0, fmt.Errorf("unknown confidence: %q", name)
}

// Definition is the serializable form of a rule, as stored in corpus files.
type Definition struct {
	ID          string     `json:"id" yaml:"id" toml:"id"`
	Name        string     `json:"name" yaml:"name" toml:"name"`
	Pattern     string     `json:"pattern" yaml:"pattern" toml:"pattern"`
	Severity    Severity   `json:"severity" yaml:"severity" toml:"severity"`
	Category    Category   `json:"category" yaml:"category" toml:"category"`
	Weight      int        `json:"weight" yaml:"weight" toml:"weight"`
	Description string     `json:"description" yaml:"description" toml:"description"`
	HardTrigger bool       `json:"hardTrigger" yaml:"hardTrigger" toml:"hardTrigger"`
	Confidence  Confidence `json:"confidence" yaml:"confidence" toml:"confidence"`
	Remediation string     `json:"remediation" yaml:"remediation" toml:"remediation"`
	CWE         string     `json:"cweId,omitempty" yaml:"cweId,omitempty" toml:"cweId,omitempty"`
}

// Rule is a compiled, validated corpus entry. Rules are shared read-only
// between scans and must not be modified.
type Rule struct {
	ID          string
	Name        string
	Pattern     *regexp.Regexp
	Severity    Severity
	Category    Category
	Weight      int
	Description string
	HardTrigger bool
	Confidence  Confidence
	Remediation string
	// CWE is empty when the rule has no CWE mapping
	CWE string
}

// Definition returns the serializable form of the rule
func (r *Rule) Definition() Definition {
	return Definition{
		ID:          r.ID,
		Name:        r.Name,
		Pattern:     r.Pattern.String(),
		Severity:    r.Severity,
		Category:    r.Category,
		Weight:      r.Weight,
		Description: r.Description,
		HardTrigger: r.HardTrigger,
		Confidence:  r.Confidence,
		Remediation: r.Remediation,
		CWE:         r.CWE,
	}
}

package config

// Config is the resolved skillguard configuration
type Config struct {
	Scan   ScanConfig   `koanf:"scan"`
	Rules  RulesConfig  `koanf:"rules"`
	Output OutputConfig `koanf:"output"`
	Policy PolicyConfig `koanf:"policy"`
}

// ScanConfig controls file collection and matching
type ScanConfig struct {
	// Workers is the per-skill matching concurrency. 0 selects one per CPU.
	Workers     int      `koanf:"workers"`
	Exclude     []string `koanf:"exclude"`
	MaxFileSize int64    `koanf:"max_file_size"`
}

// RulesConfig selects the rule corpus
type RulesConfig struct {
	// Path is a corpus file. Empty uses the built-in rules.
	Path string `koanf:"path"`
}

// OutputConfig controls how reports are printed
type OutputConfig struct {
	Format string `koanf:"format"`
	Color  string `koanf:"color"`
}

// PolicyConfig holds the exit-status policy of the scan command
type PolicyConfig struct {
	FailUnder int `koanf:"fail_under"`
}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats
var Formats = []string{"text", "json", "markdown", "checkstyle"}

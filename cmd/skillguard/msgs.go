package skillguard

// Command descriptions
const (
	MsgRootShort = "Static security scanner for agent skills"
	MsgRootLong  = `skillguard inspects an agent skill bundle (scripts, markdown, config) before it
is installed. Every text file is matched line by line against a corpus of
pattern rules; matches lower a 0-100 score and hard-trigger rules block the
skill outright.`

	MsgScanShort        = "Scan a skill directory"
	MsgScanLong         = "Scan collects the text files under a skill directory, matches them against the rule corpus and prints the report.\n\nThe command fails when the skill is blocked or its score is below --fail-under."
	MsgScanContentShort = "Scan a single file or stdin"
	MsgScanAllShort     = "Discover and scan every skill under a directory"
	MsgScanAllLong      = "Scan-all finds every directory holding a SKILL.md below the given directory and scans them concurrently, printing one line per skill."
	MsgRulesShort       = "Inspect the rule corpus"
	MsgRulesListShort   = "List the rules of the active corpus"
	MsgRulesExportShort = "Write the active corpus as a rules file"
	MsgChecksumShort    = "Print SHA-256 checksums of files"
	MsgGenConfigShort   = "Print or write a starter configuration file"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate man page"
)

// Flag descriptions
const (
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Config file (default $XDG_CONFIG_HOME/skillguard/config.toml)"
	MsgFlagRules        = "Rule corpus file replacing the built-in rules"
	MsgFlagNoColor      = "Disable colored output"
	MsgFlagID           = "Skill identifier used in the report (default: directory name)"
	MsgFlagFormat       = "Output format: text, json, markdown or checkstyle"
	MsgFlagFailUnder    = "Fail when the score is below this value (0 disables)"
	MsgFlagLabel        = "Label used as file name and skill id (default: file path or \"stdin\")"
	MsgFlagParallel     = "Number of skills scanned concurrently"
	MsgFlagHardTriggers = "Only list hard-trigger rules"
	MsgFlagExportFormat = "Rules file format: toml, yaml or json"
	MsgFlagWrite        = "Write the config to the default location instead of stdout"
)

// Output and error messages
const (
	MsgErrNoCommand    = "no command specified"
	MsgErrBlocked      = "skill %s is blocked by %d hard-trigger finding(s)"
	MsgErrBelowScore   = "skill %s scored %d, below the required %d"
	MsgErrBatchBlocked = "%d of %d skills blocked or failed"
	MsgNoSkillsFound   = "No skills found under %s\n"
	MsgConfigWritten   = "Wrote %s\n"
	MsgConfigExists    = "config file already exists: %s"
	MsgVersionFormat   = "skillguard version %s\n  commit: %s\n  built:  %s\n"
	MsgChecksumLine    = "%s  %s\n"
	MsgCompletionLong  = "To load completions:\n\nBash:\n  $ source <(skillguard completion bash)\n\nZsh:\n  $ skillguard completion zsh > \"${fpath[1]}/_skillguard\"\n\nFish:\n  $ skillguard completion fish | source\n\nPowerShell:\n  PS> skillguard completion powershell | Out-String | Invoke-Expression\n"
)

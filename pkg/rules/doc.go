// Package rules holds the security rule corpus used by the skill scanner.
//
// A rule pairs a single-line regular expression with classification metadata:
// severity, category, confidence, a score weight and a hard-trigger flag. Rules
// are independent of each other and are always evaluated against one line at a
// time, so the engine stays deterministic and side effect free.
//
// # Corpus
//
// A Corpus is an immutable, validated list of rules. The built-in table is
// available through Default; alternate corpora are built with NewCorpus or
// loaded from a file with LoadFile. Validation happens at construction time:
// a pattern that does not compile, a duplicate id or an unknown enum value
// fails with a CORPUS_LOAD error before any scan can start.
//
// # File format
//
// Corpus files can be TOML, YAML or JSON and share one layout:
//
//	version = "1.0.0"
//
//	[[rules]]
//	id = "CURL_PIPE_SH"
//	name = "Curl piped to shell"
//	pattern = 'curl\s+[^|]*\|\s*(ba)?sh'
//	severity = "CRITICAL"
//	category = "remote_exec"
//	weight = 90
//	description = "curl | sh executes a remote script"
//	hardTrigger = true
//	confidence = "HIGH"
//	remediation = "Download and review scripts before running them"
//	cweId = "CWE-78"
//
// Export writes a corpus back out in any of the formats, which is how a
// replacement corpus can be produced for an out-of-band updater.
package rules

// Package testutil provides fixtures for testing skillguard components.
//
// Key components:
//   - TestSkill: a skill tree built either in memory (afero) or in a temp
//     directory on disk, behind the filesystem.FS abstraction
//   - IssueRuleIDs: flattens a report's issues for ordering assertions
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated only for behavior that needs a
//     real filesystem (symlinks, permissions, os-level reads)
//   - Define test content inline, not in external files
package testutil

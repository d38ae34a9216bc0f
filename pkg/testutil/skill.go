package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/skillguard/pkg/filesystem"
	"github.com/arthur-debert/skillguard/pkg/report"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// EnvType defines where a test skill lives
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // afero MemMapFs, nothing touches disk
	EnvIsolated                  // real filesystem under t.TempDir()
)

// TestSkill is a skill directory populated for one test
type TestSkill struct {
	Root string
	FS   filesystem.FS
	Type EnvType

	mem afero.Fs
}

// NewTestSkill creates an empty skill root
func NewTestSkill(t *testing.T, envType EnvType) *TestSkill {
	t.Helper()

	s := &TestSkill{Type: envType}
	switch envType {
	case EnvMemoryOnly:
		s.Root = "/virtual/skills/test-skill"
		s.mem = afero.NewMemMapFs()
		require.NoError(t, s.mem.MkdirAll(s.Root, 0755))
		s.FS = filesystem.NewAferoFS(s.mem)
	case EnvIsolated:
		s.Root = filepath.Join(t.TempDir(), "test-skill")
		require.NoError(t, os.MkdirAll(s.Root, 0755))
		s.FS = filesystem.NewOS()
	}
	return s
}

// NewSkillWithFiles creates a skill root holding files, keyed by
// slash-separated relative path
func NewSkillWithFiles(t *testing.T, envType EnvType, files map[string]string) *TestSkill {
	t.Helper()

	s := NewTestSkill(t, envType)
	for rel, content := range files {
		s.AddFile(t, rel, content)
	}
	return s
}

// AddFile writes a file below the root, creating parent directories, and
// returns its full path
func (s *TestSkill) AddFile(t *testing.T, rel, content string) string {
	t.Helper()
	return s.AddBytes(t, rel, []byte(content))
}

// AddBytes is AddFile for binary content
func (s *TestSkill) AddBytes(t *testing.T, rel string, content []byte) string {
	t.Helper()

	full := s.Path(rel)
	switch s.Type {
	case EnvMemoryOnly:
		require.NoError(t, s.mem.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, afero.WriteFile(s.mem, full, content, 0644))
	case EnvIsolated:
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, content, 0644))
	}
	return full
}

// AddDir creates an empty directory below the root
func (s *TestSkill) AddDir(t *testing.T, rel string) string {
	t.Helper()

	full := s.Path(rel)
	switch s.Type {
	case EnvMemoryOnly:
		require.NoError(t, s.mem.MkdirAll(full, 0755))
	case EnvIsolated:
		require.NoError(t, os.MkdirAll(full, 0755))
	}
	return full
}

// Path joins a slash-separated relative path onto the root
func (s *TestSkill) Path(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

// IssueRuleIDs lists the rule id of every issue in report order
func IssueRuleIDs(rep *report.Report) []string {
	ids := make([]string, len(rep.Issues))
	for i, issue := range rep.Issues {
		ids[i] = issue.RuleID
	}
	return ids
}

package testutil_test

import (
	"testing"

	"github.com/arthur-debert/skillguard/pkg/report"
	"github.com/arthur-debert/skillguard/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestSkill(t *testing.T) {
	for _, envType := range []testutil.EnvType{testutil.EnvMemoryOnly, testutil.EnvIsolated} {
		s := testutil.NewSkillWithFiles(t, envType, map[string]string{
			"SKILL.md":       "# Demo",
			"scripts/run.sh": "echo",
		})
		s.AddDir(t, "empty")

		data, err := s.FS.ReadFile(s.Path("scripts/run.sh"))
		require.NoError(t, err)
		assert.Equal(t, "echo", string(data))

		info, err := s.FS.Stat(s.Path("empty"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		entries, err := s.FS.ReadDir(s.Root)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "SKILL.md", entries[0].Name())
	}
}

func TestIssueRuleIDs(t *testing.T) {
	rep := &report.Report{Issues: []report.Issue{{RuleID: "A"}, {RuleID: "B"}}}
	assert.Equal(t, []string{"A", "B"}, testutil.IssueRuleIDs(rep))
	assert.Empty(t, testutil.IssueRuleIDs(&report.Report{}))
}

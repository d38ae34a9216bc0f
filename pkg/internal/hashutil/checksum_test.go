package hashutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Sum(nil))
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", Sum([]byte("hello")))
}

func TestSumFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.txt")
	content := []byte("Hello, World!\nThis is a test file.\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	sum, err := SumFile(path)
	require.NoError(t, err)
	assert.Len(t, sum, 64)
	assert.Equal(t, Sum(content), sum)

	_, err = SumFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

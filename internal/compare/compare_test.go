package compare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rzt/internal/domain"
	"rzt/internal/transform"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestText(t *testing.T) {
	ok, diff := Text("a\nb\n", "a\nb\n")
	assert.True(t, ok)
	assert.Empty(t, diff)

	ok, diff = Text("a\nb\n", "a\nc\n")
	assert.False(t, ok)
	assert.Contains(t, diff, "b")
	assert.Contains(t, diff, "c")
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	scratch := filepath.Join(dir, "scratch") + string(filepath.Separator)

	expected := write(t, dir, "expected.stdout", "wrote out.razers\n")
	matching := write(t, dir, "actual.stdout", "wrote "+scratch+"out.razers\n")
	different := write(t, dir, "other.stdout", "wrote "+scratch+"out.sam\n")
	strip := transform.List{transform.StripPrefix(scratch)}

	t.Run("match after stripping", func(t *testing.T) {
		assert.Nil(t, Files(domain.DiffPair{Expected: expected, Actual: matching, Transforms: strip}))
	})

	t.Run("no transforms means raw compare", func(t *testing.T) {
		m := Files(domain.DiffPair{Expected: expected, Actual: matching})
		require.NotNil(t, m)
		assert.Equal(t, "content differs", m.Reason)
		assert.NotEmpty(t, m.Diff)
	})

	t.Run("content mismatch", func(t *testing.T) {
		m := Files(domain.DiffPair{Expected: expected, Actual: different, Transforms: strip})
		require.NotNil(t, m)
		assert.Equal(t, different, m.Actual)
	})

	t.Run("missing actual", func(t *testing.T) {
		m := Files(domain.DiffPair{Expected: expected, Actual: filepath.Join(dir, "nope")})
		require.NotNil(t, m)
		assert.Contains(t, m.Reason, "read actual file")
		assert.Empty(t, m.Diff)
	})

	t.Run("missing expected", func(t *testing.T) {
		m := Files(domain.DiffPair{Expected: filepath.Join(dir, "nope"), Actual: matching})
		require.NotNil(t, m)
		assert.Contains(t, m.Reason, "read expected file")
	})
}

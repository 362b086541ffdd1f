package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_WritesToFile(t *testing.T) {
	t.Cleanup(func() { _ = Set("", false) })

	path := filepath.Join(t.TempDir(), "blueprints.log")
	require.NoError(t, Set(path, true))

	Get().Named("test").Debug("hello from test")
	require.NoError(t, Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "test")
}

func TestSet_InfoLevelDropsDebug(t *testing.T) {
	t.Cleanup(func() { _ = Set("", false) })

	path := filepath.Join(t.TempDir(), "blueprints.log")
	require.NoError(t, Set(path, false))

	Get().Debug("hidden")
	Get().Info("shown")
	require.NoError(t, Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSet_EmptyPathIsNop(t *testing.T) {
	require.NoError(t, Set("", true))
	assert.NotPanics(t, func() { Get().Info("dropped") })
}

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadEnvDoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DISCUSSION_TEST_A=from-file\nDISCUSSION_TEST_B=from-file\n"), 0o600))

	t.Setenv("DISCUSSION_TEST_A", "from-env")
	t.Setenv("DISCUSSION_TEST_B", "")
	os.Unsetenv("DISCUSSION_TEST_B")

	LoadEnv(zap.NewNop(), path)

	assert.Equal(t, "from-env", os.Getenv("DISCUSSION_TEST_A"))
	assert.Equal(t, "from-file", os.Getenv("DISCUSSION_TEST_B"))
}

func TestLoadEnvMissingFile(t *testing.T) {
	assert.NotPanics(t, func() {
		LoadEnv(zap.NewNop(), filepath.Join(t.TempDir(), "missing.env"))
	})
}

package cmdcommon

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvDefault(t *testing.T) {
	t.Setenv(EnvCompany, "Example Hotel Ltd")
	assert.Equal(t, "Example Hotel Ltd", EnvDefault(EnvCompany, "fallback"))

	t.Setenv(EnvCompany, "")
	assert.Equal(t, "fallback", EnvDefault(EnvCompany, "fallback"))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GBU_LOCATION=Sample City\n"), 0o600))

	// godotenv does not override variables that are already set
	t.Setenv(EnvLocation, "")
	require.NoError(t, os.Unsetenv(EnvLocation))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "Sample City", os.Getenv(EnvLocation))
}

func TestLoadEnvFileMissingDefaultIsFine(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	assert.NoError(t, LoadEnvFile(""))
}

func TestToday(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), Today())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:11434", cfg.Host)
	assert.Equal(t, "llama3", cfg.Model)
	assert.Equal(t, "docs", cfg.OutputDir)
	assert.Equal(t, filepath.Join(".filesum", "history.db"), cfg.DBPath)
	assert.Equal(t, int64(16<<20), cfg.MaxFileSize)
	assert.Equal(t, "explain", cfg.Style)
	assert.Nil(t, cfg.ExcludeDirs)
	assert.Nil(t, cfg.Extensions)
}

func TestLoadFromFile(t *testing.T) {
	tomlContent := `
host = "http://ollama.internal:11434"
model = "codellama"
output_dir = "reports"
max_file_size = 1048576
exclude_dirs = ["vendor", "dist"]
extensions = ["go", "py"]
style = "plain"
`
	tmpFile := filepath.Join(t.TempDir(), "filesum.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(tomlContent), 0o644))

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "http://ollama.internal:11434", cfg.Host)
	assert.Equal(t, "codellama", cfg.Model)
	assert.Equal(t, "reports", cfg.OutputDir)
	assert.Equal(t, int64(1<<20), cfg.MaxFileSize)
	assert.Equal(t, []string{"vendor", "dist"}, cfg.ExcludeDirs)
	assert.Equal(t, []string{"go", "py"}, cfg.Extensions)
	assert.Equal(t, "plain", cfg.Style)

	// Fields the file leaves out keep their defaults.
	assert.Equal(t, filepath.Join(".filesum", "history.db"), cfg.DBPath)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "llama3", cfg.Model)
}

func TestLoadInvalidTOML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("[invalid toml..."), 0o644))

	_, err := Load(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestConfigPathFromEnv(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "alt.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`model = "mistral"`), 0o644))
	t.Setenv("FILESUM_CONFIG", tmpFile)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mistral", cfg.Model)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "ollama.internal:11434")
	t.Setenv("OLLAMA_MODEL", "phi3")
	t.Setenv("FILESUM_DB", "/var/lib/filesum/history.db")
	t.Setenv("FILESUM_OUTPUT", "out")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://ollama.internal:11434", cfg.Host, "bare host:port gains a scheme")
	assert.Equal(t, "phi3", cfg.Model)
	assert.Equal(t, "/var/lib/filesum/history.db", cfg.DBPath)
	assert.Equal(t, "out", cfg.OutputDir)
}

func TestEnvBeatsFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "filesum.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`model = "codellama"`), 0o644))
	t.Setenv("OLLAMA_MODEL", "phi3")

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "phi3", cfg.Model)
}

func TestDotEnvLayer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FILESUM_OUTPUT=dotenv-docs\n"), 0o644))
	chdir(t, dir)

	// Registers cleanup, then clears the variable so the .env value is
	// the one observed.
	t.Setenv("FILESUM_OUTPUT", "")
	require.NoError(t, os.Unsetenv("FILESUM_OUTPUT"))

	cfg, err := Load(filepath.Join(dir, "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "dotenv-docs", cfg.OutputDir)
}

func TestEnvBeatsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OLLAMA_MODEL=dotenv-model\n"), 0o644))
	chdir(t, dir)
	t.Setenv("OLLAMA_MODEL", "env-model")

	cfg, err := Load(filepath.Join(dir, "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "env-model", cfg.Model)
}

// chdir moves the test into dir and restores the previous working
// directory during cleanup; testing.T.Chdir requires Go 1.24 and this
// module builds with Go 1.21.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

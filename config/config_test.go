package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRequiresToken(t *testing.T) {
	t.Setenv("EXA_API_KEY", "")

	_, err := Parse("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "EXA_API_KEY")
}

func TestParseEnv(t *testing.T) {
	t.Setenv("EXA_API_KEY", "test-key")
	t.Setenv("MCP_TRANSPORT", "http")
	t.Setenv("MCP_HOST", "127.0.0.1")
	t.Setenv("MCP_PORT", "9090")

	cfg, err := Parse("")
	require.NoError(t, err)

	t.Cleanup(cfg.Close)

	require.Equal(t, "http", cfg.Transport)
	require.Equal(t, "127.0.0.1:9090", cfg.Address)
	require.NotNil(t, cfg.Client)
	require.Len(t, cfg.Tools, 6)
}

func TestParseInvalidTransport(t *testing.T) {
	t.Setenv("EXA_API_KEY", "test-key")
	t.Setenv("MCP_TRANSPORT", "websocket")

	_, err := Parse("")
	require.Error(t, err)
}

func TestParseFileExpansion(t *testing.T) {
	t.Setenv("EXA_API_KEY", "")
	t.Setenv("TEST_EXA_TOKEN", "file-key")

	path := filepath.Join(t.TempDir(), "config.yaml")

	data := []byte("exa:\n  token: ${TEST_EXA_TOKEN}\nserver:\n  transport: stdio\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	file, err := parseFile(path)
	require.NoError(t, err)
	require.Equal(t, "file-key", file.Exa.Token)
	require.Equal(t, "stdio", file.Server.Transport)
}

func TestParseFileUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("search:\n  token: x\n"), 0o644))

	_, err := parseFile(path)
	require.Error(t, err)
}

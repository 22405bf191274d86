package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/skybooking/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearch(t *testing.T) {
	out, err := run(t, "search", "--from", "new", "--to", "PARIS", "--date", "2024-04-10", "--passengers", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "AF007")
	assert.Contains(t, lines[1], "$1,950")
	assert.Contains(t, lines[2], "DL125")
}

func TestSearch_NoResults(t *testing.T) {
	out, err := run(t, "search", "--from", "new", "--to", "tokyo", "--date", "2024-04-10")
	require.NoError(t, err)
	assert.Equal(t, "No flights found\n", out)
}

func TestSearch_Validation(t *testing.T) {
	_, err := run(t, "search", "--from", "new")
	assert.Error(t, err)

	_, err = run(t, "search", "--from", "new", "--to", "paris", "--date", "2024-04-10", "--class", "premium")
	assert.Error(t, err)
}

func TestQuote(t *testing.T) {
	out, err := run(t, "quote", "1", "--passengers", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "$650")
	assert.Contains(t, out, "$1,950")
	assert.Contains(t, out, "$45")
	assert.Contains(t, out, "$1,995")

	_, err = run(t, "quote", "999")
	assert.Error(t, err)
}

func TestToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  jwt_secret: cli-secret\n"), 0o600))

	out, err := run(t, "--config", path, "token", "--user-id", "u1", "--admin")
	require.NoError(t, err)

	claims, err := auth.NewIssuer("cli-secret", time.Hour).ParseValidate(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Sub)
	assert.True(t, claims.Admin)

	_, err = run(t, "--config", path, "token")
	assert.Error(t, err)
}

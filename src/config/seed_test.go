package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "admins.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeedFile(t, `
admins:
  - username: alice
    password: password-one
  - username: bob
    password: password-two
`)

	accounts, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "alice", accounts[0].Username)
	assert.Equal(t, "password-one", accounts[0].Password)
	assert.Equal(t, "bob", accounts[1].Username)
}

func TestLoadSeedFile_MissingPassword(t *testing.T) {
	path := writeSeedFile(t, `
admins:
  - username: alice
`)

	_, err := LoadSeedFile(path)
	assert.Error(t, err)
}

func TestLoadSeedFile_NotYAML(t *testing.T) {
	path := writeSeedFile(t, `{not yaml: [`)

	_, err := LoadSeedFile(path)
	assert.Error(t, err)
}

func TestLoadSeedFile_NoSuchFile(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

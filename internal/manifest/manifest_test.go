package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `
name: base system
description: minimal toolchain
steps:
  - name: update package index
    run: apt-get update
    must_succeed: true
  - name: install editor
    run: apt-get install -y vim
    confirm: Install vim?
  - run: echo done
`

func TestLoad_ParsesManifest_When_YAMLValid(t *testing.T) {
	t.Parallel()

	m, err := Load([]byte(validManifest))
	require.NoError(t, err)

	assert.Equal(t, "base system", m.Name)
	assert.Equal(t, "minimal toolchain", m.Description)
	require.Len(t, m.Steps, 3)

	assert.Equal(t, "update package index", m.Steps[0].Name)
	assert.Equal(t, "apt-get update", m.Steps[0].Run)
	assert.True(t, m.Steps[0].MustSucceed)
	assert.Empty(t, m.Steps[0].Confirm)

	assert.Equal(t, "Install vim?", m.Steps[1].Confirm)
	assert.False(t, m.Steps[1].MustSucceed)
}

func TestLoad_DefaultsStepName_When_Missing(t *testing.T) {
	t.Parallel()

	m, err := Load([]byte(validManifest))
	require.NoError(t, err)

	assert.Equal(t, "echo done", m.Steps[2].Name)
}

func TestLoad_ReturnsError_When_ManifestInvalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "steps:\n  - run: echo hi\n",
			wantErr: "manifest has no name",
		},
		{
			name:    "missing steps",
			yaml:    "name: empty\n",
			wantErr: "manifest has no steps",
		},
		{
			name:    "step without run",
			yaml:    "name: broken\nsteps:\n  - name: no command\n",
			wantErr: "has no run command",
		},
		{
			name:    "broken yaml",
			yaml:    "name: [unterminated\n",
			wantErr: "parsing YAML",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadFile_ReadsFromDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "install.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validManifest), 0o600))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "base system", m.Name)
}

func TestLoadFile_ReturnsError_When_FileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading manifest file")
}

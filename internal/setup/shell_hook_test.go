package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/jumpr/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectShell(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"/bin/zsh", "zsh"},
		{"/usr/bin/bash", "bash"},
		{"/usr/local/bin/fish", "fish"},
		{"/bin/tcsh", "tcsh"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Setenv("SHELL", tt.env)
			assert.Equal(t, tt.want, DetectShell())
		})
	}
}

func TestShellRCPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, "/home/tester/.zshrc", ShellRCPath("zsh"))
	assert.Equal(t, "/home/tester/.bashrc", ShellRCPath("bash"))
	assert.Equal(t, "/home/tester/.config/fish/conf.d/jumpr.fish", ShellRCPath("fish"))
	assert.Empty(t, ShellRCPath("tcsh"))
}

func TestInstallShellHook_Zsh(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".zshrc")

	installed, err := InstallShellHook("zsh", rcPath, "/usr/local/bin/jumpr")
	require.NoError(t, err)
	assert.True(t, installed)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# jumpr shell integration")
	assert.Contains(t, string(content), `eval "$(/usr/local/bin/jumpr shell-init --shell zsh)"`)
	assert.True(t, IsHookInstalled(rcPath))
}

func TestInstallShellHook_FishCreatesConfD(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".config", "fish", "conf.d", "jumpr.fish")

	installed, err := InstallShellHook("fish", rcPath, "jumpr")
	require.NoError(t, err)
	assert.True(t, installed)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "jumpr shell-init --shell fish | source")
}

func TestInstallShellHook_AlreadyInstalled(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".zshrc")
	existing := "# jumpr shell integration\nexisting content"
	require.NoError(t, os.WriteFile(rcPath, []byte(existing), 0600))

	installed, err := InstallShellHook("zsh", rcPath, "jumpr")
	require.NoError(t, err)
	assert.False(t, installed)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, existing, string(content))
}

func TestInstallShellHook_AppendsToExisting(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, os.WriteFile(rcPath, []byte("# existing content\n"), 0600))

	_, err := InstallShellHook("bash", rcPath, "jumpr")
	require.NoError(t, err)

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# existing content")
	assert.Contains(t, string(content), "# jumpr shell integration")
}

func TestInstallShellHook_UnsupportedShell(t *testing.T) {
	rcPath := filepath.Join(t.TempDir(), ".tcshrc")

	_, err := InstallShellHook("tcsh", rcPath, "jumpr")
	assert.ErrorIs(t, err, shell.ErrUnsupportedShell)
}

func TestIsHookInstalled_MissingFile(t *testing.T) {
	assert.False(t, IsHookInstalled("/nonexistent/.zshrc"))
}

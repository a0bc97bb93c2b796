package rig

import (
	"os"
	"os/exec"
	"path/filepath"
)

// SupportedShells lists the login shells the installer knows how to
// configure for the user.
var SupportedShells = []string{"bash", "zsh"}

// ExecutableExists reports whether name resolves to an executable on PATH.
func ExecutableExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// DefaultShell returns the basename of the user's login shell from $SHELL.
// ok is false when the variable is unset or empty.
func DefaultShell() (shell string, ok bool) {
	v := os.Getenv("SHELL")
	if v == "" {
		return "", false
	}
	return filepath.Base(v), true
}

// ShellSupported reports whether shell is one rig can configure.
func ShellSupported(shell string) bool {
	for _, s := range SupportedShells {
		if s == shell {
			return true
		}
	}
	return false
}

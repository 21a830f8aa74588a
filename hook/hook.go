// Package hook installs the shell startup hook that brings up the container
// menu for every new terminal session.
package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/riywo/loginshell"
)

// Marker identifies the hook block inside an rc file. Install is keyed on
// it, so repeated installs never duplicate the hook.
const Marker = "# lxmenu shell hook"

// Detect returns the name of the user's login shell ("bash", "zsh", ...),
// or "" when it cannot be determined.
func Detect() string {
	if sh, err := loginshell.Shell(); err == nil && sh != "" {
		return filepath.Base(sh)
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh)
	}
	return ""
}

// RCPath returns the startup file the hook belongs in for the given shell.
func RCPath(shell string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch shell {
	case "bash":
		return filepath.Join(home, ".bashrc"), nil
	case "zsh":
		return filepath.Join(home, ".zshrc"), nil
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "lxmenu.fish"), nil
	}
	return "", fmt.Errorf("unsupported shell: %q", shell)
}

// Snippet returns the hook text for the given shell, or "" for shells we
// don't know. The guards keep the menu out of non-interactive shells, where
// a blocking prompt would hang scripts.
func Snippet(shell string) string {
	switch shell {
	case "bash", "zsh":
		return Marker + "\n" +
			`[ -n "$PS1" ] && command -v lxmenu >/dev/null 2>&1 && lxmenu pick --from-rc` + "\n"
	case "fish":
		return Marker + "\n" +
			`status is-interactive; and command -q lxmenu; and lxmenu pick --from-rc` + "\n"
	}
	return ""
}

// Installed reports whether rcPath already carries the hook.
func Installed(rcPath string) bool {
	content, err := os.ReadFile(rcPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(content), Marker)
}

// Install appends the hook for shell to rcPath, creating the file and its
// directory if needed. It returns false without touching the file when the
// hook is already present.
func Install(shell, rcPath string) (bool, error) {
	snippet := Snippet(shell)
	if snippet == "" {
		return false, fmt.Errorf("unsupported shell: %q", shell)
	}
	if Installed(rcPath) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(rcPath), 0o755); err != nil {
		return false, err
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return false, err
	}
	return true, nil
}

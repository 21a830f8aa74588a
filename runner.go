package lxmenu

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"syscall"
)

// Runner executes external lxc commands. The default implementation shells
// out via os/exec; tests substitute a fake so no lxc installation is needed.
type Runner interface {
	// Output runs the command and returns its stdout. On a non-zero exit
	// the returned error is an *exec.ExitError carrying captured stderr.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// CombinedOutput runs the command and returns stdout and stderr
	// interleaved.
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	return cmd.Output()
}

func (execRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	return cmd.CombinedOutput()
}

// stderrOf extracts the captured stderr text from an error returned by
// Runner.Output, if there is any.
func stderrOf(err error) string {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return strings.TrimSpace(string(ee.Stderr))
	}
	return ""
}

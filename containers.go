// Package lxmenu wraps the classic LXC command line tools (lxc-ls,
// lxc-info, lxc-start, lxc-wait, lxc-attach). The container runtime stays
// an external collaborator: every operation here builds an argv, runs the
// tool, and parses whatever it printed.
package lxmenu

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/lxmenu/lxmenu/options"
	"github.com/lxmenu/lxmenu/types"
)

// ContainerSvc is a service interface to interact with LXC containers.
type ContainerSvc struct {
	runner Runner
}

// Containers is the default service, backed by the real lxc tools.
var Containers = &ContainerSvc{runner: execRunner{}}

// NewContainerSvc returns a service that executes commands through r.
func NewContainerSvc(r Runner) *ContainerSvc {
	return &ContainerSvc{runner: r}
}

// fancyFormat is the column set requested from lxc-ls --fancy. The order
// matters: parseFancy indexes fields positionally.
const fancyFormat = "NAME,STATE,AUTOSTART,IPV4"

// Names returns the names of all known containers, via lxc-ls -1.
func (c *ContainerSvc) Names(ctx context.Context) ([]string, error) {
	out, err := c.runner.Output(ctx, "lxc-ls", options.ToArgs(options.ListContainers{Line: true})...)
	if err != nil {
		return nil, &EnumerationError{Output: stderrOf(err), Err: err}
	}
	var names []string
	for line := range strings.Lines(string(out)) {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// List returns all containers matching opts, via lxc-ls --fancy.
func (c *ContainerSvc) List(ctx context.Context, opts options.ListContainers) ([]types.Container, error) {
	opts.Fancy = true
	if opts.FancyFormat == "" {
		opts.FancyFormat = fancyFormat
	}
	out, err := c.runner.Output(ctx, "lxc-ls", options.ToArgs(opts)...)
	if err != nil {
		return nil, &EnumerationError{Output: stderrOf(err), Err: err}
	}
	return parseFancy(string(out)), nil
}

// Info returns details about a single container, via lxc-info.
func (c *ContainerSvc) Info(ctx context.Context, opts options.InfoContainer, name string) (*types.Container, error) {
	opts.Name = name
	out, err := c.runner.Output(ctx, "lxc-info", options.ToArgs(opts)...)
	if err != nil {
		return nil, &EnumerationError{Output: stderrOf(err), Err: err}
	}
	return parseInfo(name, string(out)), nil
}

// Start starts a container instance and returns the start command output.
// Failures surface as *AttachError: in this tool, starting only ever
// happens on the way into an attach.
func (c *ContainerSvc) Start(ctx context.Context, opts options.StartContainer, name string) (string, error) {
	opts.Name = name
	args := options.ToArgs(opts)
	slog.InfoContext(ctx, "ContainerSvc.Start", "cmd", "lxc-start "+strings.Join(args, " "))
	out, err := c.runner.CombinedOutput(ctx, "lxc-start", args...)
	if err != nil {
		return "", &AttachError{Name: name, Output: strings.TrimSpace(string(out)), Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}

// WaitState blocks until the container reaches the given state or the
// timeout elapses, via lxc-wait.
func (c *ContainerSvc) WaitState(ctx context.Context, name string, state types.State, timeoutSecs int) error {
	args := options.ToArgs(options.WaitContainer{Name: name, State: string(state), Timeout: timeoutSecs})
	out, err := c.runner.CombinedOutput(ctx, "lxc-wait", args...)
	if err != nil {
		return &AttachError{Name: name, Output: strings.TrimSpace(string(out)), Err: err}
	}
	return nil
}

// Attach hands the given streams to lxc-attach and returns a wait func that
// blocks until the session ends. When stdin is not a terminal the command
// runs under a pseudo-terminal, so line-oriented callers still get a usable
// session.
func (c *ContainerSvc) Attach(ctx context.Context, opts options.AttachContainer, name string, stdin io.Reader, stdout, stderr io.Writer) (func() error, error) {
	opts.Name = name
	cmd := exec.CommandContext(ctx, "lxc-attach", options.ToArgs(opts)...)
	slog.InfoContext(ctx, "ContainerSvc.Attach", "cmd", strings.Join(cmd.Args, " "))

	var ptmx *os.File
	if stdinFile, ok := stdin.(*os.File); ok && term.IsTerminal(int(stdinFile.Fd())) {
		cmd.Stdin = stdin
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		if err := cmd.Start(); err != nil {
			return nil, &AttachError{Name: name, Err: err}
		}
	} else {
		var err error
		ptmx, err = pty.Start(cmd)
		if err != nil {
			return nil, &AttachError{Name: name, Err: err}
		}
		go io.Copy(ptmx, stdin)
		go io.Copy(stdout, ptmx)
	}

	return func() error {
		if ptmx != nil {
			defer ptmx.Close()
		}
		if err := cmd.Wait(); err != nil {
			return &AttachError{Name: name, Output: stderrOf(err), Err: err}
		}
		return nil
	}, nil
}

// parseFancy parses lxc-ls --fancy output: a NAME header row, in some lxc
// versions a dashed separator row, then one whitespace-padded row per
// container. IPV4 is the last requested column, so extra address fields
// fold back into it.
func parseFancy(out string) []types.Container {
	var ret []types.Container
	for line := range strings.Lines(out) {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] == "NAME" || strings.HasPrefix(fields[0], "-") {
			continue
		}
		ctr := types.Container{Name: fields[0]}
		if len(fields) > 1 {
			ctr.State = types.State(fields[1])
		}
		if len(fields) > 2 {
			ctr.AutoStart = fields[2] == "1" || strings.EqualFold(fields[2], "YES")
		}
		if len(fields) > 3 {
			if addrs := strings.Join(fields[3:], ""); addrs != "-" {
				ctr.IPV4 = strings.Split(addrs, ",")
			}
		}
		ret = append(ret, ctr)
	}
	return ret
}

// parseInfo parses the "Key: value" lines printed by lxc-info. Repeated IP
// lines accumulate.
func parseInfo(name string, out string) *types.Container {
	ctr := &types.Container{Name: name}
	for line := range strings.Lines(out) {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "Name":
			ctr.Name = value
		case "State":
			ctr.State = types.State(value)
		case "IP":
			ctr.IPV4 = append(ctr.IPV4, value)
		}
	}
	return ctr
}

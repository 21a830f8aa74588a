package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	lxmenu "github.com/lxmenu/lxmenu"
	"github.com/lxmenu/lxmenu/options"
	"github.com/lxmenu/lxmenu/types"
)

// startTimeoutSecs bounds the wait for a freshly started container to
// reach RUNNING.
const startTimeoutSecs = 30

type AttachCmd struct {
	Name     string `arg:"" predictor:"container" placeholder:"<container-name>" help:"container to attach to"`
	NoStart  bool   `help:"do not start the container if it is stopped"`
	ClearEnv bool   `help:"clear the environment before attaching"`
}

func (c *AttachCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := options.AttachContainer{ClearEnv: c.ClearEnv}
	return attachSession(ctx, cctx.Containers, c.Name, opts, !c.NoStart)
}

// attachSession starts the container when necessary, then hands the current
// terminal to lxc-attach until the user detaches or exits. After the
// session ends the caller lands back in the host shell.
func attachSession(ctx context.Context, svc *lxmenu.ContainerSvc, name string, opts options.AttachContainer, start bool) error {
	if start {
		ctr, err := svc.Info(ctx, options.InfoContainer{State: true}, name)
		if err != nil {
			// lxc-info failing is not fatal here: lxc-start reports the
			// real problem (missing container, permissions) more precisely.
			slog.WarnContext(ctx, "lxc-info failed", "container", name, "error", err)
		}
		if ctr == nil || !ctr.Running() {
			slog.InfoContext(ctx, "attachSession: starting container", "container", name)
			if _, err := svc.Start(ctx, options.StartContainer{Daemon: true}, name); err != nil {
				return err
			}
			if err := svc.WaitState(ctx, name, types.StateRunning, startTimeoutSecs); err != nil {
				return err
			}
		}
	}

	fmt.Printf("Attaching to container '%s'. Press Ctrl+D or type exit to leave.\n", name)

	wait, err := svc.Attach(ctx, opts, name, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	return wait()
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lxmenu/lxmenu/hook"
)

type DoctorCmd struct{}

type diagnosticCheck struct {
	Name string
	Run  func(context.Context) error
}

// lxcTools are the external commands the menu depends on.
var lxcTools = []string{"lxc-ls", "lxc-info", "lxc-start", "lxc-wait", "lxc-attach"}

func diagnosticChecks(cctx *Context) []diagnosticCheck {
	return []diagnosticCheck{
		{
			Name: "Running on Linux",
			Run: func(ctx context.Context) error {
				if runtime.GOOS != "linux" {
					return fmt.Errorf("LXC requires Linux, but detected OS: %s", runtime.GOOS)
				}
				return nil
			},
		},
		{
			Name: "LXC tools on PATH",
			Run: func(ctx context.Context) error {
				for _, tool := range lxcTools {
					if _, err := exec.LookPath(tool); err != nil {
						return fmt.Errorf("%s not found; install the lxc package for your distribution", tool)
					}
				}
				return nil
			},
		},
		{
			Name: "lxc-ls answers",
			Run: func(ctx context.Context) error {
				_, err := cctx.Containers.Names(ctx)
				return err
			},
		},
		{
			Name: "Shell startup hook installed",
			Run: func(ctx context.Context) error {
				shell := hook.Detect()
				if shell == "" {
					return fmt.Errorf("could not detect a login shell")
				}
				rcPath, err := hook.RCPath(shell)
				if err != nil {
					return err
				}
				if !hook.Installed(rcPath) {
					return fmt.Errorf("no hook in %s; run `lxmenu install`", rcPath)
				}
				return nil
			},
		},
	}
}

func (c *DoctorCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checks := diagnosticChecks(cctx)
	results := make([]error, len(checks))

	// The checks are independent, so run them all and report everything
	// rather than stopping at the first failure.
	var g errgroup.Group
	for i, check := range checks {
		g.Go(func() error {
			results[i] = check.Run(ctx)
			return nil
		})
	}
	g.Wait()

	failed := 0
	for i, check := range checks {
		if results[i] != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", check.Name, results[i])
			slog.ErrorContext(ctx, "diagnosticCheck failed", "name", check.Name, "error", results[i])
		} else {
			fmt.Printf("ok    %s\n", check.Name)
			slog.InfoContext(ctx, "diagnosticCheck passed", "name", check.Name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return nil
}

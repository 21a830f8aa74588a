package main

import (
	"context"
	"log/slog"

	lxmenu "github.com/lxmenu/lxmenu"
	"github.com/lxmenu/lxmenu/menu"
	"github.com/lxmenu/lxmenu/options"
)

type PickCmd struct {
	FromRC  bool `name:"from-rc" help:"mark this run as coming from the shell startup hook"`
	NoStart bool `help:"do not start stopped containers before attaching"`
}

func (c *PickCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "PickCmd.Run", "fromRC", c.FromRC)

	m := menu.New(&menuRuntime{
		svc:     cctx.Containers,
		noStart: c.NoStart,
	}, menu.Config{
		Padding: cctx.Padding,
	})
	m.Run(ctx)

	// The menu reports its own failures and always falls through to the
	// host shell. A non-zero exit here would surface in every new terminal,
	// so there is nothing useful to return.
	return nil
}

// menuRuntime adapts ContainerSvc to the picker's Runtime interface.
type menuRuntime struct {
	svc     *lxmenu.ContainerSvc
	noStart bool
}

func (r *menuRuntime) Names(ctx context.Context) ([]string, error) {
	return r.svc.Names(ctx)
}

func (r *menuRuntime) Attach(ctx context.Context, name string) error {
	return attachSession(ctx, r.svc, name, options.AttachContainer{}, !r.noStart)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	lxmenu "github.com/lxmenu/lxmenu"
	"github.com/lxmenu/lxmenu/options"
	"github.com/lxmenu/lxmenu/types"
)

// infoConcurrency caps parallel lxc-info invocations in --info mode.
const infoConcurrency = 4

type LsCmd struct {
	Running bool `help:"show only running containers"`
	Info    bool `help:"build the listing from one lxc-info call per container instead of lxc-ls --fancy"`
}

func (c *LsCmd) Run(cctx *Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var list []types.Container
	var err error
	if c.Info {
		list, err = infoList(ctx, cctx.Containers, c.Running)
	} else {
		list, err = cctx.Containers.List(ctx, options.ListContainers{Running: c.Running})
	}
	if err != nil {
		slog.ErrorContext(ctx, "LsCmd.Run", "error", err)
		return err
	}

	if len(list) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATE\tAUTOSTART\tIPV4\t")
	for _, ctr := range list {
		autostart := "-"
		if ctr.AutoStart {
			autostart = "yes"
		}
		addrs := "-"
		if len(ctr.IPV4) > 0 {
			addrs = strings.Join(ctr.IPV4, ",")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", ctr.Name, ctr.State, autostart, addrs)
	}
	return w.Flush()
}

// infoList builds the listing from lxc-ls -1 plus one lxc-info call per
// container, fanned out with a bounded errgroup. Some minimal lxc installs
// reject --fancy; this path only needs the two basic tools.
func infoList(ctx context.Context, svc *lxmenu.ContainerSvc, runningOnly bool) ([]types.Container, error) {
	names, err := svc.Names(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]types.Container, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(infoConcurrency)
	for i, name := range names {
		g.Go(func() error {
			ctr, err := svc.Info(gctx, options.InfoContainer{}, name)
			if err != nil {
				return err
			}
			list[i] = *ctr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !runningOnly {
		return list, nil
	}
	running := make([]types.Container, 0, len(list))
	for _, ctr := range list {
		if ctr.Running() {
			running = append(running, ctr)
		}
	}
	return running, nil
}

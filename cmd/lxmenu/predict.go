package main

import (
	"context"
	"time"

	"github.com/posener/complete"

	lxmenu "github.com/lxmenu/lxmenu"
	"github.com/lxmenu/lxmenu/menu"
)

// containerPredictor completes container name arguments from the live
// container list, plus the reserved host entry.
func containerPredictor() complete.Predictor {
	return complete.PredictFunc(func(args complete.Args) []string {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		names, err := lxmenu.Containers.Names(ctx)
		if err != nil {
			return nil
		}
		return append(names, menu.Sentinel)
	})
}

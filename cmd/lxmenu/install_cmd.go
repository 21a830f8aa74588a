package main

import (
	"fmt"

	"github.com/lxmenu/lxmenu/hook"
)

type InstallCmd struct {
	Shell  string `placeholder:"<bash|zsh|fish>" help:"shell to install the hook for (default: detected login shell)"`
	RCFile string `name:"rc-file" type:"path" placeholder:"<rc-file-path>" help:"override the startup file to append the hook to"`
}

func (c *InstallCmd) Run(cctx *Context) error {
	shell := c.Shell
	if shell == "" {
		shell = hook.Detect()
	}
	if shell == "" {
		return fmt.Errorf("could not detect a login shell; pass --shell")
	}

	rcPath := c.RCFile
	if rcPath == "" {
		var err error
		rcPath, err = hook.RCPath(shell)
		if err != nil {
			return err
		}
	}

	written, err := hook.Install(shell, rcPath)
	if err != nil {
		return err
	}
	if written {
		fmt.Printf("Added lxmenu hook to %s\n", rcPath)
	} else {
		fmt.Printf("lxmenu hook already present in %s\n", rcPath)
	}
	return nil
}

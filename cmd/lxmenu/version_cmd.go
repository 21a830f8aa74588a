package main

import (
	"fmt"

	"github.com/lxmenu/lxmenu/version"
)

type VersionCmd struct{}

func (c *VersionCmd) Run(cctx *Context) error {
	fmt.Println(version.Get().String())
	return nil
}

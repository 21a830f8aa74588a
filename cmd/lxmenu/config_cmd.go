package main

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type ConfigCmd struct{}

// Settings mirrors the YAML shape read from /etc/lxmenu/config.yaml and
// ~/.config/lxmenu/config.yaml, so the printed output can be pasted
// straight back into a config file.
type Settings struct {
	LogFile  string `yaml:"log-file"`
	LogLevel string `yaml:"log-level"`
	Padding  int    `yaml:"padding"`
}

func (c *ConfigCmd) Run(cctx *Context) error {
	out, err := yaml.Marshal(Settings{
		LogFile:  cctx.LogFile,
		LogLevel: cctx.LogLevel,
		Padding:  cctx.Padding,
	})
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

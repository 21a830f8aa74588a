package version

import (
	"runtime/debug"
)

var (
	// These will be set via -ldflags during build
	Version   string
	GitCommit string
	BuildTime string
)

// Info returns a struct containing all version information
type Info struct {
	Version   string `json:"version,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
}

// Get returns the version information, falling back to the module build
// info embedded in the binary when ldflags were not set.
func Get() Info {
	ret := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ret
	}
	if ret.Version == "" && bi.Main.Version != "(devel)" {
		ret.Version = bi.Main.Version
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if ret.GitCommit == "" {
				ret.GitCommit = setting.Value
			}
		case "vcs.time":
			if ret.BuildTime == "" {
				ret.BuildTime = setting.Value
			}
		}
	}
	return ret
}

// String renders the info on one line, e.g. "v0.3.1 4f9c21ab9d3e 2026-08-01T12:00:00Z".
func (v Info) String() string {
	ret := v.Version
	if ret == "" {
		ret = "dev"
	}
	if c := v.GitCommit; c != "" {
		if len(c) > 12 {
			c = c[:12]
		}
		ret += " " + c
	}
	if v.BuildTime != "" {
		ret += " " + v.BuildTime
	}
	return ret
}

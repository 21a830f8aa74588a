// package types defines structs for output parsed from the lxc command line tools.
package types

// State is a container state as reported by lxc-ls and lxc-info.
type State string

const (
	StateRunning State = "RUNNING"
	StateStopped State = "STOPPED"
	StateFrozen  State = "FROZEN"
)

// Container is one entry from lxc-ls --fancy or lxc-info output. Fields the
// tool did not report stay zero.
type Container struct {
	Name      string   `json:"name"`
	State     State    `json:"state,omitempty"`
	AutoStart bool     `json:"autoStart,omitempty"`
	IPV4      []string `json:"ipv4,omitempty"`
}

// Running reports whether the container is currently running.
func (c Container) Running() bool {
	return c.State == StateRunning
}

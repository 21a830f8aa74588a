package lxmenu

import "fmt"

// EnumerationError reports a failed attempt to list or query containers:
// the lxc tools are missing, unrunnable, or exited non-zero (commonly a
// permissions problem). Output carries whatever diagnostic text the tool
// printed on stderr.
type EnumerationError struct {
	Output string
	Err    error
}

func (e *EnumerationError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("listing containers: %v: %s", e.Err, e.Output)
	}
	return fmt.Sprintf("listing containers: %v", e.Err)
}

func (e *EnumerationError) Unwrap() error { return e.Err }

// AttachError reports a failure to start a container or hand the terminal
// over to it: the container does not exist, will not start, or lxc-attach
// exited non-zero.
type AttachError struct {
	Name   string
	Output string
	Err    error
}

func (e *AttachError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("attaching to %q: %v: %s", e.Name, e.Err, e.Output)
	}
	return fmt.Sprintf("attaching to %q: %v", e.Name, e.Err)
}

func (e *AttachError) Unwrap() error { return e.Err }

package options

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// ListContainers are the option flags for lxc-ls.
type ListContainers struct {
	Line        bool   `flag:"-1"`             // One entry per line
	Running     bool   `flag:"--running"`      // List only running containers
	Stopped     bool   `flag:"--stopped"`      // List only stopped containers
	Frozen      bool   `flag:"--frozen"`       // List only frozen containers
	Fancy       bool   `flag:"--fancy"`        // Column-oriented listing
	FancyFormat string `flag:"--fancy-format"` // Comma-separated list of columns to show
	Filter      string `flag:"--filter"`       // Regular expression to filter container names
}

// InfoContainer are the option flags for lxc-info.
type InfoContainer struct {
	Name       string `flag:"-n"` // Container name
	State      bool   `flag:"-s"` // Show only the state
	IPs        bool   `flag:"-i"` // Show only the IP addresses
	PID        bool   `flag:"-p"` // Show only the process ID
	Stats      bool   `flag:"-S"` // Show memory and CPU stats
	NoHumanize bool   `flag:"-H"` // Raw, script-friendly values
}

// StartContainer are the option flags for lxc-start.
type StartContainer struct {
	Name       string `flag:"-n"`
	Daemon     bool   `flag:"-d"` // Run the container in the background
	Foreground bool   `flag:"-F"` // Run the container in the foreground
	LogFile    string `flag:"-o"` // Write the container log to this file
	LogLevel   string `flag:"-l"` // Container log level
}

// WaitContainer are the option flags for lxc-wait.
type WaitContainer struct {
	Name    string `flag:"-n"`
	State   string `flag:"-s"` // States to wait for, ORed with |
	Timeout int    `flag:"-t"` // Seconds to wait before giving up
}

// AttachContainer are the option flags for lxc-attach.
type AttachContainer struct {
	Name     string            `flag:"-n"`
	ClearEnv bool              `flag:"--clear-env"` // Clear the environment before attaching
	KeepEnv  bool              `flag:"--keep-env"`  // Keep the current environment (lxc default)
	KeepVar  []string          `flag:"--keep-var"`  // Variables to keep through --clear-env
	SetVar   map[string]string `flag:"-v"`          // Extra environment variables (name=value)
	Arch     string            `flag:"-a"`          // Architecture to use inside the container
}

// ToArgs creates an array of strings that you can pass to exec.Command(...)
// as CLI args. Zero-valued fields are skipped. Bool fields emit just the
// flag; slice and map fields emit the flag once per entry, map entries as
// key=value in sorted key order.
func ToArgs(s any) []string {
	var ret []string
	st := reflect.TypeOf(s)
	sv := reflect.ValueOf(s)
	for i := range st.NumField() {
		field := st.Field(i)
		flagName, ok := field.Tag.Lookup("flag")
		if !ok {
			continue
		}
		fv := sv.Field(i)
		if fv.IsZero() {
			continue
		}
		switch field.Type.Kind() {
		case reflect.Bool:
			ret = append(ret, flagName)
		case reflect.Slice:
			for j := range fv.Len() {
				ret = append(ret, flagName, fmt.Sprintf("%v", fv.Index(j).Interface()))
			}
		case reflect.Map:
			m := fv.Interface().(map[string]string)
			for _, k := range slices.Sorted(maps.Keys(m)) {
				ret = append(ret, flagName, fmt.Sprintf("%s=%s", k, m[k]))
			}
		default:
			ret = append(ret, flagName, fmt.Sprintf("%v", fv.Interface()))
		}
	}
	return ret
}

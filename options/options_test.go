package options

import (
	"reflect"
	"testing"
)

func TestToArgs(t *testing.T) {
	tests := map[string]struct {
		s        any
		expected []string
	}{
		"empty": {
			s:        ListContainers{},
			expected: nil,
		},
		"line mode": {
			s: ListContainers{
				Line: true,
			},
			expected: []string{"-1"},
		},
		"fancy listing": {
			s: ListContainers{
				Fancy:       true,
				FancyFormat: "NAME,STATE,AUTOSTART,IPV4",
			},
			expected: []string{
				"--fancy",
				"--fancy-format", "NAME,STATE,AUTOSTART,IPV4",
			},
		},
		"running filter": {
			s: ListContainers{
				Line:    true,
				Running: true,
			},
			expected: []string{
				"-1",
				"--running", // bools don't get a value, just include the flag name.
			},
		},
		"start daemonized": {
			s: StartContainer{
				Name:   "vm1",
				Daemon: true,
			},
			expected: []string{"-n", "vm1", "-d"},
		},
		"wait running": {
			s: WaitContainer{
				Name:    "vm1",
				State:   "RUNNING",
				Timeout: 30,
			},
			expected: []string{"-n", "vm1", "-s", "RUNNING", "-t", "30"},
		},
		"attach env handling": {
			s: AttachContainer{
				Name:     "vm1",
				ClearEnv: true,
				KeepVar:  []string{"TERM", "HOME"},
				SetVar: map[string]string{
					"b": "2",
					"a": "1",
				},
			},
			expected: []string{
				"-n", "vm1",
				"--clear-env",
				"--keep-var", "TERM",
				"--keep-var", "HOME",
				"-v", "a=1",
				"-v", "b=2",
			},
		},
	}

	for testName, testCase := range tests {
		t.Run(testName, func(t *testing.T) {
			got := ToArgs(testCase.s)
			if !reflect.DeepEqual(got, testCase.expected) {
				t.Errorf("got %v, want %v", got, testCase.expected)
			}
		})
	}
}

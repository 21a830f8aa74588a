package menu

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeRuntime struct {
	names     []string
	namesErr  error
	attachErr error
	attached  []string
}

func (f *fakeRuntime) Names(ctx context.Context) ([]string, error) {
	return f.names, f.namesErr
}

func (f *fakeRuntime) Attach(ctx context.Context, name string) error {
	f.attached = append(f.attached, name)
	return f.attachErr
}

func runOnce(t *testing.T, rt *fakeRuntime, input string) (out, errOut string) {
	t.Helper()
	var outBuf, errBuf strings.Builder
	m := New(rt, Config{
		In:     strings.NewReader(input),
		Out:    &outBuf,
		ErrOut: &errBuf,
		Width:  func() int { return 80 },
	})
	m.Run(context.Background())
	return outBuf.String(), errBuf.String()
}

func TestRunDispatch(t *testing.T) {
	tests := map[string]struct {
		names        []string
		namesErr     error
		attachErr    error
		input        string
		wantAttached []string
		wantDiag     string
	}{
		"valid selection": {
			names:        []string{"vm1", "vm2", "vm3"},
			input:        "vm1\n",
			wantAttached: []string{"vm1"},
		},
		"host falls through": {
			names: []string{"vm1"},
			input: "host\n",
		},
		"empty line falls through": {
			names: []string{"vm1"},
			input: "\n",
		},
		"eof falls through": {
			names: []string{"vm1"},
			input: "",
		},
		"input is trimmed": {
			names:        []string{"vm1"},
			input:        "  vm1  \n",
			wantAttached: []string{"vm1"},
		},
		"unknown name": {
			names:    []string{"vm1"},
			input:    "vm2\n",
			wantDiag: "Invalid choice: vm2",
		},
		"no containers, host": {
			names: nil,
			input: "host\n",
		},
		"enumeration failure": {
			namesErr: errors.New("lxc-ls: permission denied"),
			input:    "vm1\n",
			wantDiag: "Error fetching container list",
		},
		"attach failure": {
			names:        []string{"vm1"},
			input:        "vm1\n",
			attachErr:    errors.New("container is not running"),
			wantAttached: []string{"vm1"},
			wantDiag:     "container is not running",
		},
		"sentinel collision hides container": {
			names: []string{"host", "vm1"},
			input: "host\n",
		},
	}

	for testName, testCase := range tests {
		t.Run(testName, func(t *testing.T) {
			rt := &fakeRuntime{
				names:     testCase.names,
				namesErr:  testCase.namesErr,
				attachErr: testCase.attachErr,
			}
			_, errOut := runOnce(t, rt, testCase.input)

			if got, want := len(rt.attached), len(testCase.wantAttached); got != want {
				t.Fatalf("attach calls: got %v, want %v", rt.attached, testCase.wantAttached)
			}
			for i, want := range testCase.wantAttached {
				if rt.attached[i] != want {
					t.Errorf("attach[%d]: got %q, want %q", i, rt.attached[i], want)
				}
			}
			if testCase.wantDiag == "" && errOut != "" {
				t.Errorf("unexpected diagnostic: %q", errOut)
			}
			if testCase.wantDiag != "" && !strings.Contains(errOut, testCase.wantDiag) {
				t.Errorf("diagnostic %q does not contain %q", errOut, testCase.wantDiag)
			}
		})
	}
}

func TestRunListingContainsEveryNameOnce(t *testing.T) {
	rt := &fakeRuntime{names: []string{"vm1", "vm2", "vm3"}}
	out, _ := runOnce(t, rt, "host\n")

	for _, want := range []string{Sentinel, "vm1", "vm2", "vm3"} {
		if got := strings.Count(out, want); got != 1 {
			t.Errorf("listing contains %q %d times, want exactly once\n%s", want, got, out)
		}
	}
}

func TestRunEmptySetListsOnlySentinel(t *testing.T) {
	rt := &fakeRuntime{}
	out, _ := runOnce(t, rt, "host\n")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 || lines[0] != prompt || strings.TrimSpace(lines[1]) != Sentinel {
		t.Errorf("unexpected listing for empty container set:\n%s", out)
	}
}

func TestRunEnumerationFailureShowsNoPrompt(t *testing.T) {
	rt := &fakeRuntime{namesErr: errors.New("unreachable")}
	out, errOut := runOnce(t, rt, "")

	if out != "" {
		t.Errorf("expected no prompt output, got %q", out)
	}
	if !strings.Contains(errOut, "unreachable") {
		t.Errorf("diagnostic %q does not mention the cause", errOut)
	}
}

func TestRenderWrapsToTerminalWidth(t *testing.T) {
	var out strings.Builder
	m := New(&fakeRuntime{}, Config{
		In:      strings.NewReader(""),
		Out:     &out,
		ErrOut:  &out,
		Padding: 2,
		// Fits exactly two 6-wide columns ("host  ", "vm-a  ").
		Width: func() int { return 13 },
	})
	m.render([]string{"vm-a", "vm-b", "vm-c"})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	// Prompt plus four entries at two per line.
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[1], Sentinel) || !strings.Contains(lines[1], "vm-a") {
		t.Errorf("first row should hold host and vm-a: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "vm-b") || !strings.Contains(lines[2], "vm-c") {
		t.Errorf("second row should hold vm-b and vm-c: %q", lines[2])
	}
}

func TestRenderNarrowTerminalStillOneColumn(t *testing.T) {
	var out strings.Builder
	m := New(&fakeRuntime{}, Config{
		In:     strings.NewReader(""),
		Out:    &out,
		ErrOut: &out,
		Width:  func() int { return 3 },
	})
	m.render([]string{"very-long-container-name"})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want one entry per line:\n%s", len(lines), out.String())
	}
}

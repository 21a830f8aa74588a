// Package menu implements the interactive container picker shown when a new
// terminal session opens.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"
)

// Sentinel is the reserved menu entry meaning "stay on the host shell". It
// always wins: a real container with the same name is hidden from the menu
// rather than made selectable.
const Sentinel = "host"

const prompt = "Choose container to start:"

const defaultPadding = 2

// Runtime is the container runtime as the picker sees it: a way to learn
// which containers exist and a way to hand the terminal to one of them.
type Runtime interface {
	Names(ctx context.Context) ([]string, error)
	Attach(ctx context.Context, name string) error
}

// Config carries the picker's streams and layout knobs. Zero values mean
// the real terminal.
type Config struct {
	In      io.Reader
	Out     io.Writer
	ErrOut  io.Writer
	Padding int        // Spaces between listing columns
	Width   func() int // Terminal width lookup
}

// Menu is a single-shot interactive picker. Every terminal session runs one
// Menu at most once; it never loops and never escalates a failure, because
// a broken menu must not take shell startup down with it.
type Menu struct {
	runtime Runtime
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	padding int
	width   func() int
}

func New(rt Runtime, cfg Config) *Menu {
	m := &Menu{
		runtime: rt,
		in:      cfg.In,
		out:     cfg.Out,
		errOut:  cfg.ErrOut,
		padding: cfg.Padding,
		width:   cfg.Width,
	}
	if m.in == nil {
		m.in = os.Stdin
	}
	if m.out == nil {
		m.out = os.Stdout
	}
	if m.errOut == nil {
		m.errOut = os.Stderr
	}
	if m.padding <= 0 {
		m.padding = defaultPadding
	}
	if m.width == nil {
		m.width = terminalWidth
	}
	return m
}

// Run drives one pass of the picker: enumerate, render, read, dispatch.
// Every failure degrades to "carry on with the host shell" with a plain
// diagnostic on ErrOut; enumeration failure skips the prompt entirely.
func (m *Menu) Run(ctx context.Context) {
	names, err := m.runtime.Names(ctx)
	if err != nil {
		fmt.Fprintf(m.errOut, "Error fetching container list: %v\n", err)
		return
	}
	names = reserveSentinel(names)

	m.render(names)

	choice, ok := m.read()
	if !ok || choice == "" || choice == Sentinel {
		return
	}
	if !slices.Contains(names, choice) {
		fmt.Fprintf(m.errOut, "Invalid choice: %s\n", choice)
		return
	}
	if err := m.runtime.Attach(ctx, choice); err != nil {
		fmt.Fprintf(m.errOut, "Error: %v\n", err)
	}
}

// render prints the prompt line and the entries in fixed-width columns:
// column width is the longest entry plus padding, column count is whatever
// fits the terminal, minimum one.
func (m *Menu) render(names []string) {
	entries := append([]string{Sentinel}, names...)

	fmt.Fprintln(m.out, prompt)

	colWidth := m.padding
	for _, e := range entries {
		if w := len(e) + m.padding; w > colWidth {
			colWidth = w
		}
	}
	cols := m.width() / colWidth
	if cols < 1 {
		cols = 1
	}
	for i, e := range entries {
		fmt.Fprintf(m.out, "%-*s", colWidth, e)
		if (i+1)%cols == 0 {
			fmt.Fprintln(m.out)
		}
	}
	if len(entries)%cols != 0 {
		fmt.Fprintln(m.out)
	}
}

// read returns the first input line, trimmed. ok is false at end of input,
// which callers treat the same as picking the sentinel.
func (m *Menu) read() (choice string, ok bool) {
	sc := bufio.NewScanner(m.in)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

// reserveSentinel drops a real container that collides with the sentinel
// name, so "host" can only ever mean the host shell.
func reserveSentinel(names []string) []string {
	ret := make([]string, 0, len(names))
	for _, n := range names {
		if n != Sentinel {
			ret = append(ret, n)
		}
	}
	return ret
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

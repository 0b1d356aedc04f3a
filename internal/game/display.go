package game

import (
	"fmt"
	"io"
)

// View is the display capability handed to the table: a line sink plus an
// explicit refresh. The table never blocks on it; a human turn "pauses" the
// game simply by returning control to whatever drives the view.
type View interface {
	WriteLine(s string)
	Refresh()
}

// WriterView adapts an io.Writer into a View, for headless simulation and
// tests.
type WriterView struct {
	W io.Writer
}

func (v WriterView) WriteLine(s string) {
	fmt.Fprintln(v.W, s)
}

func (v WriterView) Refresh() {}

// NopView discards all output
type NopView struct{}

func (NopView) WriteLine(string) {}
func (NopView) Refresh()         {}

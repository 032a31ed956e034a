// Package engine holds the analysis mode and the fixed per-mode formulas.
package engine

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Engine applies the formulas of its current mode to datasets.
type Engine struct {
	mu   sync.RWMutex
	mode Mode
	out  io.Writer
}

// New returns an engine in the given mode. Confirmation messages go to out;
// a nil out discards them. Construction announces the initial mode.
func New(mode Mode, out io.Writer) *Engine {
	if out == nil {
		out = io.Discard
	}
	e := &Engine{out: out}
	e.SwitchMode(mode)
	return e
}

// SwitchMode sets the current mode unconditionally and prints a confirmation.
func (e *Engine) SwitchMode(mode Mode) {
	e.mu.Lock()
	e.mode = mode
	out := e.out
	e.mu.Unlock()
	color.New(color.FgYellow).Fprintf(out, "🔄 Switched to: %s\n", mode)
}

// SetOutput redirects subsequent confirmation messages to w.
func (e *Engine) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	e.mu.Lock()
	e.out = w
	e.mu.Unlock()
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mode
}

// ModeName returns the display name of the current mode.
func (e *Engine) ModeName() string { return e.Mode().String() }

// Analyze runs the current mode's formulas over data.
func (e *Engine) Analyze(data []float64) Result {
	return Compute(e.Mode(), data)
}

// FormatValue renders v with six significant digits, trimming trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FormatValues renders vals space separated.
func FormatValues(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = FormatValue(v)
	}
	return strings.Join(parts, " ")
}

// Package report renders a single analysis as a compact Markdown document.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/KaramelBytes/domainlens-cli/internal/engine"
)

// Analysis is one dataset evaluated under one mode.
type Analysis struct {
	Dataset   string
	Mode      engine.Mode
	Values    []float64
	Result    engine.Result
	Generated time.Time
}

// New computes the result for values under mode.
func New(dataset string, mode engine.Mode, values []float64) *Analysis {
	return &Analysis{
		Dataset:   dataset,
		Mode:      mode,
		Values:    values,
		Result:    engine.Compute(mode, values),
		Generated: time.Now().UTC(),
	}
}

// Markdown renders the analysis with bracketed section headers.
func (a *Analysis) Markdown() string {
	var b strings.Builder
	b.WriteString("[ANALYSIS SUMMARY]\n")
	fmt.Fprintf(&b, "Dataset: %s\n", a.Dataset)
	fmt.Fprintf(&b, "Mode: %s\n", a.Mode)
	fmt.Fprintf(&b, "Generated: %s\n\n", a.Generated.Format(time.RFC3339))

	b.WriteString("[INPUT VALUES]\n")
	if len(a.Values) == 0 {
		b.WriteString("(empty)\n\n")
	} else {
		fmt.Fprintf(&b, "Count: %d\n", len(a.Values))
		fmt.Fprintf(&b, "Values: %s\n\n", engine.FormatValues(a.Values))
	}

	b.WriteString("[RESULTS]\n")
	if len(a.Result) == 0 {
		b.WriteString("(no results for an empty dataset)\n")
		return b.String()
	}
	labels := engine.Labels(a.Mode)
	b.WriteString("| Metric | Value |\n|---|---|\n")
	for i, v := range a.Result {
		fmt.Fprintf(&b, "| %s | %s |\n", labels[i], engine.FormatValue(v))
	}
	return b.String()
}

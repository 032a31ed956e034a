// Package session owns the named datasets and routes them through the engine.
package session

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/KaramelBytes/domainlens-cli/internal/engine"
	"github.com/KaramelBytes/domainlens-cli/internal/logging"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ErrDatasetNotFound is returned by Result when no dataset has the given name.
var ErrDatasetNotFound = errors.New("dataset not found")

// Dataset is a named, ordered sequence of values.
type Dataset struct {
	ID      string    `yaml:"id"`
	Name    string    `yaml:"name"`
	Values  []float64 `yaml:"values,flow"`
	AddedAt time.Time `yaml:"added_at"`
}

// Store is the session: one engine plus the dataset map.
type Store struct {
	engine   *engine.Engine
	datasets *cache.Cache
	out      io.Writer
	log      *logging.Logger
}

type options struct {
	mode  engine.Mode
	out   io.Writer
	log   *logging.Logger
	quiet bool
}

// Option customizes a Store at construction.
type Option func(*options)

// WithMode sets the initial mode (default Education).
func WithMode(m engine.Mode) Option { return func(o *options) { o.mode = m } }

// WithOutput directs diagnostic text to w (default io.Discard).
func WithOutput(w io.Writer) Option { return func(o *options) { o.out = w } }

// WithLogger attaches a structured logger.
func WithLogger(l *logging.Logger) Option { return func(o *options) { o.log = l } }

// Quiet suppresses the ready banner and the initial mode announcement.
func Quiet() Option { return func(o *options) { o.quiet = true } }

var (
	okColor   = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed)
	headColor = color.New(color.FgCyan, color.Bold)
)

// New constructs an empty session.
func New(opts ...Option) *Store {
	o := options{mode: engine.Education, out: io.Discard, log: logging.Global()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.out == nil {
		o.out = io.Discard
	}
	if o.log == nil {
		o.log = logging.Nop()
	}
	s := &Store{
		datasets: cache.New(cache.NoExpiration, 0),
		out:      o.out,
		log:      o.log,
	}
	if o.quiet {
		s.engine = engine.New(o.mode, io.Discard)
		s.engine.SetOutput(o.out)
	} else {
		s.engine = engine.New(o.mode, o.out)
		fmt.Fprintln(s.out, "🧠 Multi-domain analysis system ready")
	}
	return s
}

// SwitchMode delegates to the engine.
func (s *Store) SwitchMode(m engine.Mode) {
	s.log.Debug("switch mode", "from", s.engine.Mode().Key(), "to", m.Key())
	s.engine.SwitchMode(m)
}

// Mode returns the current mode.
func (s *Store) Mode() engine.Mode { return s.engine.Mode() }

// AddDataset inserts or overwrites the dataset called name.
// Re-adding identical values keeps the existing entry's identity; NaN matches NaN.
func (s *Store) AddDataset(name string, values []float64) {
	d := Dataset{
		ID:      uuid.NewString(),
		Name:    name,
		Values:  values,
		AddedAt: time.Now().UTC(),
	}
	if prev, ok := s.lookup(name); ok && equalValues(prev.Values, values) {
		d.ID, d.AddedAt = prev.ID, prev.AddedAt
	}
	s.put(d)
	okColor.Fprintf(s.out, "✅ Added dataset: %s\n", name)
}

func (s *Store) put(d Dataset) {
	vals := make([]float64, len(d.Values))
	copy(vals, d.Values)
	d.Values = vals
	s.datasets.Set(d.Name, d, cache.NoExpiration)
	s.log.Debug("dataset stored", "name", d.Name, "id", d.ID, "values", len(vals))
}

func equalValues(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}
	return true
}

func (s *Store) lookup(name string) (Dataset, bool) {
	x, ok := s.datasets.Get(name)
	if !ok {
		return Dataset{}, false
	}
	return x.(Dataset), true
}

// Dataset returns a copy of the dataset called name.
func (s *Store) Dataset(name string) (Dataset, bool) {
	d, ok := s.lookup(name)
	if !ok {
		return Dataset{}, false
	}
	vals := make([]float64, len(d.Values))
	copy(vals, d.Values)
	d.Values = vals
	return d, true
}

// Result computes the current mode's analysis of the named dataset without printing.
func (s *Store) Result(name string) (engine.Result, error) {
	d, ok := s.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	return s.engine.Analyze(d.Values), nil
}

// Analyze prints the analysis of the named dataset under the current mode.
// A missing dataset prints a diagnostic and reports found=false; nothing is computed.
func (s *Store) Analyze(name string) (res engine.Result, found bool) {
	d, ok := s.lookup(name)
	if !ok {
		errColor.Fprintf(s.out, "❌ Dataset not found: %s\n", name)
		s.log.Debug("analyze skipped", "name", name, "error", ErrDatasetNotFound)
		return nil, false
	}
	res = s.engine.Analyze(d.Values)
	fmt.Fprintln(s.out)
	headColor.Fprintf(s.out, "🔍 Analysis in %s:\n", s.engine.ModeName())
	fmt.Fprintf(s.out, "   Data: %s -> %s\n", name, engine.FormatValues(d.Values))
	fmt.Fprintf(s.out, "   Results: %s\n", engine.FormatValues(res))
	s.log.Debug("analyzed", "name", name, "mode", s.engine.Mode().Key(), "results", len(res))
	return res, true
}

// Count returns the number of stored datasets.
func (s *Store) Count() int { return s.datasets.ItemCount() }

// Names returns dataset names in sorted order.
func (s *Store) Names() []string {
	items := s.datasets.Items()
	names := make([]string, 0, len(items))
	for k := range items {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Status prints the active mode and the number of stored datasets.
func (s *Store) Status() {
	fmt.Fprintln(s.out)
	headColor.Fprintln(s.out, "📊 System status:")
	fmt.Fprintf(s.out, "   • Active mode: %s\n", s.engine.ModeName())
	fmt.Fprintf(s.out, "   • Datasets: %d\n", s.Count())
}

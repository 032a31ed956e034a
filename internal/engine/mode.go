package engine

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects which formula set Analyze applies.
type Mode int

const (
	Education Mode = iota
	Finance
	Healthcare
	Inventory
)

// ErrUnknownMode is returned by ParseMode for names outside the closed set.
var ErrUnknownMode = errors.New("unknown mode")

var modeNames = [...]string{
	Education:  "Education System",
	Finance:    "Finance System",
	Healthcare: "Healthcare System",
	Inventory:  "Inventory System",
}

var modeKeys = [...]string{
	Education:  "education",
	Finance:    "finance",
	Healthcare: "healthcare",
	Inventory:  "inventory",
}

// AllModes returns every mode in the fixed order used by the reference run.
func AllModes() []Mode {
	return []Mode{Education, Finance, Healthcare, Inventory}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool { return m >= Education && m <= Inventory }

// String returns the display name of the mode.
func (m Mode) String() string {
	if !m.Valid() {
		return "Unknown"
	}
	return modeNames[m]
}

// Key returns the lowercase identifier used on the command line and on disk.
func (m Mode) Key() string {
	if !m.Valid() {
		return ""
	}
	return modeKeys[m]
}

// ParseMode accepts a mode key or display name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, m := range AllModes() {
		if v == m.Key() || v == strings.ToLower(m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (use education, finance, healthcare or inventory)", ErrUnknownMode, s)
}

// MarshalYAML encodes the mode as its key.
func (m Mode) MarshalYAML() (interface{}, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return m.Key(), nil
}

// UnmarshalYAML decodes a mode key.
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

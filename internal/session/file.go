package session

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/KaramelBytes/domainlens-cli/internal/engine"
	"github.com/KaramelBytes/domainlens-cli/internal/utils"
	"gopkg.in/yaml.v3"
)

const fileVersion = 1

// File is the on-disk form of a session.
type File struct {
	Version  int         `yaml:"version"`
	Mode     engine.Mode `yaml:"mode"`
	Datasets []Dataset   `yaml:"datasets"`
}

// Snapshot captures the current mode and datasets, ordered by name.
func (s *Store) Snapshot() File {
	f := File{Version: fileVersion, Mode: s.Mode()}
	for _, name := range s.Names() {
		d, _ := s.Dataset(name)
		f.Datasets = append(f.Datasets, d)
	}
	return f
}

// Save writes the session to path as YAML, atomically.
func (s *Store) Save(path string) error {
	b, err := yaml.Marshal(s.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	s.log.Debug("session saved", "path", path, "datasets", s.Count())
	return nil
}

// Load reads a session file. A missing file yields a fresh session.
// The stored mode is restored without announcing it.
func Load(path string, opts ...Option) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(append(opts, Quiet())...), nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", path, err)
	}
	if f.Version > fileVersion {
		return nil, fmt.Errorf("session %s has unsupported version %d", path, f.Version)
	}
	s := New(append(opts, Quiet())...)
	s.Restore(f)
	return s, nil
}

// Restore replaces the session's datasets and mode with the contents of f.
// The mode change is not announced.
func (s *Store) Restore(f File) {
	s.engine.SetOutput(io.Discard)
	s.engine.SwitchMode(f.Mode)
	s.engine.SetOutput(s.out)

	s.datasets.Flush()
	for _, d := range f.Datasets {
		s.put(d)
	}
	s.log.Debug("session restored", "mode", f.Mode.Key(), "datasets", len(f.Datasets))
}

package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists a Registry to disk.
type Store interface {
	Load() (*Registry, error) // returns Defaults() if no file exists
	Save(r *Registry) error
}

// diskStore is the concrete Store that writes to the XDG config directory.
type diskStore struct {
	path string // full path to registry.json
}

// NewStore returns a Store backed by the XDG config directory.
// Path: $XDG_CONFIG_HOME/worklog/registry.json or ~/.config/worklog/registry.json
func NewStore() (Store, error) {
	dir, err := configDir()
	if err != nil {
		return nil, fmt.Errorf("resolving config directory: %w", err)
	}
	return &diskStore{path: filepath.Join(dir, "registry.json")}, nil
}

// configDir returns the worklog-specific XDG config directory.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "worklog"), nil
}

// Load reads and parses the registry file.
// Returns Defaults() if the file does not exist, so a first run needs no setup.
func (d *diskStore) Load() (*Registry, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r := Defaults()
			return &r, nil
		}
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	r := Defaults()
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, &ParseError{Path: d.path, Err: err}
	}
	if r.Projects == nil {
		r.Projects = map[string]Project{}
	}
	return &r, nil
}

// Save marshals r to JSON and writes it atomically via a temp file + os.Rename.
func (d *diskStore) Save(r *Registry) error {
	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to persist registry: %w", err)
	}

	// Write to a temp file in the same directory so os.Rename is atomic.
	tmp, err := os.CreateTemp(filepath.Dir(d.path), "registry-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to persist registry: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to persist registry: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to persist registry: %w", err)
	}

	if err = os.Rename(tmpName, d.path); err != nil {
		return fmt.Errorf("failed to persist registry: %w", err)
	}
	return nil
}

// ParseError is returned when the registry file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse registry file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

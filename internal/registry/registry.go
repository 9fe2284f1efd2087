// Package registry manages the project registry: the on-disk mapping from
// project names to repository paths, the active selection, and the policy
// knobs the worklog pipeline reads at startup.
package registry

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoActiveProject is returned when no project has been activated.
var ErrNoActiveProject = errors.New("no active project — run 'worklog use <name>'")

// ErrUnknownProject is returned when a name does not exist in the registry.
var ErrUnknownProject = errors.New("unknown project")

// Project is one registered repository.
type Project struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// Registry holds all registered projects plus pipeline policy settings.
type Registry struct {
	Projects     map[string]Project `json:"projects"`
	Active       string             `json:"active"`
	OutputFolder string             `json:"output_folder"`
	// MaxCommits caps how many commits one run feeds to the backend.
	MaxCommits int `json:"max_commits,omitempty"`
	// MaxDiffBytes caps a single captured diff before the run aborts.
	MaxDiffBytes int `json:"max_diff_bytes,omitempty"`
	// Backend is the generation command argv; first element is the executable.
	Backend []string `json:"backend,omitempty"`
}

// Defaults returns a registry with no projects and standard policy values.
func Defaults() Registry {
	return Registry{
		Projects:     map[string]Project{},
		OutputFolder: "worklogs",
		MaxCommits:   10,
		MaxDiffBytes: 64 << 20,
		Backend:      []string{"gemini"},
	}
}

// ActiveProject resolves the active selection to a name and Project.
// Returns ErrNoActiveProject when unset and ErrUnknownProject when the
// active name is no longer registered.
func (r *Registry) ActiveProject() (string, Project, error) {
	if r.Active == "" {
		return "", Project{}, ErrNoActiveProject
	}
	p, ok := r.Projects[r.Active]
	if !ok {
		return "", Project{}, fmt.Errorf("active project %q: %w", r.Active, ErrUnknownProject)
	}
	return r.Active, p, nil
}

// Names returns all registered project names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Projects))
	for name := range r.Projects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

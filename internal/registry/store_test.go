package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store := newTestStore(t)

	r, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	d := Defaults()
	if r.OutputFolder != d.OutputFolder || r.MaxCommits != d.MaxCommits {
		t.Errorf("missing file should load defaults, got %+v", r)
	}
	if r.Projects == nil {
		t.Error("Projects map must be non-nil")
	}
}

func TestLoadParseError(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "worklog")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "registry.json"), []byte("{invalid json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	_, err = store.Load()
	if err == nil {
		t.Fatal("expected an error for invalid JSON, got nil")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected *ParseError, got %T: %v", err, err)
	}
}

// Property: any registry written through Save comes back identical from Load.
func TestSaveLoadRoundTrip(t *testing.T) {
	name := rapid.StringMatching(`[a-z][a-z0-9-]{0,15}`)
	path := rapid.StringMatching(`/[a-z0-9/_-]{1,30}`)

	// Registers cleanup so per-iteration overrides don't leak past the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	rapid.Check(t, func(rt *rapid.T) {
		tmp, err := os.MkdirTemp("", "registry-roundtrip-")
		if err != nil {
			rt.Fatalf("MkdirTemp: %v", err)
		}
		defer os.RemoveAll(tmp)
		os.Setenv("XDG_CONFIG_HOME", tmp)

		store, err := NewStore()
		if err != nil {
			rt.Fatalf("NewStore: %v", err)
		}

		r := Defaults()
		n := rapid.IntRange(0, 5).Draw(rt, "projects")
		var names []string
		for i := 0; i < n; i++ {
			names = append(names, name.Draw(rt, "name"))
		}
		for i, nm := range names {
			r.Projects[nm] = Project{ID: nm + "-id", Path: path.Draw(rt, "path")}
			if i == 0 {
				r.Active = nm
			}
		}
		r.MaxCommits = rapid.IntRange(1, 100).Draw(rt, "maxCommits")

		if err := store.Save(&r); err != nil {
			rt.Fatalf("Save: %v", err)
		}
		loaded, err := store.Load()
		if err != nil {
			rt.Fatalf("Load: %v", err)
		}

		if loaded.Active != r.Active {
			rt.Errorf("Active = %q, want %q", loaded.Active, r.Active)
		}
		if loaded.MaxCommits != r.MaxCommits {
			rt.Errorf("MaxCommits = %d, want %d", loaded.MaxCommits, r.MaxCommits)
		}
		if len(loaded.Projects) != len(r.Projects) {
			rt.Fatalf("Projects count = %d, want %d", len(loaded.Projects), len(r.Projects))
		}
		for nm, p := range r.Projects {
			if loaded.Projects[nm] != p {
				rt.Errorf("project %q = %+v, want %+v", nm, loaded.Projects[nm], p)
			}
		}
	})
}

func TestSaveAtomicOverwrite(t *testing.T) {
	store := newTestStore(t)

	r := Defaults()
	r.Projects["alpha"] = Project{ID: "id-1", Path: "/repo/alpha"}
	r.Active = "alpha"
	if err := store.Save(&r); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	r.Active = ""
	if err := store.Save(&r); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Active != "" {
		t.Errorf("Active = %q, want empty after second save", loaded.Active)
	}
}

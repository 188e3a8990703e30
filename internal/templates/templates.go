package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/nextforge-dev/nextforge/internal/errors"
)

// Data contains the values substituted into template files.
type Data struct {
	// ProjectName is the project name, e.g. "my-app".
	ProjectName string

	// DisplayName is the human-readable title, e.g. "My App".
	DisplayName string
}

// Set represents a named set of template files written into a freshly
// generated project.
type Set struct {
	// Name is the set name.
	Name string

	// Description describes the set.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string

	// Remove lists generated files the set replaces with a different
	// filename, deleted before writing.
	Remove []string
}

// Available template sets.
var sets = map[string]*Set{
	"base": baseSet(),
	"docs": docsSet(),
}

// Get returns a template set by name.
func Get(name string) (*Set, error) {
	s, ok := sets[name]
	if !ok {
		return nil, errors.Newf(errors.CategorySetup, "unknown template set %q", name)
	}
	return s, nil
}

// List returns all available set names.
func List() []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Write renders the set into dir, creating parent directories as
// needed and overwriting files the generator already created. It
// returns the relative paths written, sorted.
func (s *Set) Write(dir string, data Data) ([]string, error) {
	for _, relPath := range s.Remove {
		if err := os.Remove(filepath.Join(dir, relPath)); err != nil && !os.IsNotExist(err) {
			return nil, errors.New("E130").
				WithDetailf("Could not remove %s.", relPath).
				Wrap(err)
		}
	}

	written := make([]string, 0, len(s.Files))
	for relPath := range s.Files {
		written = append(written, relPath)
	}
	sort.Strings(written)

	for _, relPath := range written {
		tmpl, err := template.New(relPath).Parse(s.Files[relPath])
		if err != nil {
			return nil, errors.New("E130").
				WithDetailf("Template %s is invalid.", relPath).
				Wrap(err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, errors.New("E130").
				WithDetailf("Template %s failed to render.", relPath).
				Wrap(err)
		}

		fullPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return nil, errors.New("E130").
				WithDetailf("Could not create directory for %s.", relPath).
				Wrap(err)
		}

		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return nil, errors.New("E130").
				WithDetailf("Could not write %s.", relPath).
				Wrap(err)
		}
	}

	return written, nil
}

// merge layers maps left to right, later entries overriding earlier
// ones.
func merge(maps ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// baseSet returns the template set every project gets.
func baseSet() *Set {
	return &Set{
		Name:        "base",
		Description: "Theme-aware app shell with marketing pages",
		Files:       merge(configFiles(), componentFiles(), pageFiles()),
	}
}

// docsSet returns the base set extended with an MDX documentation
// section. It swaps the TypeScript Next config for an .mjs one that
// wires the MDX loader.
func docsSet() *Set {
	files := merge(configFiles(), componentFiles(), pageFiles(), docsFiles())
	delete(files, "next.config.ts")
	return &Set{
		Name:        "docs",
		Description: "Base set plus an MDX-powered docs section",
		Files:       files,
		Remove:      []string{"next.config.ts"},
	}
}

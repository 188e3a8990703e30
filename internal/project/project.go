// Package project models the project being scaffolded: its validated
// name, derived display name, and target directory on disk.
package project

import (
	"os"
	"path/filepath"

	"github.com/nextforge-dev/nextforge/internal/errors"
)

// Project describes the project to scaffold.
type Project struct {
	// Name is the validated project name, e.g. "my-app".
	Name string

	// DisplayName is the human-readable title, e.g. "My App".
	DisplayName string

	// Dir is the absolute path of the project directory. The directory
	// does not exist until the scaffolder creates it.
	Dir string
}

// Resolve validates name and resolves the project directory under
// parent. It does not touch the filesystem beyond resolving paths.
func Resolve(parent, name string) (*Project, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	dir, err := filepath.Abs(filepath.Join(parent, name))
	if err != nil {
		return nil, errors.FromError(err, "E103")
	}
	return &Project{
		Name:        name,
		DisplayName: DisplayName(name),
		Dir:         dir,
	}, nil
}

// EnsureAbsent fails if anything already exists at the project directory.
// Checked before the first subprocess runs so an existing directory is
// never touched.
func (p *Project) EnsureAbsent() error {
	if _, err := os.Stat(p.Dir); err == nil {
		return errors.New("E103").
			WithDetailf("%s already exists.", p.Dir).
			WithSuggestion("Pick a different name or remove the existing directory")
	} else if !os.IsNotExist(err) {
		return errors.FromError(err, "E103")
	}
	return nil
}

// LayoutPath returns the path of the generated root layout inside the
// project directory.
func (p *Project) LayoutPath() string {
	return filepath.Join(p.Dir, "app", "layout.tsx")
}

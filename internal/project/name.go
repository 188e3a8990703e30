package project

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nextforge-dev/nextforge/internal/errors"
)

// namePattern matches valid project names: lowercase letters, digits,
// and hyphens, rejecting spaces, uppercase, and punctuation that would
// break the directory name or npm package name downstream.
var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateName checks that name is usable as a project name. It returns
// a coded error describing what is wrong, never a generic one.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("E101").
			WithSuggestion("Run: nextforge <project-name>")
	}
	if !namePattern.MatchString(name) {
		return errors.New("E102").
			WithDetailf("Got %q. Project names may only contain lowercase letters, digits, and hyphens.", name).
			WithSuggestion("Try something like " + suggestName(name))
	}
	return nil
}

// suggestName converts an invalid name into a likely-valid variant for
// the error hint.
func suggestName(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '.':
			b.WriteRune('-')
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		return `"my-app"`
	}
	return `"` + s + `"`
}

// DisplayName derives a human-readable title from a project name.
// Hyphens become spaces and each word is title-cased, so "my-app"
// becomes "My App".
func DisplayName(name string) string {
	titleCaser := cases.Title(language.English)
	var words []string
	for _, w := range strings.Split(name, "-") {
		if w == "" {
			continue
		}
		words = append(words, titleCaser.String(w))
	}
	return strings.Join(words, " ")
}

//go:build property
// +build property

package project

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestNameProperties tests name validation and display name derivation
// across generated inputs.
func TestNameProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: every name matching the documented pattern validates.
	properties.Property("valid names pass", prop.ForAll(
		func(name string) bool {
			return ValidateName(name) == nil
		},
		gen.RegexMatch(`^[a-z0-9-]+$`),
	))

	// Property: names containing uppercase or whitespace never validate.
	properties.Property("invalid characters rejected", prop.ForAll(
		func(name string) bool {
			if name == "" {
				return true
			}
			if !strings.ContainsAny(name, "ABCDEFGHIJKLMNOPQRSTUVWXYZ \t_.") {
				return true
			}
			return ValidateName(name) != nil
		},
		gen.OneConstOf("My App", "my_app", "MY-APP", "my app", "a.b", "App", "\tapp"),
	))

	// Property: validation is deterministic.
	properties.Property("validation consistency", prop.ForAll(
		func(name string) bool {
			first := ValidateName(name) == nil
			second := ValidateName(name) == nil
			return first == second
		},
		gen.AnyString(),
	))

	// Property: display names of valid names never contain hyphens and
	// never start or end with a space.
	properties.Property("display name shape", prop.ForAll(
		func(name string) bool {
			display := DisplayName(name)
			if strings.Contains(display, "-") {
				return false
			}
			return display == strings.TrimSpace(display)
		},
		gen.RegexMatch(`^[a-z0-9-]+$`),
	))

	properties.TestingRun(t)
}

// Package patch rewrites the root layout that create-next-app
// generates, threading the theme provider, header, and footer through
// it. The layout's shape is an external contract owned by the
// scaffolder, so every rewrite is a named substitution with an anchor
// regex locating the text to change and a guard marker detecting a
// previous application. A guard hit is a skip; a missing anchor with
// no guard hit is a coded error naming the substitution, never a
// silent no-op.
package patch

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/nextforge-dev/nextforge/internal/errors"
)

// Substitution rewrites one region of the root layout.
type Substitution struct {
	// Name identifies the substitution in reports and errors.
	Name string

	// Guard is a literal substring whose presence means the
	// substitution was already applied.
	Guard string

	// Anchor locates the text to rewrite.
	Anchor *regexp.Regexp

	// Replace is the replacement text, with ${n} group expansions.
	Replace string

	// AnchorOptional marks substitutions whose anchor text disappears
	// once applied. A missing anchor is then a skip, not an error.
	AnchorOptional bool
}

// Result reports what a patch run did, by substitution name.
type Result struct {
	Applied []string
	Skipped []string
}

// Changed reports whether any substitution rewrote the content.
func (r *Result) Changed() bool {
	return len(r.Applied) > 0
}

// LayoutSubstitutions returns the ordered substitutions for a
// create-next-app root layout. displayName appears in the rewritten
// page metadata.
func LayoutSubstitutions(displayName string) []Substitution {
	return []Substitution{
		{
			Name:   "theme-imports",
			Guard:  "components/theme-provider",
			Anchor: regexp.MustCompile(`(?m)^import "\./globals\.css";$`),
			Replace: `import "./globals.css";

import { ThemeProvider } from "@/components/theme-provider";
import { Header } from "@/components/header";
import { Footer } from "@/components/footer";
import { fontSans } from "@/lib/fonts";`,
		},
		{
			Name:    "suppress-hydration",
			Guard:   "suppressHydrationWarning",
			Anchor:  regexp.MustCompile(`<html lang="([A-Za-z-]+)">`),
			Replace: `<html lang="${1}" suppressHydrationWarning>`,
		},
		{
			Name:   "shell",
			Guard:  "<ThemeProvider",
			Anchor: regexp.MustCompile(`(?m)^([ \t]+)\{children\}$`),
			Replace: `${1}<ThemeProvider
${1}  attribute="class"
${1}  defaultTheme="system"
${1}  enableSystem
${1}  disableTransitionOnChange
${1}>
${1}  <div className={fontSans.variable + " font-sans flex min-h-screen flex-col"}>
${1}    <Header />
${1}    <main className="flex-1">{children}</main>
${1}    <Footer />
${1}  </div>
${1}</ThemeProvider>`,
		},
		{
			// The stock metadata block is the marker here: once it is
			// gone, whether patched or hand-edited, there is nothing
			// left to do.
			Name:   "metadata",
			Anchor: regexp.MustCompile(`export const metadata: Metadata = \{[^}]*Create Next App[^}]*\};`),
			Replace: fmt.Sprintf(`export const metadata: Metadata = {
  title: {
    default: %[1]q,
    template: "%%s | %[1]s",
  },
  description: "%[1]s is built with Next.js and shadcn/ui.",
};`, displayName),
			AnchorOptional: true,
		},
	}
}

// Apply runs the substitutions over content in order and returns the
// rewritten content with a per-substitution report.
func Apply(content []byte, subs []Substitution) ([]byte, *Result, error) {
	text := string(content)
	result := &Result{}

	for _, sub := range subs {
		if sub.Guard != "" && strings.Contains(text, sub.Guard) {
			result.Skipped = append(result.Skipped, sub.Name)
			continue
		}
		if !sub.Anchor.MatchString(text) {
			if sub.AnchorOptional {
				result.Skipped = append(result.Skipped, sub.Name)
				continue
			}
			return nil, nil, errors.New("E141").
				WithDetailf("The %q substitution found no anchor matching %s.", sub.Name, sub.Anchor).
				WithSuggestion("The layout may come from an unsupported create-next-app version. Patch app/layout.tsx manually.")
		}
		text = sub.Anchor.ReplaceAllString(text, sub.Replace)
		result.Applied = append(result.Applied, sub.Name)
	}

	return []byte(text), result, nil
}

// File patches the file at path in place. The file is rewritten only
// when a substitution changed it, so an already-patched layout is
// untouched on disk.
func File(path string, subs []Substitution) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E140").
				WithDetailf("Expected the root layout at %s.", path)
		}
		return nil, errors.FromError(err, "E140")
	}

	patched, result, err := Apply(content, subs)
	if err != nil {
		return nil, err
	}

	if result.Changed() {
		if err := os.WriteFile(path, patched, 0644); err != nil {
			return nil, errors.FromError(err, "E140")
		}
	}

	return result, nil
}

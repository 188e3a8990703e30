package templates

import (
	"bytes"
	"path"
	"strings"
	"testing"
	"text/template"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/require"
)

// render executes one template source against the shared test data.
func render(t *testing.T, name, source string) string {
	t.Helper()
	tmpl, err := template.New(name).Parse(source)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, testData))
	return buf.String()
}

// loaderFor maps a template path to the esbuild loader that can parse
// it, or false for files esbuild has no loader for (.env, .mdx).
func loaderFor(rel string) (api.Loader, bool) {
	switch path.Ext(rel) {
	case ".tsx":
		return api.LoaderTSX, true
	case ".ts":
		return api.LoaderTS, true
	case ".mjs":
		return api.LoaderJS, true
	default:
		return 0, false
	}
}

// TestTemplateSyntax runs every rendered TypeScript, TSX, and JS
// template through esbuild. A template that ships a syntax error would
// break the generated project on first build, so this gate runs on
// the whole corpus.
func TestTemplateSyntax(t *testing.T) {
	for _, name := range List() {
		set, err := Get(name)
		require.NoError(t, err)

		for rel, source := range set.Files {
			loader, ok := loaderFor(rel)
			if !ok {
				continue
			}

			t.Run(name+"/"+rel, func(t *testing.T) {
				rendered := render(t, rel, source)

				result := api.Transform(rendered, api.TransformOptions{
					Loader:     loader,
					Sourcefile: rel,
				})

				var msgs []string
				for _, e := range result.Errors {
					line := e.Text
					if e.Location != nil {
						line = e.Location.LineText + ": " + line
					}
					msgs = append(msgs, line)
				}
				require.Empty(t, result.Errors, "esbuild rejected %s:\n%s", rel, strings.Join(msgs, "\n"))
			})
		}
	}
}

// Package templates carries the file sets written into a freshly
// scaffolded Next.js project: shared components, marketing pages, App
// Router convention files, and project configuration.
//
// Files are literal sources embedded in Go, rendered with
// text/template against a Data value, so the same input always
// produces byte-identical output. Sets write into an explicit target
// directory and never consult the process working directory.
//
// # Available Sets
//
//   - base: theme-aware app shell with marketing pages
//   - docs: base plus an MDX-powered docs section
//
// # Usage
//
//	set, err := templates.Get("base")
//	if err != nil {
//	    return err
//	}
//	written, err := set.Write(projectDir, templates.Data{
//	    ProjectName: "my-app",
//	    DisplayName: "My App",
//	})
package templates

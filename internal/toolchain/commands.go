package toolchain

// CreateNextApp builds the create-next-app invocation. It runs in
// parentDir and creates the project directory itself; every prompt is
// answered by a flag so the subprocess never blocks on input.
func CreateNextApp(parentDir, name, packageManager string) Command {
	return Command{
		Name: "npx",
		Args: []string{
			"create-next-app@latest", name,
			"--ts",
			"--tailwind",
			"--eslint",
			"--app",
			"--turbopack",
			"--no-src-dir",
			"--import-alias", "@/*",
			"--use-" + packageManager,
			"--yes",
		},
		Dir: parentDir,
	}
}

// ShadcnInit builds the shadcn init invocation. -d accepts the default
// answers so the run stays non-interactive.
func ShadcnInit(projectDir string) Command {
	return Command{
		Name: "npx",
		Args: []string{"shadcn@latest", "init", "-d"},
		Dir:  projectDir,
	}
}

// ShadcnAdd builds the shadcn add invocation installing every component
// in the registry.
func ShadcnAdd(projectDir string) Command {
	return Command{
		Name: "npx",
		Args: []string{"shadcn@latest", "add", "--all", "--yes", "--overwrite"},
		Dir:  projectDir,
	}
}

// AddDependencies builds the package manager invocation installing the
// given packages. npm, pnpm, and bun all accept "add".
func AddDependencies(projectDir, packageManager string, packages []string) Command {
	return Command{
		Name: packageManager,
		Args: append([]string{"add"}, packages...),
		Dir:  projectDir,
	}
}

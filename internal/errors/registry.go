package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Usage Errors (E101-E109)
	// ============================================

	"E101": {
		Category: CategoryUsage,
		Message:  "Missing project name",
		Detail:   "A project name is required. Pass it as the first argument or answer the prompt.",
		DocURL:   "https://nextforge.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryUsage,
		Message:  "Invalid project name",
		Detail:   "Project names may only contain lowercase letters, digits, and hyphens.",
		DocURL:   "https://nextforge.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryUsage,
		Message:  "Project directory already exists",
		Detail:   "A file or directory with this name already exists in the target location.",
		DocURL:   "https://nextforge.dev/docs/errors/E103",
	},

	// ============================================
	// Preflight Errors (E110-E119)
	// ============================================

	"E110": {
		Category: CategoryPreflight,
		Message:  "Node.js not found",
		Detail:   "Node.js is not installed or not in PATH. The scaffolding tools run on Node.",
		DocURL:   "https://nextforge.dev/docs/errors/E110",
	},
	"E111": {
		Category: CategoryPreflight,
		Message:  "Node.js version unsupported",
		Detail:   "Next.js requires Node.js 18.18.0 or newer.",
		DocURL:   "https://nextforge.dev/docs/errors/E111",
	},
	"E112": {
		Category: CategoryPreflight,
		Message:  "Package manager not found",
		Detail:   "The selected package manager is not installed or not in PATH.",
		DocURL:   "https://nextforge.dev/docs/errors/E112",
	},

	// ============================================
	// Setup Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategorySetup,
		Message:  "Project scaffolding failed",
		Detail:   "create-next-app exited with an error. The partial project directory is left in place for inspection.",
		DocURL:   "https://nextforge.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategorySetup,
		Message:  "Component library init failed",
		Detail:   "shadcn init exited with an error. The project was created but has no component library.",
		DocURL:   "https://nextforge.dev/docs/errors/E121",
	},
	"E122": {
		Category: CategorySetup,
		Message:  "Component install failed",
		Detail:   "shadcn add exited with an error while installing components.",
		DocURL:   "https://nextforge.dev/docs/errors/E122",
	},
	"E123": {
		Category: CategorySetup,
		Message:  "Dependency install failed",
		Detail:   "The package manager exited with an error while installing extra dependencies.",
		DocURL:   "https://nextforge.dev/docs/errors/E123",
	},
	"E130": {
		Category: CategorySetup,
		Message:  "Template write failed",
		Detail:   "A template file could not be rendered or written into the project.",
		DocURL:   "https://nextforge.dev/docs/errors/E130",
	},

	// ============================================
	// Patch Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategorySetup,
		Message:  "Root layout not found",
		Detail:   "The generated project has no app/layout.tsx. create-next-app may have produced an unexpected layout.",
		DocURL:   "https://nextforge.dev/docs/errors/E140",
	},
	"E141": {
		Category: CategorySetup,
		Message:  "Layout anchor not found",
		Detail:   "The root layout does not contain the expected code to patch. The file was likely generated by an incompatible Next.js version.",
		DocURL:   "https://nextforge.dev/docs/errors/E141",
	},

	// ============================================
	// Configuration Errors (E150-E159)
	// ============================================

	"E150": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The nextforge configuration file or environment is malformed.",
		DocURL:   "https://nextforge.dev/docs/errors/E150",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

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
	// Config Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Invalid sift.json",
		Detail:   "The sift.json configuration file could not be parsed.",
		DocURL:   "https://sift.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Not a sift project",
		Detail:   "No sift.json was found in this directory or any parent directory.",
		DocURL:   "https://sift.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The configured port is outside the valid range (1-65535).",
		DocURL:   "https://sift.dev/docs/errors/E102",
	},

	// ============================================
	// Snapshot Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategorySnapshot,
		Message:  "Snapshot decode failed",
		Detail:   "The file does not contain a valid snapshot document.",
		DocURL:   "https://sift.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategorySnapshot,
		Message:  "Snapshot too deep",
		Detail:   "The snapshot nests deeper than the decoder allows.",
		DocURL:   "https://sift.dev/docs/errors/E121",
	},
	"E122": {
		Category: CategorySnapshot,
		Message:  "Snapshot not readable",
		Detail:   "The snapshot file could not be read.",
		DocURL:   "https://sift.dev/docs/errors/E122",
	},
	"E123": {
		Category: CategorySnapshot,
		Message:  "Invalid snapshot name",
		Detail:   "Snapshot names cannot be empty, start with a dot, or contain path separators.",
		DocURL:   "https://sift.dev/docs/errors/E123",
	},

	// ============================================
	// Store Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryStore,
		Message:  "Snapshot store unavailable",
		Detail:   "The snapshot store could not be reached.",
		DocURL:   "https://sift.dev/docs/errors/E140",
	},
	"E141": {
		Category: CategoryStore,
		Message:  "Snapshot push failed",
		Detail:   "The snapshot could not be uploaded to the remote store.",
		DocURL:   "https://sift.dev/docs/errors/E141",
	},
	"E142": {
		Category: CategoryStore,
		Message:  "Snapshot pull failed",
		Detail:   "The snapshot could not be downloaded from the remote store.",
		DocURL:   "https://sift.dev/docs/errors/E142",
	},
	"E143": {
		Category: CategoryStore,
		Message:  "Missing bucket configuration",
		Detail:   "No S3 bucket is configured for the remote store.",
		DocURL:   "https://sift.dev/docs/errors/E143",
	},

	// ============================================
	// Selector Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategorySelector,
		Message:  "Invalid selector",
		Detail:   "The selector contains no recognizable tokens or a malformed attribute expression.",
		DocURL:   "https://sift.dev/docs/errors/E160",
	},

	// ============================================
	// Server Errors (E180-E199)
	// ============================================

	"E180": {
		Category: CategoryServer,
		Message:  "Inspector failed to start",
		Detail:   "The inspector server could not start on the configured address.",
		DocURL:   "https://sift.dev/docs/errors/E180",
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

package engine

import (
	"os"
	"path/filepath"
	"strings"
)

// Document is a document submitted for checking.
type Document struct {
	URI         string
	Text        string
	LanguageTag string
}

// ExcludedDirs are directory names skipped when walking a project.
var ExcludedDirs = []string{
	".venv",
	"venv",
	"env",
	"__pycache__",
	".pytest_cache",
	".mypy_cache",
	".git",
	".github",
	"node_modules",
	"build",
	"dist",
	"backup_old_files",
}

// IsExcludedDir reports whether a directory with the given base name is skipped.
func IsExcludedDir(name string) bool {
	for _, dir := range ExcludedDirs {
		if name == dir {
			return true
		}
	}
	return false
}

// languageNames maps file extensions to the language identifiers editors
// report for them.
var languageNames = map[string]string{
	"py":    "python",
	"pyi":   "python",
	"pyw":   "python",
	"js":    "javascript",
	"mjs":   "javascript",
	"cjs":   "javascript",
	"jsx":   "javascriptreact",
	"ts":    "typescript",
	"mts":   "typescript",
	"cts":   "typescript",
	"tsx":   "typescriptreact",
	"rb":    "ruby",
	"rs":    "rust",
	"kt":    "kotlin",
	"cs":    "csharp",
	"sh":    "shellscript",
	"bash":  "shellscript",
	"md":    "markdown",
	"yml":   "yaml",
	"h":     "c",
	"hpp":   "cpp",
	"cc":    "cpp",
	"cxx":   "cpp",
	"ps1":   "powershell",
	"jsonc": "json",
}

// LanguageForPath derives a language identifier from a file extension.
// Common extensions map to their editor language identifier, so ".ts"
// becomes "typescript"; any other extension maps to itself in lower case,
// without the dot.
func LanguageForPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if name, ok := languageNames[ext]; ok {
		return name
	}
	return ext
}

// ReadDocument reads the file at path into a Document.
func ReadDocument(path string) (Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return Document{
		URI:         path,
		Text:        string(src),
		LanguageTag: LanguageForPath(path),
	}, nil
}

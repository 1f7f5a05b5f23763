// Package classify maps file extensions to a coarse category and a
// specific sub-type label. It is a pure lookup: no content sniffing,
// no I/O.
package classify

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

var codeTypes = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".java":  "java",
	".c":     "c",
	".cpp":   "cpp",
	".h":     "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".go":    "go",
	".rs":    "rust",
	".rb":    "ruby",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
	".sh":    "shell",
	".pl":    "perl",
	".r":     "r",
	".m":     "matlab",
	".jl":    "julia",
}

var dataTypes = map[string]string{
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".xml":  "xml",
	".csv":  "csv",
	".toml": "toml",
	".ini":  "ini",
	".cfg":  "ini",
}

var documentTypes = map[string]string{
	".md":   "markdown",
	".txt":  "text",
	".html": "html",
	".htm":  "html",
	".css":  "css",
}

// Path classifies a filename or path by its final extension. Unknown
// extensions yield (CategoryUnknown, extension without the dot); a name
// with no extension yields (CategoryUnknown, "text").
func Path(name string) (model.Category, string) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(name)))
	if sub, ok := codeTypes[ext]; ok {
		return model.CategoryCode, sub
	}
	if sub, ok := dataTypes[ext]; ok {
		return model.CategoryData, sub
	}
	if sub, ok := documentTypes[ext]; ok {
		return model.CategoryDocument, sub
	}
	if ext == "" {
		return model.CategoryUnknown, "text"
	}
	return model.CategoryUnknown, strings.TrimPrefix(ext, ".")
}

// Lookup resolves a sub-type label (e.g. "python", "json", "markdown")
// back to its category. Unrecognized labels are CategoryUnknown.
func Lookup(subType string) model.Category {
	sub := strings.ToLower(strings.TrimSpace(subType))
	for _, v := range codeTypes {
		if v == sub {
			return model.CategoryCode
		}
	}
	for _, v := range dataTypes {
		if v == sub {
			return model.CategoryData
		}
	}
	for _, v := range documentTypes {
		if v == sub {
			return model.CategoryDocument
		}
	}
	return model.CategoryUnknown
}

// Extensions returns every known extension without the leading dot,
// sorted, grouped across all categories.
func Extensions() []string {
	out := make([]string, 0, len(codeTypes)+len(dataTypes)+len(documentTypes))
	for _, m := range []map[string]string{codeTypes, dataTypes, documentTypes} {
		for ext := range m {
			out = append(out, strings.TrimPrefix(ext, "."))
		}
	}
	sort.Strings(out)
	return out
}

// ByCategory returns extension → sub-type tables keyed by category, for
// display. The returned maps are copies.
func ByCategory() map[model.Category]map[string]string {
	cp := func(m map[string]string) map[string]string {
		out := make(map[string]string, len(m))
		for k, v := range m {
			out[strings.TrimPrefix(k, ".")] = v
		}
		return out
	}
	return map[model.Category]map[string]string{
		model.CategoryCode:     cp(codeTypes),
		model.CategoryData:     cp(dataTypes),
		model.CategoryDocument: cp(documentTypes),
	}
}

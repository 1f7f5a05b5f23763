//go:build treesitter && cgo

package treesitter

import (
	"strings"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

// Extract parses src with the grammar for the given language label and
// returns its top-level declarations. Languages without a compiled-in
// grammar return ErrUnsupported; a tree with syntax errors returns
// ErrParse so the caller can fall back to the heuristic scanner.
func Extract(src, language string) ([]model.Element, error) {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "python":
		return extractPython([]byte(src))
	case "javascript":
		return extractJavaScript([]byte(src))
	case "typescript":
		return extractTypeScript([]byte(src))
	default:
		return nil, ErrUnsupported
	}
}

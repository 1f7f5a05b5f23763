// Package extract turns source text into an ordered sequence of
// structural elements. Go files are parsed with the standard library
// grammar; other code rides an optional tree-sitter provider when one
// is compiled in, falling back to a line-oriented heuristic scanner.
// Data and document files produce categorical preview elements.
//
// Extraction is pure computation: no I/O, no logging, no state shared
// between calls. It never panics and never returns an empty slice;
// malformed input degrades to a single fallback element carrying the
// error text.
package extract

import (
	"strings"

	"github.com/ronelsolomon/filesummarize/internal/core/treesitter"
	"github.com/ronelsolomon/filesummarize/internal/model"
)

// maxSourceLen caps the source preview carried by fallback elements,
// measured in runes. Previews past the cap end with an ellipsis marker.
const maxSourceLen = 1000

// Elements extracts structural elements from classified source text.
func Elements(src string, category model.Category, subType string) []model.Element {
	switch category {
	case model.CategoryCode:
		if strings.EqualFold(subType, "go") {
			return GoSource(src)
		}
		if els, err := treesitter.Extract(src, subType); err == nil {
			return ensureNonEmpty(els, src, subType)
		}
		return Scan(src, subType)
	case model.CategoryData:
		return DataElements(src, subType)
	default:
		return TextElements(src, category, subType)
	}
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxSourceLen {
		return s
	}
	return string(r[:maxSourceLen]) + "..."
}

// lineCount counts display lines, treating a trailing newline as a line
// terminator rather than an extra line. Empty input still occupies one
// line so fallback ranges stay 1-based and inclusive.
func lineCount(s string) int {
	if s == "" {
		return 1
	}
	n := strings.Count(s, "\n") + 1
	if strings.HasSuffix(s, "\n") {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}

func fileFallback(src, language, docstring string) model.Element {
	return model.Element{
		Kind:      model.KindFile,
		Name:      "content",
		Docstring: docstring,
		Source:    truncate(src),
		StartLine: 1,
		EndLine:   lineCount(src),
		Language:  language,
	}
}

func ensureNonEmpty(els []model.Element, src, language string) []model.Element {
	if len(els) > 0 {
		return els
	}
	return []model.Element{fileFallback(src, language, "No structured elements found")}
}

//go:build treesitter && cgo

package treesitter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

var tsClassKinds = map[string]struct{}{
	"abstract_class_declaration": {},
	"interface_declaration":      {},
	"type_alias_declaration":     {},
	"enum_declaration":           {},
}

func extractTypeScript(src []byte) ([]model.Element, error) {
	lang := tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	return extractECMAScript(src, lang, "typescript", tsClassKinds)
}

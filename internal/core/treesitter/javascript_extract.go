//go:build treesitter && cgo

package treesitter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_js "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

var jsNestedKinds = map[string]struct{}{
	"function_declaration":           {},
	"generator_function_declaration": {},
	"function_expression":            {},
	"generator_function":             {},
	"arrow_function":                 {},
	"method_definition":              {},
	"class_declaration":              {},
	"class":                          {},
}

func extractJavaScript(src []byte) ([]model.Element, error) {
	lang := tree_sitter.NewLanguage(tree_sitter_js.Language())
	return extractECMAScript(src, lang, "javascript", nil)
}

// extractECMAScript walks the top level of a JS-family tree. extraClass
// lists additional node kinds treated as class-like (TypeScript adds
// interfaces, enums and type aliases).
func extractECMAScript(src []byte, lang *tree_sitter.Language, label string, extraClass map[string]struct{}) ([]model.Element, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(lang); err != nil {
		return nil, err
	}

	tree := parser.Parse(src, nil)
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		return nil, ErrParse
	}

	var out []model.Element
	for i := uint(0); i < root.NamedChildCount(); i++ {
		n := root.NamedChild(i)
		if n == nil {
			continue
		}
		if n.Kind() == "export_statement" {
			if decl := n.ChildByFieldName("declaration"); decl != nil {
				n = decl
			}
		}
		k := n.Kind()
		switch {
		case k == "function_declaration" || k == "generator_function_declaration":
			if el, ok := ecmaFunction(n, src, label); ok {
				out = append(out, el)
			}
		case k == "class_declaration":
			if el, ok := ecmaClass(n, src, label); ok {
				out = append(out, el)
			}
		default:
			if extraClass != nil {
				if _, ok := extraClass[k]; ok {
					if el, ok := ecmaClass(n, src, label); ok {
						out = append(out, el)
					}
				}
			}
		}
	}
	return out, nil
}

func ecmaFunction(n *tree_sitter.Node, src []byte, label string) (model.Element, bool) {
	name := trimNodeText(n.ChildByFieldName("name"), src)
	if name == "" {
		return model.Element{}, false
	}
	kind := model.KindFunction
	if hasAsyncKeyword(n) {
		kind = model.KindAsyncFunction
	}
	sl, el := nodeLines1Based(n)
	return model.Element{
		Kind:       kind,
		Name:       name,
		Source:     n.Utf8Text(src),
		StartLine:  sl,
		EndLine:    el,
		Parameters: ecmaParams(n.ChildByFieldName("parameters"), src),
		HasReturn:  hasValueReturn(n.ChildByFieldName("body"), jsNestedKinds),
		Language:   label,
	}, true
}

func ecmaClass(n *tree_sitter.Node, src []byte, label string) (model.Element, bool) {
	name := trimNodeText(n.ChildByFieldName("name"), src)
	if name == "" {
		return model.Element{}, false
	}
	sl, el := nodeLines1Based(n)
	return model.Element{
		Kind:      model.KindClass,
		Name:      name,
		Source:    n.Utf8Text(src),
		StartLine: sl,
		EndLine:   el,
		Language:  label,
	}, true
}

// ecmaParams collects simple named parameters in order. Rest parameters
// and destructuring patterns carry no single name and are skipped.
func ecmaParams(params *tree_sitter.Node, src []byte) []string {
	out := make([]string, 0)
	if params == nil {
		return out
	}
	for i := uint(0); i < params.NamedChildCount(); i++ {
		p := params.NamedChild(i)
		if p == nil {
			continue
		}
		switch p.Kind() {
		case "identifier":
			if name := trimNodeText(p, src); name != "" {
				out = append(out, name)
			}
		case "assignment_pattern":
			if id := p.ChildByFieldName("left"); id != nil && id.Kind() == "identifier" {
				if name := trimNodeText(id, src); name != "" {
					out = append(out, name)
				}
			}
		case "required_parameter", "optional_parameter":
			// TypeScript parameter wrappers
			if id := p.ChildByFieldName("pattern"); id != nil && id.Kind() == "identifier" {
				if name := trimNodeText(id, src); name != "" {
					out = append(out, name)
				}
			}
		}
	}
	return out
}

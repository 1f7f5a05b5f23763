//go:build treesitter && cgo

package treesitter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

var pythonNestedKinds = map[string]struct{}{
	"function_definition": {},
	"class_definition":    {},
}

func extractPython(src []byte) ([]model.Element, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	lang := tree_sitter.NewLanguage(tree_sitter_python.Language())
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
		// decorators wrap the definition; the element is the definition
		if n.Kind() == "decorated_definition" {
			n = n.ChildByFieldName("definition")
			if n == nil {
				continue
			}
		}
		switch n.Kind() {
		case "function_definition":
			if el, ok := pythonFunction(n, src); ok {
				out = append(out, el)
			}
		case "class_definition":
			if el, ok := pythonClass(n, src); ok {
				out = append(out, el)
			}
		}
	}
	return out, nil
}

func pythonFunction(n *tree_sitter.Node, src []byte) (model.Element, bool) {
	name := trimNodeText(n.ChildByFieldName("name"), src)
	if name == "" {
		return model.Element{}, false
	}
	kind := model.KindFunction
	if hasAsyncKeyword(n) {
		kind = model.KindAsyncFunction
	}
	sl, el := nodeLines1Based(n)
	body := n.ChildByFieldName("body")
	return model.Element{
		Kind:       kind,
		Name:       name,
		Docstring:  pythonDocstring(body, src),
		Source:     n.Utf8Text(src),
		StartLine:  sl,
		EndLine:    el,
		Parameters: pythonParams(n.ChildByFieldName("parameters"), src),
		HasReturn:  hasValueReturn(body, pythonNestedKinds),
		Language:   "python",
	}, true
}

func pythonClass(n *tree_sitter.Node, src []byte) (model.Element, bool) {
	name := trimNodeText(n.ChildByFieldName("name"), src)
	if name == "" {
		return model.Element{}, false
	}
	sl, el := nodeLines1Based(n)
	return model.Element{
		Kind:      model.KindClass,
		Name:      name,
		Docstring: pythonDocstring(n.ChildByFieldName("body"), src),
		Source:    n.Utf8Text(src),
		StartLine: sl,
		EndLine:   el,
		Language:  "python",
	}, true
}

// pythonDocstring returns the text of a leading string expression in the
// body block, if any.
func pythonDocstring(body *tree_sitter.Node, src []byte) string {
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first == nil || first.Kind() != "expression_statement" {
		return ""
	}
	str := first.NamedChild(0)
	if str == nil || str.Kind() != "string" {
		return ""
	}
	content := firstDescendantKind(str, map[string]struct{}{"string_content": {}})
	return trimNodeText(content, src)
}

// pythonParams collects declared parameter names in order, skipping
// *args/**kwargs collection markers and bare separators.
func pythonParams(params *tree_sitter.Node, src []byte) []string {
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
		case "typed_parameter":
			if id := firstDescendantKind(p, map[string]struct{}{"identifier": {}}); id != nil {
				if name := trimNodeText(id, src); name != "" {
					out = append(out, name)
				}
			}
		case "default_parameter", "typed_default_parameter":
			if name := trimNodeText(p.ChildByFieldName("name"), src); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

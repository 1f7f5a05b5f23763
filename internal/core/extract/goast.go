package extract

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

// syntheticHeader lets bare snippets (a single function pasted without a
// package clause) parse as a file. Line numbers are shifted back so they
// stay relative to the snippet.
const syntheticHeader = "package p\n"

// GoSource extracts top-level function and type declarations from Go
// source. Parse failure degrades to a single File element carrying the
// parser's error message.
func GoSource(src string) []model.Element {
	els, err := parseGo(src, 0)
	if err != nil {
		if els2, err2 := parseGo(syntheticHeader+src, 1); err2 == nil {
			return ensureNonEmpty(els2, src, "go")
		}
		el := fileFallback(src, "go", "Error parsing Go source")
		el.ErrorMsg = err.Error()
		return []model.Element{el}
	}
	return ensureNonEmpty(els, src, "go")
}

func parseGo(input string, skipLines int) ([]model.Element, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "source.go", input, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	var out []model.Element
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			out = append(out, goFunc(fset, input, skipLines, d))
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					out = append(out, goType(fset, input, skipLines, d, ts))
				}
			}
		}
	}
	return out, nil
}

func goFunc(fset *token.FileSet, input string, skip int, d *ast.FuncDecl) model.Element {
	start := fset.Position(d.Pos())
	end := fset.Position(d.End())
	params := make([]string, 0)
	if d.Type.Params != nil {
		for _, field := range d.Type.Params.List {
			for _, name := range field.Names {
				params = append(params, name.Name)
			}
		}
	}
	return model.Element{
		Kind:       model.KindFunction,
		Name:       d.Name.Name,
		Docstring:  docText(d.Doc),
		Source:     input[start.Offset:end.Offset],
		StartLine:  start.Line - skip,
		EndLine:    end.Line - skip,
		Parameters: params,
		HasReturn:  hasValueReturn(d.Body),
		Language:   "go",
	}
}

func goType(fset *token.FileSet, input string, skip int, d *ast.GenDecl, ts *ast.TypeSpec) model.Element {
	doc := ts.Doc
	node := ast.Node(ts)
	// a single-spec declaration owns its keyword and doc comment;
	// grouped specs span only themselves
	if len(d.Specs) == 1 {
		node = d
		if doc == nil {
			doc = d.Doc
		}
	}
	start := fset.Position(node.Pos())
	end := fset.Position(node.End())
	return model.Element{
		Kind:      model.KindClass,
		Name:      ts.Name.Name,
		Docstring: docText(doc),
		Source:    input[start.Offset:end.Offset],
		StartLine: start.Line - skip,
		EndLine:   end.Line - skip,
		Language:  "go",
	}
}

func docText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	return strings.TrimSpace(cg.Text())
}

// hasValueReturn reports whether the body lexically contains a return
// with at least one result. Function literals are not descended into;
// their returns belong to a narrower scope than the declaration being
// recorded.
func hasValueReturn(body *ast.BlockStmt) bool {
	if body == nil {
		return false
	}
	found := false
	ast.Inspect(body, func(n ast.Node) bool {
		if found {
			return false
		}
		switch n := n.(type) {
		case *ast.FuncLit:
			return false
		case *ast.ReturnStmt:
			if len(n.Results) > 0 {
				found = true
			}
			return false
		}
		return true
	})
	return found
}

//go:build treesitter && cgo

package treesitter

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

func nodeLines1Based(n *tree_sitter.Node) (sl, el int) {
	if n == nil {
		return 0, 0
	}
	sp := n.StartPosition()
	ep := n.EndPosition()

	sl = int(sp.Row) + 1
	el = int(ep.Row) + 1

	if ep.Column == 0 && el > sl {
		el--
	}
	if el < sl {
		el = sl
	}
	return sl, el
}

func trimNodeText(n *tree_sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Utf8Text(src))
}

func firstDescendantKind(n *tree_sitter.Node, want map[string]struct{}) *tree_sitter.Node {
	if n == nil {
		return nil
	}
	for i := uint(0); i < n.NamedChildCount(); i++ {
		ch := n.NamedChild(i)
		if ch == nil {
			continue
		}
		if _, ok := want[ch.Kind()]; ok {
			return ch
		}
		if found := firstDescendantKind(ch, want); found != nil {
			return found
		}
	}
	return nil
}

// hasAsyncKeyword reports whether the declaration carries an "async"
// token before its keyword.
func hasAsyncKeyword(n *tree_sitter.Node) bool {
	if n == nil {
		return false
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		ch := n.Child(i)
		if ch == nil {
			continue
		}
		if ch.Kind() == "async" {
			return true
		}
		if ch.IsNamed() {
			break
		}
	}
	return false
}

// hasValueReturn scans a body for a return statement carrying a value,
// without descending into nested function or class definitions.
func hasValueReturn(body *tree_sitter.Node, nestedKinds map[string]struct{}) bool {
	if body == nil {
		return false
	}
	var walk func(n *tree_sitter.Node) bool
	walk = func(n *tree_sitter.Node) bool {
		for i := uint(0); i < n.NamedChildCount(); i++ {
			ch := n.NamedChild(i)
			if ch == nil {
				continue
			}
			k := ch.Kind()
			if _, nested := nestedKinds[k]; nested {
				continue
			}
			if k == "return_statement" && ch.NamedChildCount() > 0 {
				return true
			}
			if walk(ch) {
				return true
			}
		}
		return false
	}
	return walk(body)
}

package extract

import (
	"testing"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

func TestElementsDispatch(t *testing.T) {
	// go source takes the grammar path: the type declaration would be
	// labeled by keyword sniffing on the heuristic path, but here it is
	// a precise Class element
	els := Elements("package p\n\ntype T struct{}\n", model.CategoryCode, "go")
	if len(els) != 1 || els[0].Kind != model.KindClass || els[0].Name != "T" {
		t.Fatalf("go dispatch = %+v", els)
	}

	// non-native code rides the heuristic scanner in default builds
	els = Elements("def f():\n  pass", model.CategoryCode, "python")
	if len(els) != 1 || els[0].Name != "f" {
		t.Fatalf("python dispatch = %+v", els)
	}

	els = Elements(`{"a":1}`, model.CategoryData, "json")
	if len(els) != 1 || els[0].Kind != model.KindData {
		t.Fatalf("data dispatch = %+v", els)
	}

	els = Elements("# H\nx", model.CategoryDocument, "markdown")
	if len(els) != 1 || els[0].Kind != model.KindSection {
		t.Fatalf("document dispatch = %+v", els)
	}

	els = Elements("blob", model.CategoryUnknown, "bin")
	if len(els) != 1 || els[0].Kind != model.KindContent {
		t.Fatalf("unknown dispatch = %+v", els)
	}
}

func TestElementsNeverEmpty(t *testing.T) {
	inputs := []struct {
		src string
		cat model.Category
		sub string
	}{
		{"", model.CategoryCode, "go"},
		{"", model.CategoryCode, "rust"},
		{"", model.CategoryData, "json"},
		{"", model.CategoryDocument, "markdown"},
		{"", model.CategoryUnknown, "text"},
	}
	for _, in := range inputs {
		els := Elements(in.src, in.cat, in.sub)
		if len(els) == 0 {
			t.Fatalf("empty result for %s/%s", in.cat, in.sub)
		}
	}
}

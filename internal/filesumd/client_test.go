package filesumd

import (
	"testing"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

func TestClientRoundTrip(t *testing.T) {
	addr, cleanup := startTestServer(t)
	defer cleanup()

	c, err := Dial(addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if err := c.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	v, err := c.Version()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v == "" {
		t.Fatalf("expected non-empty version")
	}

	cls, err := c.Classify(ClassifyParams{Path: "foo.py"})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if cls.Category != model.CategoryCode || cls.SubType != "python" {
		t.Fatalf("classify foo.py: got=%s/%s", cls.Category, cls.SubType)
	}

	elems, err := c.Extract(ExtractParams{
		Path:   "calc.go",
		Source: "package calc\n\nfunc Add(a, b int) int { return a + b }\n",
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(elems) != 1 {
		t.Fatalf("expected 1 element, got=%d", len(elems))
	}
	if elems[0].Kind != model.KindFunction || elems[0].Name != "Add" {
		t.Fatalf("unexpected element: %+v", elems[0])
	}

	res, err := c.AnalyzeSource(AnalyzeSourceParams{
		Name:      "notes.md",
		Source:    "# Title\n\nBody text.\n",
		NoExplain: true,
	})
	if err != nil {
		t.Fatalf("analyze.source: %v", err)
	}
	if res.Category != model.CategoryDocument || res.SubType != "markdown" {
		t.Fatalf("analyze.source: got=%s/%s", res.Category, res.SubType)
	}
	if len(res.Elements) == 0 {
		t.Fatalf("expected elements")
	}
	if res.Analysis != "" {
		t.Fatalf("expected no analysis with no_explain, got=%q", res.Analysis)
	}
}

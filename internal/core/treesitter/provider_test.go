//go:build treesitter && cgo

package treesitter

import (
	"testing"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

func TestExtractPython(t *testing.T) {
	src := `def greet(name, greeting="hi"):
    """Say hello."""
    return greeting + " " + name

async def fetch(url):
    return url

class Greeter:
    """Greets people."""
    def greet(self):
        return "hi"
`
	els, err := Extract(src, "python")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(els) != 3 {
		t.Fatalf("got %d elements, want 3", len(els))
	}
	g := els[0]
	if g.Kind != model.KindFunction || g.Name != "greet" {
		t.Fatalf("first element = %s %q", g.Kind, g.Name)
	}
	if g.Docstring != "Say hello." {
		t.Fatalf("docstring = %q", g.Docstring)
	}
	if len(g.Parameters) != 2 || g.Parameters[0] != "name" || g.Parameters[1] != "greeting" {
		t.Fatalf("parameters = %v", g.Parameters)
	}
	if !g.HasReturn {
		t.Fatal("greet should have a value return")
	}
	if els[1].Kind != model.KindAsyncFunction || els[1].Name != "fetch" {
		t.Fatalf("second element = %s %q", els[1].Kind, els[1].Name)
	}
	cl := els[2]
	if cl.Kind != model.KindClass || cl.Name != "Greeter" {
		t.Fatalf("third element = %s %q", cl.Kind, cl.Name)
	}
	if cl.Docstring != "Greets people." {
		t.Fatalf("class docstring = %q", cl.Docstring)
	}
	if cl.HasReturn {
		t.Fatal("nested method return must not leak onto the class")
	}
}

func TestExtractJavaScript(t *testing.T) {
	src := `function add(a, b) {
  return a + b;
}

async function load(url) {
  return fetch(url);
}

class Point {
  constructor(x, y) { this.x = x; this.y = y; }
}
`
	els, err := Extract(src, "javascript")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(els) != 3 {
		t.Fatalf("got %d elements, want 3", len(els))
	}
	if els[0].Kind != model.KindFunction || els[0].Name != "add" || !els[0].HasReturn {
		t.Fatalf("first element = %+v", els[0])
	}
	if els[0].StartLine != 1 || els[0].EndLine != 3 {
		t.Fatalf("add spans %d-%d", els[0].StartLine, els[0].EndLine)
	}
	if els[1].Kind != model.KindAsyncFunction {
		t.Fatalf("load kind = %s", els[1].Kind)
	}
	if els[2].Kind != model.KindClass || els[2].Name != "Point" {
		t.Fatalf("third element = %+v", els[2])
	}
}

func TestExtractTypeScript(t *testing.T) {
	src := `export interface Shape { area(): number }

export function describe(s: Shape): string {
  return "shape";
}
`
	els, err := Extract(src, "typescript")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	if els[0].Kind != model.KindClass || els[0].Name != "Shape" {
		t.Fatalf("interface element = %+v", els[0])
	}
	if els[1].Kind != model.KindFunction || els[1].Name != "describe" {
		t.Fatalf("function element = %+v", els[1])
	}
	if len(els[1].Parameters) != 1 || els[1].Parameters[0] != "s" {
		t.Fatalf("parameters = %v", els[1].Parameters)
	}
}

func TestExtractUnsupported(t *testing.T) {
	if _, err := Extract("x", "cobol"); err != ErrUnsupported {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}

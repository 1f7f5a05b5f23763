package prompt

import (
	"strings"
	"testing"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

func sampleInput() Input {
	return Input{
		Path:     "calc.go",
		Category: model.CategoryCode,
		SubType:  "go",
		Elements: []model.Element{
			{
				Kind:       model.KindFunction,
				Name:       "Add",
				Docstring:  "Add returns the sum.",
				Source:     "func Add(a, b int) int {\n\treturn a + b\n}",
				StartLine:  4,
				EndLine:    6,
				Parameters: []string{"a", "b"},
				HasReturn:  true,
				Language:   "go",
			},
			{
				Kind:      model.KindClass,
				Name:      "Calculator",
				Source:    "type Calculator struct{}",
				StartLine: 8,
				EndLine:   8,
				HasReturn: true, // meaningless for classes; must not render
				Language:  "go",
			},
		},
	}
}

func TestBuild(t *testing.T) {
	out := Build(sampleInput(), StyleExplain)
	for _, want := range []string{
		"Analyze the following go code from calc.go.",
		"Function 'Add':",
		"Location: Lines 4-6",
		"Documentation: Add returns the sum.",
		"Arguments: a, b",
		"Returns: Yes",
		"```go\nfunc Add",
		"Class 'Calculator':",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("prompt missing %q:\n%s", want, out)
		}
	}
	// has_return_value is ignored for non-callable kinds
	if strings.Count(out, "Returns: Yes") != 1 {
		t.Fatalf("Returns rendered for a class:\n%s", out)
	}
}

func TestBuildPlainStyle(t *testing.T) {
	out := Build(sampleInput(), StylePlain)
	if !strings.Contains(out, "plain English") {
		t.Fatalf("plain style intro missing:\n%s", out)
	}
}

func TestBuildDataIntro(t *testing.T) {
	in := Input{
		Path:     "conf.yaml",
		Category: model.CategoryData,
		SubType:  "yaml",
		Elements: []model.Element{{Kind: model.KindData, Name: "root", Language: "yaml"}},
	}
	out := Build(in, StyleExplain)
	if !strings.Contains(out, "Analyze the following YAML data from conf.yaml.") {
		t.Fatalf("data intro missing:\n%s", out)
	}
	if !strings.Contains(out, "summary of the data structure") {
		t.Fatalf("data instruction missing:\n%s", out)
	}
}

func TestBuildBatchGroupsByFile(t *testing.T) {
	a := sampleInput()
	b := Input{
		Path:     "README.md",
		Category: model.CategoryDocument,
		SubType:  "markdown",
		Elements: []model.Element{{Kind: model.KindSection, Name: "Intro", Language: "markdown"}},
	}
	out := BuildBatch([]Input{a, b}, StyleExplain)
	ia := strings.Index(out, "# File: calc.go")
	ib := strings.Index(out, "# File: README.md")
	if ia < 0 || ib < 0 || ib < ia {
		t.Fatalf("file headers missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, "## Function 'Add':") {
		t.Fatalf("batch element header missing:\n%s", out)
	}
}

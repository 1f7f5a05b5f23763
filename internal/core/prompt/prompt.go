// Package prompt builds explanation prompts from extracted elements.
package prompt

import (
	"fmt"
	"strings"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

// Style selects the explanation register.
type Style string

const (
	// StyleExplain asks for a developer-oriented explanation.
	StyleExplain Style = "explain"
	// StylePlain asks for non-technical English with simple analogies.
	StylePlain Style = "plain"
)

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	return s == StyleExplain || s == StylePlain
}

// Input is one file's extraction result.
type Input struct {
	Path     string
	Category model.Category
	SubType  string
	Elements []model.Element
}

// Build renders the prompt for a single file.
func Build(in Input, style Style) string {
	var b strings.Builder
	b.WriteString(intro(in, style))
	for _, el := range in.Elements {
		writeElement(&b, el, "")
	}
	return b.String()
}

// BuildBatch renders one prompt covering several files, grouped under
// per-file headers.
func BuildBatch(files []Input, style Style) string {
	var b strings.Builder
	if style == StylePlain {
		b.WriteString("Explain the following source files in plain English for a reader with no programming background, using simple analogies.\n\n")
	} else {
		b.WriteString("Analyze the following source files. For each element, provide a brief explanation of its purpose and functionality.\n\n")
	}
	for _, f := range files {
		fmt.Fprintf(&b, "# File: %s\n\n", f.Path)
		for _, el := range f.Elements {
			writeElement(&b, el, "## ")
		}
	}
	return b.String()
}

func intro(in Input, style Style) string {
	switch in.Category {
	case model.CategoryData:
		return fmt.Sprintf("Analyze the following %s data from %s. Provide a summary of the data structure and its contents.\n\n",
			strings.ToUpper(in.SubType), in.Path)
	case model.CategoryDocument, model.CategoryUnknown:
		return fmt.Sprintf("Analyze the following %s content from %s. Provide a summary of the content.\n\n",
			in.SubType, in.Path)
	}
	if style == StylePlain {
		return fmt.Sprintf("Explain the following %s code from %s in plain English for a reader with no programming background, using simple analogies.\n\n",
			in.SubType, in.Path)
	}
	return fmt.Sprintf("Analyze the following %s code from %s. For each element, provide a brief explanation of its purpose and functionality.\n\n",
		in.SubType, in.Path)
}

func writeElement(b *strings.Builder, el model.Element, headerPrefix string) {
	fmt.Fprintf(b, "%s%s '%s':\n", headerPrefix, el.Kind.Title(), el.Name)
	fmt.Fprintf(b, "Location: Lines %d-%d\n", el.StartLine, el.EndLine)
	if el.Docstring != "" {
		fmt.Fprintf(b, "Documentation: %s\n", el.Docstring)
	}
	if el.Kind.Callable() && len(el.Parameters) > 0 {
		fmt.Fprintf(b, "Arguments: %s\n", strings.Join(el.Parameters, ", "))
	}
	if el.Kind.Callable() && el.HasReturn {
		b.WriteString("Returns: Yes\n")
	}
	fmt.Fprintf(b, "Code:\n```%s\n%s\n```\n\n", el.Language, el.Source)
}

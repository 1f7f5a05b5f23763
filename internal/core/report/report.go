// Package report formats pipeline results as plain text, JSON, and
// markdown documents.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ronelsolomon/filesummarize/internal/analyze"
	"github.com/ronelsolomon/filesummarize/internal/model"
)

const barWidth = 100

// WriteText prints a human-readable console report, one banner block
// per file. Elements are listed only when there is more than one, a
// single whole-file element adds nothing over the header line.
func WriteText(w io.Writer, results []analyze.Result) {
	bar := strings.Repeat("=", barWidth)
	for _, res := range results {
		fmt.Fprintln(w, bar)
		fmt.Fprintf(w, "File: %s (%s/%s)\n", res.Path, res.Category, res.SubType)
		fmt.Fprintln(w, bar)
		switch {
		case res.Analysis != "":
			fmt.Fprintln(w, res.Analysis)
		case res.Err != "":
			fmt.Fprintf(w, "Analysis failed: %s\n", res.Err)
		}
		if len(res.Elements) > 1 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Elements found:")
			for _, el := range res.Elements {
				fmt.Fprintf(w, "  - %s '%s' (lines %d-%d)\n", el.Kind, el.Name, el.StartLine, el.EndLine)
			}
		}
		fmt.Fprintln(w)
	}
}

// WriteJSON emits the results as an indented JSON array.
func WriteJSON(w io.Writer, results []analyze.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// Document assembles a markdown report: a summary, the extracted
// structure per file, and any model explanations.
func Document(title string, results []analyze.Result) *bytes.Buffer {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "# %s\n\n", title)

	buf.WriteString("## Summary\n\n")
	total := 0
	for _, res := range results {
		total += len(res.Elements)
		fmt.Fprintf(buf, "- `%s` (%s/%s): %d elements\n", res.Path, res.Category, res.SubType, len(res.Elements))
	}
	fmt.Fprintf(buf, "\n**Total:** %d elements in %d files%s\n\n", total, len(results), kindBreakdown(results))

	buf.WriteString("## Code Structure\n\n")
	for _, res := range results {
		fmt.Fprintf(buf, "### File: %s\n\n", res.Path)
		for _, el := range res.Elements {
			writeElement(buf, el)
		}
	}

	if hasExplanations(results) {
		buf.WriteString("## AI Explanation\n\n")
		for _, res := range results {
			if res.Analysis == "" && res.Err == "" {
				continue
			}
			fmt.Fprintf(buf, "### %s\n\n", res.Path)
			if res.Analysis != "" {
				fmt.Fprintf(buf, "%s\n\n", res.Analysis)
			} else {
				fmt.Fprintf(buf, "_Analysis failed: %s_\n\n", res.Err)
			}
		}
	}
	return buf
}

func writeElement(buf *bytes.Buffer, el model.Element) {
	fmt.Fprintf(buf, "#### %s: %s (Lines %d-%d)\n\n", el.Kind.Title(), el.Name, el.StartLine, el.EndLine)
	if el.Kind.Callable() {
		if el.Parameters != nil {
			args := "none"
			if len(el.Parameters) > 0 {
				args = strings.Join(el.Parameters, ", ")
			}
			fmt.Fprintf(buf, "- Arguments: %s\n", args)
		}
		returns := "no"
		if el.HasReturn {
			returns = "yes"
		}
		fmt.Fprintf(buf, "- Returns a value: %s\n\n", returns)
	}
	if el.Docstring != "" {
		fmt.Fprintf(buf, "%s\n\n", el.Docstring)
	}
	fmt.Fprintf(buf, "```%s\n%s\n```\n\n", el.Language, el.Source)
}

// kindBreakdown renders " (function 3, class 1)" in order of first
// appearance, or "" when there are no elements.
func kindBreakdown(results []analyze.Result) string {
	counts := map[model.Kind]int{}
	var order []model.Kind
	for _, res := range results {
		for _, el := range res.Elements {
			if counts[el.Kind] == 0 {
				order = append(order, el.Kind)
			}
			counts[el.Kind]++
		}
	}
	if len(order) == 0 {
		return ""
	}
	parts := make([]string, 0, len(order))
	for _, k := range order {
		parts = append(parts, fmt.Sprintf("%s %d", k, counts[k]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func hasExplanations(results []analyze.Result) bool {
	for _, res := range results {
		if res.Analysis != "" || res.Err != "" {
			return true
		}
	}
	return false
}

package extract

import (
	"strings"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

// TextElements extracts document-category content. Markdown splits into
// one Section per ATX heading; anything else becomes a single Content
// element labeled by category.
func TextElements(src string, category model.Category, subType string) []model.Element {
	if strings.EqualFold(strings.TrimSpace(subType), "markdown") {
		if els := markdownSections(src); len(els) > 0 {
			return els
		}
		return []model.Element{contentElement(src, subType, "Markdown content")}
	}
	return []model.Element{contentElement(src, subType, categoryDoc(category))}
}

func categoryDoc(category model.Category) string {
	c := string(category)
	if c == "" {
		c = string(model.CategoryUnknown)
	}
	return strings.ToUpper(c[:1]) + c[1:] + " content"
}

func contentElement(src, lang, doc string) model.Element {
	return model.Element{
		Kind:      model.KindContent,
		Name:      "content",
		Docstring: doc,
		Source:    truncate(src),
		StartLine: 1,
		EndLine:   lineCount(src),
		Language:  lang,
	}
}

// markdownSections splits src on ATX heading lines, one Section per
// heading with the body up to the next heading. Returns nil when no
// heading is present.
func markdownSections(src string) []model.Element {
	var out []model.Element
	var cur *model.Element
	var body []string

	flush := func(endLine int) {
		if cur == nil {
			return
		}
		cur.Source = strings.Join(body, "\n")
		if endLine > cur.StartLine {
			cur.EndLine = endLine
		}
		out = append(out, *cur)
		cur = nil
		body = nil
	}

	lines := strings.Split(src, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, raw := range lines {
		if name, ok := headingText(raw); ok {
			flush(i)
			cur = &model.Element{
				Kind:      model.KindSection,
				Name:      name,
				StartLine: i + 1,
				EndLine:   i + 1,
				Language:  "markdown",
			}
			continue
		}
		if cur != nil {
			body = append(body, raw)
		}
	}
	flush(len(lines))
	return out
}

func headingText(line string) (string, bool) {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "#") {
		return "", false
	}
	level := 0
	for level < len(t) && t[level] == '#' {
		level++
	}
	if level >= len(t) || (t[level] != ' ' && t[level] != '\t') {
		return "", false
	}
	name := strings.TrimSpace(t[level:])
	if name == "" {
		return "", false
	}
	return name, true
}

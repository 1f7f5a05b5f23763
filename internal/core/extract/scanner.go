package extract

import (
	"regexp"
	"strings"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

// declPattern anchors one language's declaration lines. nameGroup is the
// capture group holding the declared name; the go and generic patterns
// reserve group 1 for an optional receiver or keyword.
type declPattern struct {
	re        *regexp.Regexp
	nameGroup int
}

var declPatterns = map[string]declPattern{
	"javascript": {regexp.MustCompile(`(?:function|class|const|let|var)\s+([a-zA-Z0-9_$]+)`), 1},
	"typescript": {regexp.MustCompile(`(?:function|class|interface|type|enum|const|let|var)\s+([a-zA-Z0-9_$]+)`), 1},
	"java":       {regexp.MustCompile(`(?:public|private|protected|static|final|native|synchronized|abstract|transient|class|interface|enum)\s+([a-zA-Z0-9_$<>, ]+?)[\s<{]`), 1},
	"c":          {regexp.MustCompile(`(?:#define|typedef|struct|union|enum|void|int|char|float|double)\s+([a-zA-Z0-9_]+)`), 1},
	"cpp":        {regexp.MustCompile(`(?:class|struct|union|enum|namespace|template|using)\s+([a-zA-Z0-9_:]+)`), 1},
	"csharp":     {regexp.MustCompile(`(?:class|interface|struct|enum|delegate|namespace|using)\s+([a-zA-Z0-9_.]+)`), 1},
	"go":         {regexp.MustCompile(`func\s+(\([^)]+\)\s+)?([a-zA-Z0-9_]+)`), 2},
	"rust":       {regexp.MustCompile(`(?:fn|struct|enum|trait|impl|mod)\s+([a-zA-Z0-9_]+)`), 1},
	"ruby":       {regexp.MustCompile(`(?:def|class|module)\s+([a-zA-Z0-9_]+[?!]?)`), 1},
	"php":        {regexp.MustCompile(`(?:function|class|interface|trait|namespace)\s+([a-zA-Z0-9_]+)`), 1},
	"swift":      {regexp.MustCompile(`(?:func|class|struct|enum|protocol|extension|typealias)\s+([a-zA-Z0-9_]+)`), 1},
	"kotlin":     {regexp.MustCompile(`(?:fun|class|interface|object|typealias|val|var)\s+([a-zA-Z0-9_]+)`), 1},
	"scala":      {regexp.MustCompile(`(?:def|class|trait|object|type|val|var)\s+([a-zA-Z0-9_]+)`), 1},
	"shell":      {regexp.MustCompile(`(?:function\s+)?([a-zA-Z0-9_]+)\s*\(\s*\)`), 1},
	"perl":       {regexp.MustCompile(`sub\s+([a-zA-Z0-9_]+)`), 1},
	"r":          {regexp.MustCompile(`([a-zA-Z0-9_.]+)\s*<-\s*function`), 1},
	"matlab":     {regexp.MustCompile(`function\s+(?:\[.*\]\s*=\s*)?([a-zA-Z0-9_]+)`), 1},
	"julia":      {regexp.MustCompile(`(?:function|struct|mutable\s+struct|abstract\s+type|primitive\s+type)\s+([a-zA-Z0-9_!]+)`), 1},
}

// genericDecl backs any language without a dedicated pattern.
var genericDecl = declPattern{regexp.MustCompile(`\b(function|class|def|fn|fun|sub|proc)\s+([a-zA-Z0-9_]+)`), 2}

// commentPrefixes are single-line comment markers across all supported
// languages. A line starting with any of them is skipped regardless of
// the declared language; a language whose declarations can begin with
// one of these markers loses those lines.
var commentPrefixes = []string{"//", "/*", "*", "--", "#"}

// Scan approximates declaration boundaries with a single pass over the
// lines of src. Each line matching the language's declaration pattern
// opens a new element; following unmatched lines accumulate into it.
// Blank and comment lines never extend an element, and lines before the
// first match are dropped. The result is best-effort structure, not a
// parse.
func Scan(src, language string) []model.Element {
	pat, ok := declPatterns[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		pat = genericDecl
	}

	var out []model.Element
	var cur *model.Element
	for i, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isCommentLine(line) {
			continue
		}
		if m := pat.re.FindStringSubmatch(line); m != nil {
			if cur != nil {
				out = append(out, *cur)
			}
			cur = &model.Element{
				Kind:      sniffKind(line),
				Name:      strings.TrimSpace(m[pat.nameGroup]),
				Source:    line,
				StartLine: i + 1,
				EndLine:   i + 1,
				Language:  language,
			}
			continue
		}
		if cur != nil {
			cur.Source += "\n" + line
			cur.EndLine = i + 1
		}
	}
	if cur != nil {
		out = append(out, *cur)
	}
	return ensureNonEmpty(out, src, language)
}

func isCommentLine(line string) bool {
	for _, p := range commentPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// sniffKind guesses function-vs-class from declaration keywords. It is a
// heuristic: a struct or interface declaration is labeled Class on the
// same evidence.
func sniffKind(line string) model.Kind {
	l := strings.ToLower(line)
	for _, kw := range []string{"function", "def ", "fn ", "func "} {
		if strings.Contains(l, kw) {
			return model.KindFunction
		}
	}
	return model.KindClass
}

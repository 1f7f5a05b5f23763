package model

// Kind labels one extracted structural unit.
type Kind string

const (
	KindFunction      Kind = "function"
	KindAsyncFunction Kind = "async_function"
	KindClass         Kind = "class"
	KindSection       Kind = "section"
	KindData          Kind = "data"
	KindContent       Kind = "content"
	KindFile          Kind = "file"
)

// Callable reports whether the kind is function-like, i.e. whether
// Parameters and HasReturn carry meaning.
func (k Kind) Callable() bool {
	return k == KindFunction || k == KindAsyncFunction
}

// Title returns the kind as a display label ("Function", "Async Function").
func (k Kind) Title() string {
	switch k {
	case KindFunction:
		return "Function"
	case KindAsyncFunction:
		return "Async Function"
	case KindClass:
		return "Class"
	case KindSection:
		return "Section"
	case KindData:
		return "Data"
	case KindContent:
		return "Content"
	case KindFile:
		return "File"
	}
	return string(k)
}

// Category is the coarse file classification.
type Category string

const (
	CategoryCode     Category = "code"
	CategoryData     Category = "data"
	CategoryDocument Category = "document"
	CategoryUnknown  Category = "unknown"
)

// Element is one extracted structural unit of a source file. Line
// numbers are 1-based and inclusive. Parameters is nil when the notion
// does not apply (non-function kinds, heuristic matches); an empty
// slice means a function declared with no parameters.
type Element struct {
	Kind       Kind     `json:"kind"`
	Name       string   `json:"name"`
	Docstring  string   `json:"docstring"`
	Source     string   `json:"source_text"`
	StartLine  int      `json:"start_line"`
	EndLine    int      `json:"end_line"`
	Parameters []string `json:"parameters"`
	HasReturn  bool     `json:"has_return_value"`
	Language   string   `json:"language"`
	SourceFile string   `json:"source_file,omitempty"`
	ErrorMsg   string   `json:"error_message,omitempty"`
}

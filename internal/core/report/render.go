package report

import "github.com/charmbracelet/glamour"

// Renderer turns markdown into terminal output. Whether it styles or
// passes text through is decided once at construction, callers never
// re-check terminal state per render.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer builds a styled renderer when pretty is set and a
// passthrough one otherwise.
func NewRenderer(pretty bool) (*Renderer, error) {
	if !pretty {
		return &Renderer{}, nil
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(barWidth),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{term: term}, nil
}

func (r *Renderer) Render(markdown string) (string, error) {
	if r.term == nil {
		return markdown, nil
	}
	return r.term.Render(markdown)
}

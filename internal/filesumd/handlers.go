package filesumd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ronelsolomon/filesummarize/internal/analyze"
	"github.com/ronelsolomon/filesummarize/internal/core/classify"
	"github.com/ronelsolomon/filesummarize/internal/core/extract"
	"github.com/ronelsolomon/filesummarize/internal/core/prompt"
	"github.com/ronelsolomon/filesummarize/internal/llm/ollama"
	"github.com/ronelsolomon/filesummarize/internal/model"
)

// Handlers run the daemon methods over the analysis pipeline. Per-call
// params may override the configured model and style.
type Handlers struct {
	host        string
	model       string
	maxFileSize int64
}

type HandlerOptions struct {
	Host        string
	Model       string
	MaxFileSize int64
}

func NewHandlers(opts HandlerOptions) *Handlers {
	return &Handlers{
		host:        opts.Host,
		model:       opts.Model,
		maxFileSize: opts.MaxFileSize,
	}
}

func (h *Handlers) Classify(p ClassifyParams) (ClassifyResult, error) {
	if h == nil {
		return ClassifyResult{}, fmt.Errorf("handlers is nil")
	}
	category, subType := classify.Path(p.Path)
	return ClassifyResult{Category: category, SubType: subType}, nil
}

func (h *Handlers) Extract(p ExtractParams) ([]model.Element, error) {
	if h == nil {
		return nil, fmt.Errorf("handlers is nil")
	}
	if lang := strings.TrimSpace(p.Language); lang != "" {
		return extract.Elements(p.Source, classify.Lookup(lang), strings.ToLower(lang)), nil
	}
	category, subType := classify.Path(p.Path)
	return extract.Elements(p.Source, category, subType), nil
}

func (h *Handlers) AnalyzeFile(p AnalyzeFileParams) (analyze.Result, error) {
	if h == nil {
		return analyze.Result{}, fmt.Errorf("handlers is nil")
	}
	return analyze.File(context.Background(), p.Path, h.analyzeOptions(p.Model, p.Style, p.NoExplain))
}

func (h *Handlers) AnalyzeSource(p AnalyzeSourceParams) (analyze.Result, error) {
	if h == nil {
		return analyze.Result{}, fmt.Errorf("handlers is nil")
	}
	return analyze.Source(context.Background(), p.Name, p.Source, h.analyzeOptions(p.Model, p.Style, p.NoExplain)), nil
}

func (h *Handlers) Models() ([]ollama.ModelInfo, error) {
	if h == nil {
		return nil, fmt.Errorf("handlers is nil")
	}
	return ollama.New(h.host).ListModels(context.Background())
}

func (h *Handlers) analyzeOptions(modelName, style string, noExplain bool) analyze.Options {
	if strings.TrimSpace(modelName) == "" {
		modelName = h.model
	}
	opts := analyze.Options{
		Model:       modelName,
		Style:       prompt.Style(style),
		MaxFileSize: h.maxFileSize,
	}
	if !noExplain {
		opts.Generator = ollama.New(h.host)
	}
	return opts
}

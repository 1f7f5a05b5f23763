// Package analyze runs the extract→prompt→generate pipeline over raw
// source, single files, and directory trees.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ronelsolomon/filesummarize/internal/core/classify"
	"github.com/ronelsolomon/filesummarize/internal/core/extract"
	"github.com/ronelsolomon/filesummarize/internal/core/prompt"
	"github.com/ronelsolomon/filesummarize/internal/core/walk"
	"github.com/ronelsolomon/filesummarize/internal/model"
)

// DefaultMaxFileSize bounds how much of a file the pipeline will read.
const DefaultMaxFileSize = 16 << 20

// Generator produces an explanation for a prompt. *ollama.Client
// satisfies it; tests substitute fakes.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Options configure the pipeline. A nil Generator skips explanation and
// leaves Result.Analysis empty.
type Options struct {
	Model       string
	Generator   Generator
	Style       prompt.Style
	MaxFileSize int64
	ExcludeDirs []string
	Extensions  []string
	ScanAll     bool
	Logger      *slog.Logger
}

func (o Options) maxFileSize() int64 {
	if o.MaxFileSize <= 0 {
		return DefaultMaxFileSize
	}
	return o.MaxFileSize
}

func (o Options) style() prompt.Style {
	if !o.Style.Valid() {
		return prompt.StyleExplain
	}
	return o.Style
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Result is one file's trip through the pipeline. Err records a
// contained generation failure; extraction itself never fails.
type Result struct {
	Path     string          `json:"path"`
	Category model.Category  `json:"category"`
	SubType  string          `json:"sub_type"`
	Elements []model.Element `json:"elements"`
	Analysis string          `json:"analysis,omitempty"`
	Err      string          `json:"error,omitempty"`
}

// Source runs the pipeline over raw text. name selects the extraction
// strategy by extension and labels the result; no file I/O happens.
func Source(ctx context.Context, name, src string, opts Options) Result {
	category, subType := classify.Path(name)
	res := Result{
		Path:     name,
		Category: category,
		SubType:  subType,
		Elements: extract.Elements(src, category, subType),
	}

	if opts.Generator == nil {
		return res
	}
	in := prompt.Input{Path: name, Category: category, SubType: subType, Elements: res.Elements}
	text, err := opts.Generator.Generate(ctx, opts.Model, prompt.Build(in, opts.style()))
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Analysis = text
	return res
}

// File reads and analyzes one file. The returned error covers read and
// size failures only; generation failures are contained in Result.Err.
func File(ctx context.Context, path string, opts Options) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, err
	}
	if info.Size() > opts.maxFileSize() {
		return Result{}, fmt.Errorf("%s: file size %d exceeds limit %d", path, info.Size(), opts.maxFileSize())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return Source(ctx, path, string(data), opts), nil
}

// Directory analyzes every matching file under root, strictly one at a
// time in walk order. A file that fails to read is logged and skipped;
// it never aborts the batch. Elements are annotated with their relative
// source path.
func Directory(ctx context.Context, root string, opts Options) ([]Result, error) {
	files, err := walk.ListFiles(root, walk.Options{
		ExcludeDirs: opts.ExcludeDirs,
		Extensions:  opts.Extensions,
		ScanAll:     opts.ScanAll,
	})
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	results := make([]Result, 0, len(files))
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := File(ctx, filepath.Join(root, filepath.FromSlash(rel)), opts)
		if err != nil {
			log.Warn("skipping file", "path", rel, "error", err)
			continue
		}
		res.Path = rel
		for i := range res.Elements {
			res.Elements[i].SourceFile = rel
		}
		results = append(results, res)
	}
	return results, nil
}

package analyze

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeGenerator struct {
	out        string
	err        error
	lastModel  string
	lastPrompt string
}

func (f *fakeGenerator) Generate(_ context.Context, model, prompt string) (string, error) {
	f.lastModel = model
	f.lastPrompt = prompt
	return f.out, f.err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileExtractsWithoutGenerator(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "calc.go", "package calc\n\n// Add sums two ints.\nfunc Add(a, b int) int {\n\treturn a + b\n}\n")

	res, err := File(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if res.Category != "code" || res.SubType != "go" {
		t.Fatalf("classified as %s/%s, want code/go", res.Category, res.SubType)
	}
	if len(res.Elements) != 1 || res.Elements[0].Name != "Add" {
		t.Fatalf("elements = %+v", res.Elements)
	}
	if res.Analysis != "" || res.Err != "" {
		t.Fatalf("expected no generation, got analysis=%q err=%q", res.Analysis, res.Err)
	}
}

func TestFileSizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.py", strings.Repeat("x = 1\n", 50))

	_, err := File(context.Background(), path, Options{MaxFileSize: 16})
	if err == nil {
		t.Fatal("expected size limit error")
	}
	if !strings.Contains(err.Error(), "exceeds limit") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSourceGenerates(t *testing.T) {
	gen := &fakeGenerator{out: "Add sums two integers."}
	res := Source(context.Background(), "calc.go", "package calc\n\nfunc Add(a, b int) int {\n\treturn a + b\n}\n", Options{
		Model:     "llama3",
		Generator: gen,
	})

	if res.Analysis != "Add sums two integers." {
		t.Fatalf("analysis = %q", res.Analysis)
	}
	if res.Err != "" {
		t.Fatalf("unexpected contained error: %q", res.Err)
	}
	if gen.lastModel != "llama3" {
		t.Fatalf("model = %q", gen.lastModel)
	}
	if !strings.Contains(gen.lastPrompt, "Function 'Add'") {
		t.Fatalf("prompt missing element block:\n%s", gen.lastPrompt)
	}
}

func TestSourceContainsGenerationError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model not found")}
	res := Source(context.Background(), "calc.go", "package calc\n\nfunc Add(a, b int) int { return a + b }\n", Options{Generator: gen})

	if res.Err != "model not found" {
		t.Fatalf("contained error = %q", res.Err)
	}
	if res.Analysis != "" {
		t.Fatalf("analysis should be empty, got %q", res.Analysis)
	}
	if len(res.Elements) == 0 {
		t.Fatal("extraction output must survive a generation failure")
	}
}

func TestDirectorySkipsFailedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "small.go", "package p\n")
	writeFile(t, dir, "big.py", strings.Repeat("x = 1\n", 50))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	results, err := Directory(context.Background(), dir, Options{MaxFileSize: 64, Logger: logger})
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (oversized file skipped)", len(results))
	}
	if results[0].Path != "small.go" {
		t.Fatalf("path = %q, want relative small.go", results[0].Path)
	}
	for _, el := range results[0].Elements {
		if el.SourceFile != "small.go" {
			t.Fatalf("source_file = %q", el.SourceFile)
		}
	}
}

func TestDirectoryHonorsContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package p\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Directory(ctx, dir, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results after cancellation", len(results))
	}
}

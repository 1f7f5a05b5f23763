package filesumcli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ronelsolomon/filesummarize/internal/analyze"
	"github.com/ronelsolomon/filesummarize/internal/core/report"
)

const documentTitle = "Code Analysis Report"

func renderResults(cmd *cobra.Command, results []analyze.Result, opts *Options) error {
	switch opts.Format {
	case "json":
		return report.WriteJSON(cmd.OutOrStdout(), results)
	case "markdown":
		return renderMarkdown(cmd, results, opts)
	default:
		report.WriteText(cmd.OutOrStdout(), results)
		return nil
	}
}

func renderMarkdown(cmd *cobra.Command, results []analyze.Result, opts *Options) error {
	doc := report.Document(documentTitle, results)

	if strings.TrimSpace(opts.Output) != "" {
		path := opts.Output
		if !filepath.IsAbs(path) {
			path = filepath.Join(opts.OutputDir, path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, doc.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
		return nil
	}

	renderer, err := report.NewRenderer(prettyOutput(cmd, opts))
	if err != nil {
		return err
	}
	text, err := renderer.Render(doc.String())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// prettyOutput styles when asked to, or when writing markdown straight
// to a terminal.
func prettyOutput(cmd *cobra.Command, opts *Options) bool {
	if opts.Pretty {
		return true
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

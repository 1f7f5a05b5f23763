package filesumcli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ronelsolomon/filesummarize/internal/analyze"
	"github.com/ronelsolomon/filesummarize/internal/store"
)

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <path>",
		Short: "Analyze a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(cmd)
			if opts == nil {
				return fmt.Errorf("options missing")
			}
			return runAnalyze(cmd, args[0], opts)
		},
	}
}

func runAnalyze(cmd *cobra.Command, path string, opts *Options) error {
	ctx := cmd.Context()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	aopts := opts.analyzeOptions(logger)
	var results []analyze.Result
	if info.IsDir() {
		results, err = analyze.Directory(ctx, path, aopts)
	} else {
		var res analyze.Result
		res, err = analyze.File(ctx, path, aopts)
		results = []analyze.Result{res}
	}
	if err != nil {
		return err
	}

	if err := renderResults(cmd, results, opts); err != nil {
		return err
	}

	if opts.Save {
		return saveRun(cmd, path, results, opts)
	}
	return nil
}

func saveRun(cmd *cobra.Command, root string, results []analyze.Result, opts *Options) error {
	st, err := store.Open(opts.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	rr := make([]store.RunResult, 0, len(results))
	for _, r := range results {
		rr = append(rr, store.RunResult{
			Path:     r.Path,
			Category: r.Category,
			SubType:  r.SubType,
			Analysis: r.Analysis,
			Err:      r.Err,
			Elements: r.Elements,
		})
	}

	id, err := st.SaveRun(root, opts.Model, rr)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "saved run %s\n", id)
	return nil
}

package filesumcli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ronelsolomon/filesummarize/internal/analyze"
	"github.com/ronelsolomon/filesummarize/internal/core/walk"
	"github.com/ronelsolomon/filesummarize/internal/core/watch"
)

func newWatchCommand() *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Watch a directory and re-analyze files as they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(cmd)
			if opts == nil {
				return fmt.Errorf("options missing")
			}

			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			aopts := opts.analyzeOptions(logger)

			w, err := watch.NewWatcher(root, watch.Options{
				Walk: walk.Options{
					ExcludeDirs: opts.ExcludeDirs,
					Extensions:  opts.Extensions,
					ScanAll:     opts.ScanAll,
				},
				Debounce: debounce,
				OnChange: func(paths []string) {
					for _, rel := range paths {
						res, err := analyze.File(ctx, filepath.Join(root, filepath.FromSlash(rel)), aopts)
						if err != nil {
							logger.Warn("analysis failed", "path", rel, "error", err)
							continue
						}
						res.Path = rel
						if err := renderResults(cmd, []analyze.Result{res}, opts); err != nil {
							logger.Warn("render failed", "path", rel, "error", err)
						}
					}
				},
			})
			if err != nil {
				return err
			}
			defer w.Close()

			logger.Info("watching", "root", root, "debounce", w.Debounce())
			return w.Run(ctx)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "coalesce window for change events (default 500ms)")
	return cmd
}

package filesumcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ronelsolomon/filesummarize/internal/store"
)

func newHistoryCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show saved analysis runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(cmd)
			if opts == nil {
				return fmt.Errorf("options missing")
			}

			st, err := store.Open(opts.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if len(args) == 1 {
				return showRun(cmd, st, args[0])
			}
			return listRuns(cmd, st, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of runs to show")
	return cmd
}

func listRuns(cmd *cobra.Command, st *store.Store, limit int) error {
	runs, err := st.Runs(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no recorded runs")
		return nil
	}
	for _, r := range runs {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %d files  %d elements  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Model, r.Files, r.Elements, r.Root)
	}
	return nil
}

func showRun(cmd *cobra.Command, st *store.Store, id string) error {
	run, err := st.GetRun(id)
	if err != nil {
		return fmt.Errorf("run %q: %w", id, err)
	}
	results, err := st.RunResults(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Run %s\n", run.ID)
	_, _ = fmt.Fprintf(out, "Root: %s\nModel: %s\nCreated: %s\n\n",
		run.Root, run.Model, run.CreatedAt.Format("2006-01-02 15:04:05"))

	for _, res := range results {
		_, _ = fmt.Fprintf(out, "%s (%s/%s): %d elements\n", res.Path, res.Category, res.SubType, len(res.Elements))
		for _, el := range res.Elements {
			_, _ = fmt.Fprintf(out, "  - %s '%s' (lines %d-%d)\n", el.Kind, el.Name, el.StartLine, el.EndLine)
		}
		if res.Err != "" {
			_, _ = fmt.Fprintf(out, "  analysis failed: %s\n", res.Err)
		}
	}
	return nil
}

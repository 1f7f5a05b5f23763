package filesumcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ronelsolomon/filesummarize/internal/llm/ollama"
)

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List models available on the Ollama server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(cmd)
			if opts == nil {
				return fmt.Errorf("options missing")
			}

			ctx := cmd.Context()
			client := ollama.New(opts.Host)
			if !client.IsRunning(ctx) {
				return fmt.Errorf("ollama server is not reachable at %s", client.BaseURL())
			}

			models, err := client.ListModels(ctx)
			if err != nil {
				return err
			}
			if len(models) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no models installed")
				return nil
			}
			for _, m := range models {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.Name, formatSize(m.Size))
			}
			return nil
		},
	}
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

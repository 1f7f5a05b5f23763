package filesumcli

import (
	"github.com/spf13/cobra"

	"github.com/ronelsolomon/filesummarize/internal/version"
)

func NewRootCommand() *cobra.Command {
	opts := newDefaultOptions()
	cmd := &cobra.Command{
		Use:   "filesum",
		Short: "Extract source structure and explain it with a local LLM",
		Long: `filesum parses source, data, and document files into their structural
elements (functions, classes, sections) and optionally asks a local
Ollama model to explain them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.Version = version.String()
	cmd.InitDefaultVersionFlag()
	if f := cmd.Flags().Lookup("version"); f != nil {
		f.Shorthand = "v"
	}

	withOptionsContext(cmd, opts)
	bindFlags(cmd, opts)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if opts := optionsFrom(cmd); opts != nil {
			return opts.Prepare()
		}
		return nil
	}

	cmd.AddCommand(newAnalyzeCommand())
	cmd.AddCommand(newExtensionsCommand())
	cmd.AddCommand(newModelsCommand())
	cmd.AddCommand(newHistoryCommand())
	cmd.AddCommand(newWatchCommand())
	return cmd
}

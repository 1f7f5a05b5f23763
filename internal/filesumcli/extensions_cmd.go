package filesumcli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ronelsolomon/filesummarize/internal/core/classify"
	"github.com/ronelsolomon/filesummarize/internal/model"
)

func newExtensionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extensions",
		Short: "List supported file extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			byCategory := classify.ByCategory()
			for _, category := range []model.Category{model.CategoryCode, model.CategoryData, model.CategoryDocument} {
				exts := make([]string, 0, len(byCategory[category]))
				for ext := range byCategory[category] {
					exts = append(exts, ext)
				}
				sort.Strings(exts)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", category, strings.Join(exts, ", "))
			}
			return nil
		},
	}
}

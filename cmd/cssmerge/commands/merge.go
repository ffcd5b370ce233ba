package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cssmerge/internal/app"
)

func (c *CLI) newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [manifests or directories...]",
		Short: "Fetch and merge the CSS sources of each manifest",
		Long: "Fetch and merge the CSS sources of each manifest.\n\n" +
			"Directories are scanned for *.yml and *.yaml files. Without arguments\n" +
			"css_manifest.yml in the current directory is used. HIDE_COMMENTS=true and\n" +
			"DRY_RUN=true in the environment behave like the matching flags.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hideComments, _ := cmd.Flags().GetBool("hide-comments")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			concurrency, _ := cmd.Flags().GetInt("concurrency")

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				HideComments: hideComments,
				DryRun:       dryRun,
				Concurrency:  concurrency,
			})
		},
	}
	cmd.Flags().Bool("hide-comments", false, "Strip block comments from fetched sources")
	cmd.Flags().BoolP("dry-run", "n", false, "Print merged CSS instead of writing it")
	cmd.Flags().IntP("concurrency", "c", 0, "Maximum concurrent fetches per bundle (0 = unbounded)")
	return cmd
}

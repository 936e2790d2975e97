package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirsize/internal/dirsize"
	"github.com/idelchi/dirsize/internal/integration"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirsize [flags] [path]",
		Short: "Report disk-space usage of a directory tree",
		Long: heredoc.Doc(`
			dirsize reports how much space the entries of a directory use.

			By default every direct child of the path is listed once; child
			directories show the total size of everything below them.
			Use --recursive to list every file and directory of the tree.

			Exclusions match entry names exactly and apply to the direct children
			of the path only: '-e build' skips ./build but keeps ./src/build.

			Every flag can also be set through the environment (DIRSIZE_<FLAG>,
			e.g. DIRSIZE_EXCLUDE="node_modules .git") or a config file (--config).

			Use 'eval "$(dirsize --init)"' in zsh to browse a listing with fzf.
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := loadOptions(cmd, args)
			if err != nil {
				return err
			}

			if options.Version {
				fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return nil
			}

			if options.Integration {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), rendered)

				return nil
			}

			return logic(cmd.Context(), options, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringP("path", "p", ".", "Directory to analyze (a positional path takes precedence)")
	flags.BoolP("sort", "s", false, "Sort entries by size, largest first")
	flags.BoolP("json", "j", false, "Output JSON")
	flags.BoolP("chart", "c", false, "Draw a bar chart next to each entry")
	flags.BoolP("recursive", "r", false, "List every file and directory of the tree")
	flags.BoolP("summary", "S", false, "Only show the path, total size and item counts")
	flags.StringArrayP("exclude", "e", []string{}, "Name of a direct child to skip (repeatable)")
	flags.IntP("workers", "w", 0, "Number of concurrent workers (0=auto)")
	flags.Duration("progress-interval", dirsize.DefaultProgressInterval, "Interval between progress updates")
	flags.Bool("debug", false, "Enable debug output")
	flags.String("config", "", "Path to a config file (YAML, JSON or TOML)")
	flags.BoolP("version", "v", false, "Show version and exit")
	flags.BoolP("init", "i", false, "Output init script for shell usage")

	return cmd
}

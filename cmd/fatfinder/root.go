package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fatfinder/internal/config"
	ferrors "fatfinder/internal/errors"
	"fatfinder/internal/scanner"
	"fatfinder/pkg/utils"
)

type rootFlags struct {
	minSize         string
	maxSize         string
	sortKey         string
	rawSizes        bool
	noPause         bool
	quietPathErrors bool
	quietRmErrors   bool
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "fatfinder [flags] [path]",
		Short: "Find large files and pick which ones to delete",
		Long: heredoc.Doc(`
			fatfinder walks a directory tree, collects every file whose size lies
			within [--min-size, --max-size] and opens an interactive picker over
			the results, sorted by size or path.

			Picker keys:
			  w / up      move up            s / down    move down
			  pgup / b    page up            pgdown / f  page down
			  space       toggle mark        enter       delete marked files
			  e / q       quit without deleting

			With --batch (or when not attached to a terminal) the sorted listing is
			printed instead. Sizes accept SI (10MB) and IEC (10MiB) suffixes.
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Root = args[0]
			}
			if err := flags.apply(&cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a := newApp(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return a.run(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.SortFlags = false
	f.StringVar(&flags.minSize, "min-size", "10MiB", "Minimum file size (inclusive)")
	f.StringVar(&flags.maxSize, "max-size", "1PB", "Maximum file size (inclusive)")
	f.StringVar(&flags.sortKey, "sort", "size", "Sort key: size or path")
	f.BoolVarP(&cfg.Descending, "reverse", "r", false, "Sort in descending order")
	f.IntVarP(&cfg.Lines, "lines", "n", config.DefaultLines, "Number of rows shown in the picker")
	f.IntVar(&cfg.StatusInterval, "status-interval", config.DefaultStatusInterval, "Print a status line every N matches while scanning (0 disables)")
	f.BoolVar(&flags.rawSizes, "raw-sizes", false, "Print sizes in bytes")
	f.BoolVarP(&cfg.Batch, "batch", "b", false, "Print the sorted listing instead of opening the picker")
	f.BoolVar(&cfg.JSON, "json", false, "Print the batch listing as JSON")
	f.BoolVar(&cfg.Plain, "plain", false, "Use the plain key loop instead of the full-screen picker")
	f.BoolVar(&flags.noPause, "no-pause", false, "Open the picker without waiting for a key after the scan")
	f.BoolVar(&flags.quietPathErrors, "quiet-path-errors", false, "Do not print unreadable paths")
	f.BoolVar(&flags.quietRmErrors, "quiet-rm-errors", false, "Do not print failed deletions")
	f.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Do not delete anything; report what would be deleted")
	f.StringSliceVarP(&cfg.Excludes, "exclude", "x", nil, "Glob pattern to exclude (can repeat). Matches full path or basename.")
	f.IntVarP(&cfg.MaxDepth, "max-depth", "m", -1, "Max depth for directory walk (-1 for unlimited)")
	f.BoolVarP(&cfg.FollowSymlink, "follow-symlinks", "L", false, "Follow symlinks, skipping directories already visited")
	f.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	return cmd
}

func (f rootFlags) apply(cfg *config.Config) error {
	minSize, err := utils.ParseSize(f.minSize)
	if err != nil {
		return ferrors.NewConfigError("min-size", "cannot parse", err)
	}
	maxSize, err := utils.ParseSize(f.maxSize)
	if err != nil {
		return ferrors.NewConfigError("max-size", "cannot parse", err)
	}
	key, err := scanner.ParseSortKey(f.sortKey)
	if err != nil {
		return ferrors.NewConfigError("sort", "cannot parse", err)
	}
	cfg.MinSize = minSize
	cfg.MaxSize = maxSize
	cfg.SortKey = key
	cfg.HumanReadable = !f.rawSizes
	cfg.Pause = !f.noPause
	cfg.ShowPathErrors = !f.quietPathErrors
	cfg.ShowRmErrors = !f.quietRmErrors
	return nil
}

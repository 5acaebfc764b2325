package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"fatfinder/internal/config"
	"fatfinder/internal/deleter"
	ferrors "fatfinder/internal/errors"
	"fatfinder/internal/log"
	"fatfinder/internal/picker"
	"fatfinder/internal/report"
	"fatfinder/internal/scanner"
	"fatfinder/internal/terminal"
	"fatfinder/internal/tui"
)

type app struct {
	cfg    config.Config
	out    io.Writer
	errOut io.Writer
	stdin  *os.File
	stdout *os.File
}

func newApp(cfg config.Config, out, errOut io.Writer) *app {
	return &app{cfg: cfg, out: out, errOut: errOut, stdin: os.Stdin, stdout: os.Stdout}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) run(ctx context.Context) error {
	log.SetDebug(a.cfg.Debug)

	root, err := filepath.Abs(a.cfg.Root)
	if err != nil {
		return ferrors.Wrap(err, "resolving path")
	}

	interactive := !a.cfg.Batch
	if interactive && !(isTerminal(a.stdin) && isTerminal(a.stdout)) {
		log.Warnf("not attached to a terminal, printing results instead of opening the picker")
		interactive = false
	}

	var status io.Writer
	if !a.cfg.JSON {
		status = a.out
	}
	results, err := scanner.Scan(ctx, root, a.cfg.ScanOptions(), status, a.reportPathError)
	if err != nil {
		return ferrors.Wrap(err, "scan")
	}
	records := results.Sorted(a.cfg.Order())
	log.WithField("matches", len(records)).Debugf("scan of %s complete", root)

	if !interactive {
		if a.cfg.JSON {
			return report.PrintJSON(a.out, root, records)
		}
		return report.PrintListing(a.out, records, a.cfg.HumanReadable)
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "No files matched.")
		return nil
	}

	outcome, err := a.pick(records, root)
	if err != nil {
		return err
	}
	if !outcome.Committed {
		return nil
	}
	return a.commit(ctx, outcome.Marked)
}

// pick runs the interactive phase. Terminal setup failures abort it before
// anything can be deleted.
func (a *app) pick(records []scanner.FileRecord, root string) (picker.Outcome, error) {
	tty, err := terminal.NewTTY(a.stdin)
	if err != nil {
		return picker.Outcome{}, ferrors.Wrap(err, "terminal setup")
	}
	if a.cfg.Pause {
		fmt.Fprint(a.out, "Press any key to continue... ")
		if err := terminal.WaitKey(tty); err != nil {
			return picker.Outcome{}, ferrors.Wrap(err, "terminal setup")
		}
		fmt.Fprintln(a.out)
	}

	session, err := picker.NewSession(records, a.cfg.Lines)
	if err != nil {
		return picker.Outcome{}, err
	}
	keys := picker.DefaultKeyMap()

	var outcome picker.Outcome
	if a.cfg.Plain {
		outcome, err = picker.Loop(session, tty, a.out, keys, picker.NewRenderer(a.cfg.HumanReadable))
	} else {
		outcome, err = tui.Run(session, tui.Options{
			Root:          root,
			HumanReadable: a.cfg.HumanReadable,
			DryRun:        a.cfg.DryRun,
			Keys:          keys,
		})
	}
	if err != nil {
		return picker.Outcome{}, ferrors.Wrap(err, "picker")
	}
	return outcome, nil
}

// commit deletes every marked file, printing one line per failure.
func (a *app) commit(ctx context.Context, marked []scanner.FileRecord) error {
	targets := make([]deleter.Target, 0, len(marked))
	for _, rec := range marked {
		targets = append(targets, deleter.Target{Path: rec.Path, Size: rec.Size})
	}
	sum := deleter.DeleteTargets(ctx, targets, nil, a.cfg.DryRun)
	if a.cfg.ShowRmErrors {
		for _, f := range sum.Failures {
			fmt.Fprintln(a.errOut, f.Err)
		}
	}
	return report.PrintSummary(a.out, sum, a.cfg.HumanReadable, a.cfg.DryRun)
}

func (a *app) reportPathError(err *ferrors.PathError) {
	if a.cfg.ShowPathErrors {
		fmt.Fprintln(a.errOut, err)
	}
}

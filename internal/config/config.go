// Package config holds the settings of a fatfinder run and their
// compiled-in defaults.
package config

import (
	ferrors "fatfinder/internal/errors"
	"fatfinder/internal/scanner"
)

// Default thresholds.
const (
	DefaultMinSize        int64 = 10 * 1024 * 1024
	DefaultMaxSize        int64 = 1_000_000_000_000_000
	DefaultLines                = 10
	DefaultStatusInterval       = 1
)

// Config is the full configuration bundle of a run.
type Config struct {
	Root string // directory to scan

	MinSize int64 // inclusive, bytes
	MaxSize int64 // inclusive, bytes

	SortKey    scanner.SortKey
	Descending bool

	Lines          int  // viewport height
	StatusInterval int  // status line every N matches, 0 disables
	HumanReadable  bool // sizes as KB/MB/...

	Batch bool // print the listing instead of the picker
	JSON  bool // batch output as JSON
	Plain bool // plain read-key loop instead of the TUI
	Pause bool // wait for a key before the picker

	ShowPathErrors bool
	ShowRmErrors   bool

	DryRun        bool
	Excludes      []string
	MaxDepth      int
	FollowSymlink bool
	Debug         bool
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Root:           ".",
		MinSize:        DefaultMinSize,
		MaxSize:        DefaultMaxSize,
		SortKey:        scanner.BySize,
		Lines:          DefaultLines,
		StatusInterval: DefaultStatusInterval,
		HumanReadable:  true,
		Pause:          true,
		ShowPathErrors: true,
		ShowRmErrors:   true,
		MaxDepth:       -1,
	}
}

// Validate checks value ranges and cross-field constraints.
func (c Config) Validate() error {
	switch {
	case c.Root == "":
		return ferrors.NewConfigError("path", "must not be empty", nil)
	case c.MinSize < 0:
		return ferrors.NewConfigError("min-size", "must not be negative", nil)
	case c.MaxSize < 0:
		return ferrors.NewConfigError("max-size", "must not be negative", nil)
	case c.MinSize > c.MaxSize:
		return ferrors.NewConfigError("min-size", "must not exceed max-size", nil)
	case c.Lines < 1:
		return ferrors.NewConfigError("lines", "must be at least 1", nil)
	case c.StatusInterval < 0:
		return ferrors.NewConfigError("status-interval", "must not be negative", nil)
	case c.MaxDepth < -1:
		return ferrors.NewConfigError("max-depth", "must be -1 (unlimited) or more", nil)
	case c.SortKey != scanner.BySize && c.SortKey != scanner.ByPath:
		return ferrors.NewConfigError("sort", "unknown sort key", nil)
	case c.JSON && !c.Batch:
		return ferrors.NewConfigError("json", "requires --batch", nil)
	}
	return nil
}

// ScanOptions projects the crawl settings.
func (c Config) ScanOptions() scanner.Options {
	return scanner.Options{
		MinSize:        c.MinSize,
		MaxSize:        c.MaxSize,
		StatusInterval: c.StatusInterval,
		HumanReadable:  c.HumanReadable,
		MaxDepth:       c.MaxDepth,
		FollowSymlink:  c.FollowSymlink,
		Excludes:       c.Excludes,
	}
}

// Order returns the display order.
func (c Config) Order() scanner.Order {
	return scanner.Order{Key: c.SortKey, Descending: c.Descending}
}

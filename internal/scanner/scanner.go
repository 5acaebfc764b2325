package scanner

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	ferrors "fatfinder/internal/errors"
	"fatfinder/internal/log"
)

// Options defines scanning behavior.
type Options struct {
	MinSize        int64    // inclusive lower size bound in bytes
	MaxSize        int64    // inclusive upper size bound in bytes
	StatusInterval int      // print a status line every N accepted files; 0 disables
	HumanReadable  bool     // status sizes as KB/MB/... instead of bytes
	MaxDepth       int      // -1 unlimited; 0 means only root
	FollowSymlink  bool     // whether to follow symlinks
	Excludes       []string // glob patterns matched against full path and base name
}

// ErrorHandler receives recoverable path access failures.
type ErrorHandler func(err *ferrors.PathError)

// Crawler walks a directory tree with an explicit work-list and reports the
// files of each directory to a Collector in one batch.
type Crawler struct {
	opts      Options
	collector *Collector
	onError   ErrorHandler

	visited map[string]struct{}
	dirs    int
}

type pendingDir struct {
	path     string
	resolved string
	depth    int
}

// NewCrawler creates a crawler feeding c. onError may be nil.
func NewCrawler(opts Options, c *Collector, onError ErrorHandler) *Crawler {
	return &Crawler{
		opts:      opts,
		collector: c,
		onError:   onError,
		visited:   make(map[string]struct{}),
	}
}

// DirsVisited returns how many directories were listed.
func (cr *Crawler) DirsVisited() int {
	return cr.dirs
}

// Crawl visits root and every descendant directory. Access failures are
// reported and skipped; only cancellation of ctx ends the crawl early.
func (cr *Crawler) Crawl(ctx context.Context, root string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := pendingDir{path: filepath.Clean(root)}
	if cr.opts.FollowSymlink {
		start.resolved = start.path
		if resolved, err := filepath.EvalSymlinks(start.path); err == nil {
			start.resolved = resolved
		}
		cr.visited[start.resolved] = struct{}{}
	}

	stack := []pendingDir{start}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		files, subdirs := cr.list(dir)
		cr.collector.AddFiles(files)

		// push in reverse so subdirectories pop in listing order
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
	return nil
}

// list partitions the direct children of dir into files and subdirectories.
func (cr *Crawler) list(dir pendingDir) ([]FileRecord, []pendingDir) {
	entries, err := os.ReadDir(dir.path)
	if err != nil {
		cr.report(dir.path, err)
		return nil, nil
	}
	cr.dirs++

	var files []FileRecord
	var subdirs []pendingDir
	for _, entry := range entries {
		path := filepath.Join(dir.path, entry.Name())
		if excluded(path, cr.opts.Excludes) {
			log.Debugf("excluded: %s", path)
			continue
		}

		typ := entry.Type()
		switch {
		case typ&fs.ModeSymlink != 0:
			if !cr.opts.FollowSymlink {
				continue
			}
			info, err := os.Stat(path)
			if err != nil {
				cr.report(path, err)
				continue
			}
			if info.IsDir() {
				resolved, err := filepath.EvalSymlinks(path)
				if err != nil {
					cr.report(path, err)
					continue
				}
				if sub, ok := cr.descend(dir, path, resolved); ok {
					subdirs = append(subdirs, sub)
				}
				continue
			}
			if info.Mode().IsRegular() {
				files = append(files, FileRecord{Path: path, Size: info.Size()})
			}
		case entry.IsDir():
			resolved := ""
			if cr.opts.FollowSymlink {
				resolved = filepath.Join(dir.resolved, entry.Name())
			}
			if sub, ok := cr.descend(dir, path, resolved); ok {
				subdirs = append(subdirs, sub)
			}
		case typ.IsRegular():
			info, err := entry.Info()
			if err != nil {
				cr.report(path, err)
				continue
			}
			files = append(files, FileRecord{Path: path, Size: info.Size()})
		}
	}
	return files, subdirs
}

// descend decides whether a child directory is queued, applying the depth
// bound and, when following links, the visited set.
func (cr *Crawler) descend(parent pendingDir, path, resolved string) (pendingDir, bool) {
	depth := parent.depth + 1
	if cr.opts.MaxDepth >= 0 && depth > cr.opts.MaxDepth {
		return pendingDir{}, false
	}
	if cr.opts.FollowSymlink {
		if _, seen := cr.visited[resolved]; seen {
			log.Debugf("already visited %s (via %s)", resolved, path)
			return pendingDir{}, false
		}
		cr.visited[resolved] = struct{}{}
	}
	return pendingDir{path: path, resolved: resolved, depth: depth}, true
}

func (cr *Crawler) report(path string, err error) {
	pathErr := ferrors.NewPathError(ferrors.PathAccess, path, err)
	log.WithField("path", path).Debugf("path access failed: %v", err)
	if cr.onError != nil {
		cr.onError(pathErr)
	}
}

// Scan crawls root with a fresh Collector and returns what it accumulated.
// On cancellation the partial result set is returned with ctx's error.
func Scan(ctx context.Context, root string, opts Options, status io.Writer, onError ErrorHandler) (*ResultSet, error) {
	collector := NewCollector(opts, status)
	crawler := NewCrawler(opts, collector, onError)
	err := crawler.Crawl(ctx, root)
	log.WithField("root", root).Debugf("crawl finished: %d dirs, %d matches", crawler.DirsVisited(), collector.Results().Len())
	return collector.Results(), err
}

func excluded(p string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	base := filepath.Base(p)
	for _, pat := range patterns {
		if pat == "" {
			continue
		}
		// try full path
		if ok, _ := filepath.Match(pat, p); ok {
			return true
		}
		// try base name
		if ok, _ := filepath.Match(pat, base); ok {
			return true
		}
	}
	return false
}

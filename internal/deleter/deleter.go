// Package deleter removes the files marked in the picker.
package deleter

import (
	"context"
	"os"

	ferrors "fatfinder/internal/errors"
	"fatfinder/internal/log"
)

// removeFile is swapped in tests to simulate failures.
var removeFile = os.Remove

type Target struct {
	Path string
	Size int64
}

type Progress struct {
	Completed int
	Total     int
	Path      string
	Err       error
}

type Failure struct {
	Path string
	Err  error
}

type Summary struct {
	Successes []Target
	Failures  []Failure
	Freed     int64
}

// DeleteTargets removes every target file in order. A failure is recorded
// as a deletion PathError and never stops the remaining deletions. progress,
// when non-nil, is called after each target. In dry-run mode nothing is
// removed and every target counts as a success.
func DeleteTargets(ctx context.Context, targets []Target, progress func(Progress), dryRun bool) Summary {
	if ctx == nil {
		ctx = context.Background()
	}
	sum := Summary{}
	for i, t := range targets {
		var err error
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
			if !dryRun {
				err = removeFile(t.Path)
			}
		}
		if err != nil {
			pathErr := ferrors.NewPathError(ferrors.Deletion, t.Path, err)
			log.WithField("path", t.Path).Debugf("delete failed: %v", err)
			sum.Failures = append(sum.Failures, Failure{Path: t.Path, Err: pathErr})
			err = pathErr
		} else {
			log.WithField("path", t.Path).Debugf("deleted (dry-run=%v)", dryRun)
			sum.Successes = append(sum.Successes, t)
			sum.Freed += t.Size
		}
		if progress != nil {
			progress(Progress{Completed: i + 1, Total: len(targets), Path: t.Path, Err: err})
		}
	}
	return sum
}

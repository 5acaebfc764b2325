package scanner

import (
	"fmt"
	"io"

	"fatfinder/pkg/utils"
)

// Collector filters reported files by size and accumulates the survivors.
// It also owns the status interval counter, which spans the whole crawl.
type Collector struct {
	minSize  int64
	maxSize  int64
	interval int
	human    bool
	status   io.Writer

	counter int
	results *ResultSet
}

// NewCollector creates a collector applying opts. A nil status writer
// disables status lines.
func NewCollector(opts Options, status io.Writer) *Collector {
	return &Collector{
		minSize:  opts.MinSize,
		maxSize:  opts.MaxSize,
		interval: opts.StatusInterval,
		human:    opts.HumanReadable,
		status:   status,
		results:  NewResultSet(),
	}
}

// Accepts reports whether size lies in the inclusive size range.
func (c *Collector) Accepts(size int64) bool {
	return size >= c.minSize && size <= c.maxSize
}

// AddFiles records every file of batch whose size is in range.
func (c *Collector) AddFiles(batch []FileRecord) {
	for _, rec := range batch {
		if !c.Accepts(rec.Size) {
			continue
		}
		c.results.Put(rec)
		c.tick(rec)
	}
}

func (c *Collector) tick(rec FileRecord) {
	if c.status == nil || c.interval <= 0 {
		return
	}
	c.counter++
	if c.counter < c.interval {
		return
	}
	c.counter = 0
	fmt.Fprintf(c.status, "%s: %s\n", rec.Path, utils.FormatSize(rec.Size, c.human))
}

// Results returns the accumulated result set.
func (c *Collector) Results() *ResultSet {
	return c.results
}

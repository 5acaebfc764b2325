package scanner

import (
	"fmt"
	"sort"
	"strings"
)

// FileRecord is a file that passed the size filter.
type FileRecord struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// SortKey selects the field the display order is sorted by.
type SortKey int

const (
	BySize SortKey = iota
	ByPath
)

func (k SortKey) String() string {
	if k == ByPath {
		return "path"
	}
	return "size"
}

// ParseSortKey accepts "size" or "path".
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "size":
		return BySize, nil
	case "path", "name":
		return ByPath, nil
	default:
		return BySize, fmt.Errorf("unknown sort key %q (want size or path)", s)
	}
}

// Order describes a display order.
type Order struct {
	Key        SortKey
	Descending bool
}

// ResultSet maps paths to sizes and remembers discovery order.
type ResultSet struct {
	index   map[string]int
	records []FileRecord
}

// NewResultSet returns an empty set.
func NewResultSet() *ResultSet {
	return &ResultSet{index: make(map[string]int)}
}

// Put inserts rec, or overwrites the size of an already known path in place.
func (r *ResultSet) Put(rec FileRecord) {
	if i, ok := r.index[rec.Path]; ok {
		r.records[i].Size = rec.Size
		return
	}
	r.index[rec.Path] = len(r.records)
	r.records = append(r.records, rec)
}

// Len returns the number of records.
func (r *ResultSet) Len() int {
	return len(r.records)
}

// Size returns the recorded size of path.
func (r *ResultSet) Size(path string) (int64, bool) {
	i, ok := r.index[path]
	if !ok {
		return 0, false
	}
	return r.records[i].Size, true
}

// TotalSize sums every recorded size.
func (r *ResultSet) TotalSize() int64 {
	var total int64
	for _, rec := range r.records {
		total += rec.Size
	}
	return total
}

// Records returns a copy of the records in discovery order.
func (r *ResultSet) Records() []FileRecord {
	out := make([]FileRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Sorted returns a fresh copy ordered by o. Ties on size keep discovery
// order in the ascending view; the descending view is its exact reverse.
func (r *ResultSet) Sorted(o Order) []FileRecord {
	out := r.Records()
	sort.SliceStable(out, func(i, j int) bool {
		if o.Key == ByPath {
			return out[i].Path < out[j].Path
		}
		return out[i].Size < out[j].Size
	})
	if o.Descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

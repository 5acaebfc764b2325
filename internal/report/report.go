// Package report prints batch listings and deletion summaries.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"fatfinder/internal/deleter"
	"fatfinder/internal/scanner"
	"fatfinder/pkg/utils"
)

// PrintListing writes a header and one "<path>: <size>" line per record.
func PrintListing(w io.Writer, records []scanner.FileRecord, human bool) error {
	if _, err := fmt.Fprintf(w, "\nFound %d files\n", len(records)); err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "%s: %s\n", rec.Path, utils.FormatSize(rec.Size, human)); err != nil {
			return err
		}
	}
	return nil
}

// PrintJSON writes the records as a JSON document.
func PrintJSON(w io.Writer, root string, records []scanner.FileRecord) error {
	var total int64
	for _, rec := range records {
		total += rec.Size
	}
	if records == nil {
		records = []scanner.FileRecord{}
	}
	payload := struct {
		Root      string               `json:"root"`
		Count     int                  `json:"count"`
		TotalSize int64                `json:"total_size"`
		Files     []scanner.FileRecord `json:"files"`
	}{Root: root, Count: len(records), TotalSize: total, Files: records}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

// PrintSummary writes the outcome of a commit.
func PrintSummary(w io.Writer, sum deleter.Summary, human, dryRun bool) error {
	mode := ""
	if dryRun {
		mode = " (dry-run; no files removed)"
	}
	_, err := fmt.Fprintf(w, "Deleted %d files%s, freed %s. Failures: %d\n",
		len(sum.Successes), mode, utils.FormatSize(sum.Freed, human), len(sum.Failures))
	return err
}

package runner

import (
	"fmt"
	"io"
)

// WriteReport prints the human-readable run summary to w. The closing
// line names the output directory so users can find the per-result files.
func WriteReport(w io.Writer, results Results, outputDir string) {
	if len(results.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warning := range results.Warnings {
			fmt.Fprintf(w, "  %s\n", warning)
		}
	}
	mode := ""
	if results.DryRun {
		mode = " (dry-run)"
	}
	fmt.Fprintf(w, "Run %s completed%s: %d rows, %d succeeded, %d failed, %d analyzed\n",
		results.RunID, mode,
		results.Summary.RowsTotal, results.Summary.RowsSucceeded,
		results.Summary.RowsFailed, results.Summary.RowsAnalyzed)
	if results.Summary.RowsFailed > 0 {
		fmt.Fprintln(w, "Failed rows:")
		for _, row := range results.Rows {
			if !row.Failed() {
				continue
			}
			fmt.Fprintf(w, "  %s: %s (%s)\n", row.ResultID, *row.FailureReason, row.Status)
		}
	}
	fmt.Fprintf(w, "Processed %d result(s). Output in: %s\n", results.Summary.RowsTotal, outputDir)
}

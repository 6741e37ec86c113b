// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pdiddy/clipper/internal/batch"
)

// writtenPreview is how many written paths the summary lists.
const writtenPreview = 10

// printSummary reports counts, failures, overwritten paths, and a preview
// of written files. A terminal gets tables; anything else gets plain lines.
func printSummary(w io.Writer, r batch.Result, tty bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion complete!")
	if tty {
		fmt.Fprintln(w, countsTable(r))
	} else {
		fmt.Fprintf(w, "Successfully converted: %d files\n", r.Succeeded)
		fmt.Fprintf(w, "Failed conversions: %d\n", r.Failed)
	}

	if len(r.Failures) > 0 {
		fmt.Fprintln(w, "\nFailures:")
		if tty {
			fmt.Fprintln(w, failuresTable(r.Failures))
		} else {
			for _, f := range r.Failures {
				fmt.Fprintf(w, "- %s: %s\n", f.ID, f.Message())
			}
		}
	}

	if dups := r.Duplicates(); len(dups) > 0 {
		fmt.Fprintf(w, "\nWarning: %d file(s) were overwritten by a later record with the same title:\n", len(dups))
		for _, p := range dups {
			fmt.Fprintf(w, "- %s\n", p)
		}
	}

	if len(r.Written) > 0 {
		fmt.Fprintln(w, "\nFiles created or modified:")
		for i, p := range r.Written {
			if i == writtenPreview {
				fmt.Fprintf(w, "... and %d more files\n", len(r.Written)-writtenPreview)
				break
			}
			fmt.Fprintf(w, "- %s\n", p)
		}
	}
}

func countsTable(r batch.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Converted", "Failed", "Total", "Outcome"})
	tw.AppendRow(table.Row{r.Succeeded, r.Failed, r.Total(), r.Outcome().String()})
	return tw.Render()
}

func failuresTable(failures []batch.Failure) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Row", "ID", "Error"})
	for _, f := range failures {
		tw.AppendRow(table.Row{f.Row, f.ID, f.Message()})
	}
	return tw.Render()
}

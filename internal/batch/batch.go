// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch converts bookmark records into note files. Each record is
// normalized, rendered, and written independently: a failing record is
// recorded in the Result and the run moves on to the next one.
package batch

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdiddy/clipper/internal/clip"
	"github.com/pdiddy/clipper/internal/csvin"
	"github.com/pdiddy/clipper/pkg/types"
)

// Options configures a run. The zero value is usable.
type Options struct {
	Tags types.TagOptions

	// Logger receives structured per-record events. Nil disables logging.
	Logger *slog.Logger

	// Progress receives one human-readable status line per record.
	// Nil discards them.
	Progress io.Writer
}

// ConvertFile reads the CSV export at inputPath and converts every record
// into outputDir. If the input cannot be read, it returns an error wrapping
// types.ErrInputNotFound and writes nothing.
func ConvertFile(inputPath, outputDir string, opts Options) (Result, error) {
	records, err := csvin.ReadFile(inputPath)
	if err != nil {
		return Result{}, err
	}
	logger(opts).Info("read input", "path", inputPath, "records", len(records))
	return Run(records, outputDir, opts), nil
}

// Run converts records in input order, writing one note per record into
// outputDir, which is created if missing. Existing files are overwritten.
func Run(records []types.RawRecord, outputDir string, opts Options) Result {
	log := logger(opts)
	w := opts.Progress
	if w == nil {
		w = io.Discard
	}

	// A failure here surfaces as a write error on every record.
	dirErr := os.MkdirAll(outputDir, 0o755)

	var result Result
	for _, rec := range records {
		path, err := convertRecord(rec, outputDir, dirErr, opts.Tags)
		if err != nil {
			f := Failure{Row: rec.Row, ID: rec.Identifier(), Err: err}
			result.Failed++
			result.Failures = append(result.Failures, f)
			fmt.Fprintf(w, "failed:    %s (%v)\n", f.ID, err)
			log.Warn("record failed", "row", f.Row, "id", f.ID, "error", err)
			continue
		}

		result.Succeeded++
		result.Written = append(result.Written, path)
		fmt.Fprintf(w, "converted: %s\n", path)
		log.Debug("record written", "row", rec.Row, "id", rec.Identifier(), "path", path)
	}
	return result
}

// convertRecord takes one record through normalize, render, and write,
// returning the written path.
func convertRecord(rec types.RawRecord, outputDir string, dirErr error, tagOpts types.TagOptions) (string, error) {
	note, err := clip.Normalize(rec, tagOpts)
	if err != nil {
		return "", err
	}

	doc, err := clip.Render(note)
	if err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, doc.Filename)
	if dirErr != nil {
		return "", fmt.Errorf("%w: creating output directory: %w", types.ErrWrite, dirErr)
	}
	if err := os.WriteFile(path, []byte(doc.Content), 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrWrite, err)
	}
	return path, nil
}

func logger(opts Options) *slog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return slog.New(slog.DiscardHandler)
}

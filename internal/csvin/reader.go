// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csvin reads Raindrop.io CSV exports into raw bookmark records.
// Columns are matched by header name, so extra or missing columns are
// tolerated; the delimiter is sniffed from the header line.
package csvin

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/clipper/pkg/types"
)

// utf8BOM is stripped from the start of the input when present.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// candidateDelims are tried, in order of preference, when sniffing.
var candidateDelims = []rune{',', ';', '\t'}

// fields maps lowercased header names to record setters.
var fields = map[string]func(*types.RawRecord, string){
	"id":         func(r *types.RawRecord, v string) { r.ID = v },
	"title":      func(r *types.RawRecord, v string) { r.Title = v },
	"note":       func(r *types.RawRecord, v string) { r.Note = v },
	"excerpt":    func(r *types.RawRecord, v string) { r.Excerpt = v },
	"url":        func(r *types.RawRecord, v string) { r.URL = v },
	"folder":     func(r *types.RawRecord, v string) { r.Folder = v },
	"tags":       func(r *types.RawRecord, v string) { r.Tags = v },
	"created":    func(r *types.RawRecord, v string) { r.Created = v },
	"cover":      func(r *types.RawRecord, v string) { r.Cover = v },
	"highlights": func(r *types.RawRecord, v string) { r.Highlights = v },
	"favorite":   func(r *types.RawRecord, v string) { r.Favorite = v },
}

// ReadFile reads all records from the CSV file at path. A missing,
// unreadable, or headerless file yields an error wrapping
// types.ErrInputNotFound.
func ReadFile(path string) ([]types.RawRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInputNotFound, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", types.ErrInputNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInputNotFound, err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrInputNotFound, path, err)
	}
	return records, nil
}

// Read parses CSV data with a header row into records, in input order.
func Read(r io.Reader) ([]types.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffDelimiter(firstLine(data))
	cr.FieldsPerRecord = -1
	// An unmatched opening quote runs to the end of the input, folding the
	// following rows into one cell; that record then lacks its url.
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}

	setters := make([]func(*types.RawRecord, string), len(header))
	for i, name := range header {
		setters[i] = fields[strings.ToLower(strings.TrimSpace(name))]
	}

	var records []types.RawRecord
	for row := 1; ; row++ {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing row %d: %w", row, err)
		}

		rec := types.RawRecord{Row: row}
		for i, cell := range cells {
			if i < len(setters) && setters[i] != nil {
				setters[i](&rec, cell)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// sniffDelimiter picks the candidate delimiter that occurs most often
// outside quotes in the header line, defaulting to a comma.
func sniffDelimiter(line string) rune {
	counts := make(map[rune]int, len(candidateDelims))
	inQuotes := false
	for _, c := range line {
		if c == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			counts[c]++
		}
	}

	best := candidateDelims[0]
	for _, d := range candidateDelims[1:] {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}

func firstLine(data []byte) string {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[:i]
	}
	return string(bytes.TrimSuffix(data, []byte("\r")))
}

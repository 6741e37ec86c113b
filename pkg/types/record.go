// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strconv"

// RawRecord is one row of a Raindrop.io CSV export. All fields hold the
// cell text as read; missing columns are empty.
type RawRecord struct {
	ID         string
	Title      string
	Note       string
	Excerpt    string
	URL        string
	Folder     string
	Tags       string
	Created    string
	Cover      string
	Highlights string
	Favorite   string

	// Row is the 1-based data row number in the input (header excluded).
	Row int
}

// Identifier returns the label used for this record in failure reports:
// the id column when present, otherwise "row N".
func (r RawRecord) Identifier() string {
	if r.ID != "" {
		return r.ID
	}
	return "row " + strconv.Itoa(r.Row)
}

// Note is a bookmark normalized for rendering as an Obsidian clipping.
type Note struct {
	// Title is never empty; it defaults to "Untitled".
	Title string

	// Author is the bookmark's host without a leading "www.", or empty.
	Author string

	// Created is the creation date as YYYY-MM-DD, or empty.
	Created string

	Description string

	// Tags always starts with "clippings" and holds no duplicates.
	Tags []string

	Source     string
	Highlights string
	Note       string
}

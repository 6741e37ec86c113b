// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clip converts Raindrop.io bookmark records into Obsidian Web
// Clipper notes: field normalization, filename sanitizing, and rendering of
// the YAML front matter and Markdown body.
package clip

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/clipper/pkg/types"
)

const (
	// DefaultTitle replaces empty titles and empty sanitized filenames.
	DefaultTitle = "Untitled"

	// ClippingsTag is the first tag of every note.
	ClippingsTag = "clippings"

	dateFmt = "2006-01-02"
)

// isoLayouts are the ISO-8601 forms accepted for the created column. Go's
// parser accepts fractional seconds after the seconds field even when the
// layout omits them.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	dateFmt,
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Normalize maps a raw bookmark row to a Note. The only required field is
// the URL; a record without one fails with types.ErrValidation.
func Normalize(r types.RawRecord, opts types.TagOptions) (types.Note, error) {
	source := strings.TrimSpace(singleLine(r.URL))
	if source == "" {
		return types.Note{}, fmt.Errorf("%w: missing url", types.ErrValidation)
	}

	title := strings.TrimSpace(singleLine(r.Title))
	if title == "" {
		title = DefaultTitle
	}

	return types.Note{
		Title:       title,
		Author:      ExtractDomain(source),
		Created:     FormatDate(r.Created),
		Description: strings.TrimSpace(r.Excerpt),
		Tags:        BuildTags(r.Folder, r.Tags, opts),
		Source:      source,
		Highlights:  strings.TrimSpace(r.Highlights),
		Note:        strings.TrimSpace(r.Note),
	}, nil
}

// ExtractDomain returns the lowercased host of rawURL without a leading
// "www.". It returns "" when rawURL does not parse or has no host.
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// FormatDate returns the YYYY-MM-DD portion of an ISO-8601 date or
// date-time, in the offset the value was written in. Anything else yields "".
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateFmt)
		}
	}
	return ""
}

// BuildTags assembles the note tags: "clippings", then the folder tag, then
// the comma-separated bookmark tags, keeping first-seen order and dropping
// empties and exact duplicates. Whitespace runs inside a tag, line breaks
// included, collapse to one space.
func BuildTags(folder, tags string, opts types.TagOptions) []string {
	set := newTagSet()
	set.add(ClippingsTag)
	set.add(folderTag(folder, opts))

	for _, tag := range strings.Split(tags, ",") {
		tag = strings.Join(strings.Fields(tag), " ")
		if opts.Slug {
			tag = slugTag(tag)
		}
		set.add(tag)
	}
	return set.items
}

// folderTag trims the folder name and collapses internal whitespace. Folders
// listed in opts.SkipFolders produce no tag.
func folderTag(folder string, opts types.TagOptions) string {
	name := strings.Join(strings.Fields(folder), " ")
	if name == "" {
		return ""
	}
	for _, skip := range opts.SkipFolders {
		if strings.EqualFold(name, strings.TrimSpace(skip)) {
			return ""
		}
	}
	if opts.Slug {
		return slugTag(name)
	}
	return name
}

func slugTag(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}

func singleLine(s string) string {
	return lineBreaks.Replace(s)
}

// tagSet is an insertion-ordered set of tags.
type tagSet struct {
	items []string
	seen  map[string]struct{}
}

func newTagSet() *tagSet {
	return &tagSet{seen: make(map[string]struct{})}
}

// add appends tag unless it is empty or already present.
func (s *tagSet) add(tag string) {
	if tag == "" {
		return
	}
	if _, ok := s.seen[tag]; ok {
		return
	}
	s.seen[tag] = struct{}{}
	s.items = append(s.items, tag)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package csvin

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/clipper/pkg/types"
)

const raindropHeader = "id,title,note,excerpt,url,folder,tags,created,cover,highlights,favorite\n"

func TestRead(t *testing.T) {
	input := raindropHeader +
		`101,My Note,,desc,https://example.com/a,Reading,"ai, notes",2025-01-15,,,false` + "\n" +
		`102,"Multi, line","first` + "\n" + `second",,https://example.com/b,,,,,,true` + "\n"

	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, types.RawRecord{
		ID:       "101",
		Title:    "My Note",
		Excerpt:  "desc",
		URL:      "https://example.com/a",
		Folder:   "Reading",
		Tags:     "ai, notes",
		Created:  "2025-01-15",
		Favorite: "false",
		Row:      1,
	}, records[0])

	assert.Equal(t, "Multi, line", records[1].Title)
	assert.Equal(t, "first\nsecond", records[1].Note)
	assert.Equal(t, 2, records[1].Row)
}

func TestReadHeaderVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bom and mixed case", "\ufeffTitle, URL ,Extra\nHello,https://x.org,ignored\n"},
		{"semicolon", "title;url;extra\nHello;https://x.org;ignored\n"},
		{"tab", "title\turl\textra\nHello\thttps://x.org\tignored\n"},
		{"crlf", "title,url\r\nHello,https://x.org\r\n"},
		{"quoted header with delimiter", "\"title\",\"url\"\nHello,https://x.org\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Read(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, "Hello", records[0].Title)
			assert.Equal(t, "https://x.org", records[0].URL)
		})
	}
}

func TestReadToleratesRaggedRows(t *testing.T) {
	input := "title,url,folder\nShort,https://x.org\nLong,https://y.org,Inbox,extra,cells\n"

	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Empty(t, records[0].Folder)
	assert.Equal(t, "Inbox", records[1].Folder)
}

func TestReadMissingURLColumn(t *testing.T) {
	records, err := Read(strings.NewReader("title\nNo link\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].URL)
}

func TestReadUnmatchedQuoteAbsorbsFollowingRows(t *testing.T) {
	input := "title,url\n\"Broken title,https://x.org\nNext,https://y.org\n"

	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Contains(t, records[0].Title, "Broken title,https://x.org")
	assert.Contains(t, records[0].Title, "Next,https://y.org")
	assert.Empty(t, records[0].URL)
}

func TestReadEmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing header row")
}

func TestReadHeaderOnly(t *testing.T) {
	records, err := Read(strings.NewReader(raindropHeader))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(raindropHeader+"1,T,,,https://x.org,,,,,,\n"), 0o644))

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].Identifier())
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.csv")},
		{"directory", dir},
		{"empty file", empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrInputNotFound)
		})
	}

	_, err := ReadFile(filepath.Join(dir, "nope.csv"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		line string
		want rune
	}{
		{"a,b,c", ','},
		{"a;b;c", ';'},
		{"a\tb\tc", '\t'},
		{`"a;b","c;d",e,f`, ','},
		{"single", ','},
		{"", ','},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, sniffDelimiter(tt.line))
		})
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clip

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	// Extension is appended to every note filename.
	Extension = ".md"

	// MaxNameLength is the maximum filename length in characters, not
	// counting Extension.
	MaxNameLength = 250

	forbiddenChars = `<>:"/\|?*`
)

// SanitizeFilename turns a note title into a filename: forbidden characters
// and control characters are removed, whitespace runs collapse to one space,
// and the result is cut to MaxNameLength characters before Extension is
// appended. Distinct titles can map to the same filename.
func SanitizeFilename(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbiddenChars, r) {
			return -1
		}
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, norm.NFC.String(title))
	name = strings.Join(strings.Fields(name), " ")

	if runes := []rune(name); len(runes) > MaxNameLength {
		name = strings.TrimRight(string(runes[:MaxNameLength]), " ")
	}
	if name == "" {
		name = DefaultTitle
	}
	return name + Extension
}

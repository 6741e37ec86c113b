// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clip

import (
	"bytes"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/clipper/pkg/types"
)

const frontMatterDelim = "---\n"

// Document is a rendered note ready to be written.
type Document struct {
	// Filename is the sanitized title plus Extension, without a directory.
	Filename string
	Content  string
}

// Render builds the note document: YAML front matter followed by the
// Summary, Highlights, and Source sections. Sections with no content are
// omitted; Source is always present.
func Render(n types.Note) (Document, error) {
	fm, err := frontMatter(n)
	if err != nil {
		return Document{}, fmt.Errorf("%w: front matter: %v", types.ErrRender, err)
	}

	var b strings.Builder
	b.WriteString(frontMatterDelim)
	b.Write(fm)
	b.WriteString(frontMatterDelim)

	if n.Description != "" || n.Note != "" {
		var paras []string
		for _, p := range []string{n.Description, n.Note} {
			if p != "" {
				paras = append(paras, p)
			}
		}
		writeSection(&b, "Summary", strings.Join(paras, "\n\n"))
	}
	if n.Highlights != "" {
		writeSection(&b, "Highlights", n.Highlights)
	}
	writeSection(&b, "Source", sourceLink(n.Source))

	return Document{
		Filename: SanitizeFilename(n.Title),
		Content:  b.String(),
	}, nil
}

// frontMatter encodes the note metadata with keys in a fixed order:
// author, created, description, published, source, tags, title.
func frontMatter(n types.Note) ([]byte, error) {
	authors := seqNode()
	if n.Author != "" {
		authors.Content = append(authors.Content, strNode("[["+n.Author+"]]"))
	}

	tags := seqNode()
	for _, t := range n.Tags {
		tags.Content = append(tags.Content, strNode(t))
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	doc.Content = []*yaml.Node{
		strNode("author"), authors,
		strNode("created"), dateNode(n.Created),
		strNode("description"), strNode(strings.TrimSpace(singleLine(n.Description))),
		strNode("published"), strNode(""),
		strNode("source"), strNode(n.Source),
		strNode("tags"), tags,
		strNode("title"), strNode(n.Title),
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func seqNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

// dateNode emits a YYYY-MM-DD date unquoted; an empty date stays a string.
func dateNode(date string) *yaml.Node {
	if date == "" {
		return strNode("")
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!timestamp", Value: date}
}

func writeSection(b *strings.Builder, heading, content string) {
	fmt.Fprintf(b, "\n## %s\n\n%s\n", heading, content)
}

// sourceLink renders the Markdown link to the original page. Destinations
// containing spaces or parentheses use the angle-bracket form.
func sourceLink(source string) string {
	if strings.ContainsAny(source, " ()") {
		return "[View Original](<" + source + ">)"
	}
	return "[View Original](" + source + ")"
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content transforms the lightweight markup stored in post bodies
// into a display structure. Rendering is a pure line-by-line transformation
// with no side effects; the presentation layer decides how each node kind is
// drawn.
package content

import (
	"regexp"
	"strings"
)

// NodeKind identifies how a rendered line should be displayed.
type NodeKind string

const (
	KindHeading2    NodeKind = "h2"
	KindHeading3    NodeKind = "h3"
	KindOrderedItem NodeKind = "ordered"
	KindBullet      NodeKind = "bullet"
	KindParagraph   NodeKind = "paragraph"
	KindBreak       NodeKind = "break"
)

// Span is a run of paragraph text, optionally emphasized.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Node is one rendered line. Paragraphs carry their inline spans; all other
// kinds carry plain text.
type Node struct {
	Kind  NodeKind `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Spans []Span   `json:"spans,omitempty"`
}

// boldSpan matches a **...** delimited substring, shortest match first.
// Unmatched or unbalanced markers are left to render literally.
var boldSpan = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Render transforms markup source into display nodes, one per input line.
// Every "1. " line is an isolated single-item entry; sequential numbering is
// intentionally not accumulated.
func Render(source string) []Node {
	lines := strings.Split(source, "\n")
	nodes := make([]Node, 0, len(lines))

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "## "):
			nodes = append(nodes, Node{Kind: KindHeading2, Text: strings.TrimPrefix(line, "## ")})
		case strings.HasPrefix(line, "### "):
			nodes = append(nodes, Node{Kind: KindHeading3, Text: strings.TrimPrefix(line, "### ")})
		case strings.HasPrefix(line, "1. "):
			nodes = append(nodes, Node{Kind: KindOrderedItem, Text: strings.TrimPrefix(line, "1. ")})
		case strings.HasPrefix(line, "- "):
			nodes = append(nodes, Node{Kind: KindBullet, Text: strings.TrimPrefix(line, "- ")})
		case strings.TrimSpace(line) == "":
			nodes = append(nodes, Node{Kind: KindBreak})
		default:
			nodes = append(nodes, Node{Kind: KindParagraph, Text: line, Spans: boldSpans(line)})
		}
	}

	return nodes
}

// boldSpans splits a paragraph line into plain and bold runs.
func boldSpans(line string) []Span {
	var spans []Span
	rest := line
	for {
		loc := boldSpan.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		if loc[0] > 0 {
			spans = append(spans, Span{Text: rest[:loc[0]]})
		}
		spans = append(spans, Span{Text: rest[loc[2]:loc[3]], Bold: true})
		rest = rest[loc[1]:]
	}
	if rest != "" {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}

// wordsPerMinute is the reading speed assumed by the read-time estimate.
const wordsPerMinute = 200

// ReadTime estimates reading time in whole minutes: word count divided by
// 200, rounded up, minimum 1.
func ReadTime(source string) int {
	words := len(strings.Fields(source))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

package service

import (
	"strings"
	"unicode"
)

// sentenceEnders are the sentence-final punctuation marks (Latin and CJK)
// that mark a completed sentence at a chunk boundary.
const sentenceEnders = ".!?。！？"

// Stitch merges ordered per-chunk Markdown outputs into one document. Each
// boundary is decided from the accumulated tail and the next chunk's head
// only:
//
//  1. A table row continued across the boundary is joined with exactly one
//     newline so rows never share a line and no blank line splits the table.
//  2. A sentence wrapped mid-way (no sentence-final punctuation before, a
//     lowercase letter after) is merged with a single space.
//  3. Everything else joins as separate paragraphs with a blank line.
//
// This is a best-effort heuristic over raw text; it does not parse Markdown
// structure, so a sentence-final period inside a table cell can still
// misjoin pathological inputs.
func Stitch(chunks []string) string {
	if len(chunks) == 0 {
		return ""
	}
	if len(chunks) == 1 {
		return chunks[0]
	}

	result := chunks[0]
	for _, chunk := range chunks[1:] {
		prev := strings.TrimRightFunc(result, unicode.IsSpace)
		curr := strings.TrimLeftFunc(chunk, unicode.IsSpace)

		if prev == "" || curr == "" {
			result += "\n\n" + chunk
			continue
		}

		switch {
		case isTableBoundary(prev, curr):
			result = prev + "\n" + curr
		case !endsSentence(prev) && startsLowercase(curr):
			result = prev + " " + curr
		default:
			result += "\n\n" + curr
		}
	}
	return result
}

// isTableBoundary reports whether prev ends in a table row and curr starts
// with one. prev and curr must already be trimmed.
func isTableBoundary(prev, curr string) bool {
	prevLines := strings.Split(prev, "\n")
	lastLine := strings.TrimSpace(prevLines[len(prevLines)-1])
	if !strings.HasPrefix(lastLine, "|") {
		return false
	}
	firstLine := strings.SplitN(curr, "\n", 2)[0]
	return strings.Contains(firstLine, "|")
}

func endsSentence(s string) bool {
	runes := []rune(s)
	last := runes[len(runes)-1]
	return strings.ContainsRune(sentenceEnders, last)
}

func startsLowercase(s string) bool {
	first := []rune(s)[0]
	return unicode.IsLetter(first) && unicode.IsLower(first)
}

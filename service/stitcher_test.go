package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStitchIdentity(t *testing.T) {
	assert.Equal(t, "", Stitch(nil))
	assert.Equal(t, "", Stitch([]string{}))
	assert.Equal(t, "# Title\n\nbody  ", Stitch([]string{"# Title\n\nbody  "}))
}

func TestStitchParagraphDefault(t *testing.T) {
	got := Stitch([]string{"Hello world.", "Next paragraph starts here."})
	assert.Contains(t, got, "Hello world.\n\nNext paragraph starts here.")
}

func TestStitchSentenceMerge(t *testing.T) {
	got := Stitch([]string{"This sentence continues", "without a capital letter."})
	assert.Equal(t, "This sentence continues without a capital letter.", got)
}

func TestStitchSentenceMergeTrimsBoundaryWhitespace(t *testing.T) {
	got := Stitch([]string{"wrapped mid sentence \n", "  and keeps going."})
	assert.Equal(t, "wrapped mid sentence and keeps going.", got)
}

func TestStitchTableBoundary(t *testing.T) {
	got := Stitch([]string{
		"Intro.\n\n| a | b |",
		"| c | d |\n\nAfter.",
	})

	assert.Contains(t, got, "| a | b |\n| c | d |",
		"table rows must be on separate lines with no blank line between them")
	assert.NotContains(t, got, "| a | b || c | d |")
}

func TestStitchCJKSentenceEnder(t *testing.T) {
	// A CJK full stop ends the sentence, so the lowercase start of the next
	// chunk still gets a paragraph break.
	got := Stitch([]string{"これで終わり。", "next chunk"})
	assert.Equal(t, "これで終わり。\n\nnext chunk", got)
}

func TestStitchUppercaseStartGetsParagraphBreak(t *testing.T) {
	got := Stitch([]string{"no ending punctuation", "But an uppercase start."})
	assert.Equal(t, "no ending punctuation\n\nBut an uppercase start.", got)
}

func TestStitchBlankChunkFallsBackToParagraphJoin(t *testing.T) {
	got := Stitch([]string{"First.", "   ", "third"})
	assert.True(t, strings.HasPrefix(got, "First."))
	assert.Contains(t, got, "third")
}

func TestStitchOrderPreserved(t *testing.T) {
	got := Stitch([]string{"One.", "Two.", "Three."})
	assert.Less(t, strings.Index(got, "One."), strings.Index(got, "Two."))
	assert.Less(t, strings.Index(got, "Two."), strings.Index(got, "Three."))
}

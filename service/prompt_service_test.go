package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPromptMissingFileUsesDefault(t *testing.T) {
	got := LoadPrompt(filepath.Join(t.TempDir(), "nope.md"))
	assert.Equal(t, DefaultPrompt, got)
}

func TestLoadPromptTrimsFileContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt_v4.md")
	require.NoError(t, os.WriteFile(path, []byte("\nConvert carefully.\n\n"), 0644))

	assert.Equal(t, "Convert carefully.", LoadPrompt(path))
}

func TestFillPromptTemplateSubstitutesAllPlaceholders(t *testing.T) {
	template := "ctx={PREV_CONTEXT} doc={PDF_CONTENT} ctx2={PREVIOUS_CONTEXT} doc2={CURRENT_PDF_CONTENT}"

	got := FillPromptTemplate(template, "tail of previous", "--- Page 3 ---\nbody")

	assert.Equal(t, "ctx=tail of previous doc=--- Page 3 ---\nbody ctx2=tail of previous doc2=--- Page 3 ---\nbody", got)
}

func TestFillPromptTemplateFirstChunkSentinel(t *testing.T) {
	got := FillPromptTemplate("ctx={PREV_CONTEXT}", "", "text")

	// The first chunk's context must be distinguishable from an empty
	// previous output.
	assert.Equal(t, "ctx="+NoPreviousContext, got)
}

func TestListPromptFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"prompt_v4.md", "prompt_tables.md", "README.md", "prompt.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	got := ListPromptFiles(dir)

	assert.ElementsMatch(t, []string{"prompt_v4.md", "prompt_tables.md"}, got)
}

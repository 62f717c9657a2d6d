package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tieubaoca/pdf2md/types"
)

func TestBuildChunkText(t *testing.T) {
	pages := []types.Page{
		{Number: 3, Text: "third page body"},
		{Number: 4, Text: "fourth page body"},
	}

	got := BuildChunkText(pages)

	assert.Equal(t, "\n--- Page 3 ---\nthird page body\n\n--- Page 4 ---\nfourth page body\n", got)
}

func TestBuildChunkTextEmptyRange(t *testing.T) {
	assert.Equal(t, "", BuildChunkText(nil))
	assert.Equal(t, "", BuildChunkText([]types.Page{}))
}

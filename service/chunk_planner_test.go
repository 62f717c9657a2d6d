package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tieubaoca/pdf2md/types"
)

func TestPlanChunksCoversAllPages(t *testing.T) {
	for totalPages := 1; totalPages <= 50; totalPages++ {
		for chunkSize := 1; chunkSize <= 7; chunkSize++ {
			ranges := PlanChunks(totalPages, chunkSize)

			wantCount := (totalPages + chunkSize - 1) / chunkSize
			assert.Len(t, ranges, wantCount, "totalPages=%d chunkSize=%d", totalPages, chunkSize)

			next := 0
			for i, r := range ranges {
				assert.Equal(t, next, r.Start, "range %d not contiguous (totalPages=%d chunkSize=%d)", i, totalPages, chunkSize)
				assert.GreaterOrEqual(t, r.End, r.Start)
				assert.Equal(t, i+1, r.Seq)
				assert.Equal(t, wantCount, r.Total)
				next = r.End + 1
			}
			assert.Equal(t, totalPages, next, "ranges must cover exactly [0, totalPages-1]")
		}
	}
}

func TestPlanChunksLastRangeIsShort(t *testing.T) {
	ranges := PlanChunks(5, 2)

	assert.Equal(t, []types.ChunkRange{
		{Start: 0, End: 1, Seq: 1, Total: 3},
		{Start: 2, End: 3, Seq: 2, Total: 3},
		{Start: 4, End: 4, Seq: 3, Total: 3},
	}, ranges)
}

func TestPlanChunksDegenerate(t *testing.T) {
	assert.Empty(t, PlanChunks(0, 2))
	assert.Empty(t, PlanChunks(-1, 2))
	assert.Empty(t, PlanChunks(10, 0))
}

func TestShouldChunkAutoThreshold(t *testing.T) {
	// The boundary is strictly greater than 10 pages.
	assert.False(t, ShouldChunk(types.ChunkingAuto, 10))
	assert.True(t, ShouldChunk(types.ChunkingAuto, 11))
}

func TestShouldChunkExplicitModes(t *testing.T) {
	assert.True(t, ShouldChunk(types.ChunkingForced, 1))
	assert.False(t, ShouldChunk(types.ChunkingDisabled, 1000))
}

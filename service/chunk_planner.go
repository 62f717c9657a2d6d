package service

import "github.com/tieubaoca/pdf2md/types"

// AutoChunkPageThreshold is the page count above which auto mode enables
// chunking. Documents at or below the threshold are converted in one shot.
const AutoChunkPageThreshold = 10

// PlanChunks partitions totalPages into contiguous, non-overlapping ranges
// of at most chunkSize pages, in ascending order. A non-positive page count
// yields no ranges; the caller short-circuits with an empty document.
func PlanChunks(totalPages, chunkSize int) []types.ChunkRange {
	if totalPages <= 0 || chunkSize <= 0 {
		return nil
	}

	total := (totalPages + chunkSize - 1) / chunkSize
	ranges := make([]types.ChunkRange, 0, total)
	for i := 0; i < total; i++ {
		start := i * chunkSize
		end := start + chunkSize - 1
		if end > totalPages-1 {
			end = totalPages - 1
		}
		ranges = append(ranges, types.ChunkRange{
			Start: start,
			End:   end,
			Seq:   i + 1,
			Total: total,
		})
	}
	return ranges
}

// ShouldChunk decides the whole-document chunking policy. Auto mode enables
// chunking strictly above AutoChunkPageThreshold pages.
func ShouldChunk(mode types.ChunkingMode, totalPages int) bool {
	switch mode {
	case types.ChunkingForced:
		return true
	case types.ChunkingDisabled:
		return false
	default:
		return totalPages > AutoChunkPageThreshold
	}
}

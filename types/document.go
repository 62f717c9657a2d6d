package types

// Page holds the extracted text of a single PDF page.
type Page struct {
	Number int    // 1-based page number
	Text   string // Extracted text, never empty once returned by the extractor
}

// ChunkRange is a contiguous, non-overlapping range of page indices
// processed as one model request. Indices are 0-based and inclusive.
type ChunkRange struct {
	Start int // First page index in the range
	End   int // Last page index in the range, inclusive
	Seq   int // 1-based chunk number, for progress reporting
	Total int // Total number of chunks in the plan
}

// ChunkResult is the Markdown produced for one chunk.
type ChunkResult struct {
	Seq      int
	Markdown string
}

// ChunkingMode controls whether large documents are split into chunks.
type ChunkingMode string

const (
	ChunkingAuto     ChunkingMode = "auto"  // enable above the page threshold
	ChunkingForced   ChunkingMode = "force" // always chunk
	ChunkingDisabled ChunkingMode = "off"   // never chunk
)

// ConvertOptions carries everything one conversion run needs. It is built
// once per run from flags/config and passed in; core logic reads no globals.
type ConvertOptions struct {
	PromptTemplate string
	Model          string
	Stream         bool
	ChunkSize      int
	Chunking       ChunkingMode
}

// ConversionProgress is reported once per chunk (and once on completion).
type ConversionProgress struct {
	Status          string  `json:"status"`
	Message         string  `json:"message"`
	Progress        float64 `json:"progress"`
	TotalChunks     int     `json:"total_chunks"`
	ProcessedChunks int     `json:"processed_chunks"`
}

// StreamHandler receives incremental text fragments from a streaming
// model response.
type StreamHandler func(fragment string)

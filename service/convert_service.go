package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tieubaoca/pdf2md/types"
)

// ConvertService drives one conversion run: it decides the chunking policy,
// sequences chunk requests through the AI collaborator, carries context
// between chunks, and stitches the outputs. Chunks run strictly one after
// another because chunk i+1's prompt depends on chunk i's output.
type ConvertService struct {
	ai  AIService
	pdf PageExtractor
}

func NewConvertService(ai AIService, pdf PageExtractor) *ConvertService {
	return &ConvertService{
		ai:  ai,
		pdf: pdf,
	}
}

// ConvertFile converts one PDF to a Markdown document. A chunk whose
// retries are exhausted is logged and skipped; only setup failures (the
// document cannot be opened) abort the run. progress may be nil.
func (s *ConvertService) ConvertFile(ctx context.Context, pdfPath string, opts types.ConvertOptions, progress func(types.ConversionProgress)) (string, error) {
	if progress == nil {
		progress = func(types.ConversionProgress) {}
	}

	totalPages, err := s.pdf.PageCount(pdfPath)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	if totalPages == 0 {
		log.Printf("Warning: %s has no pages", pdfPath)
		return "", nil
	}

	if ShouldChunk(opts.Chunking, totalPages) && opts.ChunkSize > 0 {
		return s.convertChunked(ctx, pdfPath, totalPages, opts, progress)
	}
	return s.convertSingleShot(ctx, pdfPath, opts, progress)
}

// convertChunked iterates planner ranges in order, feeding each successful
// chunk's tail into the next chunk's prompt.
func (s *ConvertService) convertChunked(ctx context.Context, pdfPath string, totalPages int, opts types.ConvertOptions, progress func(types.ConversionProgress)) (string, error) {
	ranges := PlanChunks(totalPages, opts.ChunkSize)
	pdfData := s.loadPDFBytes(pdfPath)

	var chunks []string
	prevContext := ""

	for _, rng := range ranges {
		progress(types.ConversionProgress{
			Status:          "processing",
			Message:         fmt.Sprintf("Processing chunk %d/%d (pages %d-%d)", rng.Seq, rng.Total, rng.Start+1, rng.End+1),
			Progress:        float64(rng.Seq-1) / float64(rng.Total),
			TotalChunks:     rng.Total,
			ProcessedChunks: rng.Seq - 1,
		})

		markdown, err := withRetry(ctx, func() (string, error) {
			return s.convertChunk(ctx, pdfPath, rng, prevContext, pdfData, opts)
		})
		if err != nil {
			// Skip the failed range and keep going; the run must not abort.
			log.Printf("Error processing chunk %d/%d: %v", rng.Seq, rng.Total, err)
			continue
		}
		if markdown == "" {
			log.Printf("Warning: empty result for chunk %d/%d", rng.Seq, rng.Total)
			continue
		}

		chunks = append(chunks, markdown)
		prevContext = TailContext(markdown)
	}

	if len(chunks) == 0 {
		log.Printf("Warning: no chunks were successfully processed for %s", pdfPath)
		return "", nil
	}

	result := Stitch(chunks)
	progress(types.ConversionProgress{
		Status:          "completed",
		Message:         fmt.Sprintf("Conversion completed, total chunks: %d", len(chunks)),
		Progress:        1,
		TotalChunks:     len(ranges),
		ProcessedChunks: len(ranges),
	})
	return result, nil
}

// convertChunk builds the chunk request and performs one collaborator call.
// It mutates no shared state; retries re-enter it from scratch.
func (s *ConvertService) convertChunk(ctx context.Context, pdfPath string, rng types.ChunkRange, prevContext string, pdfData []byte, opts types.ConvertOptions) (string, error) {
	pages, err := s.pdf.ExtractPageRange(pdfPath, rng.Start, rng.End)
	if err != nil {
		return "", fmt.Errorf("extract pages %d-%d: %w", rng.Start+1, rng.End+1, err)
	}

	chunkText := BuildChunkText(pages)
	if chunkText == "" {
		// Nothing extractable in this range; a normal outcome, not an error.
		return "", nil
	}

	prompt := FillPromptTemplate(opts.PromptTemplate, prevContext, chunkText)
	return s.ai.Generate(ctx, prompt, pdfData)
}

// convertSingleShot sends the whole document in one request, streaming by
// default so long documents do not hit request timeouts.
func (s *ConvertService) convertSingleShot(ctx context.Context, pdfPath string, opts types.ConvertOptions, progress func(types.ConversionProgress)) (string, error) {
	prompt := opts.PromptTemplate + "\n\nPlease convert the following PDF to Markdown:"
	pdfData := s.loadPDFBytes(pdfPath)

	if opts.Stream {
		var b strings.Builder
		err := s.ai.GenerateStream(ctx, prompt, pdfData, func(fragment string) {
			b.WriteString(fragment)
			progress(types.ConversionProgress{Status: "streaming", Message: "."})
		})
		if err != nil {
			return "", err
		}
		progress(types.ConversionProgress{Status: "completed", Progress: 1})
		return b.String(), nil
	}

	markdown, err := s.ai.Generate(ctx, prompt, pdfData)
	if err != nil {
		return "", err
	}
	progress(types.ConversionProgress{Status: "completed", Progress: 1})
	return markdown, nil
}

// loadPDFBytes reads the original document so chunk requests can attach it
// as auxiliary content. Failure to read is a warning, not an error: the
// extracted text in the prompt still carries the conversion.
func (s *ConvertService) loadPDFBytes(pdfPath string) []byte {
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		log.Printf("Warning: could not load PDF for grounding: %v", err)
		return nil
	}
	return data
}

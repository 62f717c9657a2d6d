package service

import (
	"context"

	"github.com/tieubaoca/pdf2md/types"
)

// AIService is the contract consumed by the conversion pipeline: given a
// prompt and an optional PDF attachment, produce generated text. Transport,
// authentication and provider quirks live behind this interface. Any error
// is treated as retryable by the caller.
type AIService interface {
	// Generate performs one blocking generation call.
	Generate(ctx context.Context, prompt string, pdfData []byte) (string, error)

	// GenerateStream yields partial text fragments through handler and
	// returns once the stream is complete. A retry must restart the whole
	// stream; there is no mid-stream resume.
	GenerateStream(ctx context.Context, prompt string, pdfData []byte, handler types.StreamHandler) error
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/tieubaoca/pdf2md/types"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiService implements AIService on top of the Gemini API. Requests may
// carry the raw PDF bytes as an application/pdf part next to the prompt so
// the model can ground its answer on the original layout.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
	cfg    types.GenerateConfig
}

func NewGeminiService(ctx context.Context, apiKey, baseURL string, cfg types.GenerateConfig) (*GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("no API key provided")
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithEndpoint(baseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	if cfg.Temperature > 0 {
		model.SetTemperature(cfg.Temperature)
	}

	return &GeminiService{
		client: client,
		model:  model,
		cfg:    cfg,
	}, nil
}

func (s *GeminiService) Generate(ctx context.Context, prompt string, pdfData []byte) (string, error) {
	resp, err := s.model.GenerateContent(ctx, buildParts(prompt, pdfData)...)
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

func (s *GeminiService) GenerateStream(ctx context.Context, prompt string, pdfData []byte, handler types.StreamHandler) error {
	iter := s.model.GenerateContentStream(ctx, buildParts(prompt, pdfData)...)
	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					handler(string(text))
				}
			}
		}
	}
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

// buildParts puts the PDF attachment first, matching the order the API
// handles best for document grounding.
func buildParts(prompt string, pdfData []byte) []genai.Part {
	parts := make([]genai.Part, 0, 2)
	if len(pdfData) > 0 {
		parts = append(parts, genai.Blob{MIMEType: "application/pdf", Data: pdfData})
	}
	parts = append(parts, genai.Text(prompt))
	return parts
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}
	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}

package service

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/tieubaoca/pdf2md/types"
)

// PDFService extracts page text from PDF files using go-fitz (MuPDF).
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// PageExtractor is the collaborator contract the conversion pipeline
// consumes; PDFService is the production implementation.
type PageExtractor interface {
	PageCount(path string) (int, error)
	ExtractPageRange(path string, start, end int) ([]types.Page, error)
}

// PageCount returns the number of pages in the document.
func (s *PDFService) PageCount(path string) (int, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()
	return doc.NumPage(), nil
}

// ExtractPages returns the text of every page, skipping pages with no
// extractable text.
func (s *PDFService) ExtractPages(path string) ([]types.Page, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()
	return extractRange(doc, 0, doc.NumPage()-1)
}

// ExtractPageRange returns the text of pages [start, end] (0-based,
// inclusive), skipping pages with no extractable text. Indices past the end
// of the document are ignored.
func (s *PDFService) ExtractPageRange(path string, start, end int) ([]types.Page, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if last := doc.NumPage() - 1; end > last {
		end = last
	}
	return extractRange(doc, start, end)
}

func extractRange(doc *fitz.Document, start, end int) ([]types.Page, error) {
	var pages []types.Page
	for i := start; i <= end; i++ {
		text, err := doc.Text(i)
		if err != nil {
			// Skip unreadable pages instead of failing the document.
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, types.Page{Number: i + 1, Text: text})
	}
	return pages, nil
}

// BuildChunkText concatenates page texts with a human-readable page marker
// so the model can keep track of page boundaries. Returns "" when the range
// contained no extractable text.
func BuildChunkText(pages []types.Page) string {
	var b strings.Builder
	for _, p := range pages {
		fmt.Fprintf(&b, "\n--- Page %d ---\n", p.Number)
		b.WriteString(p.Text)
		b.WriteString("\n")
	}
	return b.String()
}

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputFileName derives the Markdown artifact name from the input's base
// name: "report.pdf" becomes "report.md".
func OutputFileName(pdfPath string) string {
	base := filepath.Base(pdfPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".md"
}

// OutputPath resolves where the Markdown for pdfPath is written. An empty
// outputDir places it next to the input.
func OutputPath(pdfPath, outputDir string) string {
	if outputDir == "" {
		outputDir = filepath.Dir(pdfPath)
	}
	return filepath.Join(outputDir, OutputFileName(pdfPath))
}

// SaveMarkdown persists the conversion result, overwriting any existing
// file at the path.
func SaveMarkdown(content, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}
	return nil
}

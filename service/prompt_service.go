package service

import (
	"log"
	"os"
	"strings"
)

// DefaultPrompt is used when no prompt template file is available.
const DefaultPrompt = "Convert the following PDF content to well-formatted Markdown:"

// Placeholder tokens recognized in prompt templates. They are substituted
// verbatim; templates use no escaping or templating language.
const (
	PlaceholderPrevContext     = "{PREV_CONTEXT}"
	PlaceholderPDFContent      = "{PDF_CONTENT}"
	PlaceholderPreviousContext = "{PREVIOUS_CONTEXT}"
	PlaceholderCurrentContent  = "{CURRENT_PDF_CONTENT}"
)

// LoadPrompt reads a prompt template file, falling back to DefaultPrompt
// with a warning when the file does not exist.
func LoadPrompt(promptFile string) string {
	data, err := os.ReadFile(promptFile)
	if err != nil {
		log.Printf("Warning: %s not found, using default prompt", promptFile)
		return DefaultPrompt
	}
	return strings.TrimSpace(string(data))
}

// FillPromptTemplate substitutes the carried context and the current chunk
// text into the template's placeholder tokens. An empty prevContext is
// replaced by the first-chunk sentinel.
func FillPromptTemplate(template, prevContext, chunkText string) string {
	if prevContext == "" {
		prevContext = NoPreviousContext
	}
	prompt := strings.ReplaceAll(template, PlaceholderPrevContext, prevContext)
	prompt = strings.ReplaceAll(prompt, PlaceholderPDFContent, chunkText)
	prompt = strings.ReplaceAll(prompt, PlaceholderPreviousContext, prevContext)
	prompt = strings.ReplaceAll(prompt, PlaceholderCurrentContent, chunkText)
	return prompt
}

// ListPromptFiles returns prompt template files (prompt*.md) in dir, for the
// web UI's template picker.
func ListPromptFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var prompts []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "prompt") && strings.HasSuffix(name, ".md") {
			prompts = append(prompts, name)
		}
	}
	return prompts
}

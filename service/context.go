package service

// ContextCharLimit bounds the trailing window of previous output carried
// into the next chunk's prompt.
const ContextCharLimit = 500

// NoPreviousContext is the sentinel substituted for the first chunk so the
// prompt can tell "first chunk" apart from "previous chunk produced no text".
const NoPreviousContext = "(No previous context - this is the first chunk)"

// TailContext returns the trailing ContextCharLimit characters of markdown.
// The window is rune-based so multi-byte output is never cut mid-character.
func TailContext(markdown string) string {
	runes := []rune(markdown)
	if len(runes) <= ContextCharLimit {
		return markdown
	}
	return string(runes[len(runes)-ContextCharLimit:])
}

package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTailContextShortInputUnchanged(t *testing.T) {
	assert.Equal(t, "", TailContext(""))
	assert.Equal(t, "short output", TailContext("short output"))

	exact := strings.Repeat("x", ContextCharLimit)
	assert.Equal(t, exact, TailContext(exact))
}

func TestTailContextBounded(t *testing.T) {
	long := strings.Repeat("a", 300) + strings.Repeat("b", 300)
	got := TailContext(long)

	assert.Len(t, []rune(got), ContextCharLimit)
	assert.Equal(t, strings.Repeat("a", 200)+strings.Repeat("b", 300), got)
}

func TestTailContextRuneBoundary(t *testing.T) {
	// Multi-byte output must not be cut mid-character.
	long := strings.Repeat("表", ContextCharLimit+10)
	got := TailContext(long)

	assert.Len(t, []rune(got), ContextCharLimit)
	assert.Equal(t, strings.Repeat("表", ContextCharLimit), got)
}

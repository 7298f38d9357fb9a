package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextShortInputIsOneChunk(t *testing.T) {
	chunks := ChunkText("hello world", 1000, 200)
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello world", chunks[0])
}

func TestChunkTextEmptyInput(t *testing.T) {
	assert.Nil(t, ChunkText("", 1000, 200))
	assert.Nil(t, ChunkText("   \n\t  ", 1000, 200))
}

func TestChunkTextWindowsOverlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 30) // 300 chars
	chunks := ChunkText(text, 100, 20)

	require.Greater(t, len(chunks), 1)
	for i := 0; i < len(chunks)-1; i++ {
		assert.LessOrEqual(t, len(chunks[i]), 100)
		// Consecutive windows share the configured overlap.
		tail := chunks[i][len(chunks[i])-20:]
		assert.True(t, strings.HasPrefix(chunks[i+1], tail),
			"chunk %d should start with the tail of chunk %d", i+1, i)
	}
}

func TestChunkTextDeterministic(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 50)

	first := ChunkText(text, 1000, 200)
	second := ChunkText(text, 1000, 200)
	assert.Equal(t, first, second)
}

func TestChunkTextRuneSafe(t *testing.T) {
	text := strings.Repeat("日本語のテキスト", 100)
	chunks := ChunkText(text, 50, 10)

	require.NotEmpty(t, chunks)
	for _, c := range chunks {
		// No chunk may split a rune in half.
		assert.True(t, strings.HasPrefix(text, "日本語"), "sanity")
		assert.NotContains(t, c, string(rune(0xFFFD)))
	}
}

func TestChunkSourceAssignsSequentialIndices(t *testing.T) {
	text := strings.Repeat("x", 250)
	chunks := chunkSource(text, SourceText, "manual", 100, 20)

	require.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, SourceText, c.SourceType)
		assert.Equal(t, "manual", c.SourceRef)
	}
}

func TestFormatFAQ(t *testing.T) {
	chunk := FormatFAQ(FAQ{Question: " What is the refund window? ", Answer: "30 days from delivery."})
	assert.Equal(t, "Q: What is the refund window?\nA: 30 days from delivery.", chunk)
}

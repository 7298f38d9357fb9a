// Package ingest is the knowledge ingestion pipeline: it normalizes PDF, URL,
// FAQ and raw-text sources into chunk sequences, embeds them, and indexes the
// vectors under the owning agent's filter. Ingestion runs detached from the
// HTTP request that triggered it, on a bounded worker queue.
package ingest

import (
	"fmt"
	"strings"
)

// Chunk is one unit of indexable text. Indices are deterministic: the same
// source always yields the same (index, text) pairs.
type Chunk struct {
	Text       string
	SourceType string
	SourceRef  string
	Index      int
}

// FAQ is one question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ChunkText splits text into overlapping character windows. Windows are
// rune-safe; the step is size minus overlap, so consecutive chunks share the
// configured overlap. Leading and trailing whitespace is trimmed per chunk;
// empty chunks are dropped.
func ChunkText(text string, size, overlap int) []string {
	if size <= 0 {
		return nil
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= size {
		return []string{string(runes)}
	}

	step := size - overlap
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
	}
	return chunks
}

// chunkSource wraps ChunkText output with source metadata.
func chunkSource(text, sourceType, sourceRef string, size, overlap int) []Chunk {
	parts := ChunkText(text, size, overlap)
	chunks := make([]Chunk, 0, len(parts))
	for i, p := range parts {
		chunks = append(chunks, Chunk{
			Text:       p,
			SourceType: sourceType,
			SourceRef:  sourceRef,
			Index:      i,
		})
	}
	return chunks
}

// FormatFAQ renders one question/answer pair as a retrieval chunk.
func FormatFAQ(f FAQ) string {
	return fmt.Sprintf("Q: %s\nA: %s", strings.TrimSpace(f.Question), strings.TrimSpace(f.Answer))
}

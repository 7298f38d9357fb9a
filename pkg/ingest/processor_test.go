package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/pkg/config"
)

func testProcessor() *Processor {
	return NewProcessor(&config.IngestConfig{
		ChunkSize:       1000,
		ChunkOverlap:    200,
		URLFetchTimeout: 2 * time.Second,
		EmbedBatchSize:  64,
	})
}

func TestProcessFAQ(t *testing.T) {
	p := testProcessor()

	chunks := p.ProcessFAQ([]FAQ{
		{Question: "What is the refund policy?", Answer: "30 days."},
		{Question: "Do you ship internationally?", Answer: "Yes, worldwide."},
	}, "faq-upload")

	require.Len(t, chunks, 2)
	assert.Equal(t, "Q: What is the refund policy?\nA: 30 days.", chunks[0].Text)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, 1, chunks[1].Index)
	assert.Equal(t, SourceFAQ, chunks[0].SourceType)
}

func TestProcessText(t *testing.T) {
	p := testProcessor()

	chunks := p.ProcessText("Our refund window is 30 days from delivery.", "manual")
	require.Len(t, chunks, 1)
	assert.Equal(t, SourceText, chunks[0].SourceType)
	assert.Equal(t, "manual", chunks[0].SourceRef)
}

func TestProcessURLExtractsMainContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html>
			<head><title>Acme</title><script>var tracking = true;</script>
			<style>body { color: red; }</style></head>
			<body>
			<nav><a href="/">Home</a><a href="/about">About</a></nav>
			<main><h1>Refund policy</h1><p>Our refund window is 30 days from delivery.</p></main>
			<footer>Copyright Acme</footer>
			</body></html>`))
	}))
	defer srv.Close()

	p := testProcessor()
	chunks, err := p.ProcessURL(context.Background(), srv.URL)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	text := chunks[0].Text
	assert.Contains(t, text, "30 days from delivery")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Home")
	assert.NotContains(t, text, "Copyright")
}

func TestProcessURLRejectsNonTextContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte{0x1, 0x2, 0x3})
	}))
	defer srv.Close()

	p := testProcessor()
	_, err := p.ProcessURL(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestProcessURLRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	p := testProcessor()
	_, err := p.ProcessURL(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestProcessPDFRejectsGarbage(t *testing.T) {
	p := testProcessor()
	_, err := p.ProcessPDF([]byte("definitely not a pdf"), "broken.pdf")
	require.Error(t, err)
}

func TestExtractMainTextCollapsesWhitespace(t *testing.T) {
	text := extractMainText([]byte("<p>one</p>\n\n  <p>two\tthree</p>"))
	assert.Equal(t, "one two three", text)
}

package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"

	"github.com/merxlab/merx/pkg/config"
	"github.com/merxlab/merx/pkg/version"
)

// Source type labels, stored on training rows and vector payloads.
const (
	SourcePDF  = "pdf"
	SourceURL  = "url"
	SourceFAQ  = "faq"
	SourceText = "text"
)

// Processor normalizes raw source material into chunk sequences.
type Processor struct {
	cfg  *config.IngestConfig
	http *http.Client
}

// NewProcessor creates a document processor.
func NewProcessor(cfg *config.IngestConfig) *Processor {
	return &Processor{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.URLFetchTimeout,
		},
	}
}

// ExtractPDFText extracts text page by page. Pages that fail to parse or
// carry no extractable text are dropped.
func (p *Processor) ExtractPDFText(data []byte, filename string) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf %q: %w", filename, err)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A bad page must not sink the document.
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("pdf %q contains no extractable text", filename)
	}
	return sb.String(), nil
}

// ProcessPDF extracts a PDF's text and chunks it.
func (p *Processor) ProcessPDF(data []byte, filename string) ([]Chunk, error) {
	text, err := p.ExtractPDFText(data, filename)
	if err != nil {
		return nil, err
	}
	return chunkSource(text, SourcePDF, filename, p.cfg.ChunkSize, p.cfg.ChunkOverlap), nil
}

// ProcessURL fetches a single page and chunks its main textual content.
func (p *Processor) ProcessURL(ctx context.Context, url string) ([]Chunk, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %q: %w", url, err)
	}
	req.Header.Set("User-Agent", version.Full())

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %q: unexpected status %d", url, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "text/html") && !strings.Contains(contentType, "text/plain") {
		return nil, fmt.Errorf("fetch %q: unsupported content type %q", url, contentType)
	}

	// Cap the body read; a page that large is not knowledge material.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", url, err)
	}

	var text string
	if strings.Contains(contentType, "text/html") {
		text = extractMainText(body)
	} else {
		text = string(body)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("url %q contains no extractable text", url)
	}

	return chunkSource(text, SourceURL, url, p.cfg.ChunkSize, p.cfg.ChunkOverlap), nil
}

// ProcessFAQ renders each question/answer pair as one chunk.
func (p *Processor) ProcessFAQ(faqs []FAQ, sourceRef string) []Chunk {
	chunks := make([]Chunk, 0, len(faqs))
	for i, f := range faqs {
		chunks = append(chunks, Chunk{
			Text:       FormatFAQ(f),
			SourceType: SourceFAQ,
			SourceRef:  sourceRef,
			Index:      i,
		})
	}
	return chunks
}

// ProcessText chunks raw text.
func (p *Processor) ProcessText(text, sourceRef string) []Chunk {
	return chunkSource(text, SourceText, sourceRef, p.cfg.ChunkSize, p.cfg.ChunkOverlap)
}

// skippedElements are HTML elements whose subtree carries no main content.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"iframe":   true,
	"svg":      true,
}

// extractMainText walks the HTML token stream collecting text nodes outside
// of script/style/navigation subtrees, collapsing whitespace runs.
func extractMainText(body []byte) string {
	tokenizer := html.NewTokenizer(bytes.NewReader(body))

	var sb strings.Builder
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return collapseWhitespace(sb.String())
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skippedElements[string(name)] {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skippedElements[string(name)] && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			if text := strings.TrimSpace(string(tokenizer.Text())); text != "" {
				sb.WriteString(text)
				sb.WriteString(" ")
			}
		}
	}
}

// collapseWhitespace folds whitespace runs into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

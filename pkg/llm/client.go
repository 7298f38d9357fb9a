// Package llm is the adapter to an OpenAI-compatible chat + embeddings API.
// It normalizes heterogeneous prompt messages, enforces per-call timeouts and
// in-flight ceilings, and classifies provider failures into typed kinds.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/semaphore"

	"github.com/merxlab/merx/pkg/config"
)

// api captures the subset of the go-openai client used by the adapter.
type api interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateEmbeddings(ctx context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

// Client talks to the language model provider.
type Client struct {
	api api
	cfg *config.LLMConfig

	chatSem  *semaphore.Weighted
	embedSem *semaphore.Weighted
}

// NewClient creates a provider client from configuration.
func NewClient(cfg *config.LLMConfig) (*Client, error) {
	if cfg == nil {
		panic("NewClient: cfg must not be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: api key is required")
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:      openai.NewClientWithConfig(apiCfg),
		cfg:      cfg,
		chatSem:  semaphore.NewWeighted(int64(cfg.ChatMaxConcurrent)),
		embedSem: semaphore.NewWeighted(int64(cfg.EmbedMaxConcurrent)),
	}, nil
}

// ChatRequest is one chat completion call.
type ChatRequest struct {
	Messages    []Message
	MaxTokens   int      // 0 = configured default
	Temperature *float32 // nil = configured default
	JSONOnly    bool     // constrain the response to a JSON object
}

// Chat runs a completion and returns the assistant text. Transient,
// rate-limited and server failures are retried once after a jittered
// backoff; all errors carry an ErrorKind.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if len(req.Messages) == 0 {
		return "", &Error{Kind: KindInvalidRequest, Op: "chat", Err: errors.New("messages are required")}
	}

	if err := c.chatSem.Acquire(ctx, 1); err != nil {
		return "", &Error{Kind: KindTransient, Op: "chat", Err: err}
	}
	defer c.chatSem.Release(1)

	out, err := c.chatOnce(ctx, req)
	if err == nil {
		return out, nil
	}

	if !c.shouldRetry(ctx, err) {
		return "", err
	}

	slog.Info("Chat completion failed, retrying",
		"model", c.cfg.ChatModel,
		"kind", KindOf(err),
		"error", err)

	if rerr := sleepWithJitter(ctx); rerr != nil {
		return "", err
	}

	out, err = c.chatOnce(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat retry failed: %w", err)
	}
	return out, nil
}

func (c *Client) chatOnce(ctx context.Context, req ChatRequest) (string, error) {
	opCtx, cancel := context.WithTimeout(ctx, c.cfg.ChatTimeout)
	defer cancel()

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.cfg.MaxTokens
	}
	temperature := c.cfg.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		m.normalize()
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	request := openai.ChatCompletionRequest{
		Model:       c.cfg.ChatModel,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	if req.JSONOnly {
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(opCtx, request)
	if err != nil {
		return "", &Error{Kind: classify(err), Op: "chat", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Kind: KindServer, Op: "chat", Err: errors.New("response contains no choices")}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Embed returns the embedding vector for one text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch embeds texts in one provider call, preserving input order.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	if err := c.embedSem.Acquire(ctx, 1); err != nil {
		return nil, &Error{Kind: KindTransient, Op: "embed", Err: err}
	}
	defer c.embedSem.Release(1)

	out, err := c.embedOnce(ctx, texts)
	if err == nil {
		return out, nil
	}

	if !c.shouldRetry(ctx, err) {
		return nil, err
	}

	slog.Info("Embedding call failed, retrying",
		"model", c.cfg.EmbedModel,
		"batch_size", len(texts),
		"kind", KindOf(err),
		"error", err)

	if rerr := sleepWithJitter(ctx); rerr != nil {
		return nil, err
	}

	out, err = c.embedOnce(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed retry failed: %w", err)
	}
	return out, nil
}

func (c *Client) embedOnce(ctx context.Context, texts []string) ([][]float32, error) {
	opCtx, cancel := context.WithTimeout(ctx, c.cfg.EmbedTimeout)
	defer cancel()

	resp, err := c.api.CreateEmbeddings(opCtx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(c.cfg.EmbedModel),
	})
	if err != nil {
		return nil, &Error{Kind: classify(err), Op: "embed", Err: err}
	}
	if len(resp.Data) != len(texts) {
		return nil, &Error{
			Kind: KindServer,
			Op:   "embed",
			Err:  fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data)),
		}
	}

	// The provider tags each embedding with its input index.
	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, &Error{
				Kind: KindServer,
				Op:   "embed",
				Err:  fmt.Errorf("embedding index %d out of range", d.Index),
			}
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

// shouldRetry gates the single retry attempt.
func (c *Client) shouldRetry(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	return KindOf(err).Retryable()
}

// sleepWithJitter waits for the jittered backoff or until ctx is done.
func sleepWithJitter(ctx context.Context) error {
	backoff := retryBackoffMin + time.Duration(rand.Int64N(int64(retryBackoffMax-retryBackoffMin)))
	select {
	case <-time.After(backoff):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

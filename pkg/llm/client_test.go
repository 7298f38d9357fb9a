package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"

	"github.com/merxlab/merx/pkg/config"
)

type fakeAPI struct {
	chatCalls  int
	embedCalls int
	lastChat   openai.ChatCompletionRequest

	chatFn  func(call int, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	embedFn func(call int) (openai.EmbeddingResponse, error)
}

func (f *fakeAPI) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.chatCalls++
	f.lastChat = req
	return f.chatFn(f.chatCalls, req)
}

func (f *fakeAPI) CreateEmbeddings(_ context.Context, _ openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error) {
	f.embedCalls++
	return f.embedFn(f.embedCalls)
}

func newTestClient(fake *fakeAPI) *Client {
	return &Client{
		api: fake,
		cfg: &config.LLMConfig{
			APIKey:       "sk-test",
			ChatModel:    "gpt-4o-mini",
			EmbedModel:   "text-embedding-3-small",
			MaxTokens:    200,
			Temperature:  0.7,
			ChatTimeout:  5 * time.Second,
			EmbedTimeout: 5 * time.Second,
		},
		chatSem:  semaphore.NewWeighted(4),
		embedSem: semaphore.NewWeighted(4),
	}
}

func chatResponse(text string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: "assistant", Content: text}},
		},
	}
}

func TestChatNormalizesMessagesAndDefaults(t *testing.T) {
	fake := &fakeAPI{
		chatFn: func(_ int, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return chatResponse("  hello there "), nil
		},
	}
	client := newTestClient(fake)

	out, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{
			System("You are a sales assistant."),
			{Content: "hi"}, // bare content implies the user role
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", out)

	require.Len(t, fake.lastChat.Messages, 2)
	assert.Equal(t, "system", fake.lastChat.Messages[0].Role)
	assert.Equal(t, "user", fake.lastChat.Messages[1].Role)
	assert.Equal(t, "gpt-4o-mini", fake.lastChat.Model)
	assert.Equal(t, 200, fake.lastChat.MaxTokens)
	assert.InDelta(t, 0.7, float64(fake.lastChat.Temperature), 0.0001)
	assert.Nil(t, fake.lastChat.ResponseFormat)
}

func TestChatJSONOnly(t *testing.T) {
	fake := &fakeAPI{
		chatFn: func(_ int, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return chatResponse(`{"name":"Jane"}`), nil
		},
	}
	client := newTestClient(fake)

	_, err := client.Chat(context.Background(), ChatRequest{
		Messages: []Message{User("extract")},
		JSONOnly: true,
	})
	require.NoError(t, err)
	require.NotNil(t, fake.lastChat.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, fake.lastChat.ResponseFormat.Type)
}

func TestChatRetriesOnceOnServerError(t *testing.T) {
	fake := &fakeAPI{
		chatFn: func(call int, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			if call == 1 {
				return openai.ChatCompletionResponse{}, &openai.APIError{HTTPStatusCode: 503}
			}
			return chatResponse("recovered"), nil
		},
	}
	client := newTestClient(fake)

	out, err := client.Chat(context.Background(), ChatRequest{Messages: []Message{User("hi")}})
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.Equal(t, 2, fake.chatCalls)
}

func TestChatDoesNotRetryInvalidRequest(t *testing.T) {
	fake := &fakeAPI{
		chatFn: func(_ int, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return openai.ChatCompletionResponse{}, &openai.APIError{HTTPStatusCode: 400}
		},
	}
	client := newTestClient(fake)

	_, err := client.Chat(context.Background(), ChatRequest{Messages: []Message{User("hi")}})
	require.Error(t, err)
	assert.Equal(t, KindInvalidRequest, KindOf(err))
	assert.Equal(t, 1, fake.chatCalls)
}

func TestChatEmptyChoicesIsServerError(t *testing.T) {
	fake := &fakeAPI{
		chatFn: func(_ int, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return openai.ChatCompletionResponse{}, nil
		},
	}
	client := newTestClient(fake)

	_, err := client.Chat(context.Background(), ChatRequest{Messages: []Message{User("hi")}})
	require.Error(t, err)
	assert.Equal(t, KindServer, KindOf(err))
	// Empty-choice responses are retried like any other server fault.
	assert.Equal(t, 2, fake.chatCalls)
}

func TestChatRequiresMessages(t *testing.T) {
	client := newTestClient(&fakeAPI{})

	_, err := client.Chat(context.Background(), ChatRequest{})
	require.Error(t, err)
	assert.Equal(t, KindInvalidRequest, KindOf(err))
}

func TestEmbedBatchOrdersByIndex(t *testing.T) {
	fake := &fakeAPI{
		embedFn: func(_ int) (openai.EmbeddingResponse, error) {
			return openai.EmbeddingResponse{
				Data: []openai.Embedding{
					{Index: 1, Embedding: []float32{0.2}},
					{Index: 0, Embedding: []float32{0.1}},
				},
			}, nil
		},
	}
	client := newTestClient(fake)

	vectors, err := client.EmbedBatch(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, []float32{0.1}, vectors[0])
	assert.Equal(t, []float32{0.2}, vectors[1])
}

func TestEmbedBatchCountMismatch(t *testing.T) {
	fake := &fakeAPI{
		embedFn: func(_ int) (openai.EmbeddingResponse, error) {
			return openai.EmbeddingResponse{
				Data: []openai.Embedding{{Index: 0, Embedding: []float32{0.1}}},
			}, nil
		},
	}
	client := newTestClient(fake)

	_, err := client.EmbedBatch(context.Background(), []string{"a", "b"})
	require.Error(t, err)
	assert.Equal(t, KindServer, KindOf(err))
}

func TestEmbedBatchEmptyInput(t *testing.T) {
	client := newTestClient(&fakeAPI{})

	vectors, err := client.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vectors)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"401 is auth", &openai.APIError{HTTPStatusCode: 401}, KindAuth},
		{"403 is auth", &openai.APIError{HTTPStatusCode: 403}, KindAuth},
		{"429 is rate limited", &openai.APIError{HTTPStatusCode: 429}, KindRateLimited},
		{"400 is invalid request", &openai.APIError{HTTPStatusCode: 400}, KindInvalidRequest},
		{"500 is server", &openai.APIError{HTTPStatusCode: 500}, KindServer},
		{"request error maps by status", &openai.RequestError{HTTPStatusCode: 502}, KindServer},
		{"deadline is transient", context.DeadlineExceeded, KindTransient},
		{"net error is transient", &net.DNSError{IsTimeout: true}, KindTransient},
		{"unknown is transient", errors.New("boom"), KindTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestRetryableKinds(t *testing.T) {
	assert.True(t, KindTransient.Retryable())
	assert.True(t, KindRateLimited.Retryable())
	assert.True(t, KindServer.Retryable())
	assert.False(t, KindInvalidRequest.Retryable())
	assert.False(t, KindAuth.Retryable())
}

func TestMessageUnmarshal(t *testing.T) {
	var fromString Message
	require.NoError(t, json.Unmarshal([]byte(`"hello"`), &fromString))
	assert.Equal(t, Message{Role: "user", Content: "hello"}, fromString)

	var fromObject Message
	require.NoError(t, json.Unmarshal([]byte(`{"role":"assistant","content":"hi"}`), &fromObject))
	assert.Equal(t, Message{Role: "assistant", Content: "hi"}, fromObject)

	var roleless Message
	require.NoError(t, json.Unmarshal([]byte(`{"content":"hi"}`), &roleless))
	assert.Equal(t, "user", roleless.Role)

	var bad Message
	require.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

package orchestrator

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/pkg/config"
	"github.com/merxlab/merx/pkg/llm"
	"github.com/merxlab/merx/pkg/models"
	"github.com/merxlab/merx/pkg/vector"
)

type fakeModel struct {
	chatCalls  int
	embedCalls int
	lastChat   llm.ChatRequest

	chatFn  func(call int, req llm.ChatRequest) (string, error)
	embedFn func() ([]float32, error)
}

func (f *fakeModel) Chat(_ context.Context, req llm.ChatRequest) (string, error) {
	f.chatCalls++
	f.lastChat = req
	if f.chatFn == nil {
		return "a helpful reply", nil
	}
	return f.chatFn(f.chatCalls, req)
}

func (f *fakeModel) Embed(_ context.Context, _ string) ([]float32, error) {
	f.embedCalls++
	if f.embedFn == nil {
		return []float32{1, 0, 0}, nil
	}
	return f.embedFn()
}

type fakeRetriever struct {
	count       int
	countErr    error
	hits        []vector.Hit
	searchErr   error
	searchCalls int
}

func (f *fakeRetriever) CountByAgent(_ context.Context, _ string) (int, error) {
	return f.count, f.countErr
}

func (f *fakeRetriever) Search(_ context.Context, _ []float32, _ int, _ vector.Filter) ([]vector.Hit, error) {
	f.searchCalls++
	return f.hits, f.searchErr
}

func testConfig() *config.OrchestratorConfig {
	return &config.OrchestratorConfig{
		MaxConversationHistory: 4,
		LeadQualifyMinMessages: 5,
		RetrievalScoreFloor:    0.5,
		RetrievalTopK:          3,
		TurnBudget:             15 * time.Second,
	}
}

func hit(text string, score float64) vector.Hit {
	return vector.Hit{
		ID:    "h",
		Score: score,
		Payload: vector.Payload{
			AgentID: "agent-1",
			Text:    text,
		},
	}
}

func TestTurnGreetingShortCircuit(t *testing.T) {
	model := &fakeModel{}
	retriever := &fakeRetriever{count: 10}
	o := New(model, retriever, testConfig())

	a := testAgent()
	a.GreetingMessage = "Welcome to Acme!"

	result := o.Turn(context.Background(), a, nil, "hi")

	assert.Equal(t, "Welcome to Acme!", result.Reply)
	assert.Equal(t, IntentGreeting, result.Intent)
	// Neither the model nor the index is touched.
	assert.Zero(t, model.chatCalls)
	assert.Zero(t, model.embedCalls)
	assert.Zero(t, retriever.searchCalls)
}

func TestTurnNoGreetingConfiguredGoesThroughPipeline(t *testing.T) {
	model := &fakeModel{}
	o := New(model, &fakeRetriever{count: 0}, testConfig())

	result := o.Turn(context.Background(), testAgent(), nil, "hi")

	assert.Equal(t, "a helpful reply", result.Reply)
	assert.Equal(t, 1, model.chatCalls)
}

func TestTurnZeroVectorsSkipsRetrieval(t *testing.T) {
	model := &fakeModel{}
	retriever := &fakeRetriever{count: 0}
	o := New(model, retriever, testConfig())

	result := o.Turn(context.Background(), testAgent(), historyOf(2), "tell me about your products")

	assert.Empty(t, result.RetrievedContext)
	assert.Zero(t, model.embedCalls, "no embedding call when the agent has no vectors")
	assert.Zero(t, retriever.searchCalls)
	assert.Equal(t, 1, model.chatCalls, "only the generation call runs")
}

func TestTurnRetrievalGroundsTheReply(t *testing.T) {
	model := &fakeModel{}
	retriever := &fakeRetriever{
		count: 5,
		hits: []vector.Hit{
			hit("Our refund window is 30 days from delivery.", 0.91),
			hit("We ship worldwide.", 0.62),
			hit("Low relevance noise.", 0.31),
		},
	}
	o := New(model, retriever, testConfig())

	result := o.Turn(context.Background(), testAgent(), historyOf(2), "What is your refund policy?")

	assert.Contains(t, result.RetrievedContext, "30 days")
	assert.Contains(t, result.RetrievedContext, "worldwide")
	assert.NotContains(t, result.RetrievedContext, "noise", "hits below the score floor are dropped")

	// The grounded context reaches the system prompt.
	require.NotEmpty(t, model.lastChat.Messages)
	assert.Contains(t, model.lastChat.Messages[0].Content, "30 days")
}

func TestTurnRetrievalFailureDegrades(t *testing.T) {
	model := &fakeModel{}
	retriever := &fakeRetriever{count: 5, searchErr: fmt.Errorf("index offline")}
	o := New(model, retriever, testConfig())

	result := o.Turn(context.Background(), testAgent(), historyOf(2), "Tell me about your products")

	assert.Empty(t, result.RetrievedContext)
	assert.Equal(t, "a helpful reply", result.Reply, "turn survives a dead index")
	assert.False(t, result.FallbackUsed)
}

func TestTurnEmbedFailureDegrades(t *testing.T) {
	model := &fakeModel{embedFn: func() ([]float32, error) { return nil, fmt.Errorf("embed down") }}
	retriever := &fakeRetriever{count: 5}
	o := New(model, retriever, testConfig())

	result := o.Turn(context.Background(), testAgent(), historyOf(2), "anything")

	assert.Empty(t, result.RetrievedContext)
	assert.Zero(t, retriever.searchCalls)
	assert.Equal(t, "a helpful reply", result.Reply)
}

func TestTurnGenerationFailureUsesFallback(t *testing.T) {
	model := &fakeModel{chatFn: func(_ int, _ llm.ChatRequest) (string, error) {
		return "", fmt.Errorf("provider outage")
	}}
	o := New(model, &fakeRetriever{count: 0}, testConfig())

	result := o.Turn(context.Background(), testAgent(), historyOf(2), "hello?")

	assert.Equal(t, FallbackReply, result.Reply)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.Reply, "exactly one assistant turn regardless of failures")
}

func TestTurnLeadBelowThresholdSkips(t *testing.T) {
	model := &fakeModel{}
	o := New(model, &fakeRetriever{count: 0}, testConfig())

	// 3 prior messages + incoming = 4 < 5.
	result := o.Turn(context.Background(), testAgent(), historyOf(3), "I'm Jane, jane@example.com, +1-555-1000")

	assert.Nil(t, result.LeadDelta)
	assert.Equal(t, 1, model.chatCalls, "only generation, no extraction call")
}

func TestTurnLeadAtThresholdExtracts(t *testing.T) {
	model := &fakeModel{chatFn: func(call int, req llm.ChatRequest) (string, error) {
		if req.JSONOnly {
			return `{"name": "Jane", "email": "jane@example.com", "phone": "+1-555-1000"}`, nil
		}
		return "a helpful reply", nil
	}}
	o := New(model, &fakeRetriever{count: 0}, testConfig())

	// 4 prior messages + incoming = 5.
	result := o.Turn(context.Background(), testAgent(), historyOf(4), "I'm Jane, jane@example.com, +1-555-1000")

	require.NotNil(t, result.LeadDelta)
	assert.Equal(t, "Jane", result.LeadDelta.Name)
	assert.Equal(t, "jane@example.com", result.LeadDelta.Email)
	assert.Equal(t, "+1-555-1000", result.LeadDelta.Phone)
	assert.Equal(t, 2, model.chatCalls)
}

func TestTurnLeadFailureDiscarded(t *testing.T) {
	model := &fakeModel{chatFn: func(call int, req llm.ChatRequest) (string, error) {
		if req.JSONOnly {
			return "", fmt.Errorf("extraction outage")
		}
		return "a helpful reply", nil
	}}
	o := New(model, &fakeRetriever{count: 0}, testConfig())

	result := o.Turn(context.Background(), testAgent(), historyOf(6), "ok")

	assert.Nil(t, result.LeadDelta)
	assert.Equal(t, "a helpful reply", result.Reply)
}

func TestTurnHistoryWindowLimitsPrompt(t *testing.T) {
	model := &fakeModel{}
	o := New(model, &fakeRetriever{count: 0}, testConfig())

	o.Turn(context.Background(), testAgent(), historyOf(10), "latest question")

	// system + last 4 history turns + incoming user turn.
	require.Len(t, model.lastChat.Messages, 6)
	assert.Equal(t, "system", model.lastChat.Messages[0].Role)
	assert.Equal(t, "latest question", model.lastChat.Messages[5].Content)
	assert.Equal(t, "turn 9", model.lastChat.Messages[4].Content)
}

func TestTurnRecordsStageTimings(t *testing.T) {
	o := New(&fakeModel{}, &fakeRetriever{count: 0}, testConfig())

	result := o.Turn(context.Background(), testAgent(), historyOf(2), "hello")

	for _, stage := range []string{"greeting", "intent", "retrieval", "generate", "lead"} {
		_, ok := result.StageTimings[stage]
		assert.True(t, ok, "stage %q timing missing", stage)
	}
}

func TestTurnExpiredBudgetUsesFallback(t *testing.T) {
	cfg := testConfig()
	cfg.TurnBudget = time.Nanosecond
	model := &fakeModel{}
	o := New(model, &fakeRetriever{count: 0}, cfg)

	result := o.Turn(context.Background(), testAgent(), historyOf(2), "hello")

	assert.Equal(t, FallbackReply, result.Reply)
	assert.True(t, result.FallbackUsed)
}

// historyOf builds n alternating transcript turns.
func historyOf(n int) []models.ChatMessage {
	msgs := make([]models.ChatMessage, n)
	for i := range msgs {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		msgs[i] = models.ChatMessage{Role: role, Content: fmt.Sprintf("turn %d", i), Timestamp: time.Now()}
	}
	return msgs
}

package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/pkg/config"
	"github.com/merxlab/merx/pkg/llm"
	"github.com/merxlab/merx/pkg/models"
	"github.com/merxlab/merx/pkg/vector"
)

// FallbackReply is emitted when generation fails or the turn budget runs
// out. The caller still gets a 200 with this text as the assistant turn.
const FallbackReply = "I'm having trouble right now, please try again shortly."

// ModelClient is the slice of the LLM adapter the pipeline needs.
type ModelClient interface {
	Chat(ctx context.Context, req llm.ChatRequest) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Retriever is the slice of the vector index adapter the pipeline needs.
type Retriever interface {
	Search(ctx context.Context, query []float32, topK int, f vector.Filter) ([]vector.Hit, error)
	CountByAgent(ctx context.Context, agentID string) (int, error)
}

// TurnState is the mutable state threaded through the stages of one turn.
type TurnState struct {
	Agent    *ent.Agent
	Incoming string
	History  []models.ChatMessage

	Intent           Intent
	RetrievedContext string
	ReplyText        string
	LeadDelta        *models.LeadInfo
	FallbackUsed     bool

	StageTimings map[string]time.Duration
}

// TurnResult is what one invocation yields. Reply is always non-empty.
type TurnResult struct {
	Reply            string
	Intent           Intent
	RetrievedContext string
	LeadDelta        *models.LeadInfo
	FallbackUsed     bool
	StageTimings     map[string]time.Duration
}

// Orchestrator runs the staged reply pipeline.
type Orchestrator struct {
	model     ModelClient
	retriever Retriever
	cfg       *config.OrchestratorConfig
}

// New creates the orchestrator.
func New(model ModelClient, retriever Retriever, cfg *config.OrchestratorConfig) *Orchestrator {
	return &Orchestrator{
		model:     model,
		retriever: retriever,
		cfg:       cfg,
	}
}

// Turn executes the pipeline for one inbound message. It never returns an
// error for retrieval or generation failures; those degrade into a reply
// the caller can still persist and return.
func (o *Orchestrator) Turn(ctx context.Context, agent *ent.Agent, history []models.ChatMessage, incoming string) *TurnResult {
	start := time.Now()

	// The whole turn shares one wall-clock budget. If it expires before
	// generation finishes, the fallback reply is used.
	ctx, cancel := context.WithTimeout(ctx, o.cfg.TurnBudget)
	defer cancel()

	state := &TurnState{
		Agent:        agent,
		Incoming:     incoming,
		History:      history,
		StageTimings: make(map[string]time.Duration),
	}

	if o.stageGreeting(state) {
		o.logTurn(state, time.Since(start))
		return state.result()
	}

	o.stageIntent(state)
	o.stageRetrieval(ctx, state)
	o.stageGenerate(ctx, state)
	o.stageLead(ctx, state)

	o.logTurn(state, time.Since(start))
	return state.result()
}

func (s *TurnState) result() *TurnResult {
	return &TurnResult{
		Reply:            s.ReplyText,
		Intent:           s.Intent,
		RetrievedContext: s.RetrievedContext,
		LeadDelta:        s.LeadDelta,
		FallbackUsed:     s.FallbackUsed,
		StageTimings:     s.StageTimings,
	}
}

// stageGreeting short-circuits the first turn of a session: the configured
// greeting is the reply and no model call is made.
func (o *Orchestrator) stageGreeting(state *TurnState) bool {
	defer track(state, "greeting")()

	if len(state.History) > 0 || state.Agent.GreetingMessage == "" {
		return false
	}
	state.Intent = IntentGreeting
	state.ReplyText = state.Agent.GreetingMessage
	return true
}

func (o *Orchestrator) stageIntent(state *TurnState) {
	defer track(state, "intent")()
	state.Intent = ClassifyIntent(state.Incoming)
}

// stageRetrieval embeds the incoming text and searches the agent's indexed
// chunks. Every failure here is swallowed: the turn continues ungrounded.
func (o *Orchestrator) stageRetrieval(ctx context.Context, state *TurnState) {
	defer track(state, "retrieval")()

	count, err := o.retriever.CountByAgent(ctx, state.Agent.ID)
	if err != nil {
		slog.Warn("Vector count check failed, skipping retrieval",
			"agent_id", state.Agent.ID, "error", err)
		return
	}
	if count == 0 {
		return
	}

	queryVector, err := o.model.Embed(ctx, state.Incoming)
	if err != nil {
		slog.Warn("Query embedding failed, continuing without context",
			"agent_id", state.Agent.ID, "error", err)
		return
	}

	hits, err := o.retriever.Search(ctx, queryVector, o.cfg.RetrievalTopK, vector.Filter{AgentID: state.Agent.ID})
	if err != nil {
		slog.Warn("Vector search failed, continuing without context",
			"agent_id", state.Agent.ID, "error", err)
		return
	}

	var parts []string
	total := 0
	for _, h := range hits {
		if h.Score < o.cfg.RetrievalScoreFloor {
			continue
		}
		if total+len(h.Payload.Text) > maxContextChars {
			break
		}
		parts = append(parts, h.Payload.Text)
		total += len(h.Payload.Text)
	}
	state.RetrievedContext = joinContext(parts)
}

// stageGenerate builds the chat prompt and produces the assistant reply. On
// any model failure the fixed fallback is used; the caller never sees an
// error.
func (o *Orchestrator) stageGenerate(ctx context.Context, state *TurnState) {
	defer track(state, "generate")()

	if ctx.Err() != nil {
		state.ReplyText = FallbackReply
		state.FallbackUsed = true
		return
	}

	messages := make([]llm.Message, 0, o.cfg.MaxConversationHistory+2)
	messages = append(messages, llm.System(buildSystemPrompt(state.Agent, state.RetrievedContext)))

	historyStart := len(state.History) - o.cfg.MaxConversationHistory
	if historyStart < 0 {
		historyStart = 0
	}
	for _, m := range state.History[historyStart:] {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llm.User(state.Incoming))

	reply, err := o.model.Chat(ctx, llm.ChatRequest{Messages: messages})
	if err != nil || reply == "" {
		slog.Warn("Reply generation failed, using fallback",
			"agent_id", state.Agent.ID, "error", err)
		state.ReplyText = FallbackReply
		state.FallbackUsed = true
		return
	}
	state.ReplyText = reply
}

// stageLead scans the transcript for contact details once the session is
// long enough. Failures are silently discarded for the turn.
func (o *Orchestrator) stageLead(ctx context.Context, state *TurnState) {
	defer track(state, "lead")()

	// Count includes the incoming user turn.
	if len(state.History)+1 < o.cfg.LeadQualifyMinMessages {
		return
	}
	if ctx.Err() != nil {
		return
	}

	out, err := o.model.Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			llm.System(leadExtractionSystemPrompt),
			llm.User(buildLeadTranscript(state.History, state.Incoming)),
		},
		MaxTokens: 150,
		JSONOnly:  true,
	})
	if err != nil {
		slog.Debug("Lead extraction call failed, discarding for this turn",
			"agent_id", state.Agent.ID, "error", err)
		return
	}

	lead, err := parseLeadJSON(out)
	if err != nil {
		slog.Debug("Lead extraction output rejected",
			"agent_id", state.Agent.ID, "error", err)
		return
	}
	if lead.IsEmpty() {
		return
	}
	state.LeadDelta = &lead
}

func (o *Orchestrator) logTurn(state *TurnState, elapsed time.Duration) {
	timings := make(map[string]int64, len(state.StageTimings))
	for stage, d := range state.StageTimings {
		timings[stage] = d.Milliseconds()
	}
	slog.Info("Turn completed",
		"agent_id", state.Agent.ID,
		"intent", state.Intent,
		"grounded", state.RetrievedContext != "",
		"fallback", state.FallbackUsed,
		"lead_delta", state.LeadDelta != nil,
		"duration_ms", elapsed.Milliseconds(),
		"stage_ms", timings)
}

// track records a stage's wall-clock time into the turn state.
func track(state *TurnState, stage string) func() {
	start := time.Now()
	return func() {
		state.StageTimings[stage] = time.Since(start)
	}
}

func joinContext(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	joined := parts[0]
	for _, p := range parts[1:] {
		joined += "\n\n" + p
	}
	return joined
}

package builder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/merxlab/merx/pkg/models"
)

// Materializer turns a completed accumulator into persisted rows and queued
// ingestion jobs, returning the new agent id.
type Materializer interface {
	Materialize(ctx context.Context, ownerID string, acc *Accumulator) (string, error)
}

// TurnOutput is the engine's answer to one builder turn.
type TurnOutput struct {
	SessionID  string
	Prompt     string
	Phase      Phase
	IsComplete bool
	AgentID    string
}

// Engine drives builder dialogues: one question per turn, deterministic
// parsing of the reply, phase advancement when the phase's minimum is met.
type Engine struct {
	sessions     *Manager
	materializer Materializer
}

// NewEngine creates the builder engine.
func NewEngine(sessions *Manager, materializer Materializer) *Engine {
	return &Engine{
		sessions:     sessions,
		materializer: materializer,
	}
}

// Start opens a new dialogue and returns the first question.
func (e *Engine) Start(ownerID string) TurnOutput {
	session := e.sessions.Create(ownerID)

	prompt := promptForField(session.State.Pending)
	session.mu.Lock()
	session.append(models.RoleAssistant, prompt)
	session.mu.Unlock()

	slog.Info("Builder session started", "session_id", session.ID, "owner_id", ownerID)
	return TurnOutput{
		SessionID: session.ID,
		Prompt:    prompt,
		Phase:     session.State.Phase,
	}
}

// Converse advances the dialogue by one user turn.
func (e *Engine) Converse(ctx context.Context, sessionID, ownerID, message string) (TurnOutput, error) {
	session, err := e.sessions.Get(sessionID, ownerID)
	if err != nil {
		return TurnOutput{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.append(models.RoleUser, message)

	out, err := e.advance(ctx, session, message)
	if err != nil {
		return TurnOutput{}, err
	}

	session.append(models.RoleAssistant, out.Prompt)
	out.SessionID = session.ID
	return out, nil
}

// AttachDocument records an uploaded document's extracted text against the
// dialogue. The ingestion job is created at materialization, once the agent
// the vectors belong to exists.
func (e *Engine) AttachDocument(sessionID, ownerID, filename, text string) error {
	session, err := e.sessions.Get(sessionID, ownerID)
	if err != nil {
		return err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.State.Phase == PhaseComplete {
		return fmt.Errorf("builder session already completed")
	}
	session.State.Accumulator.Training.Files = append(session.State.Accumulator.Training.Files, FileRef{
		Filename: filename,
		Text:     text,
		Status:   "pending",
	})

	slog.Info("Builder document attached", "session_id", sessionID, "filename", filename)
	return nil
}

func (e *Engine) advance(ctx context.Context, session *Session, message string) (TurnOutput, error) {
	state := session.State

	switch state.Phase {
	case PhaseAgentInfo:
		return e.advanceAgentInfo(state, message), nil
	case PhaseProducts:
		return e.advanceProducts(state, message), nil
	case PhaseTraining:
		return e.advanceTraining(ctx, session, message)
	case PhaseComplete:
		return TurnOutput{
			Prompt:     "Your agent is already set up. Start a new session to build another one.",
			Phase:      PhaseComplete,
			IsComplete: true,
			AgentID:    session.AgentID,
		}, nil
	}
	return TurnOutput{}, fmt.Errorf("unknown builder phase %q", state.Phase)
}

// advanceAgentInfo fills the pending field from the reply and moves to the
// next unanswered question, or into the products phase once the required
// fields are present and the optional ones are answered or skipped.
func (e *Engine) advanceAgentInfo(state *State, message string) TurnOutput {
	skipped := isSkip(message)
	if !skipped {
		e.fillField(state, message)
	}

	if skipped && isRequiredField(state.Pending) {
		return TurnOutput{
			Prompt: "I need this one to set up your agent. " + promptForField(state.Pending),
			Phase:  PhaseAgentInfo,
		}
	}

	if next := state.nextAgentInfoField(); next != "" {
		state.Pending = next
		return TurnOutput{Prompt: promptForField(next), Phase: PhaseAgentInfo}
	}

	if !state.hasRequiredAgentInfo() {
		// Only reachable when an earlier answer was empty after trimming.
		state.Pending = firstMissingField(state)
		return TurnOutput{Prompt: promptForField(state.Pending), Phase: PhaseAgentInfo}
	}

	state.Phase = PhaseProducts
	state.Pending = ""
	return TurnOutput{Prompt: productsPrompt, Phase: PhaseProducts}
}

func (e *Engine) fillField(state *State, message string) {
	value := strings.TrimSpace(message)
	a := &state.Accumulator.Agent
	switch state.Pending {
	case FieldCompanyName:
		a.CompanyName = value
	case FieldCompanyDescription:
		a.CompanyDescription = value
	case FieldAgentName:
		a.AgentName = value
	case FieldTone:
		a.Tone = parseTone(value)
	case FieldGreeting:
		a.GreetingMessage = value
	}
}

func (e *Engine) advanceProducts(state *State, message string) TurnOutput {
	if !isSkip(message) {
		if refs := parseProducts(message); len(refs) > 0 {
			state.Accumulator.Products = append(state.Accumulator.Products, refs...)
			return TurnOutput{
				Prompt: fmt.Sprintf("Got it, %d product(s) so far. Add more, or say \"done\" to move on.",
					len(state.Accumulator.Products)),
				Phase: PhaseProducts,
			}
		}
		return TurnOutput{
			Prompt: "I couldn't read that as a product. One per line, e.g. \"Widget Pro | heavy duty | 49.99 EUR\", or say \"skip\".",
			Phase:  PhaseProducts,
		}
	}

	state.Phase = PhaseTraining
	return TurnOutput{Prompt: trainingPrompt, Phase: PhaseTraining}
}

// advanceTraining collects URLs and FAQ pairs until the user closes the
// phase, then materializes everything collected.
func (e *Engine) advanceTraining(ctx context.Context, session *Session, message string) (TurnOutput, error) {
	state := session.State

	if !isSkip(message) {
		urls, faqs := parseTraining(message)
		if len(urls)+len(faqs) > 0 {
			state.Accumulator.Training.URLs = append(state.Accumulator.Training.URLs, urls...)
			state.Accumulator.Training.FAQs = append(state.Accumulator.Training.FAQs, faqs...)
			return TurnOutput{
				Prompt: fmt.Sprintf("Noted: %d URL(s) and %d FAQ(s) queued. Anything else, or \"done\" to finish?",
					len(state.Accumulator.Training.URLs), len(state.Accumulator.Training.FAQs)),
				Phase: PhaseTraining,
			}, nil
		}
		return TurnOutput{
			Prompt: "Share website URLs or FAQ pairs (\"Q: ...\" then \"A: ...\"), or say \"done\" to finish.",
			Phase:  PhaseTraining,
		}, nil
	}

	agentID, err := e.materializer.Materialize(ctx, session.OwnerID, &state.Accumulator)
	if err != nil {
		return TurnOutput{}, fmt.Errorf("materialize agent: %w", err)
	}

	state.Phase = PhaseComplete
	session.AgentID = agentID

	slog.Info("Builder session completed",
		"session_id", session.ID,
		"owner_id", session.OwnerID,
		"agent_id", agentID,
		"products", len(state.Accumulator.Products),
		"training_sources", len(state.Accumulator.Training.URLs)+
			len(state.Accumulator.Training.Files)+boolToInt(len(state.Accumulator.Training.FAQs) > 0))

	return TurnOutput{
		Prompt: fmt.Sprintf("All set! %s is live and ready to chat with your customers.",
			state.Accumulator.Agent.AgentName),
		Phase:      PhaseComplete,
		IsComplete: true,
		AgentID:    agentID,
	}, nil
}

func isRequiredField(f Field) bool {
	return f == FieldCompanyName || f == FieldCompanyDescription || f == FieldAgentName
}

func firstMissingField(state *State) Field {
	for _, f := range agentInfoOrder {
		if isRequiredField(f) && !state.fieldSet(f) {
			return f
		}
	}
	return agentInfoOrder[0]
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const (
	productsPrompt = "Now let's add your products. One per line, e.g. \"Widget Pro | heavy duty widget | 49.99 EUR\". Say \"skip\" if you'd rather add them later."
	trainingPrompt = "Last step: knowledge for your agent. Share website URLs or FAQ pairs (\"Q: ...\" then \"A: ...\"), upload documents, or say \"done\" to finish."
)

func promptForField(f Field) string {
	switch f {
	case FieldCompanyName:
		return "Let's build your sales agent. What's your company called?"
	case FieldCompanyDescription:
		return "Great. In a sentence or two, what does your company do?"
	case FieldAgentName:
		return "What should your sales agent be called?"
	case FieldTone:
		return "How should it sound: friendly, professional, casual, or formal? (say \"skip\" for friendly)"
	case FieldGreeting:
		return "Want a custom greeting for new visitors? Type it, or say \"skip\"."
	}
	return "Tell me more about your agent."
}

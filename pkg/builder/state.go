// Package builder implements the conversational agent builder: a phase-driven
// dialogue that elicits an agent configuration one question at a time,
// accumulates the answers, and materializes the agent, its catalog, and its
// ingestion jobs when the dialogue completes.
package builder

import (
	"github.com/merxlab/merx/pkg/ingest"
	"github.com/merxlab/merx/pkg/models"
)

// Phase identifies which part of the agent configuration the dialogue is
// currently eliciting.
type Phase string

const (
	PhaseAgentInfo Phase = "agent_info"
	PhaseProducts  Phase = "products"
	PhaseTraining  Phase = "training"
	PhaseComplete  Phase = "complete"
)

// Field names the single agent_info question currently awaiting an answer.
type Field string

const (
	FieldCompanyName        Field = "company_name"
	FieldCompanyDescription Field = "company_description"
	FieldAgentName          Field = "agent_name"
	FieldTone               Field = "tone"
	FieldGreeting           Field = "greeting_message"
)

// agentInfoOrder is the question sequence of the agent_info phase. The first
// three are required; tone and greeting may be skipped.
var agentInfoOrder = []Field{
	FieldCompanyName,
	FieldCompanyDescription,
	FieldAgentName,
	FieldTone,
	FieldGreeting,
}

// AgentDraft holds the agent fields collected so far.
type AgentDraft struct {
	CompanyName        string `json:"company_name,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	AgentName          string `json:"agent_name,omitempty"`
	Tone               string `json:"tone,omitempty"`
	GreetingMessage    string `json:"greeting_message,omitempty"`
}

// FileRef is a document uploaded mid-dialogue. The extracted text is held
// until materialization, when it becomes an ingestion job for the new agent.
type FileRef struct {
	Filename string `json:"filename"`
	Text     string `json:"-"`
	Status   string `json:"status"`
}

// TrainingDraft accumulates knowledge sources named during the dialogue.
type TrainingDraft struct {
	URLs  []string     `json:"urls,omitempty"`
	FAQs  []ingest.FAQ `json:"faqs,omitempty"`
	Files []FileRef    `json:"files,omitempty"`
}

// Accumulator is everything the dialogue has collected.
type Accumulator struct {
	Agent    AgentDraft          `json:"agent"`
	Products []models.ProductRef `json:"products,omitempty"`
	Training TrainingDraft       `json:"training"`
}

// State is the phase machine position plus the accumulator.
type State struct {
	Phase       Phase       `json:"phase"`
	Pending     Field       `json:"pending,omitempty"`
	Accumulator Accumulator `json:"accumulator"`
}

// NewState starts a dialogue at the first agent_info question.
func NewState() *State {
	return &State{
		Phase:   PhaseAgentInfo,
		Pending: agentInfoOrder[0],
	}
}

// hasRequiredAgentInfo reports whether the agent_info phase can close.
func (s *State) hasRequiredAgentInfo() bool {
	a := s.Accumulator.Agent
	return a.CompanyName != "" && a.CompanyDescription != "" && a.AgentName != ""
}

// nextAgentInfoField returns the first unanswered field at or after the
// current pending one, or "" when the sequence is exhausted.
func (s *State) nextAgentInfoField() Field {
	started := false
	for _, f := range agentInfoOrder {
		if f == s.Pending {
			started = true
			continue
		}
		if !started {
			continue
		}
		if !s.fieldSet(f) {
			return f
		}
	}
	return ""
}

func (s *State) fieldSet(f Field) bool {
	a := s.Accumulator.Agent
	switch f {
	case FieldCompanyName:
		return a.CompanyName != ""
	case FieldCompanyDescription:
		return a.CompanyDescription != ""
	case FieldAgentName:
		return a.AgentName != ""
	case FieldTone:
		return a.Tone != ""
	case FieldGreeting:
		return a.GreetingMessage != ""
	}
	return false
}

// Package models contains business domain types shared across services,
// adapters and the HTTP surface. Types here are plain values with JSON tags;
// they never import generated ent code so that ent schemas can embed them.
package models

import "time"

// Message roles within a conversation transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage is one turn in a conversation transcript.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// LeadInfo is structured customer data extracted from a transcript.
// Fields are filled incrementally across turns; merging is monotonic.
type LeadInfo struct {
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Company       string `json:"company,omitempty"`
	Budget        string `json:"budget,omitempty"`
	Timeline      string `json:"timeline,omitempty"`
	InterestLevel string `json:"interest_level,omitempty"`
}

// IsEmpty reports whether no field has been captured yet.
func (l LeadInfo) IsEmpty() bool {
	return l == LeadInfo{}
}

// Merge folds delta into l, field by field. A non-empty existing value is
// never replaced by an empty one; a non-empty delta value wins.
func (l LeadInfo) Merge(delta LeadInfo) LeadInfo {
	merged := l
	if delta.Name != "" {
		merged.Name = delta.Name
	}
	if delta.Email != "" {
		merged.Email = delta.Email
	}
	if delta.Phone != "" {
		merged.Phone = delta.Phone
	}
	if delta.Company != "" {
		merged.Company = delta.Company
	}
	if delta.Budget != "" {
		merged.Budget = delta.Budget
	}
	if delta.Timeline != "" {
		merged.Timeline = delta.Timeline
	}
	if delta.InterestLevel != "" {
		merged.InterestLevel = delta.InterestLevel
	}
	return merged
}

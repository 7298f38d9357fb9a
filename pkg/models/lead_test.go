package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadInfoMerge(t *testing.T) {
	tests := []struct {
		name     string
		existing LeadInfo
		delta    LeadInfo
		want     LeadInfo
	}{
		{
			name:     "delta fills empty fields",
			existing: LeadInfo{},
			delta:    LeadInfo{Name: "Jane", Email: "jane@example.com"},
			want:     LeadInfo{Name: "Jane", Email: "jane@example.com"},
		},
		{
			name:     "empty delta never clears existing fields",
			existing: LeadInfo{Name: "Jane", Email: "jane@example.com", Phone: "+1-555-1000"},
			delta:    LeadInfo{},
			want:     LeadInfo{Name: "Jane", Email: "jane@example.com", Phone: "+1-555-1000"},
		},
		{
			name:     "non-empty delta value wins",
			existing: LeadInfo{Name: "Jane", InterestLevel: "low"},
			delta:    LeadInfo{InterestLevel: "high"},
			want:     LeadInfo{Name: "Jane", InterestLevel: "high"},
		},
		{
			name:     "partial delta merges field by field",
			existing: LeadInfo{Name: "Jane", Company: "Acme"},
			delta:    LeadInfo{Phone: "+1-555-1000", Budget: "10k"},
			want:     LeadInfo{Name: "Jane", Company: "Acme", Phone: "+1-555-1000", Budget: "10k"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.existing.Merge(tt.delta))
		})
	}
}

func TestLeadInfoIsEmpty(t *testing.T) {
	assert.True(t, LeadInfo{}.IsEmpty())
	assert.False(t, LeadInfo{Email: "jane@example.com"}.IsEmpty())
}

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/pkg/models"
)

func conv(agentID, sessionID string, messages int, lead models.LeadInfo, createdAt time.Time) *ent.Conversation {
	msgs := make([]models.ChatMessage, messages)
	for i := range msgs {
		msgs[i] = models.ChatMessage{Role: models.RoleUser, Content: "m", Timestamp: createdAt}
	}
	return &ent.Conversation{
		AgentID:   agentID,
		SessionID: sessionID,
		Messages:  msgs,
		LeadInfo:  lead,
		CreatedAt: createdAt,
	}
}

func TestBuildFunnel(t *testing.T) {
	now := time.Now()
	conversations := []*ent.Conversation{
		conv("a", "s1", 1, models.LeadInfo{}, now),                          // visitor only
		conv("a", "s2", 4, models.LeadInfo{}, now),                          // engaged
		conv("a", "s3", 6, models.LeadInfo{Email: "j@example.com"}, now),    // qualified
		conv("a", "s4", 8, models.LeadInfo{Name: "Jane", Phone: "1"}, now),  // converted
	}

	f := buildFunnel(conversations, map[string]struct{}{"s4": {}})

	assert.Equal(t, 4, f.Visitors)
	assert.Equal(t, 3, f.Engaged)
	assert.Equal(t, 2, f.Qualified)
	assert.Equal(t, 1, f.Converted)
	assert.InDelta(t, 0.75, f.EngagementRate, 0.001)
	assert.InDelta(t, 2.0/3.0, f.QualifyRate, 0.001)
	assert.InDelta(t, 0.5, f.ConversionRate, 0.001)
}

func TestBuildFunnelEmpty(t *testing.T) {
	f := buildFunnel(nil, nil)
	assert.Zero(t, f.Visitors)
	assert.Zero(t, f.EngagementRate, "no division by zero on empty windows")
	assert.Zero(t, f.ConversionRate)
}

func TestBuildPeakHours(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2026, 8, 20, hour, 30, 0, 0, time.UTC)
	}
	conversations := []*ent.Conversation{
		conv("a", "s1", 1, models.LeadInfo{}, at(9)),
		conv("a", "s2", 1, models.LeadInfo{}, at(9)),
		conv("a", "s3", 1, models.LeadInfo{}, at(17)),
	}

	hours := buildPeakHours(conversations)

	require.Len(t, hours, 24)
	assert.Equal(t, 2, hours[9].Conversations)
	assert.Equal(t, 1, hours[17].Conversations)
	assert.Equal(t, 0, hours[3].Conversations)
	assert.Equal(t, 17, hours[17].Hour)
}

func TestBuildDailyTrends(t *testing.T) {
	day1 := time.Date(2026, 8, 19, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	conversations := []*ent.Conversation{
		conv("a", "s1", 2, models.LeadInfo{}, day2),
		conv("a", "s2", 2, models.LeadInfo{Email: "j@example.com"}, day1),
		conv("a", "s3", 2, models.LeadInfo{}, day1),
	}

	trends := buildDailyTrends(conversations)

	require.Len(t, trends, 2)
	assert.Equal(t, "2026-08-19", trends[0].Date, "sorted ascending")
	assert.Equal(t, 2, trends[0].Conversations)
	assert.Equal(t, 1, trends[0].Leads)
	assert.Equal(t, "2026-08-20", trends[1].Date)
	assert.Equal(t, 0, trends[1].Leads)
}

func TestBuildAgentPerformance(t *testing.T) {
	now := time.Now()
	agents := []*ent.Agent{
		{ID: "a1", Name: "Alex"},
		{ID: "a2", Name: "Max"},
		{ID: "a3", Name: "Idle"},
	}
	conversations := []*ent.Conversation{
		conv("a1", "s1", 2, models.LeadInfo{Name: "x"}, now),
		conv("a1", "s2", 2, models.LeadInfo{}, now),
		conv("a2", "s3", 2, models.LeadInfo{}, now),
	}
	orderCounts := map[string]int{"a1": 1, "a2": 1}

	perf := buildAgentPerformance(agents, conversations, orderCounts)

	require.Len(t, perf, 3)
	// a2 converts 1/1, a1 converts 1/2, a3 has no traffic.
	assert.Equal(t, "a2", perf[0].AgentID)
	assert.InDelta(t, 1.0, perf[0].ConversionRate, 0.001)
	assert.Equal(t, "a1", perf[1].AgentID)
	assert.Equal(t, 1, perf[1].Leads)
	assert.Equal(t, "a3", perf[2].AgentID)
	assert.Zero(t, perf[2].ConversionRate)
}

func TestBuildAgentPerformanceStableOrder(t *testing.T) {
	agents := []*ent.Agent{{ID: "b"}, {ID: "a"}}
	first := buildAgentPerformance(agents, nil, nil)
	for i := 0; i < 5; i++ {
		again := buildAgentPerformance(agents, nil, nil)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, "a", first[0].AgentID, "ties break by agent id")
}

package models

import "time"

// Funnel is the conversion funnel over a time window: session counts per
// stage plus the rate between each pair of consecutive stages.
type Funnel struct {
	Visitors  int `json:"visitors"`
	Engaged   int `json:"engaged"`
	Qualified int `json:"qualified"`
	Converted int `json:"converted"`

	EngagementRate float64 `json:"engagement_rate"`
	QualifyRate    float64 `json:"qualify_rate"`
	ConversionRate float64 `json:"conversion_rate"`
}

// PeakHour is the conversation count for one UTC hour of day (0-23).
type PeakHour struct {
	Hour          int `json:"hour"`
	Conversations int `json:"conversations"`
}

// DailyTrend is the per-day conversation and lead counts.
type DailyTrend struct {
	Date          string `json:"date"` // YYYY-MM-DD (UTC)
	Conversations int    `json:"conversations"`
	Leads         int    `json:"leads"`
}

// AgentPerformance aggregates one agent's totals over a window.
type AgentPerformance struct {
	AgentID        string  `json:"agent_id"`
	AgentName      string  `json:"agent_name"`
	Conversations  int     `json:"conversations"`
	Leads          int     `json:"leads"`
	Orders         int     `json:"orders"`
	ConversionRate float64 `json:"conversion_rate"`
}

// TimeWindow bounds an analytics query. Zero values mean unbounded.
type TimeWindow struct {
	From time.Time
	To   time.Time
}

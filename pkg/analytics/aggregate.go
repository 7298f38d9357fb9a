// Package analytics computes read-side dashboard aggregates from
// conversations and orders. Loading is thin ent queries; the math lives in
// pure functions over loaded rows so it can be tested with fixtures.
package analytics

import (
	"sort"
	"time"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/pkg/models"
)

// engagedThreshold is the message count from which a session counts as
// engaged in the funnel.
const engagedThreshold = 3

// buildFunnel computes stage counts and the rate between consecutive stages.
// Each conversation row is one session; sessionsWithOrder holds the session
// ids that produced at least one order.
func buildFunnel(conversations []*ent.Conversation, sessionsWithOrder map[string]struct{}) models.Funnel {
	f := models.Funnel{}
	for _, c := range conversations {
		f.Visitors++
		if len(c.Messages) >= engagedThreshold {
			f.Engaged++
		}
		if !c.LeadInfo.IsEmpty() {
			f.Qualified++
		}
		if _, ok := sessionsWithOrder[c.SessionID]; ok {
			f.Converted++
		}
	}
	f.EngagementRate = rate(f.Engaged, f.Visitors)
	f.QualifyRate = rate(f.Qualified, f.Engaged)
	f.ConversionRate = rate(f.Converted, f.Qualified)
	return f
}

// buildPeakHours buckets conversations by their UTC start hour. All 24
// buckets are present so charts need no gap filling.
func buildPeakHours(conversations []*ent.Conversation) []models.PeakHour {
	hours := make([]models.PeakHour, 24)
	for i := range hours {
		hours[i].Hour = i
	}
	for _, c := range conversations {
		hours[c.CreatedAt.UTC().Hour()].Conversations++
	}
	return hours
}

// buildDailyTrends counts conversations and captured leads per UTC day,
// sorted ascending by date.
func buildDailyTrends(conversations []*ent.Conversation) []models.DailyTrend {
	byDay := make(map[string]*models.DailyTrend)
	for _, c := range conversations {
		day := c.CreatedAt.UTC().Format("2006-01-02")
		trend, ok := byDay[day]
		if !ok {
			trend = &models.DailyTrend{Date: day}
			byDay[day] = trend
		}
		trend.Conversations++
		if !c.LeadInfo.IsEmpty() {
			trend.Leads++
		}
	}

	trends := make([]models.DailyTrend, 0, len(byDay))
	for _, trend := range byDay {
		trends = append(trends, *trend)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Date < trends[j].Date })
	return trends
}

// buildAgentPerformance sums per-agent totals and sorts by conversion rate
// descending, ties broken by conversation count then agent id for stable
// output.
func buildAgentPerformance(agents []*ent.Agent, conversations []*ent.Conversation, orderCounts map[string]int) []models.AgentPerformance {
	byAgent := make(map[string]*models.AgentPerformance, len(agents))
	for _, a := range agents {
		byAgent[a.ID] = &models.AgentPerformance{
			AgentID:   a.ID,
			AgentName: a.Name,
			Orders:    orderCounts[a.ID],
		}
	}
	for _, c := range conversations {
		perf, ok := byAgent[c.AgentID]
		if !ok {
			continue
		}
		perf.Conversations++
		if !c.LeadInfo.IsEmpty() {
			perf.Leads++
		}
	}

	out := make([]models.AgentPerformance, 0, len(byAgent))
	for _, perf := range byAgent {
		perf.ConversionRate = rate(perf.Orders, perf.Conversations)
		out = append(out, *perf)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ConversionRate != out[j].ConversionRate {
			return out[i].ConversionRate > out[j].ConversionRate
		}
		if out[i].Conversations != out[j].Conversations {
			return out[i].Conversations > out[j].Conversations
		}
		return out[i].AgentID < out[j].AgentID
	})
	return out
}

func rate(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// clampWindow fills open window ends: an empty From means the epoch, an
// empty To means now.
func clampWindow(w models.TimeWindow) models.TimeWindow {
	if w.To.IsZero() {
		w.To = time.Now().UTC()
	}
	return w
}

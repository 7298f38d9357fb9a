package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"hi", IntentGreeting},
		{"Hello there", IntentGreeting},
		{"good morning!", IntentGreeting},
		{"How much does the starter plan cost?", IntentPricing},
		{"any discount for students?", IntentPricing},
		{"Is the blue one in stock?", IntentAvailability},
		{"when can you deliver to Berlin?", IntentAvailability},
		{"my order arrived broken", IntentSupport},
		{"I want a refund", IntentSupport},
		{"that's too expensive for us", IntentObjection},
		{"I'll take it", IntentPurchaseIntent},
		{"I want to buy two of these", IntentPurchaseIntent},
		{"I'm Jane, jane@example.com, +1-555-1000", IntentLeadCapture},
		{"my name is Bob", IntentLeadCapture},
		{"tell me about your products", IntentProductInquiry},
		{"what are the specs of the X200?", IntentProductInquiry},
		{"thanks, bye!", IntentSmalltalk},
		{"zzz qqq", IntentOther},
		{"", IntentOther},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.text))
		})
	}
}

// First matching rule wins: a message carrying both contact details and a
// pricing question classifies as lead capture, deterministically.
func TestClassifyIntentFirstMatchWins(t *testing.T) {
	got := ClassifyIntent("jane@example.com — what is the price?")
	assert.Equal(t, IntentLeadCapture, got)

	// Same input, same answer, every time.
	for i := 0; i < 10; i++ {
		assert.Equal(t, got, ClassifyIntent("jane@example.com — what is the price?"))
	}
}

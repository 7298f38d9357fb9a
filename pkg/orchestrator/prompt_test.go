package orchestrator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/ent/agent"
	"github.com/merxlab/merx/pkg/models"
)

func testAgent() *ent.Agent {
	return &ent.Agent{
		ID:                 "agent-1",
		Name:               "Alex",
		CompanyName:        "Acme",
		CompanyDescription: "We sell widgets.",
		Tone:               agent.ToneFriendly,
		Language:           "en",
		Products: []models.ProductRef{
			{Name: "Widget Classic"},
			{Spec: &models.ProductSpec{Name: "Widget Pro", Description: "Heavy duty", Price: 49.99, Currency: "EUR"}},
		},
	}
}

func TestBuildSystemPromptRendersMixedProductVariants(t *testing.T) {
	prompt := buildSystemPrompt(testAgent(), "")

	assert.Contains(t, prompt, "You are Alex, a friendly sales assistant for Acme.")
	assert.Contains(t, prompt, "We sell widgets.")
	assert.Contains(t, prompt, "- Widget Classic")
	assert.Contains(t, prompt, "- Widget Pro: Heavy duty (49.99 EUR)")
	assert.NotContains(t, prompt, "Relevant information")
}

func TestBuildSystemPromptIncludesRetrievedContext(t *testing.T) {
	prompt := buildSystemPrompt(testAgent(), "Our refund window is 30 days from delivery.")

	assert.Contains(t, prompt, "Relevant information:")
	assert.Contains(t, prompt, "30 days from delivery")
}

func TestBuildSystemPromptStaysWithinTokenBudget(t *testing.T) {
	longContext := strings.Repeat("every chunk of retrieved knowledge text ", 200)
	prompt := buildSystemPrompt(testAgent(), longContext)

	assert.LessOrEqual(t, tokenCount(prompt), systemPromptTokenBudget+10,
		"system prompt should stay near the configured budget")
	// Identity and products always survive the trim.
	assert.Contains(t, prompt, "You are Alex")
	assert.Contains(t, prompt, "Widget Pro")
}

func TestBuildSystemPromptNonEnglishLanguage(t *testing.T) {
	a := testAgent()
	a.Language = "de"
	prompt := buildSystemPrompt(a, "")
	assert.Contains(t, prompt, "Always respond in de.")
}

func TestRenderProductsEmptyList(t *testing.T) {
	assert.Equal(t, "", renderProducts(nil))
}

func TestTrimToBudget(t *testing.T) {
	assert.Equal(t, "", trimToBudget("anything", 0))
	assert.Equal(t, "short text", trimToBudget("short text", 100))

	long := strings.Repeat("word ", 500)
	trimmed := trimToBudget(long, 50)
	assert.LessOrEqual(t, tokenCount(trimmed), 50)
	assert.NotEmpty(t, trimmed)
}

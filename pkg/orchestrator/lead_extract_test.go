package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/pkg/models"
)

func TestParseLeadJSON(t *testing.T) {
	lead, err := parseLeadJSON(`{"name": "Jane", "email": "jane@example.com", "phone": "+1-555-1000", "company": null}`)
	require.NoError(t, err)
	assert.Equal(t, "Jane", lead.Name)
	assert.Equal(t, "jane@example.com", lead.Email)
	assert.Equal(t, "+1-555-1000", lead.Phone)
	assert.Empty(t, lead.Company)
}

func TestParseLeadJSONStripsCodeFence(t *testing.T) {
	lead, err := parseLeadJSON("```json\n{\"name\": \"Bob\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Bob", lead.Name)
}

func TestParseLeadJSONRejectsUnknownFields(t *testing.T) {
	_, err := parseLeadJSON(`{"name": "Jane", "credit_card": "4111"}`)
	assert.Error(t, err)
}

func TestParseLeadJSONRejectsBadInterestLevel(t *testing.T) {
	_, err := parseLeadJSON(`{"interest_level": "extreme"}`)
	assert.Error(t, err)
}

func TestParseLeadJSONRejectsNonJSON(t *testing.T) {
	_, err := parseLeadJSON("The customer is named Jane and seems interested.")
	assert.Error(t, err)
}

func TestBuildLeadTranscript(t *testing.T) {
	transcript := buildLeadTranscript([]models.ChatMessage{
		{Role: models.RoleUser, Content: "hi"},
		{Role: models.RoleAssistant, Content: "Welcome!"},
	}, "I'm Jane")

	assert.Equal(t, "user: hi\nassistant: Welcome!\nuser: I'm Jane\n", transcript)
}

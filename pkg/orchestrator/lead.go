package orchestrator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/merxlab/merx/pkg/models"
)

// leadSchemaJSON constrains the extraction model's output. Unknown fields
// are rejected so a chatty response cannot smuggle junk into lead_info.
const leadSchemaJSON = `{
	"type": "object",
	"properties": {
		"name": {"type": ["string", "null"]},
		"email": {"type": ["string", "null"]},
		"phone": {"type": ["string", "null"]},
		"company": {"type": ["string", "null"]},
		"budget": {"type": ["string", "null"]},
		"timeline": {"type": ["string", "null"]},
		"interest_level": {"type": ["string", "null"], "enum": ["low", "medium", "high", null]}
	},
	"additionalProperties": false
}`

var leadSchema = gojsonschema.NewStringLoader(leadSchemaJSON)

// leadExtractionSystemPrompt instructs the model to answer with bare JSON.
const leadExtractionSystemPrompt = `Extract customer contact details from the conversation transcript.
Respond with a single JSON object with these optional keys: name, email, phone, company, budget, timeline, interest_level (low|medium|high).
Use null for anything the customer did not state. Do not guess.`

// buildLeadTranscript renders the full transcript for the extraction call.
func buildLeadTranscript(history []models.ChatMessage, incoming string) string {
	var sb strings.Builder
	for _, m := range history {
		fmt.Fprintf(&sb, "%s: %s\n", m.Role, m.Content)
	}
	fmt.Fprintf(&sb, "%s: %s\n", models.RoleUser, incoming)
	return sb.String()
}

// parseLeadJSON validates the model output against the schema and decodes
// it. Null fields decode to empty strings, which the monotonic merge then
// ignores.
func parseLeadJSON(raw string) (models.LeadInfo, error) {
	raw = strings.TrimSpace(raw)
	// Models occasionally wrap JSON in a code fence despite instructions.
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	result, err := gojsonschema.Validate(leadSchema, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return models.LeadInfo{}, fmt.Errorf("lead output is not valid JSON: %w", err)
	}
	if !result.Valid() {
		return models.LeadInfo{}, fmt.Errorf("lead output violates schema: %v", result.Errors())
	}

	var lead models.LeadInfo
	if err := json.Unmarshal([]byte(raw), &lead); err != nil {
		return models.LeadInfo{}, fmt.Errorf("decode lead output: %w", err)
	}
	return lead, nil
}

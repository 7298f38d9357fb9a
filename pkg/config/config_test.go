package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"PORT", "ENVIRONMENT", "REQUEST_TIMEOUT_SECONDS", "ALLOWED_ORIGINS",
	"LLM_API_KEY", "LLM_BASE_URL", "LLM_CHAT_MODEL", "LLM_EMBED_MODEL",
	"LLM_MAX_TOKENS", "LLM_TEMPERATURE", "LLM_CHAT_TIMEOUT", "LLM_EMBED_TIMEOUT",
	"CHAT_MAX_CONCURRENT", "EMBED_MAX_CONCURRENT",
	"VECTOR_URL", "VECTOR_API_KEY", "VECTOR_COLLECTION", "VECTOR_DIM",
	"VECTOR_SEARCH_TIMEOUT", "SEARCH_MAX_CONCURRENT", "VECTOR_COUNT_TTL",
	"AUTH_PROVIDER_CREDENTIALS_PATH", "AUTH_DEV_USER",
	"MAX_CONVERSATION_HISTORY", "LEAD_QUALIFY_MIN_MESSAGES",
	"RETRIEVAL_SCORE_FLOOR", "RETRIEVAL_TOP_K", "TURN_BUDGET_SECONDS",
	"INGEST_WORKER_COUNT", "INGEST_QUEUE_CAPACITY", "URL_FETCH_TIMEOUT",
	"EMBED_BATCH_SIZE", "CHUNK_SIZE", "CHUNK_OVERLAP",
	"UPLOAD_DIR", "UPLOAD_MAX_BYTES",
}

func withEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, key := range configEnvKeys {
		os.Unsetenv(key)
	}
	for key, val := range vars {
		os.Setenv(key, val)
	}
	t.Cleanup(func() {
		for _, key := range configEnvKeys {
			os.Unsetenv(key)
		}
	})
}

func TestInitializeDefaults(t *testing.T) {
	withEnv(t, map[string]string{
		"LLM_API_KEY":   "sk-test",
		"AUTH_DEV_USER": "dev-user",
	})

	cfg, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "gpt-4o-mini", cfg.LLM.ChatModel)
	assert.Equal(t, "text-embedding-3-small", cfg.LLM.EmbedModel)
	assert.Equal(t, 200, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.7, float64(cfg.LLM.Temperature), 0.0001)
	assert.Equal(t, 15*time.Second, cfg.LLM.ChatTimeout)
	assert.Equal(t, 32, cfg.LLM.ChatMaxConcurrent)

	assert.Equal(t, "vector_entries", cfg.Vector.Collection)
	assert.Equal(t, 1536, cfg.Vector.Dim)
	assert.Equal(t, 5*time.Second, cfg.Vector.SearchTimeout)

	assert.Equal(t, 4, cfg.Orchestrator.MaxConversationHistory)
	assert.Equal(t, 5, cfg.Orchestrator.LeadQualifyMinMessages)
	assert.InDelta(t, 0.5, cfg.Orchestrator.RetrievalScoreFloor, 0.0001)
	assert.Equal(t, 3, cfg.Orchestrator.RetrievalTopK)
	assert.Equal(t, 15*time.Second, cfg.Orchestrator.TurnBudget)

	assert.Equal(t, 4, cfg.Ingest.WorkerCount)
	assert.Equal(t, 64, cfg.Ingest.EmbedBatchSize)
	assert.Equal(t, 1000, cfg.Ingest.ChunkSize)
	assert.Equal(t, 200, cfg.Ingest.ChunkOverlap)
}

func TestInitializeOverrides(t *testing.T) {
	withEnv(t, map[string]string{
		"LLM_API_KEY":               "sk-test",
		"AUTH_DEV_USER":             "dev-user",
		"PORT":                      "9000",
		"ENVIRONMENT":               "production",
		"LLM_CHAT_MODEL":            "gpt-4o",
		"LLM_TEMPERATURE":           "0.2",
		"RETRIEVAL_TOP_K":           "5",
		"RETRIEVAL_SCORE_FLOOR":     "0.65",
		"MAX_CONVERSATION_HISTORY":  "8",
		"LEAD_QUALIFY_MIN_MESSAGES": "3",
		"INGEST_WORKER_COUNT":       "2",
		"ALLOWED_ORIGINS":           "https://app.example.com, https://admin.example.com",
		"TURN_BUDGET_SECONDS":       "20",
	})

	cfg, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "gpt-4o", cfg.LLM.ChatModel)
	assert.InDelta(t, 0.2, float64(cfg.LLM.Temperature), 0.0001)
	assert.Equal(t, 5, cfg.Orchestrator.RetrievalTopK)
	assert.InDelta(t, 0.65, cfg.Orchestrator.RetrievalScoreFloor, 0.0001)
	assert.Equal(t, 8, cfg.Orchestrator.MaxConversationHistory)
	assert.Equal(t, 3, cfg.Orchestrator.LeadQualifyMinMessages)
	assert.Equal(t, 2, cfg.Ingest.WorkerCount)
	assert.Equal(t, 20*time.Second, cfg.Orchestrator.TurnBudget)
	assert.Equal(t,
		[]string{"https://app.example.com", "https://admin.example.com"},
		cfg.Server.AllowedOrigins)
}

func TestInitializeErrors(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		errContains string
	}{
		{
			name:        "missing LLM_API_KEY",
			envVars:     map[string]string{"AUTH_DEV_USER": "dev"},
			errContains: "LLM_API_KEY is required",
		},
		{
			name: "missing auth configuration",
			envVars: map[string]string{
				"LLM_API_KEY": "sk-test",
			},
			errContains: "AUTH_PROVIDER_CREDENTIALS_PATH or AUTH_DEV_USER",
		},
		{
			name: "invalid PORT",
			envVars: map[string]string{
				"LLM_API_KEY":   "sk-test",
				"AUTH_DEV_USER": "dev",
				"PORT":          "not-a-number",
			},
			errContains: "invalid PORT",
		},
		{
			name: "port out of range",
			envVars: map[string]string{
				"LLM_API_KEY":   "sk-test",
				"AUTH_DEV_USER": "dev",
				"PORT":          "70000",
			},
			errContains: "PORT must be between",
		},
		{
			name: "unknown environment",
			envVars: map[string]string{
				"LLM_API_KEY":   "sk-test",
				"AUTH_DEV_USER": "dev",
				"ENVIRONMENT":   "staging",
			},
			errContains: "ENVIRONMENT must be",
		},
		{
			name: "score floor out of range",
			envVars: map[string]string{
				"LLM_API_KEY":           "sk-test",
				"AUTH_DEV_USER":         "dev",
				"RETRIEVAL_SCORE_FLOOR": "1.5",
			},
			errContains: "RETRIEVAL_SCORE_FLOOR",
		},
		{
			name: "embed batch above ceiling",
			envVars: map[string]string{
				"LLM_API_KEY":      "sk-test",
				"AUTH_DEV_USER":    "dev",
				"EMBED_BATCH_SIZE": "128",
			},
			errContains: "EMBED_BATCH_SIZE",
		},
		{
			name: "overlap not smaller than chunk size",
			envVars: map[string]string{
				"LLM_API_KEY":   "sk-test",
				"AUTH_DEV_USER": "dev",
				"CHUNK_SIZE":    "100",
				"CHUNK_OVERLAP": "100",
			},
			errContains: "CHUNK_OVERLAP",
		},
		{
			name: "invalid duration",
			envVars: map[string]string{
				"LLM_API_KEY":      "sk-test",
				"AUTH_DEV_USER":    "dev",
				"LLM_CHAT_TIMEOUT": "fifteen",
			},
			errContains: "invalid LLM_CHAT_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnv(t, tt.envVars)

			_, err := Initialize()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

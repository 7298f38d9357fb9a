// Package config loads and validates process configuration from environment
// variables. All keys are read once at startup; nothing here mutates after
// Initialize returns.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the resolved process configuration.
type Config struct {
	Server       *ServerConfig
	LLM          *LLMConfig
	Vector       *VectorConfig
	Auth         *AuthConfig
	Orchestrator *OrchestratorConfig
	Ingest       *IngestConfig
	Uploads      *UploadConfig
}

// ServerConfig holds the HTTP surface settings.
type ServerConfig struct {
	Port           int
	Environment    string // "development" or "production"
	RequestTimeout time.Duration
	// AllowedOrigins restricts CORS on authenticated endpoints. Public chat
	// endpoints are always permissive.
	AllowedOrigins []string
}

// LLMConfig holds the language model provider settings.
type LLMConfig struct {
	APIKey      string
	BaseURL     string // empty = provider default
	ChatModel   string
	EmbedModel  string
	MaxTokens   int
	Temperature float32

	ChatTimeout  time.Duration
	EmbedTimeout time.Duration

	// In-flight ceilings for outbound calls.
	ChatMaxConcurrent  int
	EmbedMaxConcurrent int
}

// VectorConfig holds the vector index settings.
type VectorConfig struct {
	// URL is the pgvector DSN. Empty = reuse the relational store DSN.
	URL string
	// APIKey is reserved for hosted vector backends; the pgvector adapter
	// does not use it.
	APIKey     string
	Collection string
	Dim        int

	SearchTimeout     time.Duration
	SearchMaxConcurr  int
	CountCacheTTL     time.Duration
}

// AuthConfig holds identity provider settings.
type AuthConfig struct {
	// CredentialsPath points at the identity provider service credentials.
	// Empty enables development mode only when DevUser is set.
	CredentialsPath string
	// DevUser, when set, authenticates every bearer token as this caller id.
	DevUser string
}

// OrchestratorConfig tunes the conversation turn pipeline.
type OrchestratorConfig struct {
	MaxConversationHistory int
	LeadQualifyMinMessages int
	RetrievalScoreFloor    float64
	RetrievalTopK          int
	TurnBudget             time.Duration
}

// IngestConfig tunes the knowledge ingestion pipeline.
type IngestConfig struct {
	WorkerCount     int
	QueueCapacity   int
	URLFetchTimeout time.Duration
	EmbedBatchSize  int
	ChunkSize       int
	ChunkOverlap    int
}

// UploadConfig holds product image upload settings.
type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
func Initialize() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Info("Configuration initialized",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"chat_model", cfg.LLM.ChatModel,
		"embed_model", cfg.LLM.EmbedModel,
		"vector_collection", cfg.Vector.Collection,
		"ingest_workers", cfg.Ingest.WorkerCount)

	return cfg, nil
}

func load() (*Config, error) {
	port, err := intEnv("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	requestTimeout, err := secondsEnv("REQUEST_TIMEOUT_SECONDS", DefaultRequestTimeout)
	if err != nil {
		return nil, err
	}

	maxTokens, err := intEnv("LLM_MAX_TOKENS", DefaultMaxTokens)
	if err != nil {
		return nil, err
	}
	temperature, err := floatEnv("LLM_TEMPERATURE", DefaultTemperature)
	if err != nil {
		return nil, err
	}
	chatTimeout, err := durationEnv("LLM_CHAT_TIMEOUT", DefaultChatTimeout)
	if err != nil {
		return nil, err
	}
	embedTimeout, err := durationEnv("LLM_EMBED_TIMEOUT", DefaultEmbedTimeout)
	if err != nil {
		return nil, err
	}
	chatMaxConcurrent, err := intEnv("CHAT_MAX_CONCURRENT", DefaultChatMaxConcurrent)
	if err != nil {
		return nil, err
	}
	embedMaxConcurrent, err := intEnv("EMBED_MAX_CONCURRENT", DefaultEmbedMaxConcurrent)
	if err != nil {
		return nil, err
	}

	vectorDim, err := intEnv("VECTOR_DIM", DefaultVectorDim)
	if err != nil {
		return nil, err
	}
	searchTimeout, err := durationEnv("VECTOR_SEARCH_TIMEOUT", DefaultSearchTimeout)
	if err != nil {
		return nil, err
	}
	searchMaxConcurrent, err := intEnv("SEARCH_MAX_CONCURRENT", DefaultSearchMaxConcurrent)
	if err != nil {
		return nil, err
	}
	countCacheTTL, err := durationEnv("VECTOR_COUNT_TTL", DefaultCountCacheTTL)
	if err != nil {
		return nil, err
	}

	maxHistory, err := intEnv("MAX_CONVERSATION_HISTORY", DefaultMaxConversationHistory)
	if err != nil {
		return nil, err
	}
	leadMinMessages, err := intEnv("LEAD_QUALIFY_MIN_MESSAGES", DefaultLeadQualifyMinMessages)
	if err != nil {
		return nil, err
	}
	scoreFloor, err := float64Env("RETRIEVAL_SCORE_FLOOR", DefaultRetrievalScoreFloor)
	if err != nil {
		return nil, err
	}
	topK, err := intEnv("RETRIEVAL_TOP_K", DefaultRetrievalTopK)
	if err != nil {
		return nil, err
	}
	turnBudget, err := secondsEnv("TURN_BUDGET_SECONDS", DefaultTurnBudget)
	if err != nil {
		return nil, err
	}

	workerCount, err := intEnv("INGEST_WORKER_COUNT", DefaultIngestWorkerCount)
	if err != nil {
		return nil, err
	}
	queueCapacity, err := intEnv("INGEST_QUEUE_CAPACITY", DefaultIngestQueueCapacity)
	if err != nil {
		return nil, err
	}
	urlFetchTimeout, err := durationEnv("URL_FETCH_TIMEOUT", DefaultURLFetchTimeout)
	if err != nil {
		return nil, err
	}
	embedBatchSize, err := intEnv("EMBED_BATCH_SIZE", DefaultEmbedBatchSize)
	if err != nil {
		return nil, err
	}
	chunkSize, err := intEnv("CHUNK_SIZE", DefaultChunkSize)
	if err != nil {
		return nil, err
	}
	chunkOverlap, err := intEnv("CHUNK_OVERLAP", DefaultChunkOverlap)
	if err != nil {
		return nil, err
	}

	uploadMaxBytes, err := intEnv("UPLOAD_MAX_BYTES", DefaultUploadMaxBytes)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: &ServerConfig{
			Port:           port,
			Environment:    stringEnv("ENVIRONMENT", DefaultEnvironment),
			RequestTimeout: requestTimeout,
			AllowedOrigins: listEnv("ALLOWED_ORIGINS"),
		},
		LLM: &LLMConfig{
			APIKey:             os.Getenv("LLM_API_KEY"),
			BaseURL:            os.Getenv("LLM_BASE_URL"),
			ChatModel:          stringEnv("LLM_CHAT_MODEL", DefaultChatModel),
			EmbedModel:         stringEnv("LLM_EMBED_MODEL", DefaultEmbedModel),
			MaxTokens:          maxTokens,
			Temperature:        float32(temperature),
			ChatTimeout:        chatTimeout,
			EmbedTimeout:       embedTimeout,
			ChatMaxConcurrent:  chatMaxConcurrent,
			EmbedMaxConcurrent: embedMaxConcurrent,
		},
		Vector: &VectorConfig{
			URL:              os.Getenv("VECTOR_URL"),
			APIKey:           os.Getenv("VECTOR_API_KEY"),
			Collection:       stringEnv("VECTOR_COLLECTION", DefaultVectorCollection),
			Dim:              vectorDim,
			SearchTimeout:    searchTimeout,
			SearchMaxConcurr: searchMaxConcurrent,
			CountCacheTTL:    countCacheTTL,
		},
		Auth: &AuthConfig{
			CredentialsPath: os.Getenv("AUTH_PROVIDER_CREDENTIALS_PATH"),
			DevUser:         os.Getenv("AUTH_DEV_USER"),
		},
		Orchestrator: &OrchestratorConfig{
			MaxConversationHistory: maxHistory,
			LeadQualifyMinMessages: leadMinMessages,
			RetrievalScoreFloor:    scoreFloor,
			RetrievalTopK:          topK,
			TurnBudget:             turnBudget,
		},
		Ingest: &IngestConfig{
			WorkerCount:     workerCount,
			QueueCapacity:   queueCapacity,
			URLFetchTimeout: urlFetchTimeout,
			EmbedBatchSize:  embedBatchSize,
			ChunkSize:       chunkSize,
			ChunkOverlap:    chunkOverlap,
		},
		Uploads: &UploadConfig{
			Dir:      stringEnv("UPLOAD_DIR", DefaultUploadDir),
			MaxBytes: int64(uploadMaxBytes),
		},
	}, nil
}

// Validate checks cross-field constraints and required keys.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be 'development' or 'production', got %q", c.Server.Environment)
	}

	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}
	if c.LLM.MaxTokens < 1 {
		return fmt.Errorf("LLM_MAX_TOKENS must be positive")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be within [0, 2]")
	}

	if c.Vector.Dim < 1 {
		return fmt.Errorf("VECTOR_DIM must be positive")
	}
	if c.Vector.Collection == "" {
		return fmt.Errorf("VECTOR_COLLECTION must not be empty")
	}

	if c.Auth.CredentialsPath == "" && c.Auth.DevUser == "" {
		return fmt.Errorf("either AUTH_PROVIDER_CREDENTIALS_PATH or AUTH_DEV_USER is required")
	}

	if c.Orchestrator.RetrievalScoreFloor < 0 || c.Orchestrator.RetrievalScoreFloor > 1 {
		return fmt.Errorf("RETRIEVAL_SCORE_FLOOR must be within [0, 1]")
	}
	if c.Orchestrator.RetrievalTopK < 1 {
		return fmt.Errorf("RETRIEVAL_TOP_K must be positive")
	}
	if c.Orchestrator.MaxConversationHistory < 0 {
		return fmt.Errorf("MAX_CONVERSATION_HISTORY must not be negative")
	}

	if c.Ingest.WorkerCount < 1 {
		return fmt.Errorf("INGEST_WORKER_COUNT must be at least 1")
	}
	if c.Ingest.EmbedBatchSize < 1 || c.Ingest.EmbedBatchSize > MaxEmbedBatchSize {
		return fmt.Errorf("EMBED_BATCH_SIZE must be within [1, %d]", MaxEmbedBatchSize)
	}
	if c.Ingest.ChunkOverlap >= c.Ingest.ChunkSize {
		return fmt.Errorf("CHUNK_OVERLAP (%d) must be smaller than CHUNK_SIZE (%d)",
			c.Ingest.ChunkOverlap, c.Ingest.ChunkSize)
	}

	return nil
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func stringEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func float64Env(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// secondsEnv parses an integer number of seconds.
func secondsEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return time.Duration(n) * time.Second, nil
}

func listEnv(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

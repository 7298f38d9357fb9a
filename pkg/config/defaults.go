package config

import "time"

// Built-in defaults, applied when the corresponding environment variable is
// unset. Kept in one place so the effective configuration is auditable.
const (
	DefaultPort           = 8080
	DefaultEnvironment    = "development"
	DefaultRequestTimeout = 30 * time.Second

	DefaultChatModel          = "gpt-4o-mini"
	DefaultEmbedModel         = "text-embedding-3-small"
	DefaultMaxTokens          = 200
	DefaultTemperature        = 0.7
	DefaultChatTimeout        = 15 * time.Second
	DefaultEmbedTimeout       = 10 * time.Second
	DefaultChatMaxConcurrent  = 32
	DefaultEmbedMaxConcurrent = 64

	DefaultVectorCollection    = "vector_entries"
	DefaultVectorDim           = 1536
	DefaultSearchTimeout       = 5 * time.Second
	DefaultSearchMaxConcurrent = 64
	DefaultCountCacheTTL       = 30 * time.Second

	DefaultMaxConversationHistory = 4
	DefaultLeadQualifyMinMessages = 5
	DefaultRetrievalScoreFloor    = 0.5
	DefaultRetrievalTopK          = 3
	DefaultTurnBudget             = 15 * time.Second

	DefaultIngestWorkerCount   = 4
	DefaultIngestQueueCapacity = 64
	DefaultURLFetchTimeout     = 10 * time.Second
	DefaultEmbedBatchSize      = 64
	DefaultChunkSize           = 1000
	DefaultChunkOverlap        = 200

	DefaultUploadDir      = "./uploads"
	DefaultUploadMaxBytes = 5 << 20 // 5 MiB

	// MaxEmbedBatchSize is the hard ceiling on vectors per upsert batch.
	MaxEmbedBatchSize = 64
)

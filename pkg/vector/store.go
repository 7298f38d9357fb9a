// Package vector is the adapter to the pgvector-backed vector index. It owns
// schema creation, batched upserts, filtered similarity search, and cascade
// deletes. Tenant isolation is payload equality on agent_id; no cross-agent
// row can ever match a filtered search.
package vector

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/semaphore"

	"github.com/merxlab/merx/pkg/config"
)

// ErrUnavailable wraps every index failure. Callers treat it as a degraded
// retrieval outcome, never as a fatal error.
var ErrUnavailable = errors.New("vector index unavailable")

// identifierPattern guards the configured table name before it is spliced
// into DDL and queries.
var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Entry is one indexed chunk.
type Entry struct {
	ID        string
	Embedding []float32
	Payload   Payload
}

// Payload is the metadata stored alongside each vector.
type Payload struct {
	AgentID    string `json:"agent_id"`
	SourceID   string `json:"source_id"`
	SourceType string `json:"source_type"`
	ChunkIndex int    `json:"chunk_index"`
	Text       string `json:"text"`
}

// Filter selects entries by payload equality. Zero fields are ignored; at
// least one must be set.
type Filter struct {
	AgentID  string
	SourceID string
}

func (f Filter) empty() bool {
	return f.AgentID == "" && f.SourceID == ""
}

// Hit is one search result, score descending in the result slice.
type Hit struct {
	ID      string
	Score   float64
	Payload Payload
}

// Store is the pgvector-backed index adapter.
type Store struct {
	pool  *pgxpool.Pool
	table string
	dim   int

	searchTimeout time.Duration
	searchSem     *semaphore.Weighted
	counts        *countCache

	// Schema existence is checked once per process. The flag is only set
	// after the DDL succeeds, so a failed first touch is retried.
	mu    sync.Mutex
	ready bool
}

// NewStore connects to the index database and verifies the configuration.
// Call EnsureSchema before the first upsert or search.
func NewStore(ctx context.Context, cfg *config.VectorConfig) (*Store, error) {
	if cfg == nil {
		panic("NewStore: cfg must not be nil")
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("vector: connection URL is required")
	}
	if !identifierPattern.MatchString(cfg.Collection) {
		return nil, fmt.Errorf("vector: invalid collection name %q", cfg.Collection)
	}

	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("vector: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("vector: ping: %w", err)
	}

	return &Store{
		pool:          pool,
		table:         cfg.Collection,
		dim:           cfg.Dim,
		searchTimeout: cfg.SearchTimeout,
		searchSem:     semaphore.NewWeighted(int64(cfg.SearchMaxConcurr)),
		counts:        newCountCache(cfg.CountCacheTTL),
	}, nil
}

// EnsureSchema creates the extension, table, and indexes if missing. It is
// idempotent and safe under concurrent first touch.
func (s *Store) EnsureSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}

	if _, err := s.pool.Exec(ctx, s.schemaDDL()); err != nil {
		return fmt.Errorf("%w: ensure schema: %v", ErrUnavailable, err)
	}
	s.ready = true
	return nil
}

func (s *Store) schemaDDL() string {
	return fmt.Sprintf(`
		CREATE EXTENSION IF NOT EXISTS vector;

		CREATE TABLE IF NOT EXISTS %[1]s (
			id          TEXT PRIMARY KEY,
			agent_id    TEXT NOT NULL,
			source_id   TEXT NOT NULL,
			source_type TEXT NOT NULL,
			chunk_index INT NOT NULL,
			content     TEXT NOT NULL,
			embedding   vector(%[2]d) NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_%[1]s_agent_id ON %[1]s (agent_id);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_source_id ON %[1]s (source_id);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_embedding ON %[1]s
			USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100);
	`, s.table, s.dim)
}

// Upsert writes a batch of entries in one statement. The batch is atomic:
// either every entry lands or none does.
func (s *Store) Upsert(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `INSERT INTO %s (id, agent_id, source_id, source_type, chunk_index, content, embedding) VALUES `, s.table)

	args := make([]any, 0, len(entries)*7)
	for i, e := range entries {
		if len(e.Embedding) != s.dim {
			return fmt.Errorf("%w: entry %q has dimension %d, index expects %d",
				ErrUnavailable, e.ID, len(e.Embedding), s.dim)
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i*7 + 1
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, e.ID, e.Payload.AgentID, e.Payload.SourceID,
			e.Payload.SourceType, e.Payload.ChunkIndex, e.Payload.Text,
			vectorLiteral(e.Embedding))
	}

	sb.WriteString(` ON CONFLICT (id) DO UPDATE SET
		agent_id = EXCLUDED.agent_id,
		source_id = EXCLUDED.source_id,
		source_type = EXCLUDED.source_type,
		chunk_index = EXCLUDED.chunk_index,
		content = EXCLUDED.content,
		embedding = EXCLUDED.embedding`)

	if _, err := s.pool.Exec(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("%w: upsert %d entries: %v", ErrUnavailable, len(entries), err)
	}

	s.counts.Invalidate(entries[0].Payload.AgentID)
	return nil
}

// Search returns up to topK hits matching the filter, score descending.
// Score is cosine similarity in [0, 1].
func (s *Store) Search(ctx context.Context, query []float32, topK int, f Filter) ([]Hit, error) {
	if f.empty() {
		return nil, fmt.Errorf("%w: search requires a filter", ErrUnavailable)
	}
	if err := s.searchSem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer s.searchSem.Release(1)

	opCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()

	where, args := filterClause(f, 2)
	args = append([]any{vectorLiteral(query)}, args...)
	sql := fmt.Sprintf(`SELECT id, agent_id, source_id, source_type, chunk_index, content,
			1 - (embedding <=> $1) AS score
		FROM %s
		WHERE %s
		ORDER BY embedding <=> $1
		LIMIT %d`, s.table, where, topK)

	rows, err := s.pool.Query(opCtx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: search: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.ID, &h.Payload.AgentID, &h.Payload.SourceID,
			&h.Payload.SourceType, &h.Payload.ChunkIndex, &h.Payload.Text, &h.Score); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", ErrUnavailable, err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: search: %v", ErrUnavailable, err)
	}
	return hits, nil
}

// DeleteByFilter removes every entry matching the filter. Used for training
// row deletion (source_id) and agent deletion cascades (agent_id).
func (s *Store) DeleteByFilter(ctx context.Context, f Filter) error {
	if f.empty() {
		return fmt.Errorf("%w: delete requires a filter", ErrUnavailable)
	}

	where, args := filterClause(f, 1)
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s", s.table, where)

	if _, err := s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("%w: delete: %v", ErrUnavailable, err)
	}

	if f.AgentID != "" {
		s.counts.Invalidate(f.AgentID)
	} else {
		// Deleting by source alone changes some agent's count; drop them all.
		s.counts.Clear()
	}
	return nil
}

// CountByAgent reports the number of indexed entries for an agent. The value
// rides a short TTL cache: it may briefly lag upserts and deletes, which is
// acceptable for the orchestrator's skip-retrieval check.
func (s *Store) CountByAgent(ctx context.Context, agentID string) (int, error) {
	if n, ok := s.counts.Get(agentID); ok {
		return n, nil
	}

	var n int
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE agent_id = $1", s.table)
	if err := s.pool.QueryRow(ctx, sql, agentID).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count: %v", ErrUnavailable, err)
	}

	s.counts.Set(agentID, n)
	return n, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// filterClause renders the WHERE clause for a filter, numbering placeholders
// from start.
func filterClause(f Filter, start int) (string, []any) {
	var conds []string
	var args []any
	if f.AgentID != "" {
		conds = append(conds, fmt.Sprintf("agent_id = $%d", start+len(args)))
		args = append(args, f.AgentID)
	}
	if f.SourceID != "" {
		conds = append(conds, fmt.Sprintf("source_id = $%d", start+len(args)))
		args = append(args, f.SourceID)
	}
	return strings.Join(conds, " AND "), args
}

// vectorLiteral renders a float32 slice in pgvector's text format: [1,2,3]
func vectorLiteral(v []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%g", f)
	}
	sb.WriteByte(']')
	return sb.String()
}

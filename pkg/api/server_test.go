package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/pkg/analytics"
	"github.com/merxlab/merx/pkg/auth"
	"github.com/merxlab/merx/pkg/builder"
	"github.com/merxlab/merx/pkg/config"
	"github.com/merxlab/merx/pkg/ingest"
	"github.com/merxlab/merx/pkg/llm"
	"github.com/merxlab/merx/pkg/orchestrator"
	"github.com/merxlab/merx/pkg/services"
	"github.com/merxlab/merx/pkg/vector"
	testdb "github.com/merxlab/merx/test/database"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeVerifier resolves two fixed tokens; anything else is invalid.
type fakeVerifier struct{}

func (fakeVerifier) Verify(_ context.Context, token string) (string, error) {
	switch token {
	case "owner-token":
		return "owner-1", nil
	case "other-token":
		return "owner-2", nil
	default:
		return "", auth.ErrInvalidToken
	}
}

// fakeModel answers every chat with a fixed reply.
type fakeModel struct{}

func (fakeModel) Chat(_ context.Context, _ llm.ChatRequest) (string, error) {
	return "Happy to help!", nil
}

func (fakeModel) Embed(_ context.Context, _ string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

// fakeRetriever reports an empty index so turns skip retrieval.
type fakeRetriever struct{}

func (fakeRetriever) Search(_ context.Context, _ []float32, _ int, _ vector.Filter) ([]vector.Hit, error) {
	return nil, nil
}

func (fakeRetriever) CountByAgent(_ context.Context, _ string) (int, error) {
	return 0, nil
}

// fakeIndex satisfies both the ingestion index and the service-layer vector
// cleanup interface.
type fakeIndex struct {
	mu      sync.Mutex
	deleted []vector.Filter
}

func (f *fakeIndex) Upsert(_ context.Context, _ []vector.Entry) error { return nil }

func (f *fakeIndex) DeleteByFilter(_ context.Context, filter vector.Filter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, filter)
	return nil
}

type fakeEmbedder struct{}

func (fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = []float32{0.1, 0.2}
	}
	return out, nil
}

type testServer struct {
	server  *Server
	handler http.Handler
	queue   *ingest.Queue
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := &config.Config{
		Server: &config.ServerConfig{
			Port:           0,
			Environment:    "test",
			RequestTimeout: 10 * time.Second,
		},
		Orchestrator: &config.OrchestratorConfig{
			MaxConversationHistory: 10,
			LeadQualifyMinMessages: 5,
			RetrievalScoreFloor:    0.5,
			RetrievalTopK:          3,
			TurnBudget:             10 * time.Second,
		},
		Ingest: &config.IngestConfig{
			WorkerCount:     1,
			QueueCapacity:   8,
			URLFetchTimeout: 2 * time.Second,
			EmbedBatchSize:  8,
			ChunkSize:       500,
			ChunkOverlap:    50,
		},
		Uploads: &config.UploadConfig{Dir: t.TempDir(), MaxBytes: 1 << 20},
	}

	index := &fakeIndex{}
	agents := services.NewAgentService(client.Client, index)
	products := services.NewProductService(client.Client)
	conversations := services.NewConversationService(client.Client)
	training := services.NewTrainingService(client.Client, index)
	orders := services.NewOrderService(client.Client)

	processor := ingest.NewProcessor(cfg.Ingest)
	pipeline := ingest.NewPipeline(processor, fakeEmbedder{}, index, training, cfg.Ingest)
	// The queue is never started: enqueued jobs stay buffered, which lets
	// tests assert on depth without racing workers.
	queue := ingest.NewQueue(pipeline, cfg.Ingest)

	engine := builder.NewEngine(
		builder.NewManager(),
		builder.NewServiceMaterializer(agents, products, training, queue),
	)

	server := NewServer(Deps{
		Config:        cfg,
		DB:            client,
		Verifier:      fakeVerifier{},
		Vectors:       fakeRetriever{},
		Agents:        agents,
		Products:      products,
		Conversations: conversations,
		Training:      training,
		Orders:        orders,
		Analytics:     analytics.NewService(client.Client),
		Orchestrator:  orchestrator.New(fakeModel{}, fakeRetriever{}, cfg.Orchestrator),
		Builder:       engine,
		Processor:     processor,
		Queue:         queue,
	})

	return &testServer{server: server, handler: server.Handler(), queue: queue}
}

// request performs one HTTP round trip against the router.
func (ts *testServer) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

// decodeData unmarshals the data field of a success envelope.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// createAgentViaAPI provisions one agent through the public surface.
func (ts *testServer) createAgentViaAPI(t *testing.T, token, name string) map[string]any {
	t.Helper()
	rec := ts.request(t, http.MethodPost, "/api/agents", gin.H{
		"name":         name,
		"company_name": "Acme",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var agent map[string]any
	decodeData(t, rec, &agent)
	return agent
}

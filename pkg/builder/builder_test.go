package builder

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMaterializer struct {
	calls   int
	ownerID string
	acc     *Accumulator
	err     error
}

func (f *fakeMaterializer) Materialize(_ context.Context, ownerID string, acc *Accumulator) (string, error) {
	f.calls++
	f.ownerID = ownerID
	f.acc = acc
	if f.err != nil {
		return "", f.err
	}
	return "agent-new", nil
}

func newTestEngine() (*Engine, *fakeMaterializer) {
	mat := &fakeMaterializer{}
	return NewEngine(NewManager(), mat), mat
}

func converse(t *testing.T, e *Engine, sessionID, msg string) TurnOutput {
	t.Helper()
	out, err := e.Converse(context.Background(), sessionID, "owner-1", msg)
	require.NoError(t, err)
	return out
}

func TestStartAsksForCompanyName(t *testing.T) {
	e, _ := newTestEngine()

	out := e.Start("owner-1")

	assert.NotEmpty(t, out.SessionID)
	assert.Equal(t, PhaseAgentInfo, out.Phase)
	assert.Contains(t, out.Prompt, "company")
	assert.False(t, out.IsComplete)
}

// Minimal path: three required answers, optional and later phases skipped,
// completion yields the materialized agent id.
func TestMinimalDialogueMaterializes(t *testing.T) {
	e, mat := newTestEngine()
	id := e.Start("owner-1").SessionID

	converse(t, e, id, "Acme")
	converse(t, e, id, "We sell widgets.")
	converse(t, e, id, "Alex")
	converse(t, e, id, "skip") // tone
	converse(t, e, id, "skip") // greeting -> products phase
	converse(t, e, id, "skip") // products -> training phase
	out := converse(t, e, id, "done")

	assert.True(t, out.IsComplete)
	assert.Equal(t, PhaseComplete, out.Phase)
	assert.Equal(t, "agent-new", out.AgentID)

	require.Equal(t, 1, mat.calls)
	assert.Equal(t, "owner-1", mat.ownerID)
	assert.Equal(t, "Acme", mat.acc.Agent.CompanyName)
	assert.Equal(t, "We sell widgets.", mat.acc.Agent.CompanyDescription)
	assert.Equal(t, "Alex", mat.acc.Agent.AgentName)
	assert.Empty(t, mat.acc.Products)
	assert.Empty(t, mat.acc.Training.URLs)
}

func TestRequiredFieldCannotBeSkipped(t *testing.T) {
	e, _ := newTestEngine()
	id := e.Start("owner-1").SessionID

	out := converse(t, e, id, "skip")

	assert.Equal(t, PhaseAgentInfo, out.Phase)
	assert.Contains(t, out.Prompt, "company")

	// The answer after the re-ask still lands in the right field.
	converse(t, e, id, "Acme")
	session, err := e.sessions.Get(id, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", session.State.Accumulator.Agent.CompanyName)
}

func TestProductsAccumulateAcrossTurns(t *testing.T) {
	e, mat := newTestEngine()
	id := e.Start("owner-1").SessionID

	converse(t, e, id, "Acme")
	converse(t, e, id, "We sell widgets.")
	converse(t, e, id, "Alex")
	converse(t, e, id, "professional")
	converse(t, e, id, "Welcome to Acme!")

	out := converse(t, e, id, "Widget Classic")
	assert.Equal(t, PhaseProducts, out.Phase)

	converse(t, e, id, "Widget Pro | heavy duty | 49.99 EUR")
	converse(t, e, id, "done") // -> training
	out = converse(t, e, id, "done")

	require.True(t, out.IsComplete)
	require.Len(t, mat.acc.Products, 2)
	assert.Equal(t, "Widget Classic", mat.acc.Products[0].Name)
	require.NotNil(t, mat.acc.Products[1].Spec)
	assert.Equal(t, 49.99, mat.acc.Products[1].Spec.Price)
	assert.Equal(t, "professional", mat.acc.Agent.Tone)
	assert.Equal(t, "Welcome to Acme!", mat.acc.Agent.GreetingMessage)
}

func TestTrainingCollectsURLsAndFAQs(t *testing.T) {
	e, mat := newTestEngine()
	id := e.Start("owner-1").SessionID

	converse(t, e, id, "Acme")
	converse(t, e, id, "We sell widgets.")
	converse(t, e, id, "Alex")
	converse(t, e, id, "skip")
	converse(t, e, id, "skip")
	converse(t, e, id, "skip") // products

	out := converse(t, e, id, "https://acme.example/docs")
	assert.Equal(t, PhaseTraining, out.Phase)
	converse(t, e, id, "Q: Returns?\nA: 30 days.")
	out = converse(t, e, id, "done")

	require.True(t, out.IsComplete)
	assert.Equal(t, []string{"https://acme.example/docs"}, mat.acc.Training.URLs)
	require.Len(t, mat.acc.Training.FAQs, 1)
	assert.Equal(t, "Returns?", mat.acc.Training.FAQs[0].Question)
}

func TestAttachDocumentRecordsPendingFile(t *testing.T) {
	e, mat := newTestEngine()
	id := e.Start("owner-1").SessionID

	require.NoError(t, e.AttachDocument(id, "owner-1", "catalog.pdf", "extracted text"))

	converse(t, e, id, "Acme")
	converse(t, e, id, "We sell widgets.")
	converse(t, e, id, "Alex")
	converse(t, e, id, "skip")
	converse(t, e, id, "skip")
	converse(t, e, id, "skip")
	converse(t, e, id, "done")

	require.Len(t, mat.acc.Training.Files, 1)
	assert.Equal(t, "catalog.pdf", mat.acc.Training.Files[0].Filename)
	assert.Equal(t, "extracted text", mat.acc.Training.Files[0].Text)
	assert.Equal(t, "pending", mat.acc.Training.Files[0].Status)
}

func TestMaterializeFailureKeepsSessionInTraining(t *testing.T) {
	e, mat := newTestEngine()
	mat.err = fmt.Errorf("store down")
	id := e.Start("owner-1").SessionID

	converse(t, e, id, "Acme")
	converse(t, e, id, "We sell widgets.")
	converse(t, e, id, "Alex")
	converse(t, e, id, "skip")
	converse(t, e, id, "skip")
	converse(t, e, id, "skip")

	_, err := e.Converse(context.Background(), id, "owner-1", "done")
	require.Error(t, err)

	session, getErr := e.sessions.Get(id, "owner-1")
	require.NoError(t, getErr)
	assert.Equal(t, PhaseTraining, session.State.Phase, "a failed materialize can be retried")
}

func TestSessionScopedToOwner(t *testing.T) {
	e, _ := newTestEngine()
	id := e.Start("owner-1").SessionID

	_, err := e.Converse(context.Background(), id, "owner-2", "Acme")
	assert.Error(t, err)
}

func TestUnknownSessionRejected(t *testing.T) {
	e, _ := newTestEngine()
	_, err := e.Converse(context.Background(), "nope", "owner-1", "hi")
	assert.Error(t, err)
}

func TestTranscriptRecordsBothSides(t *testing.T) {
	e, _ := newTestEngine()
	id := e.Start("owner-1").SessionID
	converse(t, e, id, "Acme")

	session, err := e.sessions.Get(id, "owner-1")
	require.NoError(t, err)
	// opening prompt, user answer, follow-up question.
	require.Len(t, session.Transcript, 3)
	assert.Equal(t, "Acme", session.Transcript[1].Content)
}

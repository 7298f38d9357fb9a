package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/merxlab/merx/pkg/ingest"
	"github.com/merxlab/merx/pkg/models"
	"github.com/merxlab/merx/pkg/services"
)

// ServiceMaterializer persists a completed accumulator through the service
// layer and hands the collected knowledge sources to the ingestion queue.
type ServiceMaterializer struct {
	agents   *services.AgentService
	products *services.ProductService
	training *services.TrainingService
	queue    *ingest.Queue
}

// NewServiceMaterializer wires the materializer.
func NewServiceMaterializer(agents *services.AgentService, products *services.ProductService, training *services.TrainingService, queue *ingest.Queue) *ServiceMaterializer {
	return &ServiceMaterializer{
		agents:   agents,
		products: products,
		training: training,
		queue:    queue,
	}
}

// Materialize creates the agent, its catalog rows, and one training row plus
// queued job per collected knowledge source. The agent row is the anchor:
// if it cannot be created nothing else is attempted. Individual training
// sources that fail to enqueue are marked failed without undoing the agent.
func (m *ServiceMaterializer) Materialize(ctx context.Context, ownerID string, acc *Accumulator) (string, error) {
	draft := acc.Agent
	tone := draft.Tone
	if tone == "" {
		tone = "friendly"
	}

	agent, err := m.agents.Create(ctx, ownerID, services.AgentInput{
		Name:               draft.AgentName,
		CompanyName:        draft.CompanyName,
		CompanyDescription: draft.CompanyDescription,
		Tone:               tone,
		GreetingMessage:    draft.GreetingMessage,
		Products:           acc.Products,
	})
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	for _, ref := range acc.Products {
		if _, err := m.products.Create(ctx, ownerID, agent.ID, productInput(ref)); err != nil {
			slog.Warn("Builder catalog row creation failed",
				"agent_id", agent.ID, "product", ref.DisplayName(), "error", err)
		}
	}

	for _, url := range acc.Training.URLs {
		m.enqueue(ctx, agent.ID, services.TrainingTypeURL,
			map[string]interface{}{"url": url},
			ingest.Source{Type: ingest.SourceURL, URL: url})
	}
	if len(acc.Training.FAQs) > 0 {
		m.enqueue(ctx, agent.ID, services.TrainingTypeFAQ,
			map[string]interface{}{"pairs": len(acc.Training.FAQs)},
			ingest.Source{Type: ingest.SourceFAQ, FAQs: acc.Training.FAQs, Filename: "builder-faq"})
	}
	for _, f := range acc.Training.Files {
		// The document's text was extracted at upload time; the worker only
		// needs to chunk and embed it.
		m.enqueue(ctx, agent.ID, services.TrainingTypePDF,
			map[string]interface{}{"filename": f.Filename},
			ingest.Source{Type: ingest.SourceText, Text: f.Text, Filename: f.Filename})
	}

	return agent.ID, nil
}

// enqueue creates the pending training row and submits the job. An enqueue
// failure flips the fresh row to failed so it never sits in processing.
func (m *ServiceMaterializer) enqueue(ctx context.Context, agentID, rowType string, metadata map[string]interface{}, src ingest.Source) {
	row, err := m.training.CreatePending(ctx, agentID, rowType, metadata)
	if err != nil {
		slog.Error("Builder training row creation failed",
			"agent_id", agentID, "type", rowType, "error", err)
		return
	}

	if err := m.queue.Enqueue(ingest.Job{TrainingDataID: row.ID, AgentID: agentID, Source: src}); err != nil {
		slog.Warn("Builder ingestion enqueue rejected",
			"agent_id", agentID, "training_data_id", row.ID, "error", err)
		if markErr := m.training.MarkFailed(ctx, row.ID, err.Error()); markErr != nil {
			slog.Error("Failed to mark rejected training row",
				"training_data_id", row.ID, "error", markErr)
		}
	}
}

func productInput(ref models.ProductRef) services.ProductInput {
	if ref.Spec == nil {
		return services.ProductInput{Name: ref.Name}
	}
	return services.ProductInput{
		Name:        ref.Spec.Name,
		Description: ref.Spec.Description,
		Price:       ref.Spec.Price,
		Currency:    ref.Spec.Currency,
		Features:    ref.Spec.Features,
	}
}

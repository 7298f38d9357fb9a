package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/ent/trainingdata"
)

// CleanupInterruptedRows marks training rows stuck in processing as failed.
// The in-memory queue does not survive restarts, so any row still processing
// at boot was interrupted; its job will never run again.
func CleanupInterruptedRows(ctx context.Context, client *ent.Client) (int, error) {
	rows, err := client.TrainingData.Query().
		Where(trainingdata.StatusEQ(trainingdata.StatusProcessing)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query interrupted training rows: %w", err)
	}

	recovered := 0
	for _, row := range rows {
		metadata := row.Metadata
		if metadata == nil {
			metadata = map[string]interface{}{}
		}
		metadata["error"] = "ingestion interrupted by restart"

		err := client.TrainingData.UpdateOneID(row.ID).
			SetStatus(trainingdata.StatusFailed).
			SetMetadata(metadata).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark interrupted training row",
				"training_data_id", row.ID,
				"error", err)
			continue
		}
		recovered++
	}

	if recovered > 0 {
		slog.Info("Recovered interrupted training rows", "count", recovered)
	}
	return recovered, nil
}

package triggers

import (
	"context"
	"log/slog"

	"solace/internal/database"
	"solace/internal/models"
	"solace/internal/services"
)

// AnalysisPipeline is the downstream of the trigger layer: sentiment
// analysis plus the chained aggregate/recommendation recomputes.
type AnalysisPipeline interface {
	AnalyzeEvent(ctx context.Context, event models.Event) error
	AnalyzeJournal(ctx context.Context, entry models.JournalEntry) error
}

// RegisterPipeline wires the three store triggers: on-create(events),
// on-create(journals), on-update(journals). There is deliberately no
// on-update(events) — events are analyzed once at creation.
func RegisterPipeline(d *Dispatcher, pipeline AnalysisPipeline, metrics *services.Metrics) {
	d.Register(database.CollectionEvents, OpCreate, func(ctx context.Context, change Change) error {
		if change.Event == nil {
			return nil
		}
		return pipeline.AnalyzeEvent(ctx, *change.Event)
	})

	d.Register(database.CollectionJournals, OpCreate, func(ctx context.Context, change Change) error {
		if change.Journal == nil {
			return nil
		}
		return pipeline.AnalyzeJournal(ctx, *change.Journal)
	})

	d.Register(database.CollectionJournals, OpUpdate, func(ctx context.Context, change Change) error {
		if change.Journal == nil {
			return nil
		}
		// Re-analysis only when title+body actually changed. Updates to
		// other fields (tags, timestamps) must not re-run the pipeline.
		if change.PrevJournal != nil && change.PrevJournal.Content() == change.Journal.Content() {
			slog.Debug("journal content unchanged, skipping re-analysis",
				"journal_id", change.Journal.ID.Hex())
			metrics.RecordSkippedJournalUpdate()
			return nil
		}
		return pipeline.AnalyzeJournal(ctx, *change.Journal)
	})
}

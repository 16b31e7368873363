package jobs

import (
	"context"
	"fmt"
	"log"

	"solace/internal/services"
)

// InsightsSweep recomputes the aggregate and recommendations for every user
// with journal entries. Trigger failures are at-most-once and uncompensated,
// so a stale aggregate can linger until the user's next journal write; the
// nightly sweep heals those.
type InsightsSweep struct {
	journals        services.JournalStore
	aggregates      *services.AggregateService
	recommendations *services.RecommendationService
}

// NewInsightsSweep creates a new insights sweep job
func NewInsightsSweep(
	journals services.JournalStore,
	aggregates *services.AggregateService,
	recommendations *services.RecommendationService,
) *InsightsSweep {
	return &InsightsSweep{
		journals:        journals,
		aggregates:      aggregates,
		recommendations: recommendations,
	}
}

// Run sweeps all journaling users. Per-user failures are logged and the
// sweep moves on; the job only errors when the user list itself cannot be
// loaded.
func (j *InsightsSweep) Run(ctx context.Context) error {
	log.Printf("🔄 [INSIGHTS-SWEEP] Starting sweep")

	userIDs, err := j.journals.DistinctUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list journaling users: %w", err)
	}

	log.Printf("📊 [INSIGHTS-SWEEP] Processing %d users", len(userIDs))

	swept := 0
	failed := 0
	for _, userID := range userIDs {
		if err := j.aggregates.UpdateUserJournalAggregate(ctx, userID); err != nil {
			log.Printf("⚠️ [INSIGHTS-SWEEP] Aggregate failed for user %s: %v", userID, err)
			failed++
			continue
		}
		if err := j.recommendations.RecomputeRecommendations(ctx, userID); err != nil {
			log.Printf("⚠️ [INSIGHTS-SWEEP] Recommendations failed for user %s: %v", userID, err)
			failed++
			continue
		}
		swept++
	}

	log.Printf("✅ [INSIGHTS-SWEEP] Sweep completed: %d users updated, %d failed", swept, failed)
	return nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"solace/internal/models"
	"solace/internal/sentiment"
)

// AnalysisService scores document text and persists the sentiment block,
// then chains the per-user aggregate and recommendation recomputes for
// journal documents. Steps run sequentially; a failed step leaves earlier
// writes in place (no compensation, the next qualifying write re-heals).
type AnalysisService struct {
	analyzer        *sentiment.Analyzer
	events          EventStore
	journals        JournalStore
	aggregates      *AggregateService
	recommendations *RecommendationService
	metrics         *Metrics
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	analyzer *sentiment.Analyzer,
	events EventStore,
	journals JournalStore,
	aggregates *AggregateService,
	recommendations *RecommendationService,
	metrics *Metrics,
) *AnalysisService {
	return &AnalysisService{
		analyzer:        analyzer,
		events:          events,
		journals:        journals,
		aggregates:      aggregates,
		recommendations: recommendations,
		metrics:         metrics,
	}
}

// AnalyzeEvent scores a newly created event and attaches the sentiment
// block. Events are analyzed once; there is no update path.
func (s *AnalysisService) AnalyzeEvent(ctx context.Context, event models.Event) error {
	result := s.analyzer.Analyze(event.Text())
	if result == nil {
		slog.Debug("event has no analyzable text", "event_id", event.ID.Hex())
		return nil
	}

	sent := models.Sentiment{
		Score:      result.Score,
		Magnitude:  result.Magnitude,
		Label:      result.Label,
		AnalyzedAt: time.Now(),
	}
	if err := s.events.SetSentiment(ctx, event.ID, sent); err != nil {
		return fmt.Errorf("failed to persist event sentiment: %w", err)
	}

	s.metrics.RecordAnalysis("event", result.Label)

	// A newly scored event changes the recommendation candidate pool.
	s.recommendations.InvalidateCandidates()
	return nil
}

// AnalyzeJournal scores a journal entry, persists the sentiment block, and
// unconditionally recomputes the owning user's aggregate and
// recommendations. Empty text skips the sentiment write but still triggers
// the recomputes.
func (s *AnalysisService) AnalyzeJournal(ctx context.Context, entry models.JournalEntry) error {
	result := s.analyzer.Analyze(entry.Title + " " + entry.Body)
	if result != nil {
		sent := models.Sentiment{
			Score:      result.Score,
			Magnitude:  result.Magnitude,
			Label:      result.Label,
			AnalyzedAt: time.Now(),
		}
		if err := s.journals.SetSentiment(ctx, entry.ID, sent); err != nil {
			return fmt.Errorf("failed to persist journal sentiment: %w", err)
		}
		s.metrics.RecordAnalysis("journal", result.Label)
	} else {
		slog.Debug("journal entry has no analyzable text", "journal_id", entry.ID.Hex())
	}

	if entry.UserID == "" {
		return nil
	}

	if err := s.aggregates.UpdateUserJournalAggregate(ctx, entry.UserID); err != nil {
		return fmt.Errorf("failed to update aggregate after journal analysis: %w", err)
	}
	if err := s.recommendations.RecomputeRecommendations(ctx, entry.UserID); err != nil {
		return fmt.Errorf("failed to recompute recommendations after journal analysis: %w", err)
	}
	return nil
}

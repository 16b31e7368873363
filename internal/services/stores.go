package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"solace/internal/models"
)

// JournalStore is the journal-collection access used by the pipeline.
// The engines depend on these interfaces rather than on collection handles so
// they stay pure functions of store state and testable without a live store.
type JournalStore interface {
	// RecentByUser returns the user's journal entries created at or after
	// since, ordered newest-first, capped at limit.
	RecentByUser(ctx context.Context, userID string, since time.Time, limit int64) ([]models.JournalEntry, error)

	// SetSentiment merges the sentiment block onto a journal entry.
	SetSentiment(ctx context.Context, id primitive.ObjectID, s models.Sentiment) error

	// DistinctUserIDs returns every user id owning at least one journal entry.
	DistinctUserIDs(ctx context.Context) ([]string, error)
}

// EventStore is the event-collection access used by the pipeline.
type EventStore interface {
	// Upcoming returns events dated at or after from, ordered by date
	// ascending, capped at limit.
	Upcoming(ctx context.Context, from time.Time, limit int64) ([]models.Event, error)

	// SetSentiment merges the sentiment block onto an event.
	SetSentiment(ctx context.Context, id primitive.ObjectID, s models.Sentiment) error
}

// UserStore is the user-collection access used by the pipeline. All writes
// merge individual ai.* fields; sibling fields are never touched.
type UserStore interface {
	// Insights returns the user's current ai sub-document, or nil when the
	// user has none yet.
	Insights(ctx context.Context, userID string) (*models.UserInsights, error)

	// MergeAggregate writes the rolling journal sentiment aggregate.
	MergeAggregate(ctx context.Context, userID string, avg, last float64, at time.Time) error

	// MergeRecommendations writes the ordered recommended event id list.
	MergeRecommendations(ctx context.Context, userID string, eventIDs []string, at time.Time) error
}

package services

import (
	"context"
	"fmt"
	"time"
)

const (
	// journalWindowDays is the trailing window considered for the rolling
	// average.
	journalWindowDays = 30

	// journalWindowLimit caps how many entries inside the window contribute.
	journalWindowLimit = 50
)

// AggregateService recomputes each user's rolling journal sentiment
// aggregate. It is idempotent: re-running with unchanged journal data yields
// the same stored result.
type AggregateService struct {
	journals JournalStore
	users    UserStore
}

// NewAggregateService creates a new aggregate service
func NewAggregateService(journals JournalStore, users UserStore) *AggregateService {
	return &AggregateService{journals: journals, users: users}
}

// UpdateUserJournalAggregate recomputes the user's 30-day average journal
// sentiment and most recent sentiment, and merges them onto the user record.
// Entries not yet analyzed are skipped, not treated as zero.
func (s *AggregateService) UpdateUserJournalAggregate(ctx context.Context, userID string) error {
	now := time.Now()
	since := now.AddDate(0, 0, -journalWindowDays)

	entries, err := s.journals.RecentByUser(ctx, userID, since, journalWindowLimit)
	if err != nil {
		return fmt.Errorf("failed to load recent journals for %s: %w", userID, err)
	}

	var sum float64
	count := 0
	last := 0.0
	haveLast := false

	for _, entry := range entries {
		if entry.AI == nil {
			continue
		}
		sum += entry.AI.Score
		count++
		if !haveLast {
			// Entries are newest-first, so the first scored entry is the
			// most recent one.
			last = entry.AI.Score
			haveLast = true
		}
	}

	avg := 0.0
	if count > 0 {
		avg = sum / float64(count)
	}

	if err := s.users.MergeAggregate(ctx, userID, avg, last, now); err != nil {
		return fmt.Errorf("failed to persist aggregate for %s: %w", userID, err)
	}
	return nil
}

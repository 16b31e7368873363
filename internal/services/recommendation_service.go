package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"

	"solace/internal/category"
	"solace/internal/models"
)

const (
	// candidateLimit caps how many upcoming events are considered per run.
	candidateLimit = 100

	// recommendationCount is the size of the persisted recommendation list.
	recommendationCount = 5

	// Mood thresholds steering users toward a target bucket. Users trending
	// negative get supportive content, trending positive get prosocial
	// content, and everyone else gets educational content.
	supportiveThreshold = -0.3
	prosocialThreshold  = 0.3

	candidateCacheKey = "upcoming-events"
)

// RecommendationService re-ranks upcoming events for a user based on their
// rolling journal sentiment and each event's sentiment and category.
type RecommendationService struct {
	events     EventStore
	users      UserStore
	candidates *cache.Cache
	pubsub     *PubSubService // optional, nil when Redis is not configured
	metrics    *Metrics
}

// NewRecommendationService creates a new recommendation service. The
// candidate event fetch is cached for cacheTTL; analysis of a new event
// invalidates the cache.
func NewRecommendationService(events EventStore, users UserStore, cacheTTL time.Duration, pubsub *PubSubService, metrics *Metrics) *RecommendationService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &RecommendationService{
		events:     events,
		users:      users,
		candidates: cache.New(cacheTTL, 2*cacheTTL),
		pubsub:     pubsub,
		metrics:    metrics,
	}
}

// RecomputeRecommendations rebuilds and persists the user's ordered top-5
// recommended event ids. Events without a recorded sentiment score rank as 0
// but are not excluded.
func (s *RecommendationService) RecomputeRecommendations(ctx context.Context, userID string) error {
	start := time.Now()

	insights, err := s.users.Insights(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to read insights for %s: %w", userID, err)
	}
	avg := 0.0
	if insights != nil {
		avg = insights.JournalSentimentAvg30d
	}

	candidatePool, err := s.upcomingCandidates(ctx)
	if err != nil {
		return fmt.Errorf("failed to load candidate events: %w", err)
	}

	target := targetBucketFor(avg)

	pool := make([]models.Event, 0, recommendationCount)
	for _, ev := range candidatePool {
		if category.Categorize(ev.Text()) == target {
			pool = append(pool, ev)
		}
	}

	// Top up from the other buckets in original fetch order when the target
	// bucket alone cannot fill the list.
	if len(pool) < recommendationCount {
		for _, ev := range candidatePool {
			if len(pool) >= recommendationCount {
				break
			}
			if category.Categorize(ev.Text()) != target {
				pool = append(pool, ev)
			}
		}
	}

	sortPool(pool, avg)

	n := len(pool)
	if n > recommendationCount {
		n = recommendationCount
	}
	ids := make([]string, 0, n)
	for _, ev := range pool[:n] {
		ids = append(ids, ev.ID.Hex())
	}

	if err := s.users.MergeRecommendations(ctx, userID, ids, time.Now()); err != nil {
		return fmt.Errorf("failed to persist recommendations for %s: %w", userID, err)
	}

	s.metrics.RecordRecommendationLatency(time.Since(start).Seconds())

	if s.pubsub != nil {
		if err := s.pubsub.PublishInsightsUpdated(ctx, userID, ids); err != nil {
			log.Printf("⚠️ [RECOMMEND] Failed to publish insights update for user %s: %v", userID, err)
		}
	}

	return nil
}

// InvalidateCandidates drops the cached upcoming-event list. Called when a
// newly created event finishes analysis.
func (s *RecommendationService) InvalidateCandidates() {
	s.candidates.Delete(candidateCacheKey)
}

func (s *RecommendationService) upcomingCandidates(ctx context.Context) ([]models.Event, error) {
	if cached, ok := s.candidates.Get(candidateCacheKey); ok {
		return cached.([]models.Event), nil
	}

	events, err := s.events.Upcoming(ctx, startOfDay(time.Now()), candidateLimit)
	if err != nil {
		return nil, err
	}

	s.candidates.Set(candidateCacheKey, events, cache.DefaultExpiration)
	return events, nil
}

func targetBucketFor(avg float64) category.Bucket {
	switch {
	case avg <= supportiveThreshold:
		return category.BucketSupportive
	case avg >= prosocialThreshold:
		return category.BucketProsocial
	default:
		return category.BucketEducational
	}
}

// sortPool orders candidates by mood: supportive-seeking users see the most
// serious events first, prosocial-seeking the most positive first, and
// neutral users the most neutral-toned first. Stable so equal scores keep
// fetch order.
func sortPool(pool []models.Event, avg float64) {
	switch {
	case avg <= supportiveThreshold:
		sort.SliceStable(pool, func(i, j int) bool {
			return eventScore(pool[i]) < eventScore(pool[j])
		})
	case avg >= prosocialThreshold:
		sort.SliceStable(pool, func(i, j int) bool {
			return eventScore(pool[i]) > eventScore(pool[j])
		})
	default:
		sort.SliceStable(pool, func(i, j int) bool {
			return math.Abs(eventScore(pool[i])) < math.Abs(eventScore(pool[j]))
		})
	}
}

func eventScore(ev models.Event) float64 {
	if ev.AI == nil {
		return 0
	}
	return ev.AI.Score
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

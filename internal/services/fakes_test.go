package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"solace/internal/models"
)

// fakeJournalStore applies the same window/order/limit semantics as the
// Mongo store so engine tests exercise realistic query behavior.
type fakeJournalStore struct {
	entries    []models.JournalEntry
	sentiments map[primitive.ObjectID]models.Sentiment
	err        error
}

func newFakeJournalStore(entries ...models.JournalEntry) *fakeJournalStore {
	return &fakeJournalStore{
		entries:    entries,
		sentiments: make(map[primitive.ObjectID]models.Sentiment),
	}
}

func (f *fakeJournalStore) RecentByUser(_ context.Context, userID string, since time.Time, limit int64) ([]models.JournalEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.JournalEntry
	for _, e := range f.entries {
		if e.UserID == userID && !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeJournalStore) SetSentiment(_ context.Context, id primitive.ObjectID, s models.Sentiment) error {
	if f.err != nil {
		return f.err
	}
	f.sentiments[id] = s
	return nil
}

func (f *fakeJournalStore) DistinctUserIDs(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := make(map[string]bool)
	var out []string
	for _, e := range f.entries {
		if e.UserID != "" && !seen[e.UserID] {
			seen[e.UserID] = true
			out = append(out, e.UserID)
		}
	}
	return out, nil
}

type fakeEventStore struct {
	events     []models.Event
	sentiments map[primitive.ObjectID]models.Sentiment
	err        error
}

func newFakeEventStore(events ...models.Event) *fakeEventStore {
	return &fakeEventStore{
		events:     events,
		sentiments: make(map[primitive.ObjectID]models.Sentiment),
	}
}

func (f *fakeEventStore) Upcoming(_ context.Context, from time.Time, limit int64) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Event
	for _, e := range f.events {
		if !e.Date.Before(from) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEventStore) SetSentiment(_ context.Context, id primitive.ObjectID, s models.Sentiment) error {
	if f.err != nil {
		return f.err
	}
	f.sentiments[id] = s
	return nil
}

type aggregateWrite struct {
	userID string
	avg    float64
	last   float64
}

type fakeUserStore struct {
	insights        map[string]*models.UserInsights
	aggregateWrites []aggregateWrite
	recWrites       [][]string
	err             error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{insights: make(map[string]*models.UserInsights)}
}

func (f *fakeUserStore) Insights(_ context.Context, userID string) (*models.UserInsights, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.insights[userID], nil
}

func (f *fakeUserStore) MergeAggregate(_ context.Context, userID string, avg, last float64, at time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.aggregateWrites = append(f.aggregateWrites, aggregateWrite{userID: userID, avg: avg, last: last})

	ins := f.insights[userID]
	if ins == nil {
		ins = &models.UserInsights{}
		f.insights[userID] = ins
	}
	ins.JournalSentimentAvg30d = avg
	ins.LastJournalSentiment = last
	ins.UpdatedAt = at
	return nil
}

func (f *fakeUserStore) MergeRecommendations(_ context.Context, userID string, eventIDs []string, at time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.recWrites = append(f.recWrites, eventIDs)

	ins := f.insights[userID]
	if ins == nil {
		ins = &models.UserInsights{}
		f.insights[userID] = ins
	}
	ins.RecommendedEventIDs = eventIDs
	ins.UpdatedAt = at
	return nil
}

func scored(score float64) *models.Sentiment {
	label := "neutral"
	if score <= -0.2 {
		label = "negative"
	} else if score >= 0.2 {
		label = "positive"
	}
	return &models.Sentiment{
		Score:      score,
		Magnitude:  1,
		Label:      label,
		AnalyzedAt: time.Now(),
	}
}

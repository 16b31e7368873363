package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"solace/internal/database"
	"solace/internal/models"
)

// MongoJournalStore implements JournalStore over the journals collection.
type MongoJournalStore struct {
	collection *mongo.Collection
}

// NewMongoJournalStore creates a journal store backed by MongoDB.
func NewMongoJournalStore(mongodb *database.MongoDB) *MongoJournalStore {
	return &MongoJournalStore{collection: mongodb.Collection(database.CollectionJournals)}
}

func (s *MongoJournalStore) RecentByUser(ctx context.Context, userID string, since time.Time, limit int64) ([]models.JournalEntry, error) {
	filter := bson.M{
		"userId":    userID,
		"createdAt": bson.M{"$gte": since},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find journals: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.JournalEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode journals: %w", err)
	}
	return entries, nil
}

func (s *MongoJournalStore) SetSentiment(ctx context.Context, id primitive.ObjectID, sent models.Sentiment) error {
	update := bson.M{
		"$set": bson.M{
			"ai.sentimentScore":     sent.Score,
			"ai.sentimentMagnitude": sent.Magnitude,
			"ai.sentimentLabel":     sent.Label,
			"ai.analyzedAt":         sent.AnalyzedAt,
		},
	}
	if _, err := s.collection.UpdateByID(ctx, id, update); err != nil {
		return fmt.Errorf("failed to set journal sentiment: %w", err)
	}
	return nil
}

func (s *MongoJournalStore) DistinctUserIDs(ctx context.Context) ([]string, error) {
	raw, err := s.collection.Distinct(ctx, "userId", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct user IDs: %w", err)
	}

	userIDs := make([]string, 0, len(raw))
	for _, id := range raw {
		if userID, ok := id.(string); ok && userID != "" {
			userIDs = append(userIDs, userID)
		}
	}
	return userIDs, nil
}

// MongoEventStore implements EventStore over the events collection.
type MongoEventStore struct {
	collection *mongo.Collection
}

// NewMongoEventStore creates an event store backed by MongoDB.
func NewMongoEventStore(mongodb *database.MongoDB) *MongoEventStore {
	return &MongoEventStore{collection: mongodb.Collection(database.CollectionEvents)}
}

func (s *MongoEventStore) Upcoming(ctx context.Context, from time.Time, limit int64) ([]models.Event, error) {
	filter := bson.M{"date": bson.M{"$gte": from}}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetLimit(limit)

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find upcoming events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

func (s *MongoEventStore) SetSentiment(ctx context.Context, id primitive.ObjectID, sent models.Sentiment) error {
	update := bson.M{
		"$set": bson.M{
			"ai.sentimentScore":     sent.Score,
			"ai.sentimentMagnitude": sent.Magnitude,
			"ai.sentimentLabel":     sent.Label,
			"ai.analyzedAt":         sent.AnalyzedAt,
		},
	}
	if _, err := s.collection.UpdateByID(ctx, id, update); err != nil {
		return fmt.Errorf("failed to set event sentiment: %w", err)
	}
	return nil
}

// MongoUserStore implements UserStore over the users collection.
type MongoUserStore struct {
	collection *mongo.Collection
}

// NewMongoUserStore creates a user store backed by MongoDB.
func NewMongoUserStore(mongodb *database.MongoDB) *MongoUserStore {
	return &MongoUserStore{collection: mongodb.Collection(database.CollectionUsers)}
}

func (s *MongoUserStore) Insights(ctx context.Context, userID string) (*models.UserInsights, error) {
	var doc struct {
		AI *models.UserInsights `bson:"ai"`
	}
	err := s.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return doc.AI, nil
}

func (s *MongoUserStore) MergeAggregate(ctx context.Context, userID string, avg, last float64, at time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"ai.journalSentimentAvg30d": avg,
			"ai.lastJournalSentiment":   last,
			"ai.updatedAt":              at,
		},
	}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"userId": userID}, update); err != nil {
		return fmt.Errorf("failed to merge user aggregate: %w", err)
	}
	return nil
}

func (s *MongoUserStore) MergeRecommendations(ctx context.Context, userID string, eventIDs []string, at time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"ai.recommendedEventIds": eventIDs,
			"ai.updatedAt":           at,
		},
	}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"userId": userID}, update); err != nil {
		return fmt.Errorf("failed to merge user recommendations: %w", err)
	}
	return nil
}

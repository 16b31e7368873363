package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the user record in the users collection. Account fields are owned
// by the auth collaborator; this service only reads userId and writes the ai
// sub-document.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"user_id"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	DisplayName string             `bson:"displayName,omitempty" json:"display_name,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"created_at,omitempty"`

	AI *UserInsights `bson:"ai,omitempty" json:"ai,omitempty"`
}

// UserInsights is the per-user rollup written exclusively by the aggregation
// and recommendation engines. All writes merge individual fields so
// concurrently written siblings are never clobbered.
type UserInsights struct {
	JournalSentimentAvg30d float64   `bson:"journalSentimentAvg30d" json:"journal_sentiment_avg_30d"`
	LastJournalSentiment   float64   `bson:"lastJournalSentiment" json:"last_journal_sentiment"`
	RecommendedEventIDs    []string  `bson:"recommendedEventIds" json:"recommended_event_ids"`
	UpdatedAt              time.Time `bson:"updatedAt" json:"updated_at"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JournalEntry represents a single journal post owned by one user.
// The ai block is recomputed whenever the title+body content changes.
type JournalEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"user_id"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Tags      []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updated_at,omitempty"`

	AI *Sentiment `bson:"ai,omitempty" json:"ai,omitempty"`
}

// Content returns the concatenated title and body. Journal update triggers
// compare this between the previous and current revision to decide whether
// re-analysis is needed.
func (j *JournalEntry) Content() string {
	return j.Title + "\n" + j.Body
}

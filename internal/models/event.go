package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event represents a community event created by the event workflow.
// The ai block is absent until the sentiment trigger has run; events are
// analyzed once on creation and never re-analyzed on later edits.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        time.Time          `bson:"date" json:"date"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`

	AI *Sentiment `bson:"ai,omitempty" json:"ai,omitempty"`
}

// Text returns the concatenated title and description used for sentiment
// analysis and categorization.
func (e *Event) Text() string {
	return e.Title + " " + e.Description
}

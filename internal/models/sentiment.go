package models

import "time"

// Sentiment label values stored in the ai sub-document.
const (
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
	SentimentPositive = "positive"
)

// Sentiment is the derived sentiment block attached to events and journal
// entries under the "ai" sub-document once analysis has run.
type Sentiment struct {
	Score      float64   `bson:"sentimentScore" json:"sentiment_score"`         // [-1, 1]
	Magnitude  float64   `bson:"sentimentMagnitude" json:"sentiment_magnitude"` // >= 0
	Label      string    `bson:"sentimentLabel" json:"sentiment_label"`
	AnalyzedAt time.Time `bson:"analyzedAt" json:"analyzed_at"`
}

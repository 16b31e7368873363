package category

import "strings"

// Bucket is one of the fixed topical categories used to match a user's mood
// to event types.
type Bucket string

const (
	BucketSupportive  Bucket = "supportive"
	BucketEducational Bucket = "educational"
	BucketProsocial   Bucket = "prosocial"
	BucketOther       Bucket = "other"
)

// rules are checked in order; the first bucket with a matching keyword wins.
// Keywords are stems, so "therap" matches therapy, therapist, therapeutic.
var rules = []struct {
	bucket   Bucket
	keywords []string
}{
	{BucketSupportive, []string{"support", "counsel", "therap", "help", "wellbeing", "mental"}},
	{BucketEducational, []string{"awareness", "workshop", "talk", "webinar", "learn", "education"}},
	{BucketProsocial, []string{"volunteer", "drive", "cleanup", "mentorship", "donat", "fundrais"}},
}

// Categorize assigns text to a bucket via case-insensitive keyword matching.
func Categorize(text string) Bucket {
	lowered := strings.ToLower(text)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.bucket
			}
		}
	}
	return BucketOther
}

package services

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"solace/internal/category"
	"solace/internal/models"
)

func futureEvent(daysAhead int, title string, ai *models.Sentiment) models.Event {
	return models.Event{
		ID:    primitive.NewObjectID(),
		Title: title,
		Date:  startOfDay(time.Now()).AddDate(0, 0, daysAhead),
		AI:    ai,
	}
}

func newTestRecommendationService(events *fakeEventStore, users *fakeUserStore) *RecommendationService {
	return NewRecommendationService(events, users, time.Minute, nil, nil)
}

func setAvg(users *fakeUserStore, userID string, avg float64) {
	users.insights[userID] = &models.UserInsights{JournalSentimentAvg30d: avg}
}

func assertRecommended(t *testing.T, users *fakeUserStore, want []string) {
	t.Helper()
	if len(users.recWrites) == 0 {
		t.Fatal("no recommendations were written")
	}
	got := users.recWrites[len(users.recWrites)-1]
	if len(got) != len(want) {
		t.Fatalf("got %d recommendations %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRecomputeSupportiveSeekerRanksAscending(t *testing.T) {
	ev1 := futureEvent(1, "Peer support circle", scored(0.1))
	ev2 := futureEvent(2, "Grief support group", scored(-0.4))
	ev3 := futureEvent(3, "Wellbeing support evening", scored(0.3))
	events := newFakeEventStore(ev1, ev2, ev3)
	users := newFakeUserStore()
	setAvg(users, "u1", -0.5)
	service := newTestRecommendationService(events, users)

	if err := service.RecomputeRecommendations(context.Background(), "u1"); err != nil {
		t.Fatalf("RecomputeRecommendations: %v", err)
	}

	// Most negative/serious first for users trending negative.
	assertRecommended(t, users, []string{ev2.ID.Hex(), ev1.ID.Hex(), ev3.ID.Hex()})
}

func TestRecomputeProsocialSeekerRanksDescending(t *testing.T) {
	ev1 := futureEvent(1, "River cleanup volunteer day", scored(0.1))
	ev2 := futureEvent(2, "Toy donation drive", scored(0.8))
	ev3 := futureEvent(3, "Mentorship program kickoff", scored(-0.3))
	events := newFakeEventStore(ev1, ev2, ev3)
	users := newFakeUserStore()
	setAvg(users, "u1", 0.6)
	service := newTestRecommendationService(events, users)

	if err := service.RecomputeRecommendations(context.Background(), "u1"); err != nil {
		t.Fatalf("RecomputeRecommendations: %v", err)
	}

	assertRecommended(t, users, []string{ev2.ID.Hex(), ev1.ID.Hex(), ev3.ID.Hex()})
}

func TestRecomputeNeutralUserRanksByAbsoluteScore(t *testing.T) {
	ev1 := futureEvent(1, "Budgeting basics workshop", scored(0.5))
	ev2 := futureEvent(2, "Nutrition awareness webinar", scored(-0.1))
	ev3 := futureEvent(3, "Learn to garden", scored(0.2))
	events := newFakeEventStore(ev1, ev2, ev3)
	users := newFakeUserStore() // no insights at all: avg treated as 0
	service := newTestRecommendationService(events, users)

	if err := service.RecomputeRecommendations(context.Background(), "u1"); err != nil {
		t.Fatalf("RecomputeRecommendations: %v", err)
	}

	// Most neutral-toned first.
	assertRecommended(t, users, []string{ev2.ID.Hex(), ev3.ID.Hex(), ev1.ID.Hex()})
}

func TestRecomputeTopsUpFromOtherBuckets(t *testing.T) {
	s1 := futureEvent(1, "Anxiety support meetup", scored(-0.1))
	s2 := futureEvent(2, "Caregiver support circle", scored(-0.2))
	e1 := futureEvent(3, "History talk", nil)
	e2 := futureEvent(4, "Pottery workshop", nil)
	e3 := futureEvent(5, "Astronomy webinar", nil)
	e4 := futureEvent(6, "Chess workshop", nil)
	events := newFakeEventStore(s1, s2, e1, e2, e3, e4)
	users := newFakeUserStore()
	setAvg(users, "u1", -0.5)
	service := newTestRecommendationService(events, users)

	if err := service.RecomputeRecommendations(context.Background(), "u1"); err != nil {
		t.Fatalf("RecomputeRecommendations: %v", err)
	}

	// Both supportive events first (score ascending), then unscored top-ups
	// in original fetch order until the list holds 5.
	assertRecommended(t, users, []string{
		s2.ID.Hex(), s1.ID.Hex(), e1.ID.Hex(), e2.ID.Hex(), e3.ID.Hex(),
	})
}

func TestRecomputeCapsAtFive(t *testing.T) {
	var evs []models.Event
	for i := 1; i <= 7; i++ {
		evs = append(evs, futureEvent(i, "Community support night", scored(float64(i)*0.1)))
	}
	events := newFakeEventStore(evs...)
	users := newFakeUserStore()
	setAvg(users, "u1", -0.5)
	service := newTestRecommendationService(events, users)

	if err := service.RecomputeRecommendations(context.Background(), "u1"); err != nil {
		t.Fatalf("RecomputeRecommendations: %v", err)
	}

	got := users.recWrites[len(users.recWrites)-1]
	if len(got) != 5 {
		t.Errorf("got %d recommendations, want 5", len(got))
	}
}

func TestRecomputeTreatsMissingScoresAsZero(t *testing.T) {
	ev1 := futureEvent(1, "Depression support group", scored(0.3))
	ev2 := futureEvent(2, "Helpline volunteers support evening", nil) // unscored, ranks as 0
	ev3 := futureEvent(3, "Loss support circle", scored(-0.4))
	events := newFakeEventStore(ev1, ev2, ev3)
	users := newFakeUserStore()
	setAvg(users, "u1", -0.5)
	service := newTestRecommendationService(events, users)

	if err := service.RecomputeRecommendations(context.Background(), "u1"); err != nil {
		t.Fatalf("RecomputeRecommendations: %v", err)
	}

	assertRecommended(t, users, []string{ev3.ID.Hex(), ev2.ID.Hex(), ev1.ID.Hex()})
}

func TestTargetBucketThresholds(t *testing.T) {
	tests := []struct {
		avg  float64
		want category.Bucket
	}{
		{avg: -1, want: category.BucketSupportive},
		{avg: -0.3, want: category.BucketSupportive},
		{avg: -0.29, want: category.BucketEducational},
		{avg: 0, want: category.BucketEducational},
		{avg: 0.29, want: category.BucketEducational},
		{avg: 0.3, want: category.BucketProsocial},
		{avg: 1, want: category.BucketProsocial},
	}

	for _, tt := range tests {
		if got := targetBucketFor(tt.avg); got != tt.want {
			t.Errorf("targetBucketFor(%.2f) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}

func TestCandidateCacheInvalidation(t *testing.T) {
	ev1 := futureEvent(1, "Poetry workshop", nil)
	events := newFakeEventStore(ev1)
	users := newFakeUserStore()
	service := newTestRecommendationService(events, users)

	if err := service.RecomputeRecommendations(context.Background(), "u1"); err != nil {
		t.Fatal(err)
	}
	if got := users.recWrites[0]; len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}

	// A new event appears but the candidate list is still cached.
	ev2 := futureEvent(2, "Cooking workshop", nil)
	events.events = append(events.events, ev2)

	if err := service.RecomputeRecommendations(context.Background(), "u1"); err != nil {
		t.Fatal(err)
	}
	if got := users.recWrites[1]; len(got) != 1 {
		t.Errorf("expected cached candidates (1 recommendation), got %d", len(got))
	}

	service.InvalidateCandidates()

	if err := service.RecomputeRecommendations(context.Background(), "u1"); err != nil {
		t.Fatal(err)
	}
	if got := users.recWrites[2]; len(got) != 2 {
		t.Errorf("expected fresh candidates (2 recommendations), got %d", len(got))
	}
}

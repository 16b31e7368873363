package services

import (
	"context"
	"encoding/json"
	"time"
)

// PubSubService publishes insight updates over Redis so the notification
// collaborator (and other instances) can react to recommendation changes.
type PubSubService struct {
	redis      *RedisService
	instanceID string
}

// PubSubMessage represents a message sent via pub/sub
type PubSubMessage struct {
	Type       string                 `json:"type"`
	UserID     string                 `json:"userId"`
	InstanceID string                 `json:"instanceId"` // Source instance ID
	Payload    map[string]interface{} `json:"payload"`
}

// NewPubSubService creates a new pub/sub service
func NewPubSubService(redisService *RedisService, instanceID string) *PubSubService {
	return &PubSubService{
		redis:      redisService,
		instanceID: instanceID,
	}
}

// PublishToUser publishes a message to a user's channel
func (s *PubSubService) PublishToUser(ctx context.Context, userID string, msgType string, payload map[string]interface{}) error {
	message := &PubSubMessage{
		Type:       msgType,
		UserID:     userID,
		InstanceID: s.instanceID,
		Payload:    payload,
	}

	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	channel := "user:" + userID + ":events"
	return s.redis.Publish(ctx, channel, data)
}

// PublishInsightsUpdated notifies subscribers that a user's recommendations
// were rewritten.
func (s *PubSubService) PublishInsightsUpdated(ctx context.Context, userID string, eventIDs []string) error {
	payload := map[string]interface{}{
		"recommendedEventIds": eventIDs,
		"updatedAt":           time.Now().Format(time.RFC3339),
	}

	return s.PublishToUser(ctx, userID, "insights_updated", payload)
}

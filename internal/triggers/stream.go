package triggers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"solace/internal/database"
	"solace/internal/models"
)

// StreamConsumer turns MongoDB change streams into dispatcher invocations.
// It is the only trigger source: this service has no write API of its own,
// the mobile app's CRUD layer writes documents and we react.
type StreamConsumer struct {
	db         *database.MongoDB
	dispatcher *Dispatcher
	wg         sync.WaitGroup
}

// NewStreamConsumer creates a new stream consumer
func NewStreamConsumer(db *database.MongoDB, dispatcher *Dispatcher) *StreamConsumer {
	return &StreamConsumer{db: db, dispatcher: dispatcher}
}

// Start opens the change streams and begins consuming. Consumption stops
// when ctx is cancelled; call Wait to block until both consumers exit.
//
// The journals stream requests pre-images (fullDocumentBeforeChange) so the
// update handler can compare content; the collection needs
// changeStreamPreAndPostImages enabled for that, otherwise updates are
// re-analyzed unconditionally.
func (c *StreamConsumer) Start(ctx context.Context) error {
	eventsStream, err := c.db.Collection(database.CollectionEvents).Watch(ctx,
		mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{"operationType": "insert"}}},
		},
		options.ChangeStream().SetFullDocument(options.UpdateLookup),
	)
	if err != nil {
		return fmt.Errorf("failed to open events change stream: %w", err)
	}

	journalsStream, err := c.db.Collection(database.CollectionJournals).Watch(ctx,
		mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{
				"operationType": bson.M{"$in": []string{"insert", "update", "replace"}},
			}}},
		},
		options.ChangeStream().
			SetFullDocument(options.UpdateLookup).
			SetFullDocumentBeforeChange(options.WhenAvailable),
	)
	if err != nil {
		eventsStream.Close(context.Background())
		return fmt.Errorf("failed to open journals change stream: %w", err)
	}

	c.wg.Add(2)
	go c.consumeEvents(ctx, eventsStream)
	go c.consumeJournals(ctx, journalsStream)

	log.Println("✅ [TRIGGERS] Change stream consumers started (events, journals)")
	return nil
}

// Wait blocks until both consumers have exited.
func (c *StreamConsumer) Wait() {
	c.wg.Wait()
}

func (c *StreamConsumer) consumeEvents(ctx context.Context, stream *mongo.ChangeStream) {
	defer c.wg.Done()
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		var change struct {
			OperationType string        `bson:"operationType"`
			FullDocument  *models.Event `bson:"fullDocument"`
		}
		if err := stream.Decode(&change); err != nil {
			log.Printf("⚠️ [TRIGGERS] Failed to decode event change: %v", err)
			continue
		}
		if change.FullDocument == nil {
			continue
		}

		c.dispatcher.Dispatch(ctx, Change{
			Collection: database.CollectionEvents,
			Op:         OpCreate,
			Event:      change.FullDocument,
		})
	}

	if err := stream.Err(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("⚠️ [TRIGGERS] Events change stream closed with error: %v", err)
	}
}

func (c *StreamConsumer) consumeJournals(ctx context.Context, stream *mongo.ChangeStream) {
	defer c.wg.Done()
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		var change struct {
			OperationType            string               `bson:"operationType"`
			FullDocument             *models.JournalEntry `bson:"fullDocument"`
			FullDocumentBeforeChange *models.JournalEntry `bson:"fullDocumentBeforeChange"`
		}
		if err := stream.Decode(&change); err != nil {
			log.Printf("⚠️ [TRIGGERS] Failed to decode journal change: %v", err)
			continue
		}
		if change.FullDocument == nil {
			continue
		}

		op := OpUpdate
		if change.OperationType == "insert" {
			op = OpCreate
		}

		c.dispatcher.Dispatch(ctx, Change{
			Collection:  database.CollectionJournals,
			Op:          op,
			Journal:     change.FullDocument,
			PrevJournal: change.FullDocumentBeforeChange,
		})
	}

	if err := stream.Err(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("⚠️ [TRIGGERS] Journals change stream closed with error: %v", err)
	}
}

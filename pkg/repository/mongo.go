package repository

import (
	"context"
	"time"

	"github.com/example/agrimart/pkg/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditTrail appends committed marketplace mutations to a MongoDB collection.
// The trail is observational: it is written outside the commit and losing an
// entry never fails the mutation that produced it.
type AuditTrail struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// AuditEntry is one recorded mutation: who did what to which entity.
type AuditEntry struct {
	ID         string    `bson:"_id,omitempty"`
	Action     string    `bson:"action"`
	EntityID   string    `bson:"entity_id"`
	Data       bson.M    `bson:"data"`
	RecordedAt time.Time `bson:"recorded_at"`
}

func NewAuditTrail(cfg *config.MongoDBConfig) (*AuditTrail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	return &AuditTrail{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (a *AuditTrail) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, nil)
}

func (a *AuditTrail) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}

// Record implements the commerce audit hook. Errors are swallowed since the
// trail is not part of the commit.
func (a *AuditTrail) Record(ctx context.Context, action, entityID string, data map[string]interface{}) {
	_, _ = a.collection.InsertOne(ctx, &AuditEntry{
		Action:     action,
		EntityID:   entityID,
		Data:       bson.M(data),
		RecordedAt: time.Now(),
	})
}

// Recent returns the newest entries, optionally filtered to one entity.
func (a *AuditTrail) Recent(ctx context.Context, entityID string, limit int64) ([]AuditEntry, error) {
	filter := bson.M{}
	if entityID != "" {
		filter["entity_id"] = entityID
	}
	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}}).SetLimit(limit)

	cursor, err := a.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []AuditEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

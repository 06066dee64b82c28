package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ahams/appointment-register/internal/core/domain"
)

const auditCollection = "audit_logs"

// AuditRepository is the append-only mutation log. Entries are inserted,
// never updated or removed.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	Timestamp     time.Time      `bson:"ts"`
	User          string         `bson:"user"`
	Action        string         `bson:"action"`
	AppointmentID string         `bson:"appointment_id,omitempty"`
	Details       map[string]any `bson:"details,omitempty"`
}

func (r *AuditRepository) Append(ctx context.Context, entry domain.AuditEntry) error {
	doc := mongoAuditEntry{
		Timestamp:     entry.Timestamp.UTC(),
		User:          entry.User,
		Action:        entry.Action,
		AppointmentID: entry.AppointmentID,
		Details:       entry.Details,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context) ([]domain.AuditEntry, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "ts", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer cur.Close(ctx)

	entries := make([]domain.AuditEntry, 0)
	for cur.Next(ctx) {
		var me mongoAuditEntry
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, domain.AuditEntry{
			Timestamp:     me.Timestamp.UTC(),
			User:          me.User,
			Action:        me.Action,
			AppointmentID: me.AppointmentID,
			Details:       me.Details,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ahams/appointment-register/internal/core/domain"
)

const (
	settingsCollection = "settings"
	numberingDocID     = "numbering"
)

// SettingsRepository owns the single numbering settings document. Serial
// allocation is a server-side $inc, so two concurrent creates can never be
// handed the same number.
type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{coll: db.Collection(settingsCollection)}
}

type mongoSettings struct {
	ID    string `bson:"_id"`
	Start int    `bson:"start"`
	Next  int    `bson:"next"`
}

func (r *SettingsRepository) EnsureDefaults(ctx context.Context) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": numberingDocID},
		bson.M{"$setOnInsert": bson.M{"start": 1, "next": 1}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("ensure settings: %w", err)
	}
	return nil
}

func (r *SettingsRepository) Get(ctx context.Context) (domain.NumberingSettings, error) {
	var ms mongoSettings
	if err := r.coll.FindOne(ctx, bson.M{"_id": numberingDocID}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.NumberingSettings{Start: 1, NextSerial: 1}, nil
		}
		return domain.NumberingSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return domain.NumberingSettings{Start: ms.Start, NextSerial: ms.Next}, nil
}

func (r *SettingsRepository) Update(ctx context.Context, startFrom int, resetCounter bool) (domain.NumberingSettings, error) {
	set := bson.M{"start": startFrom}
	if resetCounter {
		set["next"] = startFrom
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var ms mongoSettings
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": numberingDocID},
		bson.M{"$set": set},
		opts,
	).Decode(&ms)
	if err != nil {
		return domain.NumberingSettings{}, fmt.Errorf("update settings: %w", err)
	}
	return domain.NumberingSettings{Start: ms.Start, NextSerial: ms.Next}, nil
}

// NextSerial atomically increments the counter and returns the value it
// held before the increment.
func (r *SettingsRepository) NextSerial(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var ms mongoSettings
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": numberingDocID},
		bson.M{"$inc": bson.M{"next": 1}, "$setOnInsert": bson.M{"start": 1}},
		opts,
	).Decode(&ms)
	if err != nil {
		return 0, fmt.Errorf("next serial: %w", err)
	}
	return ms.Next - 1, nil
}

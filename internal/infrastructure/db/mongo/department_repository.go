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

const departmentsCollection = "departments"

// DepartmentRepository stores one document per department, keyed by name.
type DepartmentRepository struct {
	coll *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *DepartmentRepository {
	return &DepartmentRepository{coll: db.Collection(departmentsCollection)}
}

type mongoDepartment struct {
	Name      string `bson:"_id"`
	CreatedAt int64  `bson:"created_at"`
}

func nowUnix() int64 {
	return time.Now().UTC().Unix()
}

func (r *DepartmentRepository) Add(ctx context.Context, name string) error {
	_, err := r.coll.InsertOne(ctx, mongoDepartment{Name: name, CreatedAt: nowUnix()})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDepartmentExists
		}
		return fmt.Errorf("add department: %w", err)
	}
	return nil
}

// Remove deletes the named department. Removing a name that is not present
// succeeds, so repeated deletes acknowledge the same way as the first.
func (r *DepartmentRepository) Remove(ctx context.Context, name string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return fmt.Errorf("remove department: %w", err)
	}
	return nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]string, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer cur.Close(ctx)

	names := make([]string, 0)
	for cur.Next(ctx) {
		var md mongoDepartment
		if err := cur.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode department: %w", err)
		}
		names = append(names, md.Name)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return names, nil
}

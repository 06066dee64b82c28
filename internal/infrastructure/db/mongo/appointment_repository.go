package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ahams/appointment-register/internal/core/domain"
	"github.com/ahams/appointment-register/internal/core/ports"
)

const appointmentsCollection = "appointments"

// AppointmentRepository stores each appointment as its own document, so
// concurrent mutations touch disjoint documents instead of rewriting one
// shared array.
type AppointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{coll: db.Collection(appointmentsCollection)}
}

type mongoAppointment struct {
	ID               string    `bson:"_id"`
	SerialNumber     int       `bson:"serial_number"`
	PatientName      string    `bson:"patient_name"`
	PatientID        string    `bson:"patient_id"`
	PatientPhone     string    `bson:"patient_phone"`
	PatientBirthDate string    `bson:"patient_birth_date,omitempty"`
	AppointmentDate  string    `bson:"appointment_date"`
	AppointmentTime  string    `bson:"appointment_time"`
	Department       string    `bson:"department"`
	Status           string    `bson:"status"`
	CreatedAt        time.Time `bson:"created_at"`
	CreatedBy        string    `bson:"created_by"`
}

func toMongoAppointment(a *domain.Appointment) mongoAppointment {
	return mongoAppointment{
		ID:               a.ID,
		SerialNumber:     a.SerialNumber,
		PatientName:      a.PatientName,
		PatientID:        a.PatientID,
		PatientPhone:     a.PatientPhone,
		PatientBirthDate: a.PatientBirthDate,
		AppointmentDate:  a.AppointmentDate,
		AppointmentTime:  a.AppointmentTime,
		Department:       a.Department,
		Status:           string(a.Status),
		CreatedAt:        a.CreatedAt.UTC(),
		CreatedBy:        a.CreatedBy,
	}
}

func (ma mongoAppointment) toDomain() domain.Appointment {
	return domain.Appointment{
		ID:               ma.ID,
		SerialNumber:     ma.SerialNumber,
		PatientName:      ma.PatientName,
		PatientID:        ma.PatientID,
		PatientPhone:     ma.PatientPhone,
		PatientBirthDate: ma.PatientBirthDate,
		AppointmentDate:  ma.AppointmentDate,
		AppointmentTime:  ma.AppointmentTime,
		Department:       ma.Department,
		Status:           domain.AppointmentStatus(ma.Status),
		CreatedAt:        ma.CreatedAt.UTC(),
		CreatedBy:        ma.CreatedBy,
	}
}

func (r *AppointmentRepository) Insert(ctx context.Context, a *domain.Appointment) error {
	if _, err := r.coll.InsertOne(ctx, toMongoAppointment(a)); err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var ma mongoAppointment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	appt := ma.toDomain()
	return &appt, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *domain.Appointment) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, toMongoAppointment(a))
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete all appointments: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) List(ctx context.Context, filter ports.AppointmentFilter) ([]domain.Appointment, error) {
	query := bson.M{}
	if filter.Date != "" {
		query["appointment_date"] = filter.Date
	}
	if filter.DateFrom != "" && filter.DateTo != "" {
		query["appointment_date"] = bson.M{"$gte": filter.DateFrom, "$lte": filter.DateTo}
	}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	if filter.Name != "" {
		query["patient_name"] = substringMatch(filter.Name)
	}
	if filter.PatientID != "" {
		query["patient_id"] = substringMatch(filter.PatientID)
	}
	if filter.Phone != "" {
		query["patient_phone"] = substringMatch(filter.Phone)
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cur.Close(ctx)

	appointments := make([]domain.Appointment, 0)
	for cur.Next(ctx) {
		var ma mongoAppointment
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode appointment: %w", err)
		}
		appointments = append(appointments, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

func substringMatch(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s)}
}

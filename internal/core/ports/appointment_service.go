package ports

import (
	"context"

	"github.com/ahams/appointment-register/internal/core/domain"
)

// CreateAppointmentInput carries all data needed to create an appointment.
type CreateAppointmentInput struct {
	PatientName      string
	PatientID        string
	PatientPhone     string
	PatientBirthDate string
	AppointmentDate  string
	AppointmentTime  string
	Department       string
	// IsHistorical marks a back-dated appointment carrying an explicit
	// serial number instead of the next sequential one.
	IsHistorical bool
	SerialNumber int
}

// EditAppointmentInput carries a partial update. Nil fields are left
// untouched; status and creation metadata are always preserved.
type EditAppointmentInput struct {
	PatientName      *string
	PatientID        *string
	PatientPhone     *string
	PatientBirthDate *string
	AppointmentDate  *string
	AppointmentTime  *string
	Department       *string
}

// SearchInput selects appointments by a single criterion.
type SearchInput struct {
	Type  string // "name", "id", "phone", "date"; anything else matches all
	Value string
}

// AppointmentService implements all booking operations. Every mutation
// broadcasts the full appointment collection after committing.
type AppointmentService interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	Create(ctx context.Context, actor domain.Session, input CreateAppointmentInput) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, actor domain.Session, id string, status domain.AppointmentStatus) error
	ToggleStatus(ctx context.Context, actor domain.Session, id string) (domain.AppointmentStatus, error)
	Edit(ctx context.Context, actor domain.Session, id string, input EditAppointmentInput) error
	Delete(ctx context.Context, actor domain.Session, id string) error
	// DeleteAll requires the admin role regardless of the route gate.
	DeleteAll(ctx context.Context, actor domain.Session) error
	Search(ctx context.Context, input SearchInput) ([]domain.Appointment, error)

	Numbering(ctx context.Context) (domain.NumberingSettings, error)
	UpdateNumbering(ctx context.Context, startFrom int, resetCounter bool) (domain.NumberingSettings, error)
}

package ports

import (
	"context"

	"github.com/ahams/appointment-register/internal/core/domain"
)

// AppointmentFilter narrows List queries. Zero values mean "no filter".
type AppointmentFilter struct {
	Date       string // exact appointmentDate match
	DateFrom   string // inclusive lower bound on appointmentDate
	DateTo     string // inclusive upper bound on appointmentDate
	Department string // exact department match
	Name       string // substring match on patientName
	PatientID  string // substring match on patientId
	Phone      string // substring match on patientPhone
}

// AppointmentRepository provides per-document persistence for appointments.
// Single-document operations are atomic, so concurrent handlers cannot lose
// each other's updates.
type AppointmentRepository interface {
	Insert(ctx context.Context, a *domain.Appointment) error
	// FindByID returns the appointment or domain.ErrAppointmentNotFound.
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// Update replaces an existing appointment document.
	Update(ctx context.Context, a *domain.Appointment) error
	// UpdateStatus sets only the status field.
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	// Delete removes one appointment; domain.ErrAppointmentNotFound when absent.
	Delete(ctx context.Context, id string) error
	// DeleteAll removes every appointment.
	DeleteAll(ctx context.Context) error
	// List returns appointments matching filter, ordered by creation time.
	List(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, error)
}

// SettingsRepository owns the serial numbering settings document.
type SettingsRepository interface {
	// EnsureDefaults creates the settings document when missing.
	EnsureDefaults(ctx context.Context) error
	Get(ctx context.Context) (domain.NumberingSettings, error)
	// Update sets the numbering start and optionally resets the counter.
	Update(ctx context.Context, startFrom int, resetCounter bool) (domain.NumberingSettings, error)
	// NextSerial atomically allocates and returns the next serial number.
	NextSerial(ctx context.Context) (int, error)
}

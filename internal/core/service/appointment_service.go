package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ahams/appointment-register/internal/core/domain"
	"github.com/ahams/appointment-register/internal/core/ports"
)

// minDigits is the minimum digit count for patient IDs and phone numbers.
const minDigits = 10

// AppointmentService implements booking operations. Every mutation commits
// to the repository first, then appends an audit entry and broadcasts the
// fresh appointment collection.
type AppointmentService struct {
	appointments ports.AppointmentRepository
	settings     ports.SettingsRepository
	users        ports.UserRepository
	audit        ports.AuditRepository
	broadcast    ports.Broadcaster
	log          zerolog.Logger
}

func NewAppointmentService(
	appointments ports.AppointmentRepository,
	settings ports.SettingsRepository,
	users ports.UserRepository,
	audit ports.AuditRepository,
	broadcast ports.Broadcaster,
	log zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		settings:     settings,
		users:        users,
		audit:        audit,
		broadcast:    broadcast,
		log:          log,
	}
}

func (s *AppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.appointments.List(ctx, ports.AppointmentFilter{})
}

// Create validates the input, allocates a serial number and persists the
// appointment. An explicit serial number is honoured only for historical
// appointments created by an actor holding the canAddHistorical flag;
// anyone else asking for one is rejected outright. The flag is re-read
// from the credential store, not trusted from the session snapshot.
func (s *AppointmentService) Create(ctx context.Context, actor domain.Session, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	if input.PatientName == "" || input.PatientID == "" || input.PatientPhone == "" ||
		input.AppointmentDate == "" || input.AppointmentTime == "" || input.Department == "" {
		return nil, fmt.Errorf("%w: missing required fields", domain.ErrValidation)
	}
	if digitCount(input.PatientID) < minDigits || digitCount(input.PatientPhone) < minDigits {
		return nil, fmt.Errorf("%w: patient id and phone must carry at least %d digits", domain.ErrValidation, minDigits)
	}

	serial, err := s.allocateSerial(ctx, actor, input)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		ID:               uuid.NewString(),
		SerialNumber:     serial,
		PatientName:      input.PatientName,
		PatientID:        input.PatientID,
		PatientPhone:     input.PatientPhone,
		PatientBirthDate: input.PatientBirthDate,
		AppointmentDate:  input.AppointmentDate,
		AppointmentTime:  input.AppointmentTime,
		Department:       input.Department,
		Status:           domain.StatusWaiting,
		CreatedAt:        time.Now().UTC(),
		CreatedBy:        actor.Username,
	}

	if err := s.appointments.Insert(ctx, appt); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, actor, domain.AuditCreate, appt.ID, map[string]any{
		"serialNumber": serial,
		"department":   appt.Department,
	})
	s.publishAppointments(ctx)

	s.log.Info().Str("id", appt.ID).Int("serial", serial).Str("created_by", actor.Username).Msg("appointment created")
	return appt, nil
}

func (s *AppointmentService) UpdateStatus(ctx context.Context, actor domain.Session, id string, status domain.AppointmentStatus) error {
	if err := s.appointments.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.recordAudit(ctx, actor, domain.AuditUpdateStatus, id, map[string]any{"status": status})
	s.publishAppointments(ctx)
	return nil
}

func (s *AppointmentService) ToggleStatus(ctx context.Context, actor domain.Session, id string) (domain.AppointmentStatus, error) {
	appt, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	next := appt.Status.Toggle()
	if err := s.appointments.UpdateStatus(ctx, id, next); err != nil {
		return "", err
	}
	s.recordAudit(ctx, actor, domain.AuditToggleStatus, id, map[string]any{"status": next})
	s.publishAppointments(ctx)
	return next, nil
}

// Edit applies a partial update while preserving status, serial number and
// creation metadata.
func (s *AppointmentService) Edit(ctx context.Context, actor domain.Session, id string, input ports.EditAppointmentInput) error {
	appt, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.PatientID != nil && digitCount(*input.PatientID) < minDigits {
		return fmt.Errorf("%w: patient id must carry at least %d digits", domain.ErrValidation, minDigits)
	}
	if input.PatientPhone != nil && digitCount(*input.PatientPhone) < minDigits {
		return fmt.Errorf("%w: patient phone must carry at least %d digits", domain.ErrValidation, minDigits)
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&appt.PatientName, input.PatientName)
	apply(&appt.PatientID, input.PatientID)
	apply(&appt.PatientPhone, input.PatientPhone)
	apply(&appt.PatientBirthDate, input.PatientBirthDate)
	apply(&appt.AppointmentDate, input.AppointmentDate)
	apply(&appt.AppointmentTime, input.AppointmentTime)
	apply(&appt.Department, input.Department)

	if err := s.appointments.Update(ctx, appt); err != nil {
		return err
	}
	s.recordAudit(ctx, actor, domain.AuditEdit, id, nil)
	s.publishAppointments(ctx)
	return nil
}

func (s *AppointmentService) Delete(ctx context.Context, actor domain.Session, id string) error {
	if err := s.appointments.Delete(ctx, id); err != nil {
		return err
	}
	s.recordAudit(ctx, actor, domain.AuditDelete, id, nil)
	s.publishAppointments(ctx)
	return nil
}

// DeleteAll wipes the register. The admin requirement lives here rather
// than in the route gate because the same route serves single deletes for
// staff.
func (s *AppointmentService) DeleteAll(ctx context.Context, actor domain.Session) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.appointments.DeleteAll(ctx); err != nil {
		return err
	}
	s.recordAudit(ctx, actor, domain.AuditDeleteAll, "", nil)
	s.publishAppointments(ctx)
	return nil
}

func (s *AppointmentService) Search(ctx context.Context, input ports.SearchInput) ([]domain.Appointment, error) {
	var filter ports.AppointmentFilter
	switch input.Type {
	case "name":
		filter.Name = input.Value
	case "id":
		filter.PatientID = input.Value
	case "phone":
		filter.Phone = input.Value
	case "date":
		filter.Date = input.Value
	}
	return s.appointments.List(ctx, filter)
}

func (s *AppointmentService) Numbering(ctx context.Context) (domain.NumberingSettings, error) {
	return s.settings.Get(ctx)
}

func (s *AppointmentService) UpdateNumbering(ctx context.Context, startFrom int, resetCounter bool) (domain.NumberingSettings, error) {
	if startFrom < 1 {
		return s.settings.Get(ctx)
	}
	return s.settings.Update(ctx, startFrom, resetCounter)
}

// allocateSerial decides the appointment's serial number. Sequential
// allocation is an atomic counter increment, so concurrent creates can
// never hand out the same number.
func (s *AppointmentService) allocateSerial(ctx context.Context, actor domain.Session, input ports.CreateAppointmentInput) (int, error) {
	if input.IsHistorical && input.SerialNumber != 0 {
		user, err := s.users.Find(ctx, actor.Username)
		if err != nil {
			return 0, err
		}
		if !user.CanAddHistorical() {
			return 0, domain.ErrForbidden
		}
		if input.SerialNumber < 1 {
			return 0, domain.ErrInvalidSerialNumber
		}
		return input.SerialNumber, nil
	}
	return s.settings.NextSerial(ctx)
}

// recordAudit appends to the mutation log after the mutation committed.
// Failures are logged, never surfaced: the mutation already happened.
func (s *AppointmentService) recordAudit(ctx context.Context, actor domain.Session, action, appointmentID string, details map[string]any) {
	entry := domain.AuditEntry{
		Timestamp:     time.Now().UTC(),
		User:          actor.Username,
		Action:        action,
		AppointmentID: appointmentID,
		Details:       details,
	}
	if err := s.audit.Append(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("audit append failed")
	}
}

// publishAppointments broadcasts the full collection snapshot.
func (s *AppointmentService) publishAppointments(ctx context.Context) {
	list, err := s.appointments.List(ctx, ports.AppointmentFilter{})
	if err != nil {
		s.log.Warn().Err(err).Msg("snapshot for broadcast failed")
		return
	}
	s.broadcast.Publish(ports.TopicAppointments, list)
}

// digitCount counts decimal digits, ignoring separators and formatting.
func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

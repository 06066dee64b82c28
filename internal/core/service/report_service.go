package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahams/appointment-register/internal/core/domain"
	"github.com/ahams/appointment-register/internal/core/ports"
)

// allDepartments is the sentinel the original client sends when no
// department filter is intended.
const allDepartments = "جميع الأقسام"

// ReportService produces read-only views over the register: reports,
// audit log listing, and the full-state backup export.
type ReportService struct {
	appointments ports.AppointmentRepository
	departments  ports.DepartmentRepository
	users        ports.UserRepository
	audit        ports.AuditRepository
	log          zerolog.Logger
}

func NewReportService(
	appointments ports.AppointmentRepository,
	departments ports.DepartmentRepository,
	users ports.UserRepository,
	audit ports.AuditRepository,
	log zerolog.Logger,
) *ReportService {
	return &ReportService{
		appointments: appointments,
		departments:  departments,
		users:        users,
		audit:        audit,
		log:          log,
	}
}

func (s *ReportService) Daily(ctx context.Context, date string) ([]domain.Appointment, error) {
	return s.appointments.List(ctx, ports.AppointmentFilter{Date: date})
}

func (s *ReportService) Comprehensive(ctx context.Context, input ports.ReportInput) ([]domain.Appointment, error) {
	return s.appointments.List(ctx, rangeFilter(input))
}

func (s *ReportService) Interaction(ctx context.Context, input ports.ReportInput) ([]domain.Appointment, ports.InteractionSummary, error) {
	list, err := s.appointments.List(ctx, rangeFilter(input))
	if err != nil {
		return nil, ports.InteractionSummary{}, err
	}

	var summary ports.InteractionSummary
	for _, a := range list {
		switch a.Status {
		case domain.StatusDone:
			summary.Done++
		default:
			summary.Waiting++
		}
	}
	summary.Total = len(list)
	return list, summary, nil
}

// Export assembles the full-state backup download.
func (s *ReportService) Export(ctx context.Context) (*ports.Backup, error) {
	appointments, err := s.appointments.List(ctx, ports.AppointmentFilter{})
	if err != nil {
		return nil, err
	}
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.Backup{
		Appointments: appointments,
		Departments:  departments,
		Users:        users,
		BackupDate:   time.Now().UTC(),
	}, nil
}

func (s *ReportService) Logs(ctx context.Context) ([]domain.AuditEntry, error) {
	return s.audit.List(ctx)
}

func rangeFilter(input ports.ReportInput) ports.AppointmentFilter {
	filter := ports.AppointmentFilter{}
	if input.StartDate != "" && input.EndDate != "" {
		filter.DateFrom = input.StartDate
		filter.DateTo = input.EndDate
	}
	if input.Department != "" && input.Department != allDepartments {
		filter.Department = input.Department
	}
	return filter
}

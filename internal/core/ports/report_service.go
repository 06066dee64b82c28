package ports

import (
	"context"
	"time"

	"github.com/ahams/appointment-register/internal/core/domain"
)

// ReportInput selects a date range and optional department. The sentinel
// department "جميع الأقسام" ("all departments") from the original client is
// treated as no filter.
type ReportInput struct {
	StartDate  string
	EndDate    string
	Department string
}

// InteractionSummary tallies appointments per status.
type InteractionSummary struct {
	Waiting int `json:"waiting"`
	Done    int `json:"done"`
	Total   int `json:"total"`
}

// Backup is a point-in-time export of all register state.
type Backup struct {
	Appointments []domain.Appointment `json:"appointments"`
	Departments  []string             `json:"departments"`
	Users        []domain.User        `json:"users"`
	BackupDate   time.Time            `json:"backupDate"`
}

// ReportService produces read-only views over the register.
type ReportService interface {
	Daily(ctx context.Context, date string) ([]domain.Appointment, error)
	Comprehensive(ctx context.Context, input ReportInput) ([]domain.Appointment, error)
	Interaction(ctx context.Context, input ReportInput) ([]domain.Appointment, InteractionSummary, error)
	Export(ctx context.Context) (*Backup, error)
	Logs(ctx context.Context) ([]domain.AuditEntry, error)
}

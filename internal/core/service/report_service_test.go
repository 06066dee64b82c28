package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ahams/appointment-register/internal/core/domain"
	"github.com/ahams/appointment-register/internal/core/ports"
)

func newReportFixture(t *testing.T) (*stubAppointmentRepo, *stubAuditRepo, *ReportService) {
	t.Helper()
	appointments := newStubAppointmentRepo()
	departments := &stubDepartmentRepo{names: []string{"Cardiology", "Dermatology"}}
	users := newStubUserRepo()
	audit := &stubAuditRepo{}
	svc := NewReportService(appointments, departments, users, audit, zerolog.Nop())
	return appointments, audit, svc
}

func seedAppointment(t *testing.T, repo *stubAppointmentRepo, date, department string, status domain.AppointmentStatus) {
	t.Helper()
	err := repo.Insert(context.Background(), &domain.Appointment{
		ID:              date + "-" + department + "-" + string(status) + "-" + string(rune('a'+len(repo.order))),
		AppointmentDate: date,
		Department:      department,
		Status:          status,
	})
	if err != nil {
		t.Fatalf("seeding appointment: %v", err)
	}
}

func TestReportService_Daily(t *testing.T) {
	repo, _, svc := newReportFixture(t)
	seedAppointment(t, repo, "2026-09-01", "Cardiology", domain.StatusWaiting)
	seedAppointment(t, repo, "2026-09-02", "Cardiology", domain.StatusWaiting)

	list, err := svc.Daily(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("daily report failed: %v", err)
	}
	if len(list) != 1 || list[0].AppointmentDate != "2026-09-01" {
		t.Fatalf("unexpected daily result: %+v", list)
	}
}

func TestReportService_Comprehensive_RangeAndDepartment(t *testing.T) {
	repo, _, svc := newReportFixture(t)
	seedAppointment(t, repo, "2026-09-01", "Cardiology", domain.StatusWaiting)
	seedAppointment(t, repo, "2026-09-02", "Dermatology", domain.StatusWaiting)
	seedAppointment(t, repo, "2026-09-05", "Cardiology", domain.StatusWaiting)

	list, err := svc.Comprehensive(context.Background(), ports.ReportInput{
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-03",
		Department: "Cardiology",
	})
	if err != nil {
		t.Fatalf("comprehensive report failed: %v", err)
	}
	if len(list) != 1 || list[0].AppointmentDate != "2026-09-01" {
		t.Fatalf("unexpected range result: %+v", list)
	}
}

func TestReportService_Comprehensive_AllDepartmentsSentinel(t *testing.T) {
	repo, _, svc := newReportFixture(t)
	seedAppointment(t, repo, "2026-09-01", "Cardiology", domain.StatusWaiting)
	seedAppointment(t, repo, "2026-09-01", "Dermatology", domain.StatusWaiting)

	list, err := svc.Comprehensive(context.Background(), ports.ReportInput{
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-01",
		Department: "جميع الأقسام",
	})
	if err != nil {
		t.Fatalf("comprehensive report failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("sentinel department filtered results: %d", len(list))
	}
}

func TestReportService_Interaction_Tallies(t *testing.T) {
	repo, _, svc := newReportFixture(t)
	seedAppointment(t, repo, "2026-09-01", "Cardiology", domain.StatusDone)
	seedAppointment(t, repo, "2026-09-01", "Cardiology", domain.StatusWaiting)
	seedAppointment(t, repo, "2026-09-01", "Cardiology", domain.StatusDone)

	list, summary, err := svc.Interaction(context.Background(), ports.ReportInput{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-01",
	})
	if err != nil {
		t.Fatalf("interaction report failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(list))
	}
	if summary.Done != 2 || summary.Waiting != 1 || summary.Total != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestReportService_Export(t *testing.T) {
	repo, _, svc := newReportFixture(t)
	seedAppointment(t, repo, "2026-09-01", "Cardiology", domain.StatusWaiting)

	backup, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if len(backup.Appointments) != 1 {
		t.Fatalf("expected 1 appointment in backup, got %d", len(backup.Appointments))
	}
	if len(backup.Departments) != 2 {
		t.Fatalf("expected 2 departments in backup, got %d", len(backup.Departments))
	}
	if backup.BackupDate.IsZero() {
		t.Fatalf("backup date not set")
	}
}

func TestReportService_Logs(t *testing.T) {
	_, audit, svc := newReportFixture(t)
	audit.entries = []domain.AuditEntry{
		{User: "boss", Action: domain.AuditCreate},
		{User: "boss", Action: domain.AuditDelete},
	}

	entries, err := svc.Logs(context.Background())
	if err != nil {
		t.Fatalf("logs failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Action != domain.AuditCreate {
		t.Fatalf("unexpected log entries: %+v", entries)
	}
}

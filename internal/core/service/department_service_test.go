package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ahams/appointment-register/internal/core/domain"
	"github.com/ahams/appointment-register/internal/core/ports"
)

type stubDepartmentRepo struct {
	mu    sync.Mutex
	names []string
}

func (r *stubDepartmentRepo) Add(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.names {
		if existing == name {
			return domain.ErrDepartmentExists
		}
	}
	r.names = append(r.names, name)
	return nil
}

func (r *stubDepartmentRepo) Remove(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.names {
		if existing == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubDepartmentRepo) List(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...), nil
}

func newDepartmentFixture() (*stubDepartmentRepo, *spyBroadcaster, *DepartmentService) {
	repo := &stubDepartmentRepo{}
	broadcast := &spyBroadcaster{}
	return repo, broadcast, NewDepartmentService(repo, broadcast, zerolog.Nop())
}

func TestDepartmentService_Add(t *testing.T) {
	repo, broadcast, svc := newDepartmentFixture()
	actor := adminSession("boss")

	if err := svc.Add(context.Background(), actor, "Cardiology"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(repo.names) != 1 || repo.names[0] != "Cardiology" {
		t.Fatalf("unexpected departments: %v", repo.names)
	}
	if broadcast.published(ports.TopicDepartments) != 1 {
		t.Fatalf("department list not broadcast")
	}
}

func TestDepartmentService_Add_Duplicate(t *testing.T) {
	_, _, svc := newDepartmentFixture()
	actor := adminSession("boss")

	if err := svc.Add(context.Background(), actor, "Cardiology"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Add(context.Background(), actor, "Cardiology"); err != domain.ErrDepartmentExists {
		t.Fatalf("expected ErrDepartmentExists, got %v", err)
	}
}

func TestDepartmentService_Add_EmptyName(t *testing.T) {
	_, broadcast, svc := newDepartmentFixture()

	if err := svc.Add(context.Background(), adminSession("boss"), ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if broadcast.published(ports.TopicDepartments) != 0 {
		t.Fatalf("rejected add still broadcast")
	}
}

func TestDepartmentService_Remove_Idempotent(t *testing.T) {
	repo, _, svc := newDepartmentFixture()
	actor := adminSession("boss")

	if err := svc.Add(context.Background(), actor, "Cardiology"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Remove(context.Background(), actor, "Cardiology"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(repo.names) != 0 {
		t.Fatalf("department still present: %v", repo.names)
	}
	if err := svc.Remove(context.Background(), actor, "Cardiology"); err != nil {
		t.Fatalf("second remove not idempotent: %v", err)
	}
}

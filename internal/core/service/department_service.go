package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ahams/appointment-register/internal/core/domain"
	"github.com/ahams/appointment-register/internal/core/ports"
)

// DepartmentService maintains the department list and broadcasts the set
// after every change.
type DepartmentService struct {
	departments ports.DepartmentRepository
	broadcast   ports.Broadcaster
	log         zerolog.Logger
}

func NewDepartmentService(departments ports.DepartmentRepository, broadcast ports.Broadcaster, log zerolog.Logger) *DepartmentService {
	return &DepartmentService{departments: departments, broadcast: broadcast, log: log}
}

func (s *DepartmentService) List(ctx context.Context) ([]string, error) {
	return s.departments.List(ctx)
}

func (s *DepartmentService) Add(ctx context.Context, actor domain.Session, name string) error {
	if name == "" {
		return fmt.Errorf("%w: department name is required", domain.ErrValidation)
	}
	if err := s.departments.Add(ctx, name); err != nil {
		return err
	}
	s.publish(ctx)
	s.log.Info().Str("department", name).Str("added_by", actor.Username).Msg("department added")
	return nil
}

func (s *DepartmentService) Remove(ctx context.Context, actor domain.Session, name string) error {
	if err := s.departments.Remove(ctx, name); err != nil {
		return err
	}
	s.publish(ctx)
	s.log.Info().Str("department", name).Str("removed_by", actor.Username).Msg("department removed")
	return nil
}

func (s *DepartmentService) publish(ctx context.Context) {
	list, err := s.departments.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("department snapshot for broadcast failed")
		return
	}
	s.broadcast.Publish(ports.TopicDepartments, list)
}

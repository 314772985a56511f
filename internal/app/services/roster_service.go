package services

import (
	"context"

	"github.com/rlacerda/gestao-escolar/internal/app/models"
	"github.com/rlacerda/gestao-escolar/internal/app/models/dto"
	"github.com/rlacerda/gestao-escolar/internal/app/repositories"
)

// RosterService defines the interface for per-subject listings
type RosterService interface {
	StudentsBySubject(ctx context.Context, materiaID int64) ([]dto.StudentSummary, error)
	TeachersBySubject(ctx context.Context, materiaID int64) ([]dto.TeacherSummary, error)
}

// rosterServiceImpl implements the RosterService interface
type rosterServiceImpl struct {
	principals repositories.IPrincipalRepository
}

// NewRosterService creates a new roster service instance
func NewRosterService(principals repositories.IPrincipalRepository) RosterService {
	return &rosterServiceImpl{
		principals: principals,
	}
}

// StudentsBySubject lists students enrolled in a subject; id 0 lists all
func (s *rosterServiceImpl) StudentsBySubject(ctx context.Context, materiaID int64) ([]dto.StudentSummary, error) {
	entries, err := s.principals.ListBySubject(ctx, models.RoleEstudante, materiaID)
	if err != nil {
		return nil, err
	}

	students := make([]dto.StudentSummary, 0, len(entries))
	for _, e := range entries {
		students = append(students, dto.StudentSummary{
			IDEstudante: e.PrincipalID,
			Nome:        e.Nome,
			Matricula:   e.Matricula,
			Email:       e.Email,
			Curso:       e.CampoEspecifico,
		})
	}

	return students, nil
}

// TeachersBySubject lists teachers linked to a subject; id 0 lists all
func (s *rosterServiceImpl) TeachersBySubject(ctx context.Context, materiaID int64) ([]dto.TeacherSummary, error) {
	entries, err := s.principals.ListBySubject(ctx, models.RoleProfessor, materiaID)
	if err != nil {
		return nil, err
	}

	teachers := make([]dto.TeacherSummary, 0, len(entries))
	for _, e := range entries {
		teachers = append(teachers, dto.TeacherSummary{
			IDProfessor:  e.PrincipalID,
			Nome:         e.Nome,
			Matricula:    e.Matricula,
			Email:        e.Email,
			Departamento: e.CampoEspecifico,
		})
	}

	return teachers, nil
}

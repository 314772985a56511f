package services

import (
	"context"
	"strings"

	"github.com/rlacerda/gestao-escolar/internal/app/models"
	"github.com/rlacerda/gestao-escolar/internal/app/repositories"
	"github.com/rlacerda/gestao-escolar/internal/pkg/apperrors"
	"github.com/rlacerda/gestao-escolar/internal/pkg/dberrors"
)

// SubjectService defines the interface for subject catalog operations
type SubjectService interface {
	GetAll(ctx context.Context) ([]*models.Materia, error)
	Create(ctx context.Context, nome string) (*models.Materia, error)
}

// subjectServiceImpl implements the SubjectService interface
type subjectServiceImpl struct {
	subjects repositories.ISubjectRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjects repositories.ISubjectRepository) SubjectService {
	return &subjectServiceImpl{
		subjects: subjects,
	}
}

// GetAll lists the subject catalog
func (s *subjectServiceImpl) GetAll(ctx context.Context) ([]*models.Materia, error) {
	return s.subjects.GetAll(ctx)
}

// Create adds a new subject; a duplicate name surfaces as a conflict
func (s *subjectServiceImpl) Create(ctx context.Context, nome string) (*models.Materia, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, apperrors.NewValidationError("O nome da matéria é obrigatório.")
	}

	materia := &models.Materia{Nome: nome}
	if err := s.subjects.Create(ctx, materia); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewCustomError(apperrors.ErrSubjectAlreadyExists, "Esta matéria já existe.")
		}
		return nil, err
	}

	return materia, nil
}

package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rlacerda/gestao-escolar/internal/app/models"
)

// ISubjectRepository defines the interface for subject catalog
// database operations.
type ISubjectRepository interface {
	GetAll(ctx context.Context) ([]*models.Materia, error)
	Create(ctx context.Context, m *models.Materia) error
}

// SubjectRepository handles database operations on the materias table
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// GetAll retrieves the full subject catalog
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Materia, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id_materia, nome_materia
		FROM materias
		ORDER BY id_materia`)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	var materias []*models.Materia
	for rows.Next() {
		var m models.Materia
		if err := rows.Scan(&m.ID, &m.Nome); err != nil {
			return nil, err
		}
		materias = append(materias, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return materias, nil
}

// Create inserts a new subject and fills in its id
func (r *SubjectRepository) Create(ctx context.Context, m *models.Materia) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO materias (nome_materia)
		VALUES ($1)
		RETURNING id_materia`,
		m.Nome).Scan(&m.ID)

	if err != nil {
		return err
	}

	return nil
}

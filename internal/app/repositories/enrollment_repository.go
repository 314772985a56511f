package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rlacerda/gestao-escolar/internal/app/models"
	"github.com/rlacerda/gestao-escolar/internal/db"
)

// IEnrollmentRepository defines the interface for pivot-table
// operations linking principals to subjects.
type IEnrollmentRepository interface {
	Insert(ctx context.Context, q db.Querier, role models.Role, principalID int64, materiaIDs []int64) error
	DeleteAll(ctx context.Context, q db.Querier, role models.Role, principalID int64) error
	ListIDs(ctx context.Context, role models.Role, principalID int64) ([]int64, error)
}

// EnrollmentRepository handles the estudante_materia and
// professor_materia pivot tables. The pivot identifiers come from the
// closed models.RoleTable mapping.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Insert adds one pivot row per subject id for the principal
func (r *EnrollmentRepository) Insert(ctx context.Context, q db.Querier, role models.Role, principalID int64, materiaIDs []int64) error {
	rt := role.Table()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, id_materia)
		VALUES ($1, $2)`,
		rt.PivotTable, rt.PivotKey)

	for _, materiaID := range materiaIDs {
		if _, err := q.Exec(ctx, query, principalID, materiaID); err != nil {
			return fmt.Errorf("error enrolling %s %d in subject %d: %w", role, principalID, materiaID, err)
		}
	}

	return nil
}

// DeleteAll removes every pivot row of the principal
func (r *EnrollmentRepository) DeleteAll(ctx context.Context, q db.Querier, role models.Role, principalID int64) error {
	rt := role.Table()
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE %s = $1`,
		rt.PivotTable, rt.PivotKey)

	if _, err := q.Exec(ctx, query, principalID); err != nil {
		return fmt.Errorf("error clearing enrollments for %s %d: %w", role, principalID, err)
	}

	return nil
}

// ListIDs returns the subject ids the principal is enrolled in
func (r *EnrollmentRepository) ListIDs(ctx context.Context, role models.Role, principalID int64) ([]int64, error) {
	rt := role.Table()
	query := fmt.Sprintf(`
		SELECT id_materia FROM %s WHERE %s = $1 ORDER BY id_materia`,
		rt.PivotTable, rt.PivotKey)

	rows, err := r.db.Query(ctx, query, principalID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

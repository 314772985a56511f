package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rlacerda/gestao-escolar/internal/app/models"
	"github.com/rlacerda/gestao-escolar/internal/db"
	"github.com/rlacerda/gestao-escolar/internal/pkg/apperrors"
)

// IPrincipalRepository defines the interface for principal-record
// database operations across the three role tables.
type IPrincipalRepository interface {
	Create(ctx context.Context, q db.Querier, role models.Role, p *models.Principal) (int64, error)
	Update(ctx context.Context, q db.Querier, role models.Role, principalID int64, nome, matricula, campo string) error
	FindIDByUserID(ctx context.Context, q db.Querier, role models.Role, userID int64) (int64, error)
	MatriculaInUse(ctx context.Context, q db.Querier, matricula string, excludeUserID int64) (bool, error)
	GetDetails(ctx context.Context, role models.Role, email, matricula string) (*models.PrincipalDetails, error)
	ListBySubject(ctx context.Context, role models.Role, materiaID int64) ([]*models.RosterEntry, error)
}

// PrincipalRepository handles database operations on the role-specific
// principal tables (estudantes, professores, coordenacao). Table and
// column identifiers come exclusively from the closed models.RoleTable
// mapping, never from request input.
type PrincipalRepository struct {
	db *pgxpool.Pool
}

// NewPrincipalRepository creates a new PrincipalRepository
func NewPrincipalRepository(db *pgxpool.Pool) *PrincipalRepository {
	return &PrincipalRepository{
		db: db,
	}
}

// Create inserts a principal row in the role's table and returns its id
func (r *PrincipalRepository) Create(ctx context.Context, q db.Querier, role models.Role, p *models.Principal) (int64, error) {
	rt := role.Table()
	query := fmt.Sprintf(`
		INSERT INTO %s (nome, matricula, %s, id_usuario_fk)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`,
		rt.Table, rt.FieldColumn, rt.IDColumn)

	var id int64
	err := q.QueryRow(ctx, query, p.Nome, p.Matricula, p.CampoEspecifico, p.UserID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating %s principal: %w", role, err)
	}

	return id, nil
}

// Update sets the mutable fields of a principal row
func (r *PrincipalRepository) Update(ctx context.Context, q db.Querier, role models.Role, principalID int64, nome, matricula, campo string) error {
	rt := role.Table()
	query := fmt.Sprintf(`
		UPDATE %s
		SET nome = $1, matricula = $2, %s = $3
		WHERE %s = $4`,
		rt.Table, rt.FieldColumn, rt.IDColumn)

	cmdTag, err := q.Exec(ctx, query, nome, matricula, campo, principalID)
	if err != nil {
		return fmt.Errorf("error updating %s principal: %w", role, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// FindIDByUserID locates a principal in the role's table by its account
// back-reference. Returns apperrors.ErrUserNotFound when no row matches.
func (r *PrincipalRepository) FindIDByUserID(ctx context.Context, q db.Querier, role models.Role, userID int64) (int64, error) {
	rt := role.Table()
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE id_usuario_fk = $1`,
		rt.IDColumn, rt.Table)

	var id int64
	err := q.QueryRow(ctx, query, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error locating %s principal: %w", role, err)
	}

	return id, nil
}

// MatriculaInUse checks whether a matricula is already taken in any of
// the three principal tables. Rows owned by excludeUserID are ignored,
// so an edit can keep its own matricula.
func (r *PrincipalRepository) MatriculaInUse(ctx context.Context, q db.Querier, matricula string, excludeUserID int64) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM estudantes WHERE matricula = $1 AND id_usuario_fk != $2
			UNION ALL
			SELECT 1 FROM professores WHERE matricula = $1 AND id_usuario_fk != $2
			UNION ALL
			SELECT 1 FROM coordenacao WHERE matricula = $1 AND id_usuario_fk != $2
		)`,
		matricula, excludeUserID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking matricula: %w", err)
	}

	return exists, nil
}

// GetDetails retrieves a principal joined with its account, matched by
// account email and principal matricula.
func (r *PrincipalRepository) GetDetails(ctx context.Context, role models.Role, email, matricula string) (*models.PrincipalDetails, error) {
	rt := role.Table()
	query := fmt.Sprintf(`
		SELECT P.%s, P.nome, P.matricula, P.%s, U.email, U.id_usuario
		FROM %s P
		JOIN usuarios U ON P.id_usuario_fk = U.id_usuario
		WHERE U.email = $1 AND P.matricula = $2`,
		rt.IDColumn, rt.FieldColumn, rt.Table)

	d := &models.PrincipalDetails{}
	err := r.db.QueryRow(ctx, query, email, matricula).Scan(
		&d.PrincipalID, &d.Nome, &d.Matricula, &d.CampoEspecifico, &d.Email, &d.UserID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving %s details: %w", role, err)
	}

	return d, nil
}

// ListBySubject lists principals of the given role enrolled in a
// subject; materiaID 0 lists all principals of the role. Only roles
// with enrollments (students, teachers) can be listed.
func (r *PrincipalRepository) ListBySubject(ctx context.Context, role models.Role, materiaID int64) ([]*models.RosterEntry, error) {
	rt := role.Table()

	var query string
	var args []any
	if materiaID == 0 {
		query = fmt.Sprintf(`
			SELECT P.%s, P.nome, P.matricula, U.email, P.%s
			FROM %s P
			JOIN usuarios U ON P.id_usuario_fk = U.id_usuario
			ORDER BY P.%s`,
			rt.IDColumn, rt.FieldColumn, rt.Table, rt.IDColumn)
	} else {
		query = fmt.Sprintf(`
			SELECT P.%s, P.nome, P.matricula, U.email, P.%s
			FROM %s P
			JOIN usuarios U ON P.id_usuario_fk = U.id_usuario
			JOIN %s PM ON P.%s = PM.%s
			WHERE PM.id_materia = $1
			ORDER BY P.%s`,
			rt.IDColumn, rt.FieldColumn, rt.Table, rt.PivotTable, rt.IDColumn, rt.PivotKey, rt.IDColumn)
		args = append(args, materiaID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing %s roster: %w", role, err)
	}
	defer rows.Close()

	var entries []*models.RosterEntry
	for rows.Next() {
		var e models.RosterEntry
		if err := rows.Scan(&e.PrincipalID, &e.Nome, &e.Matricula, &e.Email, &e.CampoEspecifico); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

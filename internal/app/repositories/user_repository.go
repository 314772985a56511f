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

// IUserRepository defines the interface for account-related database
// operations. Write methods take a db.Querier so they run inside the
// caller's transaction.
type IUserRepository interface {
	Create(ctx context.Context, q db.Querier, u *models.Usuario) (int64, error)
	Update(ctx context.Context, q db.Querier, id int64, email string, senhaHash *string) (int64, error)
	Delete(ctx context.Context, q db.Querier, id int64) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Usuario, error)
}

// UserRepository handles database operations on the usuarios table
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new account row and returns its id
func (r *UserRepository) Create(ctx context.Context, q db.Querier, u *models.Usuario) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO usuarios (email, senha_hash, tipo_usuario)
		VALUES ($1, $2, $3)
		RETURNING id_usuario`,
		u.Email, u.SenhaHash, u.TipoUsuario).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// Update sets the account email and, when senhaHash is non-nil, the
// password hash. It returns the number of affected rows.
func (r *UserRepository) Update(ctx context.Context, q db.Querier, id int64, email string, senhaHash *string) (int64, error) {
	if senhaHash != nil {
		cmdTag, execErr := q.Exec(ctx, `
			UPDATE usuarios
			SET email = $1, senha_hash = $2, atualizado_em = NOW()
			WHERE id_usuario = $3`,
			email, *senhaHash, id)
		if execErr != nil {
			return 0, fmt.Errorf("error updating user: %w", execErr)
		}
		return cmdTag.RowsAffected(), nil
	}

	cmdTag, err := q.Exec(ctx, `
		UPDATE usuarios
		SET email = $1, atualizado_em = NOW()
		WHERE id_usuario = $2`,
		email, id)
	if err != nil {
		return 0, fmt.Errorf("error updating user: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// Delete removes an account row; principal and enrollment rows go with
// it through the schema's ON DELETE CASCADE actions. It returns the
// number of affected rows.
func (r *UserRepository) Delete(ctx context.Context, q db.Querier, id int64) (int64, error) {
	cmdTag, err := q.Exec(ctx, `
		DELETE FROM usuarios WHERE id_usuario = $1`,
		id)
	if err != nil {
		return 0, fmt.Errorf("error deleting user: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// GetByEmail retrieves an account by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	u := &models.Usuario{}
	err := r.db.QueryRow(ctx, `
		SELECT id_usuario, email, senha_hash, tipo_usuario, criado_em, atualizado_em
		FROM usuarios
		WHERE email = $1`,
		email).Scan(
		&u.ID, &u.Email, &u.SenhaHash, &u.TipoUsuario, &u.CriadoEm, &u.AtualizadoEm)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return u, nil
}

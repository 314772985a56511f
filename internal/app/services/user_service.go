package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rlacerda/gestao-escolar/internal/app/models"
	"github.com/rlacerda/gestao-escolar/internal/app/models/dto"
	"github.com/rlacerda/gestao-escolar/internal/app/repositories"
	"github.com/rlacerda/gestao-escolar/internal/db"
	"github.com/rlacerda/gestao-escolar/internal/pkg/apperrors"
	"github.com/rlacerda/gestao-escolar/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// UserService defines the interface for account maintenance operations
type UserService interface {
	Update(ctx context.Context, userID int64, req *dto.UpdateUserRequest) error
	Delete(ctx context.Context, userID int64) error
	GetDetails(ctx context.Context, req *dto.UserDetailsRequest) (*dto.UserDetails, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	tx          db.TxRunner
	users       repositories.IUserRepository
	principals  repositories.IPrincipalRepository
	enrollments repositories.IEnrollmentRepository
	logger      zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(
	tx db.TxRunner,
	users repositories.IUserRepository,
	principals repositories.IPrincipalRepository,
	enrollments repositories.IEnrollmentRepository,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		tx:          tx,
		users:       users,
		principals:  principals,
		enrollments: enrollments,
		logger:      logger,
	}
}

// Update atomically rewrites the account email (and password hash when
// nova_senha is supplied), the principal's mutable fields, and the
// principal's entire enrollment set. The enrollment update is a full
// replace: all existing pivot rows are deleted, then one row per
// supplied subject id is inserted, so an empty list leaves the
// principal with zero enrollments.
func (s *userServiceImpl) Update(ctx context.Context, userID int64, req *dto.UpdateUserRequest) error {
	role, err := models.ParseRole(req.TipoUsuario)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidRole, msgTipoInvalido)
	}

	var senhaHash *string
	if req.NovaSenha != "" {
		hash, err := auth.HashPassword(req.NovaSenha)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		senhaHash = &hash
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := s.users.Update(ctx, tx, userID, req.Email, senhaHash); err != nil {
			return err
		}

		principalID, err := s.principals.FindIDByUserID(ctx, tx, role, userID)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrUserNotFound) {
				return apperrors.NewCustomError(apperrors.ErrUserNotFound,
					"Usuário principal não encontrado para edição. Verifique o tipo_usuario.")
			}
			return err
		}

		inUse, err := s.principals.MatriculaInUse(ctx, tx, req.Matricula, userID)
		if err != nil {
			return err
		}
		if inUse {
			return apperrors.NewCustomError(apperrors.ErrMatriculaAlreadyExists, msgDuplicado)
		}

		if err := s.principals.Update(ctx, tx, role, principalID, req.Nome, req.Matricula, req.CampoEspecifico); err != nil {
			return err
		}

		if role.HasEnrollments() {
			if err := s.enrollments.DeleteAll(ctx, tx, role, principalID); err != nil {
				return err
			}
			if len(req.IDMaterias) > 0 {
				if err := s.enrollments.Insert(ctx, tx, role, principalID, req.IDMaterias); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return mapAccountWriteError(err)
	}

	s.logger.Info().
		Int64("userId", userID).
		Str("tipoUsuario", string(role)).
		Msg("User updated")

	return nil
}

// Delete removes the account row inside a transaction; the schema's
// referential actions cascade the principal and enrollment rows. Zero
// affected rows roll back and surface as not found.
func (s *userServiceImpl) Delete(ctx context.Context, userID int64) error {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		affected, err := s.users.Delete(ctx, tx, userID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperrors.NewCustomError(apperrors.ErrUserNotFound, msgUsuarioNaoEncontrado)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("userId", userID).Msg("User deleted")
	return nil
}

// GetDetails returns the principal's public fields, its owning account
// id and, for students and teachers, the full list of enrolled subject
// ids. Read-only, so no transaction is opened.
func (s *userServiceImpl) GetDetails(ctx context.Context, req *dto.UserDetailsRequest) (*dto.UserDetails, error) {
	role, err := models.ParseRole(req.TipoUsuario)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidRole, msgTipoInvalido)
	}

	d, err := s.principals.GetDetails(ctx, role, req.Email, req.Matricula)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound,
				"Usuário não encontrado com as credenciais fornecidas.")
		}
		return nil, err
	}

	details := &dto.UserDetails{
		Nome:            d.Nome,
		Matricula:       d.Matricula,
		CampoEspecifico: d.CampoEspecifico,
		Email:           d.Email,
		IDUsuario:       d.UserID,
		TipoUsuario:     string(role),
	}

	if role.HasEnrollments() {
		ids, err := s.enrollments.ListIDs(ctx, role, d.PrincipalID)
		if err != nil {
			return nil, err
		}
		details.IDMaterias = ids
	}

	return details, nil
}

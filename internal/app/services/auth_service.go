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

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (int64, models.Role, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.Usuario, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	tx          db.TxRunner
	users       repositories.IUserRepository
	principals  repositories.IPrincipalRepository
	enrollments repositories.IEnrollmentRepository
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	tx db.TxRunner,
	users repositories.IUserRepository,
	principals repositories.IPrincipalRepository,
	enrollments repositories.IEnrollmentRepository,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		tx:          tx,
		users:       users,
		principals:  principals,
		enrollments: enrollments,
		logger:      logger,
	}
}

// Register atomically creates one account, one role-appropriate
// principal and, for students and teachers, one enrollment row per
// supplied subject id. The role is validated and the password hashed
// before the transaction opens; any failure inside the transaction
// rolls back every write of this invocation.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (int64, models.Role, error) {
	role, err := models.ParseRole(req.TipoUsuario)
	if err != nil {
		return 0, "", apperrors.NewCustomError(apperrors.ErrInvalidRole, msgTipoInvalido)
	}

	senhaHash, err := auth.HashPassword(req.Senha)
	if err != nil {
		return 0, "", fmt.Errorf("error hashing password: %w", err)
	}

	var principalID int64
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// Matricula must be unique across all three principal tables;
		// the per-table constraints cannot see each other.
		inUse, err := s.principals.MatriculaInUse(ctx, tx, req.Matricula, 0)
		if err != nil {
			return err
		}
		if inUse {
			return apperrors.NewCustomError(apperrors.ErrMatriculaAlreadyExists, msgDuplicado)
		}

		userID, err := s.users.Create(ctx, tx, &models.Usuario{
			Email:       req.Email,
			SenhaHash:   senhaHash,
			TipoUsuario: role,
		})
		if err != nil {
			return err
		}

		principalID, err = s.principals.Create(ctx, tx, role, &models.Principal{
			Nome:            req.Nome,
			Matricula:       req.Matricula,
			CampoEspecifico: req.CampoEspecifico,
			UserID:          userID,
		})
		if err != nil {
			return err
		}

		if role.HasEnrollments() && len(req.IDMaterias) > 0 {
			if err := s.enrollments.Insert(ctx, tx, role, principalID, req.IDMaterias); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, "", mapAccountWriteError(err)
	}

	s.logger.Info().
		Str("tipoUsuario", string(role)).
		Int64("principalId", principalID).
		Msg("User registered")

	return principalID, role, nil
}

// Login authenticates an account by email and password. The caller
// receives the same invalid-credentials failure whether the email is
// unknown or the password is wrong; the distinction stays in the logs.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.Usuario, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Warn().Str("email", req.Email).Msg("Login attempt with unknown email")
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Credenciais inválidas.")
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.SenhaHash, req.Senha) {
		s.logger.Warn().Str("email", req.Email).Msg("Login attempt with wrong password")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Credenciais inválidas.")
	}

	return user, nil
}

package services

// Services defined in this package:
// - AuthService: registration and login
// - UserService: account edit, delete and detail lookup
// - SubjectService: subject catalog
// - RosterService: per-subject student and teacher listings

import (
	"github.com/rlacerda/gestao-escolar/internal/pkg/apperrors"
	"github.com/rlacerda/gestao-escolar/internal/pkg/dberrors"
)

// Portuguese wire messages shared by the account write flows.
const (
	msgDuplicado            = "E-mail ou Matrícula já cadastrados."
	msgTipoInvalido         = "Tipo de Usuário inválido."
	msgUsuarioNaoEncontrado = "Usuário não encontrado."
)

// mapAccountWriteError converts a raised unique-constraint violation
// into the conflict the account flows surface. Concurrent writers race
// at the database constraint, so this backstop is what decides the
// loser of the race. Other errors pass through unchanged.
func mapAccountWriteError(err error) error {
	if dberrors.IsUniqueViolation(err) {
		return apperrors.NewCustomError(apperrors.ErrConflict, msgDuplicado)
	}
	return err
}

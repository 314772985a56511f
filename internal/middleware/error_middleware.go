package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rlacerda/gestao-escolar/internal/app/models/dto"
	"github.com/rlacerda/gestao-escolar/internal/pkg/apperrors"
)

// HandleAPIError maps service failures to HTTP responses. When the error
// carries a wire message through apperrors.CustomError, that message is
// used; otherwise a generic one per status is returned.
func HandleAPIError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Erro interno do servidor."

	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrInvalidRole):
		status = http.StatusBadRequest
		message = "Requisição inválida."
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = "Credenciais inválidas."
	case apperrors.Is(err, apperrors.ErrUserNotFound, apperrors.ErrResourceNotFound, apperrors.ErrSubjectNotFound):
		status = http.StatusNotFound
		message = "Recurso não encontrado."
	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrMatriculaAlreadyExists,
		apperrors.ErrSubjectAlreadyExists):
		status = http.StatusConflict
		message = "Registro já existente."
	}

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	c.JSON(status, dto.NewErrorResponse(message))
}

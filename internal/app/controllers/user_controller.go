package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rlacerda/gestao-escolar/internal/app/models/dto"
	"github.com/rlacerda/gestao-escolar/internal/app/services"
	"github.com/rlacerda/gestao-escolar/internal/middleware"
	"github.com/rs/zerolog"
)

// UserController handles account edit, delete and detail lookup
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// Editar handles the full account edit
// @Summary Edit an account and its principal record
// @Description Atomically updates email/password, the role-specific fields and the full enrollment set
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path int true "Account id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields or unknown role"
// @Failure 404 {object} dto.ErrorResponse "No principal for this account and role"
// @Failure 409 {object} dto.ErrorResponse "Email or matricula already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios/editar/{id} [put]
func (c *UserController) Editar(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("ID de usuário inválido."))
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid edit request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Email, Nome, Matrícula e Tipo de Usuário são obrigatórios."))
		return
	}

	if err := c.userService.Update(ctx.Request.Context(), userID, &req); err != nil {
		c.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to update user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Usuário ID %d (%s) atualizado com sucesso.", userID, req.TipoUsuario),
	})
}

// Excluir handles account deletion
// @Summary Delete an account
// @Description Deletes the account; the schema cascades the principal and enrollment rows
// @Tags usuarios
// @Produce json
// @Param id path int true "Account id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios/excluir/{id} [delete]
func (c *UserController) Excluir(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("ID de usuário inválido."))
		return
	}

	if err := c.userService.Delete(ctx.Request.Context(), userID); err != nil {
		c.logger.Warn().Err(err).Int64("userId", userID).Msg("Failed to delete user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Usuário ID %d excluído com sucesso.", userID),
	})
}

// BuscarDetalhes handles the principal detail lookup
// @Summary Look up a principal's details
// @Description Returns the principal's public fields and, for students and teachers, its enrolled subject ids
// @Tags usuarios
// @Accept json
// @Produce json
// @Success 200 {object} dto.UserDetailsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios/buscar_detalhes [post]
func (c *UserController) BuscarDetalhes(ctx *gin.Context) {
	var req dto.UserDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Email, Matrícula e Tipo de Usuário são obrigatórios para a consulta."))
		return
	}

	details, err := c.userService.GetDetails(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Failed to look up user details")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserDetailsResponse{
		Message: "Detalhes do usuário encontrados.",
		Data:    details,
	})
}

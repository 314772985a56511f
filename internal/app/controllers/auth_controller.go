// Package controllers handles HTTP request handling
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rlacerda/gestao-escolar/internal/app/models/dto"
	"github.com/rlacerda/gestao-escolar/internal/app/services"
	"github.com/rlacerda/gestao-escolar/internal/middleware"
	"github.com/rs/zerolog"
)

// AuthController handles registration and login
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Registrar handles user registration
// @Summary Register a new user
// @Description Atomically creates an account, its role-specific record and optional subject enrollments
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields or unknown role"
// @Failure 409 {object} dto.ErrorResponse "Email or matricula already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/registrar [post]
func (c *AuthController) Registrar(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"Dados básicos (email, senha, nome, matricula) são obrigatórios."))
		return
	}

	principalID, role, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to register user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: fmt.Sprintf("%s registrado com sucesso.", role),
		ID:      principalID,
	})
}

// Login handles user login
// @Summary User login
// @Description Verifies the credentials and returns the account id and role
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Missing email or password"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("E-mail e senha são obrigatórios."))
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Msg("User logged in successfully")

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message:     "Login bem-sucedido!",
		IDUsuario:   user.ID,
		TipoUsuario: string(user.TipoUsuario),
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rlacerda/gestao-escolar/internal/app/models/dto"
	"github.com/rlacerda/gestao-escolar/internal/app/services"
	"github.com/rlacerda/gestao-escolar/internal/middleware"
	"github.com/rs/zerolog"
)

// SubjectController handles the subject catalog
type SubjectController struct {
	subjectService services.SubjectService
	logger         zerolog.Logger
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService, logger zerolog.Logger) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
		logger:         logger,
	}
}

// Listar returns all catalog subjects
func (c *SubjectController) Listar(ctx *gin.Context) {
	materias, err := c.subjectService.GetAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list subjects")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro ao buscar matérias."))
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: materias})
}

// Criar adds a new subject to the catalog
func (c *SubjectController) Criar(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("O nome da matéria é obrigatório."))
		return
	}

	materia, err := c.subjectService.Create(ctx.Request.Context(), req.NomeMateria)
	if err != nil {
		c.logger.Warn().Err(err).Str("nomeMateria", req.NomeMateria).Msg("Failed to create subject")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateSubjectResponse{
		Message:     "Matéria cadastrada com sucesso.",
		IDMateria:   materia.ID,
		NomeMateria: materia.Nome,
	})
}

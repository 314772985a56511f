package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rlacerda/gestao-escolar/internal/app/models/dto"
	"github.com/rlacerda/gestao-escolar/internal/app/services"
	"github.com/rs/zerolog"
)

// RosterController handles the per-subject student and teacher listings
type RosterController struct {
	rosterService services.RosterService
	logger        zerolog.Logger
}

// NewRosterController creates a new RosterController
func NewRosterController(rosterService services.RosterService, logger zerolog.Logger) *RosterController {
	return &RosterController{
		rosterService: rosterService,
		logger:        logger,
	}
}

// EstudantesPorMateria lists students by subject; id 0 lists all students
func (c *RosterController) EstudantesPorMateria(ctx *gin.Context) {
	materiaID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("ID de matéria inválido."))
		return
	}

	students, err := c.rosterService.StudentsBySubject(ctx.Request.Context(), materiaID)
	if err != nil {
		c.logger.Error().Err(err).Int64("materiaId", materiaID).Msg("Failed to list students")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro interno ao consultar estudantes."))
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: students})
}

// ProfessoresPorMateria lists teachers by subject; id 0 lists all teachers
func (c *RosterController) ProfessoresPorMateria(ctx *gin.Context) {
	materiaID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("ID de matéria inválido."))
		return
	}

	teachers, err := c.rosterService.TeachersBySubject(ctx.Request.Context(), materiaID)
	if err != nil {
		c.logger.Error().Err(err).Int64("materiaId", materiaID).Msg("Failed to list teachers")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro interno ao consultar professores."))
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: teachers})
}

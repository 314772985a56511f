package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rlacerda/gestao-escolar/internal/app/controllers"
	"github.com/rlacerda/gestao-escolar/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	subjectController *controllers.SubjectController,
	rosterController *controllers.RosterController,
) {
	// --- Subject catalog ---
	materias := router.Group("/materias")
	{
		materias.GET("", subjectController.Listar)
		materias.POST("/nova", subjectController.Criar)
	}

	// --- Auth ---
	auth := router.Group("/auth")
	{
		auth.POST("/registrar", authController.Registrar)
		auth.POST("/login", authController.Login)
	}

	// --- Account maintenance ---
	usuarios := router.Group("/usuarios")
	{
		usuarios.PUT("/editar/:id", userController.Editar)
		usuarios.DELETE("/excluir/:id", userController.Excluir)
		usuarios.POST("/buscar_detalhes", userController.BuscarDetalhes)
	}

	// --- Per-subject rosters (id 0 means all) ---
	router.GET("/estudantes/por_materia/:id", rosterController.EstudantesPorMateria)
	router.GET("/professores/por_materia/:id", rosterController.ProfessoresPorMateria)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.DataResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}

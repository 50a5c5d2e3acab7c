package export

import (
	"go-recruit/internal/domain"
	"go-recruit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/export")
	group.Use(
		middleware.AuthMiddleware(),
		middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleConsultant),
	)
	{
		group.GET("/positions/:id/report.xlsx", handler.PositionReport)
		group.GET("/candidates/:id/resume.pdf", handler.ResumePDF)
	}
}

package job

import (
	"go-recruit/internal/domain"
	"go-recruit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/jobs")
	group.Use(middleware.AuthMiddleware())
	{
		staff := middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleConsultant)

		group.GET("", staff, handler.List)
		group.POST("", staff, handler.Create)
		group.GET("/open", middleware.RoleMiddleware(domain.RoleCandidate), handler.ListOpen)
		group.GET("/:id", handler.Get)
		group.PATCH("/:id", staff, handler.Update)
		group.DELETE("/:id", middleware.RoleMiddleware(domain.RoleAdmin), handler.Delete)
	}
}

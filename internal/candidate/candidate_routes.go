package candidate

import (
	"go-recruit/internal/domain"
	"go-recruit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/candidates")
	group.Use(middleware.AuthMiddleware())
	{
		staff := middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleConsultant)

		group.GET("", staff, handler.Directory)
		group.GET("/filter-options", staff, handler.FilterOptions)
		group.POST("", staff, handler.Create)
		group.GET("/:id", staff, handler.Get)
		group.PATCH("/:id", staff, handler.Update)
		group.DELETE("/:id", middleware.RoleMiddleware(domain.RoleAdmin), handler.Delete)
		group.POST("/:id/avatar", staff, handler.UploadAvatar)
	}
}

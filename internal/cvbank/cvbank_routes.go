package cvbank

import (
	"go-recruit/internal/domain"
	"go-recruit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/cv-bank")
	group.Use(
		middleware.AuthMiddleware(),
		middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleConsultant),
	)
	{
		group.GET("", handler.Browse)
		group.GET("/search", handler.Search)
	}
}

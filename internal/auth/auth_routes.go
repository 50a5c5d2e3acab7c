package auth

import (
	"go-recruit/internal/domain"
	"go-recruit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		authGroup.POST("/refresh", middleware.RateLimitByIP(1, 5), handler.Refresh)
		authGroup.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.POST("",
			middleware.RoleMiddleware(domain.RoleAdmin),
			handler.CreateUser,
		)
		users.DELETE("/:id",
			middleware.RoleMiddleware(domain.RoleAdmin),
			handler.DeleteUser,
		)
	}
}

package mailer

import (
	"go-recruit/internal/domain"
	"go-recruit/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/mail")
	group.Use(
		middleware.AuthMiddleware(),
		middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleConsultant),
	)
	{
		group.POST("/candidate-result", middleware.RateLimitByUser(1, 10), handler.SendCandidateResult)
		group.POST("/invite", middleware.RoleMiddleware(domain.RoleAdmin), handler.SendInvite)
	}
}

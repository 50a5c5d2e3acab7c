package application

import (
	"go-recruit/internal/domain"
	"go-recruit/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	group := r.Group("/applications")
	group.Use(middleware.AuthMiddleware())
	{
		staff := middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleConsultant)
		asCandidate := middleware.RoleMiddleware(domain.RoleCandidate)

		if redisClient != nil {
			group.POST(
				"",
				asCandidate,
				middleware.ExtractUserID(),
				middleware.Idempotency(redisClient),
				handler.Apply,
			)
		} else {
			group.POST("", asCandidate, handler.Apply)
		}
		group.GET("/mine", asCandidate, handler.ListMine)
		group.GET("/job/:jobId", staff, handler.ListByJob)
		group.PATCH("/:id/status", staff, handler.UpdateStatus)
	}
}

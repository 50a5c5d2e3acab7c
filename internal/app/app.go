package app

import (
	"os"

	"go-recruit/internal/middleware"
	"go-recruit/internal/shared/connection"
	"go-recruit/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	uploadDir := os.Getenv("STORAGE_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	files := storage.NewLocal(uploadDir, os.Getenv("PUBLIC_BASE_URL"))
	router.Static("/uploads", uploadDir)

	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, sqlDB, gormDB, redisClient, files)
}

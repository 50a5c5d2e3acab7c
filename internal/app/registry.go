package app

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"

	"go-recruit/internal/application"
	applicationerrors "go-recruit/internal/application/errors"
	"go-recruit/internal/auth"
	"go-recruit/internal/candidate"
	candidateerrors "go-recruit/internal/candidate/errors"
	"go-recruit/internal/crm"
	"go-recruit/internal/cvbank"
	"go-recruit/internal/export"
	"go-recruit/internal/job"
	joberrors "go-recruit/internal/job/errors"
	"go-recruit/internal/mailer"
	"go-recruit/internal/messaging/kafka"
	"go-recruit/internal/rbac"
	"go-recruit/internal/rbac/infra"
	"go-recruit/internal/resume"
	"go-recruit/internal/shared/counter"
	"go-recruit/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	files storage.Storage,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	candidateRepo := candidate.NewRepository(gormDB)
	resumeRepo := resume.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	crmRepo := crm.NewRepository(gormDB)
	cvbankRepo := cvbank.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	mailService := mailer.NewService(mailer.NewDialerFromEnv(), gormDB)
	authService := auth.NewService(authRepo, rbacService, mailService)
	reconciler := resume.NewReconciler(resumeRepo)
	candidateService := candidate.NewService(candidateRepo, reconciler, counterRepo, rdb)
	jobService := job.NewService(gormDB, jobRepo, outboxRepo, &candidateProfileAdapter{candidates: candidateRepo})
	applicationService := application.NewService(gormDB, applicationRepo, outboxRepo, &jobGateAdapter{
		jobs:       jobRepo,
		candidates: candidateRepo,
	})
	crmService := crm.NewService(gormDB, crmRepo, outboxRepo)
	cvbankService := cvbank.NewService(cvbankRepo)
	exportService := export.NewService(crmService, candidateService, candidateRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	rbacHandler := rbac.NewHandler(rbacService)
	candidateHandler := candidate.NewHandler(candidateService, files)
	jobHandler := job.NewHandler(jobService)
	applicationHandler := application.NewHandlerWithRedis(applicationService, rdb)
	crmHandler := crm.NewHandler(crmService)
	cvbankHandler := cvbank.NewHandler(cvbankService)
	exportHandler := export.NewHandler(exportService)
	mailerHandler := mailer.NewHandler(mailService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		rbac.RegisterRoutes(api, rbacHandler)
		candidate.RegisterRoutes(api, candidateHandler)
		job.RegisterRoutes(api, jobHandler)
		application.RegisterRoutes(api, applicationHandler, rdb)
		crm.RegisterRoutes(api, crmHandler, rbacService)
		cvbank.RegisterRoutes(api, cvbankHandler)
		export.RegisterRoutes(api, exportHandler)
		mailer.RegisterRoutes(api, mailerHandler)
	}

	return nil
}

// candidateProfileAdapter lets the job module resolve a candidate's
// disability category without importing the candidate package.
type candidateProfileAdapter struct {
	candidates candidate.Repository
}

func (a *candidateProfileAdapter) DisabilityCategory(ctx context.Context, agencyID string, candidateID uuid.UUID) (string, error) {
	c, err := a.candidates.GetByID(ctx, agencyID, candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", candidateerrors.ErrCandidateNotFound
		}
		return "", err
	}
	return c.DisabilityCategory, nil
}

// jobGateAdapter enforces the apply preconditions: the posting exists,
// is active, and admits the candidate's disability category.
type jobGateAdapter struct {
	jobs       job.Repository
	candidates candidate.Repository
}

func (a *jobGateAdapter) CanApply(ctx context.Context, agencyID string, jobID, candidateID uuid.UUID) error {
	j, err := a.jobs.GetByID(ctx, agencyID, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return joberrors.ErrJobNotFound
		}
		return err
	}
	if !j.IsActive {
		return applicationerrors.ErrJobNotOpen
	}

	c, err := a.candidates.GetByID(ctx, agencyID, candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidateerrors.ErrCandidateNotFound
		}
		return err
	}
	if !j.SuitableFor(c.DisabilityCategory) {
		return applicationerrors.ErrJobNotOpen
	}
	return nil
}

package rbac

import (
	"sync"

	"go-recruit/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadAgencyPolicy(agencyID string) error
	Enforce(req domain.EnforceRequest) (bool, error)
	AssignRole(agencyID, userID, roleID string) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadAgencyPolicy(agencyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadAgencyPolicyUnlocked(agencyID)
}

func (s *service) loadAgencyPolicyUnlocked(agencyID string) error {
	s.enforcer.ClearPolicy()

	userRoles, err := s.repo.GetUserRoles(agencyID)
	if err != nil {
		return err
	}
	s.logger.Debug("rbac policy loaded",
		zap.String("agency_id", agencyID),
		zap.Int("user_roles", len(userRoles)),
	)

	for _, ur := range userRoles {
		if _, err := s.enforcer.AddGroupingPolicy(ur.UserID, ur.RoleID, agencyID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(agencyID)
	if err != nil {
		return err
	}

	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, agencyID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadAgencyPolicyUnlocked(req.AgencyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(
		req.UserID,
		req.AgencyID,
		req.Resource,
		req.Action,
	)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("agency_id", req.AgencyID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}

func (s *service) AssignRole(agencyID, userID, roleID string) error {
	return s.repo.AssignRole(agencyID, userID, roleID)
}

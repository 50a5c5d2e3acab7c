package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "go-recruit/internal/auth/errors"
	"go-recruit/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InviteMailer is what the service needs from the mail layer: a single
// call that sends the membership-invite template. Kept local so auth
// does not import the mailer package.
type InviteMailer interface {
	SendInvite(ctx context.Context, recipient, name, tempPassword string) error
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	CreateUser(ctx context.Context, agencyID string, req CreateUserRequest) (UserResponse, error)
	DeleteUser(ctx context.Context, agencyID, id string) error
}

type service struct {
	repo   Repository
	rbac   rbac.Service
	invite InviteMailer
	logger *zap.Logger
}

func NewService(repo Repository, rbacService rbac.Service, invite InviteMailer, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, rbac: rbacService, invite: invite, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := s.rbac.LoadAgencyPolicy(user.AgencyID.String()); err != nil {
		return "", "", AuthResponse{}, err
	}

	accessToken, err := s.generateToken(user, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(user, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return accessToken, refreshToken, mapToAuthResponse(user), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	newAccessToken, err := s.generateToken(user, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := s.generateToken(user, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, mapToAuthResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToAuthResponse(user)
	return &resp, nil
}

func (s *service) CreateUser(ctx context.Context, agencyID string, req CreateUserRequest) (UserResponse, error) {
	agencyUUID, err := uuid.Parse(agencyID)
	if err != nil {
		return UserResponse{}, autherrors.ErrInvalidUserID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	user := &User{
		ID:       uuid.New(),
		AgencyID: agencyUUID,
		Name:     req.Name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		Role:     req.Role,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if isDuplicateEmail(err) {
			return UserResponse{}, autherrors.ErrEmailAlreadyExists
		}
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, err
	}

	// Invite delivery is best effort: the account exists either way and
	// an admin can resend from the mail screen.
	if s.invite != nil {
		if err := s.invite.SendInvite(ctx, user.Email, user.Name, req.Password); err != nil {
			s.logger.Warn("send invite mail failed",
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("user created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return mapToUserResponse(user), nil
}

func (s *service) DeleteUser(ctx context.Context, agencyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return autherrors.ErrInvalidUserID
	}

	if err := s.repo.Delete(ctx, agencyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		return err
	}

	s.logger.Info("user deleted", zap.String("user_id", id))
	return nil
}

func (s *service) generateToken(user *User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"agency_id": user.AgencyID.String(),
		"role":      user.Role,
		"exp":       time.Now().Add(ttl).Unix(),
	}
	if user.CandidateID != nil {
		claims["candidate_id"] = user.CandidateID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func isDuplicateEmail(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "23505")
}

func mapToAuthResponse(user *User) AuthResponse {
	resp := AuthResponse{
		ID:       user.ID.String(),
		AgencyID: user.AgencyID.String(),
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
	}
	if user.CandidateID != nil {
		resp.CandidateID = user.CandidateID.String()
	}
	return resp
}

func mapToUserResponse(user *User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		AgencyID: user.AgencyID.String(),
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}

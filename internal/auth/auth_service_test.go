package auth_test

import (
	"context"
	"errors"
	"testing"

	"go-recruit/internal/auth"
	autherrors "go-recruit/internal/auth/errors"
	authMock "go-recruit/internal/auth/mock"
	rbacMock "go-recruit/internal/rbac/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	mockRBAC := rbacMock.NewMockService(ctrl)
	mockInvite := authMock.NewMockInviteMailer(ctrl)

	service := auth.NewService(mockRepo, mockRBAC, mockInvite)
	ctx := context.Background()

	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	userID := uuid.New()
	agencyID := uuid.New()
	candidateID := uuid.New()
	mockUser := &auth.User{
		ID:          userID,
		AgencyID:    agencyID,
		CandidateID: &candidateID,
		Email:       "aday@example.com",
		Password:    string(pw),
		Role:        "CANDIDATE",
	}

	t.Run("Success Login", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		mockRBAC.EXPECT().
			LoadAgencyPolicy(agencyID.String()).
			Return(nil)

		token, refreshToken, resp, err := service.Login(ctx, mockUser.Email, password)

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, userID.String(), resp.ID)
		assert.Equal(t, candidateID.String(), resp.CandidateID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, mockUser.Email).
			Return(mockUser, nil)

		_, _, _, err := service.Login(ctx, mockUser.Email, "wrong-password")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByEmail(ctx, "yok@example.com").
			Return(nil, errors.New("record not found"))

		_, _, _, err := service.Login(ctx, "yok@example.com", password)

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	mockRBAC := rbacMock.NewMockService(ctrl)
	mockInvite := authMock.NewMockInviteMailer(ctrl)

	service := auth.NewService(mockRepo, mockRBAC, mockInvite)
	ctx := context.Background()

	agencyID := uuid.New()
	req := auth.CreateUserRequest{
		Name:     "Deniz Danışman",
		Email:    "Deniz@Example.com",
		Password: "gecici-sifre1",
		Role:     "CONSULTANT",
	}

	t.Run("Success And Invite Sent", func(t *testing.T) {
		var created *auth.User
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *auth.User) error {
				created = u
				return nil
			})

		mockInvite.EXPECT().
			SendInvite(ctx, "deniz@example.com", req.Name, req.Password).
			Return(nil)

		resp, err := service.CreateUser(ctx, agencyID.String(), req)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "deniz@example.com", created.Email)
		assert.NotEqual(t, req.Password, created.Password)
		assert.Equal(t, "CONSULTANT", resp.Role)
		assert.True(t, resp.IsActive)
	})

	t.Run("Invite Failure Does Not Fail Create", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(nil)

		mockInvite.EXPECT().
			SendInvite(ctx, "deniz@example.com", req.Name, req.Password).
			Return(errors.New("smtp down"))

		_, err := service.CreateUser(ctx, agencyID.String(), req)

		assert.NoError(t, err)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New(`duplicate key value violates unique constraint "idx_users_email"`))

		_, err := service.CreateUser(ctx, agencyID.String(), req)

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyExists)
	})

	t.Run("Invalid Agency ID", func(t *testing.T) {
		_, err := service.CreateUser(ctx, "not-a-uuid", req)

		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})
}

func TestService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	mockRBAC := rbacMock.NewMockService(ctrl)

	service := auth.NewService(mockRepo, mockRBAC, nil)
	ctx := context.Background()

	userID := uuid.New()
	mockUser := &auth.User{
		ID:       userID,
		AgencyID: uuid.New(),
		Email:    "admin@example.com",
		Role:     "ADMIN",
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByID(ctx, userID).
			Return(mockUser, nil)

		resp, err := service.GetMe(ctx, userID.String())

		require.NoError(t, err)
		assert.Equal(t, mockUser.Email, resp.Email)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		_, err := service.GetMe(ctx, "abc")

		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("Not Found", func(t *testing.T) {
		missing := uuid.New()
		mockRepo.EXPECT().
			GetByID(ctx, missing).
			Return(nil, errors.New("record not found"))

		_, err := service.GetMe(ctx, missing.String())

		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}

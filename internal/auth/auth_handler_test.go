package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-recruit/internal/auth"
	autherrors "go-recruit/internal/auth/errors"
	authMock "go-recruit/internal/auth/mock"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("Success", func(t *testing.T) {
		reqBody := auth.LoginRequest{
			Email:    "admin@example.com",
			Password: "password123",
		}
		body, _ := json.Marshal(reqBody)

		expectedResp := auth.AuthResponse{
			ID:       "user-1",
			AgencyID: "agency-1",
			Email:    "admin@example.com",
			Role:     "ADMIN",
		}

		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return("access-token", "refresh-token", expectedResp, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])

		data := res["data"].(map[string]any)
		assert.Equal(t, "access-token", data["access_token"])
		assert.Equal(t, "admin@example.com", data["user"].(map[string]any)["email"])
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		body, _ := json.Marshal(auth.LoginRequest{Email: "wrong@example.com", Password: "badpass1"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var res map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, false, res["ok"])
	})

	t.Run("Missing Fields", func(t *testing.T) {
		body, _ := json.Marshal(gin.H{"email": "not-an-email"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/users", func(c *gin.Context) {
		c.Set("agency_id", "agency-1")
		handler.CreateUser(c)
	})

	t.Run("Success", func(t *testing.T) {
		reqBody := auth.CreateUserRequest{
			Name:     "Deniz Danışman",
			Email:    "deniz@example.com",
			Password: "gecici-sifre1",
			Role:     "CONSULTANT",
		}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			CreateUser(gomock.Any(), "agency-1", reqBody).
			Return(auth.UserResponse{
				ID:       "user-2",
				AgencyID: "agency-1",
				Name:     reqBody.Name,
				Email:    reqBody.Email,
				Role:     reqBody.Role,
				IsActive: true,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		reqBody := auth.CreateUserRequest{
			Name:     "Deniz Danışman",
			Email:    "deniz@example.com",
			Password: "gecici-sifre1",
			Role:     "CONSULTANT",
		}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			CreateUser(gomock.Any(), "agency-1", reqBody).
			Return(auth.UserResponse{}, autherrors.ErrEmailAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Unknown Role Rejected By Binding", func(t *testing.T) {
		body, _ := json.Marshal(gin.H{
			"name":     "X",
			"email":    "x@example.com",
			"password": "12345678",
			"role":     "SUPERUSER",
		})
		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

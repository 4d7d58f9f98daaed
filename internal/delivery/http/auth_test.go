package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/usecase"
	"hospital-records-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv()

	userID := uuid.New()
	env.authUC.RegisterFunc = func(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
		return &dto.UserResponse{
			ID:        userID,
			Username:  req.Username,
			Email:     req.Email,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}, nil
	}

	rec, resp := env.doRequest(t, http.MethodPost, "/api/auth/register/", "", dto.RegisterRequest{
		Username: "drhouse",
		Email:    "house@example.com",
		Password: "vicodin123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)

	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "drhouse", user.Username)
	assert.Equal(t, "house@example.com", user.Email)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv()

	env.authUC.RegisterFunc = func(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
		return nil, usecase.ErrUsernameAlreadyExists
	}

	rec, resp := env.doRequest(t, http.MethodPost, "/api/auth/register/", "", dto.RegisterRequest{
		Username: "drhouse",
		Email:    "other@example.com",
		Password: "vicodin123",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(resp.Error, &fields))
	assert.Contains(t, fields, "username")
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name  string
		req   dto.RegisterRequest
		field string
	}{
		{
			name:  "missing username",
			req:   dto.RegisterRequest{Email: "a@example.com", Password: "secret1"},
			field: "username",
		},
		{
			name:  "username too short",
			req:   dto.RegisterRequest{Username: "ab", Email: "a@example.com", Password: "secret1"},
			field: "username",
		},
		{
			name:  "invalid email",
			req:   dto.RegisterRequest{Username: "drhouse", Email: "not-an-email", Password: "secret1"},
			field: "email",
		},
		{
			name:  "password too short",
			req:   dto.RegisterRequest{Username: "drhouse", Email: "a@example.com", Password: "abc"},
			field: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := env.doRequest(t, http.MethodPost, "/api/auth/register/", "", tt.req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, resp.Success)

			var fields map[string]string
			require.NoError(t, json.Unmarshal(resp.Error, &fields))
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv()

	env.authUC.LoginFunc = func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
		if req.Username == "drhouse" && req.Password == "vicodin123" {
			return &dto.TokenResponse{Access: "access-token", Refresh: "refresh-token", ExpiresIn: 900}, nil
		}
		return nil, usecase.ErrInvalidCredentials
	}

	t.Run("valid credentials", func(t *testing.T) {
		rec, resp := env.doRequest(t, http.MethodPost, "/api/auth/login/", "", dto.LoginRequest{
			Username: "drhouse",
			Password: "vicodin123",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var tokens dto.TokenResponse
		require.NoError(t, json.Unmarshal(resp.Data, &tokens))
		assert.Equal(t, "access-token", tokens.Access)
		assert.Equal(t, "refresh-token", tokens.Refresh)
		assert.Equal(t, int64(900), tokens.ExpiresIn)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec, resp := env.doRequest(t, http.MethodPost, "/api/auth/login/", "", dto.LoginRequest{
			Username: "drhouse",
			Password: "wrong",
		})

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, resp.Success)
	})
}

func TestRefreshToken(t *testing.T) {
	env := newTestEnv()

	env.authUC.RefreshTokenFunc = func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
		if req.Refresh == "good-refresh" {
			return &dto.TokenResponse{Access: "new-access", Refresh: "new-refresh", ExpiresIn: 900}, nil
		}
		return nil, usecase.ErrTokenRevoked
	}

	t.Run("valid refresh token rotates", func(t *testing.T) {
		rec, resp := env.doRequest(t, http.MethodPost, "/api/auth/refresh/", "", dto.RefreshTokenRequest{
			Refresh: "good-refresh",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var tokens dto.TokenResponse
		require.NoError(t, json.Unmarshal(resp.Data, &tokens))
		assert.Equal(t, "new-access", tokens.Access)
		assert.Equal(t, "new-refresh", tokens.Refresh)
	})

	t.Run("revoked refresh token rejected", func(t *testing.T) {
		rec, _ := env.doRequest(t, http.MethodPost, "/api/auth/refresh/", "", dto.RefreshTokenRequest{
			Refresh: "already-used",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv()

	userID := uuid.New()
	var revokedUser uuid.UUID
	env.authUC.LogoutFunc = func(ctx context.Context, id uuid.UUID) error {
		revokedUser = id
		return nil
	}

	token := env.accessTokenFor(t, userID)
	rec, _ := env.doRequest(t, http.MethodPost, "/api/auth/logout/", token, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, revokedUser)
}

func TestGetCurrentUser(t *testing.T) {
	env := newTestEnv()

	userID := uuid.New()
	env.authUC.GetCurrentUserFunc = func(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
		return &dto.UserResponse{ID: id, Username: "drhouse", Email: "house@example.com"}, nil
	}

	t.Run("with valid token", func(t *testing.T) {
		token := env.accessTokenFor(t, userID)
		rec, resp := env.doRequest(t, http.MethodGet, "/api/auth/me/", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var user dto.UserResponse
		require.NoError(t, json.Unmarshal(resp.Data, &user))
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "drhouse", user.Username)
	})

	t.Run("without token", func(t *testing.T) {
		rec, _ := env.doRequest(t, http.MethodGet, "/api/auth/me/", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("with revoked token", func(t *testing.T) {
		env.tokenStore.ExistsFunc = func(ctx context.Context, id uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
			return false, nil
		}
		defer func() { env.tokenStore.ExistsFunc = nil }()

		token := env.accessTokenFor(t, userID)
		rec, _ := env.doRequest(t, http.MethodGet, "/api/auth/me/", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

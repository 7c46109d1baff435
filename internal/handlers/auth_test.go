package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/dto"
	"github.com/SeanSun10/ProjectManager/internal/middleware"
	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/repository"
	"github.com/SeanSun10/ProjectManager/internal/services"
)

const testJWTSecret = "test-secret"

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Activity{})
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, testJWTSecret, 1)
	handler := NewAuthHandler(authService)

	r := gin.New()
	r.POST("/api/v1/auth/register", handler.Register)
	r.POST("/api/v1/auth/login", handler.Login)
	r.GET("/api/v1/auth/me", middleware.RequireAuth(testJWTSecret, userRepo), handler.Me)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		router:      r,
		authService: authService,
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "supersecret",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, "alice", user.Username)
	require.True(t, user.IsActive)
	require.NotContains(t, w.Body.String(), "supersecret")
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "supersecret",
	}
	w := doJSON(t, env.router, http.MethodPost, "/api/v1/auth/register", payload, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, env.router, http.MethodPost, "/api/v1/auth/register", payload, "")
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
		IsActive: true,
	})
	require.NoError(t, err)

	w := doJSON(t, env.router, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"username": "alice",
		"password": "supersecret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var token dto.TokenDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &token))
	require.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)

	w = doJSON(t, env.router, http.MethodGet, "/api/v1/auth/me", nil, token.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	var me models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	require.Equal(t, "alice", me.Username)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
		IsActive: true,
	})
	require.NoError(t, err)

	w := doJSON(t, env.router, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"username": "alice",
		"password": "nope",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_MeWithoutToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := doJSON(t, env.router, http.MethodGet, "/api/v1/auth/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

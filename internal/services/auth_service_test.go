package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/auth"
	"github.com/SeanSun10/ProjectManager/internal/repository"
)

const testJWTSecret = "test-secret"

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), testJWTSecret, 1)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
		IsActive: true,
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "supersecret", user.HashedPassword)

	token, err := svc.Login(LoginInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	claims, err := auth.ParseToken(testJWTSecret, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
}

func TestAuthService_RegisterDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "pw123456", IsActive: true})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Username: "alice", Email: "other@example.com", Password: "pw123456", IsActive: true})
	require.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Register(RegisterInput{Username: "bob", Email: "alice@example.com", Password: "pw123456", IsActive: true})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_LoginFailures(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Login(LoginInput{Username: "ghost", Password: "whatever"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "pw123456", IsActive: true})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Username: "alice", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(RegisterInput{Username: "carol", Email: "carol@example.com", Password: "pw123456", IsActive: false})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Username: "carol", Password: "pw123456"})
	require.ErrorIs(t, err, ErrInactiveUser)
}

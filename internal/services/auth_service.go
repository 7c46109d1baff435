package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/auth"
	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/repository"
)

var (
	ErrUsernameTaken      = errors.New("a user with this username already exists")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveUser       = errors.New("inactive user")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration and bearer-token authentication.
type AuthService struct {
	userRepo    repository.UserRepository
	jwtSecret   string
	expireHours int
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, expireHours int) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtSecret:   jwtSecret,
		expireHours: expireHours,
	}
}

// RegisterInput represents the information to create a new user.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	IsActive    bool
	IsSuperuser bool
}

// Register creates a new user after uniqueness checks on username and
// email.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:       username,
		Email:          input.Email,
		HashedPassword: string(hashed),
		IsActive:       input.IsActive,
		IsSuperuser:    input.IsSuperuser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns a signed bearer token.
func (s *AuthService) Login(input LoginInput) (string, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", ErrInactiveUser
	}

	token, _, err := auth.GenerateToken(s.jwtSecret, user.ID, user.IsSuperuser, s.expireHours)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

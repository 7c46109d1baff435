package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SeanSun10/ProjectManager/internal/dto"
	apierrors "github.com/SeanSun10/ProjectManager/internal/errors"
	"github.com/SeanSun10/ProjectManager/internal/middleware"
	"github.com/SeanSun10/ProjectManager/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user account
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username    string `json:"username" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=6"`
		IsActive    *bool  `json:"is_active"`
		IsSuperuser bool   `json:"is_superuser"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user, err := h.authService.Register(services.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		IsActive:    isActive,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
			apierrors.Conflict(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to register user")
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and issues a bearer token. Credentials
// are accepted as JSON or form data.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" form:"username" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	token, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			apierrors.Unauthorized(c, err.Error())
		case errors.Is(err, services.ErrInactiveUser):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to log in")
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenDTO{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	c.JSON(http.StatusOK, user)
}

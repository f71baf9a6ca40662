package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webcars-api/internal/application/ports"
	"webcars-api/internal/application/services"
	userDocs "webcars-api/internal/infrastructure/docstore/user"
	"webcars-api/internal/interface/api/rest/dto/auth"
	"webcars-api/internal/interface/api/rest/forms"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
		authService: authService,
	}

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteLogout, ac.LogoutHandler)

	return ac
}

// RegisterHandler creates the identity record from email and password,
// then pushes the display name into it with a separate profile update,
// mirroring the two-step auth collaborator contract.
func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := forms.Register.Validate(req.Values()); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.userService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userDocs.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to register"},
		)
		ac.logger.Error("Register() error", zap.Error(err))
		return
	}

	u, err = ac.userService.UpdateProfile(c.Request.Context(), u.ID, req.Name)
	if err != nil || u == nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to register"},
		)
		ac.logger.Error("UpdateProfile() error", zap.Error(err))
		return
	}

	token, err := ac.authService.GenerateToken(u, req.Password)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to register"},
		)
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.String("user_id", u.ID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"redirect":     RouteDashboardPage,
	})
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := forms.Login.Validate(req.Values()); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.userService.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindByEmail() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid credentials"},
		)
		return
	}

	token, err := ac.authService.GenerateToken(u, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to log in"},
		)
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.String("user_id", u.ID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"redirect":     RouteDashboardPage,
	})
}

// LogoutHandler is stateless: tokens are short-lived and simply discarded
// by the client.
func (ac *AuthController) LogoutHandler(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

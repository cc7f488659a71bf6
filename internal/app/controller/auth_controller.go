package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrine/marketplace-backend/internal/app/service"
	apperrors "github.com/vitrine/marketplace-backend/internal/errors"
	"github.com/vitrine/marketplace-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles POST /auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	var req service.CreateUserInput
	if !bindJSON(c, &req) {
		return
	}

	result, err := ctrl.authService.Register(req)
	if err != nil {
		respondError(c, err, "register user")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login handles POST /auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.LoginInput
	if !bindJSON(c, &req) {
		return
	}
	if req.Secret() == "" {
		apperrors.RespondWithValidationError(c, map[string]string{"password": "obrigatório"})
		return
	}

	user, err := ctrl.authService.ValidateCredentials(req.Email, req.Secret())
	if err != nil {
		respondError(c, err, "login")
		return
	}
	if user == nil {
		log.Warn("Invalid login attempt", map[string]interface{}{
			"email": req.Email,
		})
		respondError(c, service.ErrInvalidCredentials, "login")
		return
	}

	result, err := ctrl.authService.Login(user)
	if err != nil {
		respondError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me handles GET /auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := ctrl.authService.Me(userID)
	if err != nil {
		respondError(c, err, "get user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout handles POST /auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	token, claims, ok := middleware.GetToken(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	if err := ctrl.authService.Logout(c.Request.Context(), token, claims); err != nil {
		respondError(c, err, "logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada"})
}

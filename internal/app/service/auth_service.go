package service

import (
	"context"
	"errors"
	"time"

	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/pkg/logger"
	"github.com/vitrine/marketplace-backend/pkg/util"
)

type LoginInput struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password"`
	PasswordAlias string `json:"senha"`
}

func (in LoginInput) Secret() string {
	if in.Password != "" {
		return in.Password
	}
	return in.PasswordAlias
}

// AuthResult is returned by register and login.
type AuthResult struct {
	AccessToken string          `json:"access_token"`
	User        *model.SafeUser `json:"user"`
}

// TokenRevoker invalidates a token until its natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

type AuthService interface {
	Register(input CreateUserInput) (*AuthResult, error)
	// ValidateCredentials returns nil without error when the pair does not match.
	ValidateCredentials(email, password string) (*model.SafeUser, error)
	Login(user *model.SafeUser) (*AuthResult, error)
	Me(userID uint) (*model.SafeUser, error)
	Logout(ctx context.Context, token string, claims *util.Claims) error
}

type authService struct {
	users     UserService
	revoker   TokenRevoker
	jwtSecret string
	expiry    time.Duration
}

// NewAuthService builds the auth flows. revoker may be nil, in which case
// logout only succeeds without invalidating the token.
func NewAuthService(users UserService, revoker TokenRevoker, jwtSecret string, expiry time.Duration) AuthService {
	return &authService{
		users:     users,
		revoker:   revoker,
		jwtSecret: jwtSecret,
		expiry:    expiry,
	}
}

func (s *authService) Register(input CreateUserInput) (*AuthResult, error) {
	logger.Info("Registering new user", map[string]interface{}{
		"email":    input.Email,
		"username": input.Username,
	})

	user, err := s.users.Create(input)
	if err != nil {
		logger.Warn("Registration rejected", map[string]interface{}{
			"email": input.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	return s.Login(user)
}

func (s *authService) ValidateCredentials(email, password string) (*model.SafeUser, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			logger.Warn("Login failed: unknown email", map[string]interface{}{
				"email": email,
			})
			return nil, nil
		}
		return nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil
	}

	return user.Safe(), nil
}

func (s *authService) Login(user *model.SafeUser) (*AuthResult, error) {
	token, err := util.GenerateToken(user.ID, user.Email, user.Username, s.jwtSecret, s.expiry)
	if err != nil {
		logger.Error("Failed to sign access token", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, err
	}

	logger.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
	})
	return &AuthResult{AccessToken: token, User: user}, nil
}

func (s *authService) Me(userID uint) (*model.SafeUser, error) {
	return s.users.Get(userID)
}

func (s *authService) Logout(ctx context.Context, token string, claims *util.Claims) error {
	if s.revoker == nil {
		logger.Debug("Token blacklist disabled, logout is stateless", map[string]interface{}{
			"user_id": claims.UserID,
		})
		return nil
	}

	// Tokens without exp stay blacklisted permanently (zero ttl).
	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = claims.RemainingLifetime()
		if ttl <= 0 {
			return nil
		}
	}

	if err := s.revoker.Revoke(ctx, token, ttl); err != nil {
		logger.Error("Failed to revoke token", err, map[string]interface{}{
			"user_id": claims.UserID,
		})
		return err
	}

	logger.Info("User logged out", map[string]interface{}{
		"user_id": claims.UserID,
	})
	return nil
}

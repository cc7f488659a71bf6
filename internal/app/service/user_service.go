package service

import (
	"strings"

	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	apperrors "github.com/vitrine/marketplace-backend/internal/errors"
	"github.com/vitrine/marketplace-backend/pkg/logger"
	"github.com/vitrine/marketplace-backend/pkg/util"
)

type CreateUserInput struct {
	Username        string `json:"username" binding:"required,max=50"`
	Name            string `json:"nome" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"senha" binding:"omitempty,min=6,max=72"`
	PasswordAlias   string `json:"password" binding:"omitempty,min=6,max=72"`
	ProfileImageURL string `json:"foto_perfil_url" binding:"omitempty,url"`
}

// Secret returns the plain password from either accepted field.
func (in CreateUserInput) Secret() string {
	if in.Password != "" {
		return in.Password
	}
	return in.PasswordAlias
}

type UpdateUserInput struct {
	Username        *string `json:"username" binding:"omitempty,min=1,max=50"`
	Name            *string `json:"nome" binding:"omitempty,min=1,max=100"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Password        *string `json:"senha" binding:"omitempty,min=6,max=72"`
	ProfileImageURL *string `json:"foto_perfil_url" binding:"omitempty,url"`
}

type UserService interface {
	Create(input CreateUserInput) (*model.SafeUser, error)
	List() ([]model.SafeUser, error)
	Get(id uint) (*model.SafeUser, error)
	// FindByEmail returns the full account including its password hash.
	FindByEmail(email string) (*model.User, error)
	Update(id uint, input UpdateUserInput) (*model.SafeUser, error)
	Delete(id uint) (*model.SafeUser, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(input CreateUserInput) (*model.SafeUser, error) {
	secret := input.Secret()
	if secret == "" {
		return nil, ErrPasswordRequired
	}
	passwordField := "senha"
	if input.Password == "" {
		passwordField = "password"
	}
	if err := checkPasswordLength(passwordField, secret); err != nil {
		return nil, err
	}

	username, err := requiredText("username", input.Username)
	if err != nil {
		return nil, err
	}
	name, err := requiredText("nome", input.Name)
	if err != nil {
		return nil, err
	}

	hash, err := util.HashPassword(secret)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": input.Email,
		})
		return nil, err
	}

	user := &model.User{
		Username:        username,
		Name:            name,
		Email:           normalizeEmail(input.Email),
		PasswordHash:    hash,
		ProfileImageURL: input.ProfileImageURL,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, translateUserConflict(err)
	}

	logger.Info("User created", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user.Safe(), nil
}

func (s *userService) List() ([]model.SafeUser, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	result := make([]model.SafeUser, 0, len(users))
	for i := range users {
		result = append(result, *users[i].Safe())
	}
	return result, nil
}

func (s *userService) Get(id uint) (*model.SafeUser, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user.Safe(), nil
}

func (s *userService) FindByEmail(email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) Update(id uint, input UpdateUserInput) (*model.SafeUser, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	if input.Username != nil {
		if user.Username, err = requiredText("username", *input.Username); err != nil {
			return nil, err
		}
	}
	if input.Name != nil {
		if user.Name, err = requiredText("nome", *input.Name); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		user.Email = normalizeEmail(*input.Email)
	}
	if input.ProfileImageURL != nil {
		user.ProfileImageURL = *input.ProfileImageURL
	}
	if input.Password != nil {
		if err := checkPasswordLength("senha", *input.Password); err != nil {
			return nil, err
		}
		hash, err := util.HashPassword(*input.Password)
		if err != nil {
			logger.Error("Failed to hash password", err, map[string]interface{}{
				"user_id": id,
			})
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, translateUserConflict(err)
	}

	logger.Info("User updated", map[string]interface{}{
		"user_id": user.ID,
	})
	return user.Safe(), nil
}

func (s *userService) Delete(id uint) (*model.SafeUser, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	if err := s.userRepo.Delete(id); err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			logger.Warn("User delete blocked by dependent rows", map[string]interface{}{
				"user_id": id,
			})
			return nil, ErrStillReferenced
		}
		return nil, err
	}

	logger.Info("User deleted", map[string]interface{}{
		"user_id": id,
	})
	return user.Safe(), nil
}

func translateUserConflict(err error) error {
	switch {
	case apperrors.IsDuplicateOn(err, "email"):
		return ErrEmailAlreadyExists
	case apperrors.IsDuplicateOn(err, "username"):
		return ErrUsernameAlreadyExists
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

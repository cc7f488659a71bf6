package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vitrine/marketplace-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")

	ErrStoreNotFound      = errors.New("store not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategorySlugExists = errors.New("category slug already exists")
	ErrInvalidSlug        = errors.New("category slug is empty")
	ErrInvalidParent      = errors.New("category cannot be its own ancestor")
	ErrProductNotFound    = errors.New("product not found")
	ErrImageNotFound      = errors.New("product image not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrCommentTarget      = errors.New("comment must reference exactly one review")

	// ErrInvalidReference is wrapped when a payload points at a row that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
	// ErrStillReferenced is returned when a delete is blocked by dependent rows.
	ErrStillReferenced = errors.New("record is still referenced")

	ErrUploadNotConfigured = errors.New("image uploads are not configured")

	// ErrInvalidField is wrapped by every FieldError.
	ErrInvalidField = errors.New("invalid field")
)

// ErrPasswordRequired is returned when neither password field was sent.
var ErrPasswordRequired error = &FieldError{Field: "senha", Message: "obrigatório"}

// FieldError rejects a single input field, named by its JSON key, after the
// service has normalized it.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

// requiredText trims value and rejects it when only whitespace was sent.
func requiredText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &FieldError{Field: field, Message: "obrigatório"}
	}
	return trimmed, nil
}

// checkPasswordLength enforces bcrypt's input limit, which counts bytes, not characters.
func checkPasswordLength(field, secret string) error {
	if len(secret) > util.MaxPasswordBytes {
		return &FieldError{
			Field:   field,
			Message: fmt.Sprintf("deve ter no máximo %d bytes", util.MaxPasswordBytes),
		}
	}
	return nil
}

func invalidReference(entity string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrInvalidReference, entity, id)
}

// notFound maps gorm's miss onto the domain sentinel and passes other errors through.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// requireReference fails with ErrInvalidReference when the row behind id is missing.
func requireReference(exists func(uint) (bool, error), entity string, id uint) error {
	ok, err := exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return invalidReference(entity, id)
	}
	return nil
}

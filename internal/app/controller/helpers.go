package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vitrine/marketplace-backend/internal/app/service"
	apperrors "github.com/vitrine/marketplace-backend/internal/errors"
	"github.com/vitrine/marketplace-backend/internal/middleware"
	"github.com/vitrine/marketplace-backend/internal/storage"
)

type errorMapping struct {
	err     error
	status  int
	code    string
	message string
}

var serviceErrors = []errorMapping{
	{service.ErrUserNotFound, http.StatusNotFound, apperrors.UserNotFound, "Usuário não encontrado"},
	{service.ErrEmailAlreadyExists, http.StatusConflict, apperrors.AuthEmailAlreadyExists, "E-mail já cadastrado"},
	{service.ErrUsernameAlreadyExists, http.StatusConflict, apperrors.AuthUsernameExists, "Nome de usuário já cadastrado"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "E-mail ou senha inválidos"},
	{service.ErrStoreNotFound, http.StatusNotFound, apperrors.StoreNotFound, "Loja não encontrada"},
	{service.ErrCategoryNotFound, http.StatusNotFound, apperrors.CategoryNotFound, "Categoria não encontrada"},
	{service.ErrCategorySlugExists, http.StatusConflict, apperrors.CategorySlugExists, "Já existe uma categoria com este slug"},
	{service.ErrInvalidSlug, http.StatusBadRequest, apperrors.ValidationInvalidInput, "Não foi possível gerar um slug válido"},
	{service.ErrInvalidParent, http.StatusBadRequest, apperrors.CategoryInvalidParent, "Uma categoria não pode ser ancestral de si mesma"},
	{service.ErrProductNotFound, http.StatusNotFound, apperrors.ProductNotFound, "Produto não encontrado"},
	{service.ErrImageNotFound, http.StatusNotFound, apperrors.ImageNotFound, "Imagem não encontrada"},
	{service.ErrReviewNotFound, http.StatusNotFound, apperrors.ReviewNotFound, "Avaliação não encontrada"},
	{service.ErrCommentNotFound, http.StatusNotFound, apperrors.CommentNotFound, "Comentário não encontrado"},
	{service.ErrCommentTarget, http.StatusBadRequest, apperrors.CommentTargetInvalid, "O comentário deve referenciar exatamente uma avaliação"},
	{service.ErrInvalidReference, http.StatusBadRequest, apperrors.ValidationInvalidReference, "Registro referenciado não encontrado"},
	{service.ErrStillReferenced, http.StatusConflict, apperrors.ResourceConflict, "Existem registros vinculados que impedem a exclusão"},
	{service.ErrUploadNotConfigured, http.StatusServiceUnavailable, apperrors.UploadNotConfigured, "Upload de imagens não configurado"},
	{storage.ErrUnsupportedContentType, http.StatusBadRequest, apperrors.UploadInvalidFileType, "Tipo de arquivo não suportado"},
}

// respondError writes the response for a service error. Unknown errors fall
// through to the database error parser.
func respondError(c *gin.Context, err error, context string) {
	log := middleware.GetLoggerFromContext(c)

	var fieldErr *service.FieldError
	if errors.As(err, &fieldErr) {
		log.Warn("Request rejected", map[string]interface{}{
			"context": context,
			"field":   fieldErr.Field,
		})
		apperrors.RespondWithValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
		return
	}

	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			log.Warn("Request rejected", map[string]interface{}{
				"context": context,
				"error":   err.Error(),
			})
			apperrors.RespondWithError(c, m.status, m.code, m.message)
			return
		}
	}

	log.Error("Request failed", err, map[string]interface{}{
		"context": context,
	})
	apperrors.ParseAndRespond(c, err, context)
}

func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Invalid request body", map[string]interface{}{
			"path":  c.FullPath(),
			"error": err.Error(),
		})
		apperrors.RespondWithBindingError(c, err)
		return false
	}
	return true
}

func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		middleware.GetLoggerFromContext(c).Warn("Invalid ID parameter", map[string]interface{}{
			"param": name,
			"value": raw,
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "ID inválido")
		return 0, false
	}
	return uint(id), true
}

// queryID reads an optional numeric filter. Absent yields nil; malformed writes a 400.
func queryID(c *gin.Context, name string) (*uint, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidQuery, "Parâmetro de consulta inválido: "+name)
		return nil, false
	}
	v := uint(id)
	return &v, true
}

func currentUserID(c *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
	}
	return userID, ok
}

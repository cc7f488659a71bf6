package errors

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is the client facing translation of an error.
type ErrorInfo struct {
	Code    string // see codes.go
	Message string
	Status  int
}

// IsDuplicateKey reports a unique constraint violation on PostgreSQL (23505) or SQLite.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// IsDuplicateOn reports a unique violation whose constraint or column mentions column.
func IsDuplicateOn(err error, column string) bool {
	return IsDuplicateKey(err) && strings.Contains(strings.ToLower(err.Error()), strings.ToLower(column))
}

// IsForeignKeyViolation reports a foreign key violation on PostgreSQL (23503) or SQLite.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

// ParseError maps err to a client facing code, message and status without
// leaking driver details. context names the failed operation, e.g. "delete user".
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Erro interno do servidor", Status: http.StatusInternalServerError}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: getNotFoundMessage(context), Status: http.StatusNotFound}
	}

	if IsDuplicateKey(err) {
		return parseDuplicateKeyError(err.Error())
	}

	if IsForeignKeyViolation(err) {
		return parseForeignKeyError(err.Error(), context)
	}

	errLower := strings.ToLower(err.Error())

	if strings.Contains(errLower, "check constraint") {
		if strings.Contains(errLower, "rating") {
			return ErrorInfo{Code: ReviewInvalidRating, Message: "A nota deve estar entre 1 e 5", Status: http.StatusBadRequest}
		}
		return ErrorInfo{Code: ValidationInvalidInput, Message: "Dados de entrada inválidos", Status: http.StatusBadRequest}
	}

	if strings.Contains(errLower, "violates not-null constraint") || strings.Contains(errLower, "not null constraint failed") {
		return ErrorInfo{Code: ValidationRequired, Message: "Campo obrigatório ausente", Status: http.StatusBadRequest}
	}

	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "Falha ao conectar a um serviço externo. Tente novamente mais tarde",
			Status:  http.StatusInternalServerError,
		}
	}

	return ErrorInfo{Code: InternalServerError, Message: getDefaultErrorMessage(context), Status: http.StatusInternalServerError}
}

func parseDuplicateKeyError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	switch {
	case strings.Contains(errLower, "email"):
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "E-mail já cadastrado", Status: http.StatusConflict}
	case strings.Contains(errLower, "username"):
		return ErrorInfo{Code: AuthUsernameExists, Message: "Nome de usuário já cadastrado", Status: http.StatusConflict}
	case strings.Contains(errLower, "slug"):
		return ErrorInfo{Code: CategorySlugExists, Message: "Já existe uma categoria com este slug", Status: http.StatusConflict}
	}

	return ErrorInfo{Code: ResourceAlreadyExists, Message: "Registro já existe", Status: http.StatusConflict}
}

func parseForeignKeyError(errStr string, context string) ErrorInfo {
	errLower := strings.ToLower(errStr)
	contextLower := strings.ToLower(context)

	// Deleting a row that other rows still point to.
	if strings.Contains(errLower, "still referenced") || strings.Contains(errLower, "update or delete") ||
		strings.Contains(contextLower, "delete") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "Existem registros vinculados que impedem a exclusão",
			Status:  http.StatusConflict,
		}
	}

	return ErrorInfo{
		Code:    ValidationInvalidReference,
		Message: "Registro referenciado não encontrado",
		Status:  http.StatusBadRequest,
	}
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "comment"):
		return "Comentário não encontrado"
	case strings.Contains(contextLower, "review"):
		return "Avaliação não encontrada"
	case strings.Contains(contextLower, "image"):
		return "Imagem não encontrada"
	case strings.Contains(contextLower, "product"):
		return "Produto não encontrado"
	case strings.Contains(contextLower, "category"):
		return "Categoria não encontrada"
	case strings.Contains(contextLower, "store"):
		return "Loja não encontrada"
	case strings.Contains(contextLower, "user"):
		return "Usuário não encontrado"
	}

	return "Registro não encontrado"
}

func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "create"):
		return "Erro ao cadastrar. Tente novamente mais tarde"
	case strings.Contains(contextLower, "update"):
		return "Erro ao atualizar. Tente novamente mais tarde"
	case strings.Contains(contextLower, "delete"):
		return "Erro ao excluir. Tente novamente mais tarde"
	}

	return "Erro interno do servidor. Tente novamente mais tarde"
}

// ParseAndRespond parses err and writes the matching error response.
func ParseAndRespond(c interface{ JSON(int, interface{}) }, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(errorInfo.Status, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}

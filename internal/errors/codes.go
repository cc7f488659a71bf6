package errors

// Error codes returned in the "error" field of every error response.
// Format: CATEGORY_SPECIFIC_DETAIL. Clients map messages from these codes.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong email or password
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED" // logged out
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"
	AuthUsernameExists     = "AUTH_USERNAME_EXISTS"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput     = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID        = "VALIDATION_INVALID_ID"
	ValidationInvalidQuery     = "VALIDATION_INVALID_QUERY"
	ValidationInvalidReference = "VALIDATION_INVALID_REFERENCE" // referenced row does not exist
	ValidationRequired         = "VALIDATION_REQUIRED"

	// ==================== Resource (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT" // still referenced by other rows

	// ==================== Domain ====================
	UserNotFound          = "USER_NOT_FOUND"
	StoreNotFound         = "STORE_NOT_FOUND"
	CategoryNotFound      = "CATEGORY_NOT_FOUND"
	CategorySlugExists    = "CATEGORY_SLUG_EXISTS"
	CategoryInvalidParent = "CATEGORY_INVALID_PARENT"
	ProductNotFound       = "PRODUCT_NOT_FOUND"
	ImageNotFound         = "IMAGE_NOT_FOUND"
	ReviewNotFound        = "REVIEW_NOT_FOUND"
	ReviewInvalidRating   = "REVIEW_INVALID_RATING"
	CommentNotFound       = "COMMENT_NOT_FOUND"
	CommentTargetInvalid  = "COMMENT_TARGET_INVALID" // must reference exactly one review

	// ==================== Upload (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadNotConfigured   = "UPLOAD_NOT_CONFIGURED"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)

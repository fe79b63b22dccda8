package apperrors

// ErrorCode identifies a class of application error.
type ErrorCode string

// Cross-cutting, non-domain error codes.
const (
	// System and unknown errors
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Generic business-logic codes
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
)

// Domain codes used by the registration and verification flows.
const (
	CodeUserNotFound          ErrorCode = "USER_NOT_FOUND"
	CodeEmailAlreadyExists    ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotVerified       ErrorCode = "USER_NOT_VERIFIED"
	CodeUserInactive          ErrorCode = "USER_INACTIVE"
	CodeWeakPassword          ErrorCode = "WEAK_PASSWORD"
	CodeInvalidRole           ErrorCode = "INVALID_ROLE"
	CodeProfessionalNotFound  ErrorCode = "PROFESSIONAL_NOT_FOUND"
	CodeProfessionalExists    ErrorCode = "PROFESSIONAL_ALREADY_EXISTS"
	CodeDocumentNotFound      ErrorCode = "DOCUMENT_NOT_FOUND"
	CodeVerifierNotFound      ErrorCode = "VERIFIER_NOT_FOUND"
	CodeAlreadyReviewed       ErrorCode = "ALREADY_REVIEWED"
	CodeInvalidStatusChange   ErrorCode = "INVALID_STATUS_CHANGE"
	CodeTermsNotAccepted      ErrorCode = "TERMS_NOT_ACCEPTED"
	CodePasswordMismatch      ErrorCode = "PASSWORD_MISMATCH"
	CodeMissingRequiredFields ErrorCode = "MISSING_REQUIRED_FIELDS"
)

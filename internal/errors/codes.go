package errors

// ErrorCode is a stable machine readable error identifier returned by the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthTokenRevoked       ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral          ErrorCode = "VALIDATION_001"
	ValidationRequiredField    ErrorCode = "VALIDATION_002"
	ValidationInvalidDate      ErrorCode = "VALIDATION_003"
	ValidationInvalidDateRange ErrorCode = "VALIDATION_004"
	ValidationInvalidID        ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount    ErrorCode = "VALIDATION_006"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound         ErrorCode = "CATEGORY_001"
	CategoryReferenceInvalid ErrorCode = "CATEGORY_002"
	CategoryAlreadyExists    ErrorCode = "CATEGORY_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound    ErrorCode = "TRANSACTION_001"
	TransactionInvalidType ErrorCode = "TRANSACTION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemRouteNotFound      ErrorCode = "SYSTEM_005"
)

var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid username or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthTokenRevoked:       "Authorization token has been revoked",

	ValidationGeneral:          "Validation failed",
	ValidationRequiredField:    "Required field is missing",
	ValidationInvalidDate:      "Invalid date, expected YYYY-MM-DD",
	ValidationInvalidDateRange: "startDate must not be after endDate",
	ValidationInvalidID:        "Invalid identifier format",
	ValidationInvalidAmount:    "Amount must be positive with at most 2 decimal places",

	UserNotFound:      "User not found",
	UserAlreadyExists: "A user with this username already exists",

	CategoryNotFound:         "Category not found",
	CategoryReferenceInvalid: "Referenced category does not exist",
	CategoryAlreadyExists:    "A category with this name already exists",

	TransactionNotFound:    "Transaction not found",
	TransactionInvalidType: "Transaction type must be income or expense",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for code, or a generic one for unknown codes
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

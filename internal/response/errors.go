package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials  ErrCode = "INVALID_CREDENTIALS"
	ErrCredentialsRequired ErrCode = "CREDENTIALS_REQUIRED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrAdminAccessOnly ErrCode = "ADMIN_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrInvalidAction  ErrCode = "INVALID_ACTION"

	// ─── Routing ───────────────────────────────────────────────────────
	ErrMethodNotAllowed ErrCode = "METHOD_NOT_ALLOWED"
	ErrNotFound         ErrCode = "NOT_FOUND"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Invalid credentials"
	case ErrCredentialsRequired:
		return "Username and password required"

	case ErrAdminAccessOnly:
		return "Admin access required"

	case ErrValidation:
		return "Validation failed"
	case ErrInvalidID:
		return "Invalid id"
	case ErrInvalidPayload:
		return "Invalid request payload"
	case ErrInvalidAction:
		return "Invalid action"

	case ErrMethodNotAllowed:
		return "Method not allowed"
	case ErrNotFound:
		return "Not found"

	case ErrInternal:
		return "Internal server error"
	default:
		return "Unexpected error"
	}
}

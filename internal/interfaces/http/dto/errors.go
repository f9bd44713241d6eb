package dto

import "net/http"

// Generic error codes used by the HTTP layer itself
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall back to 500.
var ErrorCodeHTTPStatus = map[string]int{
	// Generic
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeInternal:     http.StatusInternalServerError,

	// Not found
	"CATEGORY_AXIS_NOT_FOUND":      http.StatusNotFound,
	"SEGMENT_NOT_FOUND":            http.StatusNotFound,
	"SEGMENT_ASSIGNMENT_NOT_FOUND": http.StatusNotFound,
	"BANK_NOT_FOUND":               http.StatusNotFound,
	"BRANCH_NOT_FOUND":             http.StatusNotFound,
	"WAREHOUSE_NOT_FOUND":          http.StatusNotFound,
	"PAYEE_BANK_ACCOUNT_NOT_FOUND": http.StatusNotFound,
	"PROJECT_NOT_FOUND":            http.StatusNotFound,
	"EMPLOYEE_NOT_FOUND":           http.StatusNotFound,
	"SHIP_TO_NOT_FOUND":            http.StatusNotFound,
	"TAX_CODE_NOT_FOUND":           http.StatusNotFound,

	// Conflicts: duplicates, version mismatches, state transitions
	"ALREADY_EXISTS":                      http.StatusConflict,
	"CONCURRENCY_CONFLICT":                http.StatusConflict,
	"AXIS_CODE_DUPLICATE":                 http.StatusConflict,
	"SEGMENT_CODE_DUPLICATE":              http.StatusConflict,
	"BANK_CODE_DUPLICATE":                 http.StatusConflict,
	"BRANCH_CODE_DUPLICATE":               http.StatusConflict,
	"WAREHOUSE_CODE_DUPLICATE":            http.StatusConflict,
	"ACCOUNT_NUMBER_DUPLICATE":            http.StatusConflict,
	"PROJECT_CODE_DUPLICATE":              http.StatusConflict,
	"EMPLOYEE_CODE_DUPLICATE":             http.StatusConflict,
	"SHIP_TO_CODE_DUPLICATE":              http.StatusConflict,
	"TAX_CODE_DUPLICATE":                  http.StatusConflict,
	"ALREADY_ACTIVE":                      http.StatusConflict,
	"ALREADY_INACTIVE":                    http.StatusConflict,
	"CANNOT_DEACTIVATE_DEFAULT_RECEIVING": http.StatusConflict,
	"CANNOT_DEACTIVATE_DEFAULT_ACCOUNT":   http.StatusConflict,

	// Business rule violations on otherwise well-formed requests
	"HIERARCHY_NOT_ALLOWED":           http.StatusUnprocessableEntity,
	"HIERARCHY_DEPTH_EXCEEDED":        http.StatusUnprocessableEntity,
	"HIERARCHY_CANNOT_BE_DISABLED":    http.StatusUnprocessableEntity,
	"CIRCULAR_REFERENCE":              http.StatusUnprocessableEntity,
	"PARENT_SEGMENT_NOT_FOUND":        http.StatusUnprocessableEntity,
	"PARENT_SEGMENT_WRONG_AXIS":       http.StatusUnprocessableEntity,
	"ENTITY_KIND_MISMATCH":            http.StatusUnprocessableEntity,
	"SEGMENT_NOT_IN_AXIS":             http.StatusUnprocessableEntity,
	"AXIS_CODE_IMMUTABLE":             http.StatusUnprocessableEntity,
	"TARGET_ENTITY_KIND_IMMUTABLE":    http.StatusUnprocessableEntity,
	"EMPLOYEE_CODE_CANNOT_BE_CHANGED": http.StatusUnprocessableEntity,
	"IMMUTABLE_FIELD":                 http.StatusUnprocessableEntity,
	"INVALID_STATE":                   http.StatusUnprocessableEntity,
	"AXIS_INACTIVE":                   http.StatusUnprocessableEntity,
	"SEGMENT_INACTIVE":                http.StatusUnprocessableEntity,
	"BANK_INACTIVE":                   http.StatusUnprocessableEntity,
	"WAREHOUSE_INACTIVE":              http.StatusUnprocessableEntity,
	"ACCOUNT_INACTIVE":                http.StatusUnprocessableEntity,
	"BRANCH_WRONG_BANK":               http.StatusUnprocessableEntity,

	// Malformed input
	"INVALID_INPUT":          http.StatusBadRequest,
	"INVALID_CODE":           http.StatusBadRequest,
	"INVALID_NAME":           http.StatusBadRequest,
	"INVALID_EMAIL":          http.StatusBadRequest,
	"INVALID_ENTITY_KIND":    http.StatusBadRequest,
	"INVALID_ACCOUNT_TYPE":   http.StatusBadRequest,
	"INVALID_ACCOUNT_NUMBER": http.StatusBadRequest,
	"INVALID_SWIFT_CODE":     http.StatusBadRequest,
	"INVALID_POSTAL_CODE":    http.StatusBadRequest,
	"INVALID_PERIOD":         http.StatusBadRequest,
	"INVALID_RATE":           http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "ASC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields. Unknown or empty fields fall back to the defaultField; the fallback
// (rather than rejection) is the documented contract for list endpoints.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most aggregates
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// CodeNameSortFields extends the common fields with the natural key columns
// shared by most master-data aggregates
var CodeNameSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"status":     true,
}

// WarehouseSortFields contains allowed sort fields for warehouses
var WarehouseSortFields = map[string]bool{
	"id":                   true,
	"created_at":           true,
	"updated_at":           true,
	"code":                 true,
	"name":                 true,
	"status":               true,
	"is_default_receiving": true,
	"sort_order":           true,
}

// PayeeBankAccountSortFields contains allowed sort fields for payee accounts
var PayeeBankAccountSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"account_number": true,
	"account_holder": true,
	"account_type":   true,
	"status":         true,
	"is_default":     true,
}

// CategoryAxisSortFields contains allowed sort fields for classification axes
var CategoryAxisSortFields = map[string]bool{
	"id":                 true,
	"created_at":         true,
	"updated_at":         true,
	"code":               true,
	"name":               true,
	"status":             true,
	"target_entity_kind": true,
	"display_order":      true,
}

// SegmentSortFields contains allowed sort fields for segments
var SegmentSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"code":          true,
	"name":          true,
	"status":        true,
	"level":         true,
	"display_order": true,
}

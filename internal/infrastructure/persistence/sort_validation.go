package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns defaultDir when the input is empty or invalid.
func ValidateSortOrder(orderDir, defaultDir string) string {
	switch strings.ToUpper(strings.TrimSpace(orderDir)) {
	case "ASC":
		return "ASC"
	case "DESC":
		return "DESC"
	default:
		return defaultDir
	}
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
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

// TitleSortFields contains allowed sort fields for titles
var TitleSortFields = map[string]bool{
	"created_at":     true,
	"updated_at":     true,
	"number":         true,
	"due_date":       true,
	"original_value": true,
	"is_paid":        true,
}

// DebtorSortFields contains allowed sort fields for debtors
var DebtorSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"document":   true,
}

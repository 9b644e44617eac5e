package services

import (
	"conference-management-api/models"

	"gorm.io/gorm"
)

// Caller is the identity extracted from a verified bearer token. The role is
// treated as an already-verified claim; no operation re-derives it from storage.
type Caller struct {
	UserID int
	Role   string
}

// IsAdmin reports whether the caller carries the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// CanAdministrate gates the administrative mutations: verify, assign reviewer,
// set submission status.
func CanAdministrate(caller Caller) bool {
	return caller.IsAdmin()
}

// ScopeToOwner narrows a listing query to rows the caller owns. Admins see
// everything; listings are filtered, never rejected wholesale. Single-record
// ownership (document acceptance) is enforced the same way, by scoping the
// lookup to (id, user_id) rather than checking ownership after fetch.
func ScopeToOwner(query *gorm.DB, caller Caller) *gorm.DB {
	if caller.IsAdmin() {
		return query
	}
	return query.Where("user_id = ?", caller.UserID)
}

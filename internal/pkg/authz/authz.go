// Package authz holds the access-control gate: a pure predicate over the
// authenticated principal. It only returns decisions; callers translate a
// false into their Forbidden error.
package authz

import "vehiclerental/internal/domain"

// Principal is the authenticated actor performing a request.
type Principal struct {
	ID   int64
	Role domain.UserRole
}

// CanAccess allows the request when the principal holds one of the required
// roles, or when it is the owner of the target resource. Pass ownerID 0 for
// role-only checks.
func CanAccess(p Principal, ownerID int64, roles ...domain.UserRole) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return ownerID != 0 && p.ID == ownerID
}

// IsAdmin is the "admin only" policy.
func IsAdmin(p Principal) bool {
	return CanAccess(p, 0, domain.RoleAdmin)
}

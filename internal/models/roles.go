package models

// Role is the closed set of roles a user can hold. There is no hierarchy:
// admin checks are explicit at each call site.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole maps a stored or token-carried role name back to the enumeration.
func ParseRole(name string) (Role, bool) {
	switch Role(name) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

// RoleRecord is the persisted row backing a Role. The two rows are seeded by
// migration and are immutable afterwards.
type RoleRecord struct {
	ID   int64 `json:"id"`
	Name Role  `json:"name"`
}

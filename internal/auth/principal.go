package auth

import "github.com/bloghub/bloghub-be/internal/models"

// Principal is the authenticated identity for the duration of one request or
// token issuance. It is never persisted. Equality is by ID only.
type Principal struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         models.Role
}

// Equal compares principals by identity, not by field contents.
func (p Principal) Equal(other Principal) bool {
	return p.ID == other.ID
}

// IsAdmin is a convenience for the most common role check.
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// PrincipalFromUser derives the request-scoped principal from a stored user.
func PrincipalFromUser(u models.User) Principal {
	return Principal{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}
}

package auth

import "github.com/bloghub/bloghub-be/internal/models"

// CanModify reports whether the actor may mutate a resource owned by ownerID.
// Admins may modify anything; everyone else only their own resources.
func CanModify(actor Principal, ownerID int64) bool {
	return actor.Role == models.RoleAdmin || actor.ID == ownerID
}

// RequiresRole reports whether the actor holds exactly the given role. Admin
// does not implicitly satisfy other roles; call sites wire the checks they
// actually need.
func RequiresRole(actor Principal, role models.Role) bool {
	return actor.Role == role
}

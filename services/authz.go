package services

import "github.com/rochiyat/mutabaah-app/models"

// Pure access predicates. Composition stays hand-enumerated at each call
// site: group read = admin OR member OR superadmin, group mutation =
// admin OR superadmin, membership and group-activity mutation = admin only,
// activity/record mutation = owner only.

func IsSuperadmin(role string) bool {
	return role == models.RoleSuperadmin
}

// IsOwner reports whether userID owns a resource whose owner column is
// nullable (group-level activities have no personal owner).
func IsOwner(userID uint, ownerID *uint) bool {
	return ownerID != nil && *ownerID == userID
}

func IsGroupAdmin(userID uint, group *models.Group) bool {
	return group.AdminID == userID
}

func IsGroupMember(userID uint, group *models.Group) bool {
	for _, m := range group.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// CanViewGroup gates every group read. Callers that fail it get NotFound,
// not Forbidden.
func CanViewGroup(userID uint, role string, group *models.Group) bool {
	return IsGroupAdmin(userID, group) || IsGroupMember(userID, group) || IsSuperadmin(role)
}

package auth

import (
	"github.com/google/uuid"

	"artisthub/internal/model"
)

// Permission strings follow the domain:verb convention.
const (
	PermArtistView   = "artist:view"
	PermArtistEdit   = "artist:edit"
	PermArtistDelete = "artist:delete"

	PermMarketingView   = "marketing:view"
	PermMarketingCreate = "marketing:create"
	PermMarketingEdit   = "marketing:edit"
	PermMarketingDelete = "marketing:delete"

	PermTourView   = "tour:view"
	PermTourCreate = "tour:create"
	PermTourEdit   = "tour:edit"
	PermTourDelete = "tour:delete"

	PermAlbumView   = "album:view"
	PermAlbumCreate = "album:create"
	PermAlbumEdit   = "album:edit"
	PermAlbumDelete = "album:delete"

	PermFinancialView    = "financial:view"
	PermFinancialCreate  = "financial:create"
	PermFinancialEdit    = "financial:edit"
	PermFinancialDelete  = "financial:delete"
	PermFinancialApprove = "financial:approve"

	PermPressView   = "press:view"
	PermPressCreate = "press:create"
	PermPressEdit   = "press:edit"
	PermPressDelete = "press:delete"

	PermTeamView          = "team:view"
	PermTeamInvite        = "team:invite"
	PermTeamEditRoles     = "team:edit_roles"
	PermTeamRemoveMembers = "team:remove_members"

	// PermAdminAll is the wildcard: it satisfies any permission check.
	PermAdminAll = "admin:all"
)

// RolePermissions returns the static permission set for a role. The switch is
// exhaustive over the role enum so new roles fail loudly instead of silently
// granting nothing at runtime.
func RolePermissions(role model.Role) []string {
	switch role {
	case model.RoleArtist:
		return []string{
			PermArtistView, PermArtistEdit,
			PermMarketingView, PermTourView, PermAlbumView, PermFinancialView, PermPressView,
			PermTeamView, PermTeamInvite, PermTeamEditRoles, PermTeamRemoveMembers,
		}
	case model.RoleMarketingManager:
		return []string{
			PermArtistView,
			PermMarketingView, PermMarketingCreate, PermMarketingEdit, PermMarketingDelete,
			PermPressView, PermTeamView,
		}
	case model.RoleTourManager:
		return []string{
			PermArtistView,
			PermTourView, PermTourCreate, PermTourEdit, PermTourDelete,
			PermFinancialView, PermTeamView,
		}
	case model.RoleAlbumManager:
		return []string{
			PermArtistView,
			PermAlbumView, PermAlbumCreate, PermAlbumEdit, PermAlbumDelete,
			PermFinancialView, PermTeamView,
		}
	case model.RoleFinancialManager:
		return []string{
			PermArtistView,
			PermFinancialView, PermFinancialCreate, PermFinancialEdit, PermFinancialDelete, PermFinancialApprove,
			PermTeamView,
		}
	case model.RolePressOfficer:
		return []string{
			PermArtistView,
			PermPressView, PermPressCreate, PermPressEdit, PermPressDelete,
			PermMarketingView, PermTeamView,
		}
	case model.RoleAdmin:
		return []string{PermAdminAll}
	default:
		return nil
	}
}

// HasPermission decides whether a membership list grants a permission.
//
// With a zero artist scope the check is global: any membership whose role
// grants the permission, holds the admin wildcard, or carries a matching
// custom permission key is enough. With a scope set, only the membership for
// that exact artist is consulted; no matching membership means deny, even if
// another membership would grant the permission elsewhere.
//
// The resolver never fails: every unmatched condition resolves to false.
func HasPermission(memberships []model.TeamMembership, permission string, artistID uuid.UUID) bool {
	if artistID == uuid.Nil {
		for _, m := range memberships {
			if membershipGrants(m, permission) {
				return true
			}
		}
		return false
	}

	for _, m := range memberships {
		if m.ArtistID == artistID {
			return membershipGrants(m, permission)
		}
	}
	return false
}

func membershipGrants(m model.TeamMembership, permission string) bool {
	for _, p := range RolePermissions(m.Role) {
		if p == permission || p == PermAdminAll {
			return true
		}
	}
	_, custom := m.Permissions[permission]
	return custom
}

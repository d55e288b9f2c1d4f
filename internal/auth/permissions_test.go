package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"artisthub/internal/model"
)

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role     model.Role
		contains []string
		excludes []string
	}{
		{
			role:     model.RoleArtist,
			contains: []string{PermArtistView, PermArtistEdit, PermMarketingView, PermFinancialView},
			excludes: []string{PermMarketingCreate, PermFinancialApprove, PermAdminAll},
		},
		{
			role:     model.RoleMarketingManager,
			contains: []string{PermArtistView, PermMarketingView, PermMarketingCreate, PermMarketingEdit, PermMarketingDelete, PermPressView, PermTeamView},
			excludes: []string{PermFinancialView, PermTourCreate, PermAdminAll},
		},
		{
			role:     model.RoleFinancialManager,
			contains: []string{PermFinancialView, PermFinancialCreate, PermFinancialEdit, PermFinancialApprove},
			excludes: []string{PermMarketingCreate, PermAdminAll},
		},
		{
			role:     model.RoleAdmin,
			contains: []string{PermAdminAll},
			excludes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			perms := RolePermissions(tt.role)
			for _, p := range tt.contains {
				assert.Contains(t, perms, p)
			}
			for _, p := range tt.excludes {
				assert.NotContains(t, perms, p)
			}
		})
	}
}

func TestHasPermission_GlobalScope(t *testing.T) {
	artistA := uuid.New()
	memberships := []model.TeamMembership{
		{ArtistID: artistA, Role: model.RoleMarketingManager},
	}

	assert.True(t, HasPermission(memberships, PermMarketingCreate, uuid.Nil))
	assert.False(t, HasPermission(memberships, PermFinancialView, uuid.Nil))
	assert.False(t, HasPermission(nil, PermMarketingView, uuid.Nil))
}

// A permission held for one artist must not leak to another artist, even when
// the caller has a membership on both.
func TestHasPermission_ScopeIsStrict(t *testing.T) {
	artistA := uuid.New()
	artistB := uuid.New()
	artistC := uuid.New()

	memberships := []model.TeamMembership{
		{ArtistID: artistA, Role: model.RoleMarketingManager},
		{ArtistID: artistB, Role: model.RoleFinancialManager},
	}

	assert.True(t, HasPermission(memberships, PermMarketingCreate, artistA))
	assert.False(t, HasPermission(memberships, PermMarketingCreate, artistB))
	assert.True(t, HasPermission(memberships, PermFinancialView, artistB))
	assert.False(t, HasPermission(memberships, PermFinancialView, artistA))
	assert.False(t, HasPermission(memberships, PermMarketingView, artistC))
}

func TestHasPermission_AdminWildcard(t *testing.T) {
	artistA := uuid.New()
	memberships := []model.TeamMembership{
		{ArtistID: artistA, Role: model.RoleAdmin},
	}

	assert.True(t, HasPermission(memberships, PermFinancialApprove, artistA))
	assert.True(t, HasPermission(memberships, PermTeamRemoveMembers, uuid.Nil))
}

func TestHasPermission_CustomOverrides(t *testing.T) {
	artistA := uuid.New()
	memberships := []model.TeamMembership{
		{
			ArtistID:    artistA,
			Role:        model.RoleMarketingManager,
			Permissions: model.JSONMap{PermFinancialView: true},
		},
	}

	assert.True(t, HasPermission(memberships, PermFinancialView, artistA))
	assert.False(t, HasPermission(memberships, PermFinancialApprove, artistA))
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfessional_SpecializationsRoundTrip(t *testing.T) {
	t.Parallel()

	var p Professional
	assert.Empty(t, p.GetSpecializations())

	p.SetSpecializations([]string{"sapphire", "emerald"})
	assert.Equal(t, []string{"sapphire", "emerald"}, p.GetSpecializations())

	p.SetSpecializations(nil)
	assert.Empty(t, p.GetSpecializations())
}

func TestProfessional_SocialLinksRoundTrip(t *testing.T) {
	t.Parallel()

	var p Professional
	assert.Empty(t, p.GetSocialLinks())

	p.SetSocialLinks(map[string]string{"instagram": "https://instagram.com/gems"})
	assert.Equal(t, "https://instagram.com/gems", p.GetSocialLinks()["instagram"])
}

func TestVerificationDocument_MarkVerified(t *testing.T) {
	t.Parallel()

	var doc VerificationDocument
	assert.False(t, doc.Reviewed())

	now := time.Now()
	doc.MarkVerified("reviewer-1", now, "looks legitimate")

	assert.True(t, doc.Reviewed())
	assert.True(t, doc.IsVerified)
	require.NotNil(t, doc.VerifiedBy)
	assert.Equal(t, "reviewer-1", *doc.VerifiedBy)
	require.NotNil(t, doc.VerifiedAt)
	assert.Equal(t, now, *doc.VerifiedAt)
	assert.Equal(t, "looks legitimate", doc.VerificationNotes)
}

func TestVerificationDocument_MarkVerifiedKeepsExistingNotes(t *testing.T) {
	t.Parallel()

	doc := VerificationDocument{VerificationNotes: "uploaded by owner"}
	doc.MarkVerified("reviewer-1", time.Now(), "")

	assert.Equal(t, "uploaded by owner", doc.VerificationNotes)
}

func TestUser_HasRole(t *testing.T) {
	t.Parallel()

	user := User{Roles: []Role{{Name: RoleDealer}, {Name: RoleCustomer}}}

	assert.True(t, user.HasRole(RoleDealer))
	assert.False(t, user.HasRole(RoleAdmin))
}

func TestRole_HasPermission(t *testing.T) {
	t.Parallel()

	role := Role{Permissions: []Permission{{Name: "marketplace:read"}}}

	assert.True(t, role.HasPermission("marketplace:read"))
	assert.False(t, role.HasPermission("system:admin"))
}

func TestValidVerificationStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidVerificationStatus(VerificationStatusPending))
	assert.True(t, ValidVerificationStatus(VerificationStatusVerified))
	assert.True(t, ValidVerificationStatus(VerificationStatusRejected))
	assert.False(t, ValidVerificationStatus(VerificationStatus("maybe")))
}

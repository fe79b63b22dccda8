package database

import (
	"testing"

	"gemmarket_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(order []string, table string) int {
	for i, t := range order {
		if t == table {
			return i
		}
	}
	return -1
}

func TestDropOrder_ContainsEveryTable(t *testing.T) {
	t.Parallel()

	order := DropOrder()

	expected := []string{
		"verification_documents",
		"professional_professional_types",
		"professional_types",
		"professionals",
		"role_permissions",
		"user_roles",
		"permissions",
		"roles",
		"refresh_tokens",
		"users",
	}
	assert.ElementsMatch(t, expected, order)
}

// Children must come before the tables they reference or the drops fail
// on foreign key constraints.
func TestDropOrder_ChildrenBeforeParents(t *testing.T) {
	t.Parallel()

	order := DropOrder()

	dependencies := map[string][]string{
		"verification_documents":          {"professionals", "users"},
		"professional_professional_types": {"professionals", "professional_types"},
		"professionals":                   {"users"},
		"role_permissions":                {"roles", "permissions"},
		"user_roles":                      {"users", "roles"},
		"refresh_tokens":                  {"users"},
	}

	for child, parents := range dependencies {
		childIdx := indexOf(order, child)
		require.GreaterOrEqual(t, childIdx, 0, "table %s missing from drop order", child)
		for _, parent := range parents {
			parentIdx := indexOf(order, parent)
			require.GreaterOrEqual(t, parentIdx, 0, "table %s missing from drop order", parent)
			assert.Less(t, childIdx, parentIdx,
				"%s must drop before %s", child, parent)
		}
	}
}

func TestDropOrder_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := DropOrder()
	first[0] = "mutated"

	assert.Equal(t, "verification_documents", DropOrder()[0])
}

func TestRolePermissionNames(t *testing.T) {
	t.Parallel()

	// Every seeded role carries at least marketplace read access.
	for _, role := range models.AllRoleNames {
		assert.Contains(t, RolePermissionNames(role), "marketplace:read", "role %s", role)
	}

	assert.Contains(t, RolePermissionNames(models.RoleAdmin), "system:admin")
	assert.Contains(t, RolePermissionNames(models.RoleAppraiser), "documents:review")
	assert.NotContains(t, RolePermissionNames(models.RoleCustomer), "professionals:write:self")

	assert.Empty(t, RolePermissionNames(models.RoleName("unknown")))
}

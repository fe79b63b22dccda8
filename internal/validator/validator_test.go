package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDTO struct {
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"omitempty,is-role-name"`
	Type   string `json:"professional_type" validate:"omitempty,is-professional-type"`
	Status string `json:"status" validate:"omitempty,is-verification-status"`
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&testDTO{
		Email:  "dealer@test.com",
		Role:   "dealer",
		Type:   "cutter",
		Status: "pending",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&testDTO{Email: "not-an-email"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_CustomRules(t *testing.T) {
	t.Parallel()

	v := New()

	cases := []struct {
		name    string
		dto     testDTO
		field   string
		message string
	}{
		{
			name:    "unknown role",
			dto:     testDTO{Email: "a@b.com", Role: "wizard"},
			field:   "role",
			message: "Must be a valid role",
		},
		{
			name:    "unknown professional type",
			dto:     testDTO{Email: "a@b.com", Type: "blacksmith"},
			field:   "professional_type",
			message: "Must be a valid professional type",
		},
		{
			name:    "unknown verification status",
			dto:     testDTO{Email: "a@b.com", Status: "maybe"},
			field:   "status",
			message: "Must be a valid verification status",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.dto)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.message, vErr.Errors[tc.field])
		})
	}
}

// Empty values pass the domain rules so that 'required' stays the only
// source of missing-field errors.
func TestValidate_EmptyPassesCustomRules(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&testDTO{Email: "a@b.com"})
	assert.NoError(t, err)
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	vErr := &ValidationError{Errors: map[string]string{"email": "This field is required"}}
	assert.Contains(t, vErr.Error(), "field 'email': This field is required")
}

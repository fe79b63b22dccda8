package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Parallel()

	plain := New(CodeUserNotFound, "user", "User not found", http.StatusNotFound)
	assert.Equal(t, "[user:USER_NOT_FOUND] User not found", plain.Error())

	cause := errors.New("sql: no rows")
	wrapped := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
	assert.Contains(t, wrapped.Error(), "sql: no rows")
	assert.ErrorIs(t, wrapped, cause)
}

func TestAppError_MarshalJSON_HidesInternals(t *testing.T) {
	t.Parallel()

	appErr := Wrap(errors.New("secret detail"), CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, "INVALID_CREDENTIALS", payload["code"])
	assert.Equal(t, "Invalid email or password", payload["message"])
	assert.NotContains(t, string(raw), "secret detail")
	assert.NotContains(t, string(raw), "401")
}

func TestValidationError_CarriesDetails(t *testing.T) {
	t.Parallel()

	details := map[string]string{"email": "This field is required"}
	appErr := ValidationError(details)

	assert.Equal(t, CodeValidationFailed, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, details, appErr.Details)
}

func TestAs_FindsAppError(t *testing.T) {
	t.Parallel()

	var appErr *AppError
	require.True(t, As(ErrProfessionalNotFound, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)

	assert.False(t, As(errors.New("plain"), &appErr))
}

func TestPredefinedErrors_HTTPCodes(t *testing.T) {
	t.Parallel()

	cases := map[*AppError]int{
		ErrInvalidCredentials:        http.StatusUnauthorized,
		ErrUserNotVerified:           http.StatusForbidden,
		ErrEmailAlreadyExists:        http.StatusConflict,
		ErrProfessionalAlreadyExists: http.StatusConflict,
		ErrInvalidStatusChange:       http.StatusConflict,
		ErrVerifierNotFound:          http.StatusUnprocessableEntity,
		ErrAlreadyReviewed:           http.StatusConflict,
		ErrDocumentNotFound:          http.StatusNotFound,
	}
	for appErr, want := range cases {
		assert.Equal(t, want, appErr.HTTPCode, appErr.Message)
	}
}

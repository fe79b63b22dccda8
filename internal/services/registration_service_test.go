package services

import (
	"testing"

	"gemmarket_backend/internal/services/dto"
	"gemmarket_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistrationRequest() *dto.ProfessionalRegistrationRequest {
	return &dto.ProfessionalRegistrationRequest{
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Email:            "ada@gems.io",
		Password:         "super_password123",
		ConfirmPassword:  "super_password123",
		BusinessName:     "Lovelace Gems",
		Role:             "dealer",
		HasAcceptedTerms: true,
	}
}

// Gate failures never reach persistence, so the repositories can stay
// nil: a touched repo would panic the test.
func gateOnlyService() RegistrationService {
	return NewRegistrationService(nil, nil, nil, nil)
}

func requireStepError(t *testing.T, err error, step int, message string) {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.IsType(t, dto.RegistrationStepError{}, appErr.Details)
	stepErr := appErr.Details.(dto.RegistrationStepError)
	assert.Equal(t, step, stepErr.Step)
	assert.Equal(t, message, stepErr.Message)
}

func TestRegisterProfessional_PasswordMismatchStopsOnStepOne(t *testing.T) {
	t.Parallel()

	req := validRegistrationRequest()
	req.ConfirmPassword = "different"

	result, err := gateOnlyService().RegisterProfessional(nil, req)

	assert.Nil(t, result)
	requireStepError(t, err, 1, "Passwords do not match")
}

func TestRegisterProfessional_MissingBasicInfoStopsOnStepOne(t *testing.T) {
	t.Parallel()

	req := validRegistrationRequest()
	req.Email = ""

	result, err := gateOnlyService().RegisterProfessional(nil, req)

	assert.Nil(t, result)
	requireStepError(t, err, 1, "Please fill in all required fields")
}

func TestRegisterProfessional_MissingBusinessInfoStopsOnStepTwo(t *testing.T) {
	t.Parallel()

	req := validRegistrationRequest()
	req.BusinessName = ""

	result, err := gateOnlyService().RegisterProfessional(nil, req)

	assert.Nil(t, result)
	requireStepError(t, err, 2, "Please provide your business name and role")
}

func TestRegisterProfessional_TermsNotAcceptedStopsOnStepThree(t *testing.T) {
	t.Parallel()

	req := validRegistrationRequest()
	req.HasAcceptedTerms = false

	result, err := gateOnlyService().RegisterProfessional(nil, req)

	assert.Nil(t, result)
	requireStepError(t, err, 3, "You must accept the terms and conditions to proceed")
}

func TestParseYearsOfExperience(t *testing.T) {
	t.Parallel()

	years, err := parseYearsOfExperience("")
	require.NoError(t, err)
	assert.Nil(t, years)

	years, err = parseYearsOfExperience("12")
	require.NoError(t, err)
	require.NotNil(t, years)
	assert.Equal(t, 12, *years)

	years, err = parseYearsOfExperience("0")
	require.NoError(t, err)
	require.NotNil(t, years)
	assert.Equal(t, 0, *years)

	_, err = parseYearsOfExperience("twelve")
	assert.Error(t, err)

	_, err = parseYearsOfExperience("-3")
	assert.Error(t, err)
}

package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubmitter records submissions and can be told to fail.
type fakeSubmitter struct {
	calls int
	err   error
	last  *FormData
}

func (s *fakeSubmitter) CreateProfessionalAccount(_ context.Context, data *FormData) error {
	s.calls++
	s.last = data
	return s.err
}

func validStep1(f *Form) {
	f.Data.FirstName = "Ada"
	f.Data.LastName = "Lovelace"
	f.Data.Email = "ada@x.com"
	f.Data.Password = "p1"
	f.Data.ConfirmPassword = "p1"
}

func validStep2(f *Form) {
	f.Data.BusinessName = "Ada Gems"
	f.Data.Role = "dealer"
}

func advanceToVerification(t *testing.T, f *Form) {
	t.Helper()
	validStep1(f)
	require.True(t, f.GoToNextStep())
	validStep2(f)
	require.True(t, f.GoToNextStep())
	require.Equal(t, StepVerification, f.Step())
}

func TestGoToNextStep_ValidBasicInfo(t *testing.T) {
	f := NewForm()
	validStep1(f)

	ok := f.GoToNextStep()

	assert.True(t, ok)
	assert.Equal(t, StepProfessionalInfo, f.Step())
	assert.Equal(t, "", f.Error())
}

func TestGoToNextStep_PasswordMismatch(t *testing.T) {
	f := NewForm()
	validStep1(f)
	f.Data.ConfirmPassword = "p2"

	ok := f.GoToNextStep()

	assert.False(t, ok)
	assert.Equal(t, StepBasicInfo, f.Step())
	assert.Equal(t, "Passwords do not match", f.Error())
}

func TestGoToNextStep_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Form)
	}{
		{"first name", func(f *Form) { f.Data.FirstName = "" }},
		{"last name", func(f *Form) { f.Data.LastName = "" }},
		{"email", func(f *Form) { f.Data.Email = "" }},
		{"password", func(f *Form) { f.Data.Password = "" }},
		{"confirmation", func(f *Form) { f.Data.ConfirmPassword = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewForm()
			validStep1(f)
			tc.mutate(f)

			assert.False(t, f.GoToNextStep())
			assert.Equal(t, StepBasicInfo, f.Step())
			assert.NotEmpty(t, f.Error())
		})
	}
}

// Whitespace-only input passes the untrimmed required check.
func TestGoToNextStep_WhitespaceOnlyPasses(t *testing.T) {
	f := NewForm()
	validStep1(f)
	f.Data.FirstName = "   "

	assert.True(t, f.GoToNextStep())
	assert.Equal(t, StepProfessionalInfo, f.Step())
}

func TestGoToNextStep_ProfessionalInfoGate(t *testing.T) {
	f := NewForm()
	validStep1(f)
	require.True(t, f.GoToNextStep())

	// Missing business name blocks
	f.Data.Role = "cutter"
	assert.False(t, f.GoToNextStep())
	assert.Equal(t, StepProfessionalInfo, f.Step())
	assert.NotEmpty(t, f.Error())

	// Missing role blocks
	f.Data.BusinessName = "Cut Co"
	f.Data.Role = ""
	assert.False(t, f.GoToNextStep())
	assert.Equal(t, StepProfessionalInfo, f.Step())

	// Both present advances and clears the error
	f.Data.Role = "cutter"
	assert.True(t, f.GoToNextStep())
	assert.Equal(t, StepVerification, f.Step())
	assert.Equal(t, "", f.Error())
}

func TestGoToPreviousStep_KeepsData(t *testing.T) {
	f := NewForm()
	validStep1(f)
	require.True(t, f.GoToNextStep())

	f.GoToPreviousStep()

	assert.Equal(t, StepBasicInfo, f.Step())
	assert.Equal(t, "Ada", f.Data.FirstName)
	assert.Equal(t, "Lovelace", f.Data.LastName)
	assert.Equal(t, "ada@x.com", f.Data.Email)
	assert.Equal(t, "p1", f.Data.Password)
	assert.Equal(t, "p1", f.Data.ConfirmPassword)
}

func TestGoToPreviousStep_UnconditionalAndBounded(t *testing.T) {
	f := NewForm()

	// Backward from the first step stays on the first step
	f.GoToPreviousStep()
	assert.Equal(t, StepBasicInfo, f.Step())

	// Backward never validates: empty step-2 data does not block
	validStep1(f)
	require.True(t, f.GoToNextStep())
	f.GoToPreviousStep()
	assert.Equal(t, StepBasicInfo, f.Step())
}

func TestSubmit_TermsNotAccepted(t *testing.T) {
	f := NewForm()
	advanceToVerification(t, f)
	sub := &fakeSubmitter{}

	err := f.Submit(context.Background(), sub)

	assert.ErrorIs(t, err, ErrTermsNotAccepted)
	assert.Equal(t, "You must accept the terms and conditions to proceed", f.Error())
	assert.False(t, f.Submitted())
	assert.Zero(t, sub.calls)
}

func TestSubmit_Success(t *testing.T) {
	f := NewForm()
	advanceToVerification(t, f)
	f.Data.HasAcceptedTerms = true
	f.Data.YearsOfExperience = "" // unspecified, not zero
	sub := &fakeSubmitter{}

	err := f.Submit(context.Background(), sub)

	require.NoError(t, err)
	assert.True(t, f.Submitted())
	assert.Equal(t, "", f.Error())
	assert.Equal(t, 1, sub.calls)
	require.NotNil(t, sub.last)
	assert.Equal(t, "ada@x.com", sub.last.Email)
	assert.Equal(t, "", sub.last.YearsOfExperience)
}

func TestSubmit_CollaboratorFailureIsRetryable(t *testing.T) {
	f := NewForm()
	advanceToVerification(t, f)
	f.Data.HasAcceptedTerms = true
	sub := &fakeSubmitter{err: errors.New("db down")}

	err := f.Submit(context.Background(), sub)

	assert.Error(t, err)
	assert.False(t, f.Submitted())
	assert.Equal(t, MsgSubmitFailed, f.Error())
	assert.Equal(t, StepVerification, f.Step())

	// Second attempt succeeds once the collaborator recovers
	sub.err = nil
	require.NoError(t, f.Submit(context.Background(), sub))
	assert.True(t, f.Submitted())
	assert.Equal(t, 2, sub.calls)
}

func TestSubmit_BeforeFinalStep(t *testing.T) {
	f := NewForm()
	validStep1(f)
	require.True(t, f.GoToNextStep())

	err := f.Submit(context.Background(), &fakeSubmitter{})

	assert.ErrorIs(t, err, ErrNotOnFinalStep)
	assert.False(t, f.Submitted())
}

// reentrantSubmitter tries to submit again from inside the first call.
type reentrantSubmitter struct {
	form *Form
	err  error
}

func (s *reentrantSubmitter) CreateProfessionalAccount(ctx context.Context, _ *FormData) error {
	s.err = s.form.Submit(ctx, s)
	return nil
}

func TestSubmit_SingleFlightGuard(t *testing.T) {
	f := NewForm()
	advanceToVerification(t, f)
	f.Data.HasAcceptedTerms = true
	sub := &reentrantSubmitter{form: f}

	require.NoError(t, f.Submit(context.Background(), sub))
	assert.ErrorIs(t, sub.err, ErrSubmitInFlight)
}

func TestFailedTransitionOverwritesError(t *testing.T) {
	f := NewForm()

	// First failure: missing fields
	assert.False(t, f.GoToNextStep())
	assert.Equal(t, MsgMissingFields, f.Error())

	// Second failure: mismatch replaces the prior message
	validStep1(f)
	f.Data.ConfirmPassword = "other"
	assert.False(t, f.GoToNextStep())
	assert.Equal(t, MsgPasswordMismatch, f.Error())
}

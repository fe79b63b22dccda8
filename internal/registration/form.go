package registration

import (
	"context"
	"errors"
)

// Step identifies a page of the registration flow.
type Step int

const (
	StepBasicInfo        Step = 1
	StepProfessionalInfo Step = 2
	StepVerification     Step = 3
)

// User-facing messages set by failed transitions. Exactly one is visible
// at a time; a successful forward transition clears it.
const (
	MsgMissingFields    = "Please fill in all required fields"
	MsgPasswordMismatch = "Passwords do not match"
	MsgMissingBusiness  = "Please provide your business name and role"
	MsgTermsNotAccepted = "You must accept the terms and conditions to proceed"
	MsgSubmitFailed     = "Registration failed. Please try again."
)

var (
	ErrTermsNotAccepted = errors.New("terms not accepted")
	ErrSubmitInFlight   = errors.New("submission already in progress")
	ErrNotOnFinalStep   = errors.New("submission attempted before final step")
)

// FormData is the accumulated input across all steps. Field values
// persist across step changes in both directions.
type FormData struct {
	// Step 1: basic info
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string

	// Step 2: professional info
	BusinessName        string
	Role                string // professional type name
	BusinessDescription string
	YearsOfExperience   string // empty means unspecified, never zero
	Specializations     []string
	Website             string

	// Step 3: verification
	HasAcceptedTerms bool
}

// Submitter receives the accumulated data on final submission. The form
// itself never talks to persistence directly.
type Submitter interface {
	CreateProfessionalAccount(ctx context.Context, data *FormData) error
}

// Form drives the ordered three-step registration flow. It is owned by a
// single caller and reacts to discrete events; no internal locking.
type Form struct {
	Data FormData

	step       Step
	errMsg     string
	submitting bool
	submitted  bool
}

// NewForm starts a flow at the basic-info step.
func NewForm() *Form {
	return &Form{step: StepBasicInfo}
}

// Step returns the current step.
func (f *Form) Step() Step {
	return f.step
}

// Error returns the currently displayed error message, if any.
func (f *Form) Error() string {
	return f.errMsg
}

// Submitted reports whether the flow reached the terminal state.
func (f *Form) Submitted() bool {
	return f.submitted
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	return f.submitting
}

// GoToNextStep validates the current step and advances on success,
// clearing any displayed error. On failure the step is unchanged and
// exactly one error message is set, replacing any prior one.
func (f *Form) GoToNextStep() bool {
	switch f.step {
	case StepBasicInfo:
		if msg := f.validateBasicInfo(); msg != "" {
			f.errMsg = msg
			return false
		}
		f.step = StepProfessionalInfo
	case StepProfessionalInfo:
		if msg := f.validateProfessionalInfo(); msg != "" {
			f.errMsg = msg
			return false
		}
		f.step = StepVerification
	default:
		// Step 3 advances through Submit, not here
		return false
	}

	f.errMsg = ""
	return true
}

// GoToPreviousStep moves back unconditionally. No validation runs and no
// entered data is lost.
func (f *Form) GoToPreviousStep() {
	if f.step > StepBasicInfo {
		f.step--
	}
}

// Submit attempts the final transition to the submitted state. It gates
// on terms acceptance, hands the data to the submitter, and on failure
// leaves the form on the verification step, resubmittable. A submission
// already in flight blocks re-entry.
func (f *Form) Submit(ctx context.Context, s Submitter) error {
	if f.submitting {
		return ErrSubmitInFlight
	}
	if f.step != StepVerification {
		return ErrNotOnFinalStep
	}
	if !f.Data.HasAcceptedTerms {
		f.errMsg = MsgTermsNotAccepted
		return ErrTermsNotAccepted
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	if err := s.CreateProfessionalAccount(ctx, &f.Data); err != nil {
		f.errMsg = MsgSubmitFailed
		return err
	}

	f.submitted = true
	f.errMsg = ""
	return nil
}

// Required-field checks compare against the empty string without
// trimming, so whitespace-only input passes. Existing clients depend on
// the untrimmed check.
func (f *Form) validateBasicInfo() string {
	d := &f.Data
	if d.FirstName == "" || d.LastName == "" || d.Email == "" ||
		d.Password == "" || d.ConfirmPassword == "" {
		return MsgMissingFields
	}
	if d.Password != d.ConfirmPassword {
		return MsgPasswordMismatch
	}
	return ""
}

func (f *Form) validateProfessionalInfo() string {
	d := &f.Data
	if d.BusinessName == "" || d.Role == "" {
		return MsgMissingBusiness
	}
	return ""
}

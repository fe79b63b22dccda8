package email

// Message is a single outgoing email.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Provider sends transactional email.
type Provider interface {
	Send(msg *Message) error

	// SendVerification sends the account verification link.
	SendVerification(to string, token string) error

	// SendPasswordReset sends the password reset link.
	SendPasswordReset(to string, token string) error

	// SendVerificationDecision notifies a professional about the outcome
	// of their profile review.
	SendVerificationDecision(to string, approved bool, notes string) error
}

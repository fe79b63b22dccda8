package app

import (
	"gemmarket_backend/internal/email"
	"gemmarket_backend/internal/logger"
)

// MockEmailProvider logs instead of sending. Used in development and tests
// when no SMTP host is configured.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Message) error {
	logger.Info("MOCK EMAIL", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *MockEmailProvider) SendVerification(to string, token string) error {
	logger.Info("MOCK EMAIL: account verification", "to", to, "token", token)
	return nil
}

func (m *MockEmailProvider) SendPasswordReset(to string, token string) error {
	logger.Info("MOCK EMAIL: password reset", "to", to, "token", token)
	return nil
}

func (m *MockEmailProvider) SendVerificationDecision(to string, approved bool, notes string) error {
	logger.Info("MOCK EMAIL: verification decision", "to", to, "approved", approved, "notes", notes)
	return nil
}

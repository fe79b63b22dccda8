package services

import "gemmarket_backend/internal/email"

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService         AuthService
	RegistrationService RegistrationService
	ProfessionalService ProfessionalService
	VerificationService VerificationService
	EmailService        email.Provider
}

package handlers

// AppHandlers holds all application handlers.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	RegistrationHandler *RegistrationHandler
	ProfessionalHandler *ProfessionalHandler
	VerificationHandler *VerificationHandler
	ReferenceHandler    *ReferenceHandler
	StubHandler         *StubHandler
}

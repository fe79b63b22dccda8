package validator

import (
	"log"

	"gemmarket_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules registers the domain validation tags on the
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-role-name", validateRoleName)
	mustRegister("is-professional-type", validateProfessionalType)
	mustRegister("is-verification-status", validateVerificationStatus)
}

func validateRoleName(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is for 'required' to catch
	}
	for _, name := range models.AllRoleNames {
		if models.RoleName(value) == name {
			return true
		}
	}
	return false
}

func validateProfessionalType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, name := range models.AllProfessionalTypeNames {
		if models.ProfessionalTypeName(value) == name {
			return true
		}
	}
	return false
}

func validateVerificationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidVerificationStatus(models.VerificationStatus(value))
}

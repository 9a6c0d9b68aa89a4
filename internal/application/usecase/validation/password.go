// Package validation contains the field validators of the interactive form.
package validation

import (
	"fmt"

	"github.com/defend-your-code/form/internal/domain/entity"
	domainerror "github.com/defend-your-code/form/internal/domain/error"
	"github.com/defend-your-code/form/internal/domain/valueobject"
)

const passwordMismatchMessage = "Password does not match."

type passwordRuleFailure struct {
	code    domainerror.ValidationErrorCode
	message string
}

var passwordRuleFailures = map[valueobject.PasswordRule]passwordRuleFailure{
	valueobject.PasswordRuleMinLength: {
		code:    domainerror.ErrCodePasswordTooShort,
		message: fmt.Sprintf("Password must contain at least %d characters.", valueobject.MinPasswordLength),
	},
	valueobject.PasswordRuleMaxLength: {
		code:    domainerror.ErrCodePasswordTooLong,
		message: fmt.Sprintf("Password must contain less than %d characters.", valueobject.MaxPasswordLength),
	},
	valueobject.PasswordRuleUppercase: {
		code:    domainerror.ErrCodePasswordNoUppercase,
		message: "Password must contain at least one uppercase letter.",
	},
	valueobject.PasswordRuleLowercase: {
		code:    domainerror.ErrCodePasswordNoLowercase,
		message: "Password must contain at least one lowercase letter.",
	},
	valueobject.PasswordRuleDigit: {
		code:    domainerror.ErrCodePasswordNoDigit,
		message: "Password must contain at least one number.",
	},
	valueobject.PasswordRuleSpecial: {
		code:    domainerror.ErrCodePasswordNoSpecial,
		message: "Password must contain at least one special character.",
	},
}

// ValidatePassword checks the strength rules in order and reports only the
// first one that fails. On acceptance the salted hash of the password is
// stored for ConfirmPassword; the plain text is not kept.
//
// The error return is reserved for hashing failures, which end the session.
func (v *Validator) ValidatePassword(password string) (valueobject.Result, error) {
	profile := valueobject.ProfilePassword(password)
	for _, rule := range valueobject.PasswordRules() {
		if !profile.Satisfies(rule) {
			failure := passwordRuleFailures[rule]
			return v.reject(entity.FieldPassword, failure.code, failure.message, domainerror.ErrWeakPassword), nil
		}
	}

	hash, err := v.passwordService.HashPassword(password)
	if err != nil {
		return valueobject.Result{}, fmt.Errorf("failed to hash password: %w", err)
	}

	v.hash = hash
	v.hashSet = true
	return valueobject.Valid(), nil
}

// ConfirmPassword accepts the input only if it matches the hash stored by
// the last successful ValidatePassword.
func (v *Validator) ConfirmPassword(password string) valueobject.Result {
	if !v.hashSet {
		return v.reject(entity.FieldPasswordConfirmation, domainerror.ErrCodePasswordNotSet,
			passwordMismatchMessage, domainerror.ErrPasswordNotSet)
	}

	if err := v.passwordService.VerifyPassword(v.hash, password); err != nil {
		return v.reject(entity.FieldPasswordConfirmation, domainerror.ErrCodePasswordMismatch,
			passwordMismatchMessage, domainerror.ErrPasswordMismatch)
	}

	return valueobject.Valid()
}

// Package valueobject contains value objects for the domain layer.
package valueobject

import "strings"

const (
	// MinPasswordLength is the shortest accepted password, in characters.
	// Passwords shorter than this are rejected; exactly this long is accepted.
	MinPasswordLength = 8

	// MaxPasswordLength is the exclusive upper bound on password length, in characters.
	MaxPasswordLength = 256

	// PasswordSpecialCharacters is the set a password must draw at least one character from.
	PasswordSpecialCharacters = "!@#$%^&*-_=+\\|?/,.;:'\"`~[]{}<>"
)

// PasswordRule is a single strength rule. Rules are checked in the order
// returned by PasswordRules and the first failure wins.
type PasswordRule int

const (
	PasswordRuleMinLength PasswordRule = iota
	PasswordRuleMaxLength
	PasswordRuleUppercase
	PasswordRuleLowercase
	PasswordRuleDigit
	PasswordRuleSpecial
)

// PasswordRules returns the strength rules in evaluation order.
func PasswordRules() []PasswordRule {
	return []PasswordRule{
		PasswordRuleMinLength,
		PasswordRuleMaxLength,
		PasswordRuleUppercase,
		PasswordRuleLowercase,
		PasswordRuleDigit,
		PasswordRuleSpecial,
	}
}

// PasswordProfile summarizes the character classes present in a password.
type PasswordProfile struct {
	Length       int
	HasUppercase bool
	HasLowercase bool
	HasDigit     bool
	HasSpecial   bool
}

// ProfilePassword scans a password once and records its length and character classes.
// Letter and digit classes are ASCII only.
func ProfilePassword(password string) PasswordProfile {
	var p PasswordProfile
	for _, r := range password {
		p.Length++
		switch {
		case r >= 'A' && r <= 'Z':
			p.HasUppercase = true
		case r >= 'a' && r <= 'z':
			p.HasLowercase = true
		case r >= '0' && r <= '9':
			p.HasDigit = true
		case strings.ContainsRune(PasswordSpecialCharacters, r):
			p.HasSpecial = true
		}
	}
	return p
}

// Satisfies reports whether the profile passes the given rule.
func (p PasswordProfile) Satisfies(rule PasswordRule) bool {
	switch rule {
	case PasswordRuleMinLength:
		return p.Length >= MinPasswordLength
	case PasswordRuleMaxLength:
		return p.Length < MaxPasswordLength
	case PasswordRuleUppercase:
		return p.HasUppercase
	case PasswordRuleLowercase:
		return p.HasLowercase
	case PasswordRuleDigit:
		return p.HasDigit
	case PasswordRuleSpecial:
		return p.HasSpecial
	default:
		return false
	}
}

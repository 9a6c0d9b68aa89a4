// Package validation contains the field validators of the interactive form.
package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/defend-your-code/form/internal/domain/entity"
	domainerror "github.com/defend-your-code/form/internal/domain/error"
	"github.com/defend-your-code/form/internal/domain/valueobject"
)

// MaxNameLength is the longest accepted name, in characters.
const MaxNameLength = 50

var (
	nameRegex         = regexp.MustCompile(`^[A-Za-z]+$`)
	extendedNameRegex = regexp.MustCompile(`^[A-Za-z'-]+$`)
)

// ValidateName accepts 1 to MaxNameLength letters. With AllowNamePunctuation
// hyphens and apostrophes are accepted too. Digits, spaces and other symbols
// are always rejected.
func (v *Validator) ValidateName(name string) valueobject.Result {
	return v.validateName(entity.FieldFirstName, name)
}

// ValidateLastName is ValidateName reported under the last name field.
func (v *Validator) ValidateLastName(name string) valueobject.Result {
	return v.validateName(entity.FieldLastName, name)
}

func (v *Validator) validateName(field entity.Field, name string) valueobject.Result {
	alphabet := "alphabetic characters"
	pattern := nameRegex
	if v.opts.AllowNamePunctuation {
		alphabet = "alphabetic characters, hyphens and apostrophes"
		pattern = extendedNameRegex
	}

	if name == "" {
		return v.reject(field, domainerror.ErrCodeNameRequired,
			fmt.Sprintf("Please input a name (%s, %d characters max).", alphabet, MaxNameLength),
			domainerror.ErrNameRequired)
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return v.reject(field, domainerror.ErrCodeNameTooLong,
			fmt.Sprintf("Name must be %d characters or fewer.", MaxNameLength),
			domainerror.ErrNameTooLong)
	}

	if !pattern.MatchString(name) {
		return v.reject(field, domainerror.ErrCodeInvalidName,
			fmt.Sprintf("Please input a valid name (%s, %d characters max).", alphabet, MaxNameLength),
			domainerror.ErrInvalidName)
	}

	return valueobject.Valid()
}

// Package validation contains the field validators of the interactive form.
package validation

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/defend-your-code/form/internal/domain/entity"
	domainerror "github.com/defend-your-code/form/internal/domain/error"
	"github.com/defend-your-code/form/internal/domain/valueobject"
)

const (
	invalidIntegerMessage  = "Please input a valid integer (max of 2^31 - 1, min of -2^31)."
	integerOverflowMessage = "Please input an integer that will not cause overflow or underflow " +
		"when added or multiplied with the first integer (max of 2^31 - 1, min of -2^31)."
	firstIntegerNotSetMessage = "First integer not set."
)

var integerRegex = regexp.MustCompile(`^-?[0-9]+$`)

// parseInt32 returns the exact value of s when it is an optional minus sign
// followed by digits and lies within the 32-bit range.
func parseInt32(s string) (decimal.Decimal, bool) {
	if !integerRegex.MatchString(s) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if !valueobject.InInt32Range(d) {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ValidateFirstInteger accepts a 32-bit integer and remembers it for
// ValidateSecondInteger. A later acceptance replaces the stored value.
func (v *Validator) ValidateFirstInteger(s string) valueobject.Result {
	d, ok := parseInt32(s)
	if !ok {
		return v.reject(entity.FieldFirstInteger, domainerror.ErrCodeInvalidInteger,
			invalidIntegerMessage, domainerror.ErrInvalidInteger)
	}

	first := int32(d.IntPart())
	v.first = &first
	v.second = nil
	return valueobject.Valid()
}

// ValidateSecondInteger accepts a 32-bit integer whose exact sum and product
// with the stored first integer are also 32-bit integers. It fails closed
// when no first integer has been accepted yet.
func (v *Validator) ValidateSecondInteger(s string) valueobject.Result {
	if v.first == nil {
		return v.reject(entity.FieldSecondInteger, domainerror.ErrCodeFirstIntegerNotSet,
			firstIntegerNotSetMessage, domainerror.ErrFirstIntegerNotSet)
	}

	d, ok := parseInt32(s)
	if !ok {
		return v.reject(entity.FieldSecondInteger, domainerror.ErrCodeInvalidInteger,
			invalidIntegerMessage, domainerror.ErrInvalidInteger)
	}

	if !valueobject.PairFits(decimal.NewFromInt32(*v.first), d) {
		return v.reject(entity.FieldSecondInteger, domainerror.ErrCodeIntegerOverflow,
			integerOverflowMessage, domainerror.ErrIntegerOverflow)
	}

	second := int32(d.IntPart())
	v.second = &second
	return valueobject.Valid()
}

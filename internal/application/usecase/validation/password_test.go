package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/defend-your-code/form/internal/domain/error"
	"github.com/defend-your-code/form/internal/domain/valueobject"
)

func padPassword(prefix string, length int) string {
	return prefix + strings.Repeat("a", length-len(prefix))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCode    domainerror.ValidationErrorCode
		wantMessage string
	}{
		{name: "minimum length", input: "P@ssw0rd"},
		{name: "with space", input: "A password123*"},
		{name: "with underscore", input: "A_password123"},
		{name: "mostly capitals", input: "PASSWORD_123a"},
		{name: "backtick special", input: "Passw0rd`"},
		{name: "maximum length", input: padPassword("Apassword123*", valueobject.MaxPasswordLength-1)},
		{
			name:        "empty",
			input:       "",
			wantCode:    domainerror.ErrCodePasswordTooShort,
			wantMessage: "Password must contain at least 8 characters.",
		},
		{
			name:        "one below minimum",
			input:       "P@sw0rd",
			wantCode:    domainerror.ErrCodePasswordTooShort,
			wantMessage: "Password must contain at least 8 characters.",
		},
		{
			name:        "at maximum",
			input:       padPassword("Apassword123*", valueobject.MaxPasswordLength),
			wantCode:    domainerror.ErrCodePasswordTooLong,
			wantMessage: "Password must contain less than 256 characters.",
		},
		{
			name:        "no uppercase",
			input:       "p@ssw0rd",
			wantCode:    domainerror.ErrCodePasswordNoUppercase,
			wantMessage: "Password must contain at least one uppercase letter.",
		},
		{
			name:        "no uppercase wins over missing digit and special",
			input:       "password",
			wantCode:    domainerror.ErrCodePasswordNoUppercase,
			wantMessage: "Password must contain at least one uppercase letter.",
		},
		{
			name:        "no lowercase",
			input:       "P@SSW0RD",
			wantCode:    domainerror.ErrCodePasswordNoLowercase,
			wantMessage: "Password must contain at least one lowercase letter.",
		},
		{
			name:        "no number",
			input:       "P@ssword",
			wantCode:    domainerror.ErrCodePasswordNoDigit,
			wantMessage: "Password must contain at least one number.",
		},
		{
			name:        "no special character",
			input:       "Passw0rd",
			wantCode:    domainerror.ErrCodePasswordNoSpecial,
			wantMessage: "Password must contain at least one special character.",
		},
		{
			name:        "space is not special",
			input:       "Passw0rd here",
			wantCode:    domainerror.ErrCodePasswordNoSpecial,
			wantMessage: "Password must contain at least one special character.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			result, err := f.validator.ValidatePassword(tt.input)
			require.NoError(t, err)

			hash, stored := f.validator.PasswordHash()
			if tt.wantCode == "" {
				assert.True(t, result.Valid(), "unexpected rejection: %s", result.Reason())
				assert.True(t, stored)
				assert.NotEqual(t, tt.input, hash)
				return
			}
			assert.False(t, result.Valid())
			assert.Equal(t, tt.wantCode, result.Code())
			assert.Equal(t, tt.wantMessage, result.Reason())
			assert.True(t, errors.Is(result.Err(), domainerror.ErrWeakPassword))
			assert.False(t, stored)
			assert.Empty(t, hash)
		})
	}
}

func TestValidatePassword_MultibyteLengthCountsCharacters(t *testing.T) {
	f := newFixture()

	// Seven characters, more than eight bytes.
	result, err := f.validator.ValidatePassword("Pä$sw0r")
	require.NoError(t, err)

	assert.Equal(t, domainerror.ErrCodePasswordTooShort, result.Code())
}

func TestValidatePassword_HashFailureIsReturned(t *testing.T) {
	f := newFixture()
	f.passwords.hashErr = errors.New("entropy source unavailable")

	_, err := f.validator.ValidatePassword("P@ssw0rd")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy source unavailable")
	_, stored := f.validator.PasswordHash()
	assert.False(t, stored)
}

func TestValidatePassword_RejectionDoesNotExposeInput(t *testing.T) {
	f := newFixture()

	_, err := f.validator.ValidatePassword("secretpass1!")
	require.NoError(t, err)

	require.Len(t, f.observer.rejections, 1)
	assert.NotContains(t, f.observer.rejections[0].Message, "secretpass1!")
}

func TestConfirmPassword(t *testing.T) {
	f := newFixture()
	result, err := f.validator.ValidatePassword("P@ssw0rd")
	require.NoError(t, err)
	require.True(t, result.Valid())

	assert.True(t, f.validator.ConfirmPassword("P@ssw0rd").Valid())

	for _, other := range []string{"", "p@ssw0rd", "P@ssw0rd ", "does not match"} {
		result := f.validator.ConfirmPassword(other)
		assert.False(t, result.Valid(), other)
		assert.Equal(t, domainerror.ErrCodePasswordMismatch, result.Code())
		assert.Equal(t, "Password does not match.", result.Reason())
		assert.False(t, result.IsPrecondition())
	}
}

func TestConfirmPassword_UsesLatestPassword(t *testing.T) {
	f := newFixture()
	_, err := f.validator.ValidatePassword("P@ssw0rd")
	require.NoError(t, err)
	_, err = f.validator.ValidatePassword("N3w-Secret")
	require.NoError(t, err)

	assert.False(t, f.validator.ConfirmPassword("P@ssw0rd").Valid())
	assert.True(t, f.validator.ConfirmPassword("N3w-Secret").Valid())
}

func TestConfirmPassword_WithoutPassword(t *testing.T) {
	f := newFixture()

	result := f.validator.ConfirmPassword("P@ssw0rd")

	assert.False(t, result.Valid())
	assert.True(t, result.IsPrecondition())
	assert.Equal(t, "Password does not match.", result.Reason())
	assert.True(t, errors.Is(result.Err(), domainerror.ErrPasswordNotSet))
}

func TestConfirmPassword_RoundTrip(t *testing.T) {
	passwords := []string{
		"P@ssw0rd",
		"A password123*",
		"Zz9~Zz9~",
		padPassword("Xy1{", valueobject.MaxPasswordLength-1),
	}

	for _, password := range passwords {
		f := newFixture()
		result, err := f.validator.ValidatePassword(password)
		require.NoError(t, err)
		require.True(t, result.Valid(), result.Reason())

		assert.True(t, f.validator.ConfirmPassword(password).Valid())
	}
}
